package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Pinger reports whether the book store can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ServerConfig struct {
	Port   int
	Pinger Pinger
}

func NewServer(config ServerConfig, h *BookHandler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", ping)
	mux.HandleFunc("/readyz", readyz(config.Pinger))
	mux.HandleFunc(booksPath, h.books)
	mux.HandleFunc(booksPath+"/", h.bookByISBN)
	mux.HandleFunc(countPath, h.count)
	mux.HandleFunc(countPath+"/", h.countBy)

	server := http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           RequestIDMiddleware(AccessLogMiddleware(RecoveryMiddleware(mux))),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &server
}

/* Tests the http server connection.  */
func ping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* Tests the book store connection. A nil pinger is always ready. */
func readyz(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}

		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				log.Println(err)
				responseError(w, http.StatusServiceUnavailable, 0, "book store not reachable")
				return
			}
		}

		responseJSON(w, http.StatusOK, "ready")
	}
}
