package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bookstore-inventory/cmd/api/book"
)

// Envelope wraps every response body.
type Envelope struct {
	Response  any    `json:"response"`
	Status    int    `json:"status"`
	Title     string `json:"title,omitempty"`
	Detail    any    `json:"detail,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

/*Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, status int, payload any) {
	writeEnvelope(w, Envelope{Response: payload, Status: status})
}

/* Writes an error envelope titled with the standard status text. */
func responseError(w http.ResponseWriter, status int, code int, detail any) {
	writeEnvelope(w, Envelope{
		Status:    status,
		Title:     http.StatusText(status),
		Detail:    detail,
		ErrorCode: code,
	})
}

func writeEnvelope(w http.ResponseWriter, env Envelope) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(env.Status)
	err := json.NewEncoder(w).Encode(env)
	if err != nil {
		log.Println(err)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	responseError(w, http.StatusMethodNotAllowed, 0, nil)
}

/* Translates a service error into its status code and writes it. */
func handleError(err error, w http.ResponseWriter, r *http.Request) {
	log.Println(err)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, book.ErrResponseRequestTimeout):
		errR := book.ErrResponseRequestTimeout
		responseError(w, http.StatusGatewayTimeout, errR.Code, errR.Message)
		return
	case errors.Is(err, book.ErrResponseBookNotFound):
		errR := book.ErrResponseBookNotFound
		responseError(w, http.StatusNotFound, errR.Code, errR.Message)
		return
	case errors.Is(err, book.ErrResponseBookAlreadyExists):
		errR := book.ErrResponseBookAlreadyExists
		responseError(w, http.StatusConflict, errR.Code, errR.Message)
		return
	case errors.Is(err, book.ErrResponseFromRepository):
		// Store internals stay in the log.
		responseError(w, http.StatusInternalServerError, book.ErrResponseFromRepository.Code, nil)
		return
	}

	var errR book.ErrResponse
	if errors.As(err, &errR) {
		responseError(w, http.StatusBadRequest, errR.Code, errR.Message)
		return
	}

	responseError(w, http.StatusInternalServerError, 0, nil)
}
