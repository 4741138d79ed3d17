package http

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/google/uuid"
)

/* Addresses a call to "/count" according to the requested action.  */
func (h *BookHandler) count(w http.ResponseWriter, r *http.Request) {
	r, cancel := h.withTimeout(r)
	defer cancel()

	switch r.Method {
	case http.MethodPost:
		h.addBookCount(w, r)
	default:
		methodNotAllowed(w, http.MethodPost)
	}
}

/* Addresses a call to "/count/author", "/count/title" or "/count/(expected isbn here)". */
func (h *BookHandler) countBy(w http.ResponseWriter, r *http.Request) {
	r, cancel := h.withTimeout(r)
	defer cancel()

	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	switch strings.TrimPrefix(r.URL.Path, countPath+"/") {
	case "author":
		h.countByAuthor(w, r)
	case "title":
		h.countByTitle(w, r)
	default:
		h.getBookCount(w, r)
	}
}

type CountEntry struct {
	ISBN  string `json:"isbn" validate:"required,uuid"`
	Count *int64 `json:"count" validate:"required,gte=0"`
}

/* Validates the entry, then overwrites the count of the stored book. */
func (h *BookHandler) addBookCount(w http.ResponseWriter, r *http.Request) {
	var countEntry CountEntry
	if !decodeEntry(w, r, &countEntry) {
		return
	}

	view := book.CountView{
		ISBN:  uuid.MustParse(countEntry.ISBN),
		Count: *countEntry.Count,
	}
	isbn, err := h.bookService.AddBookCount(r.Context(), view)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, isbn)
}

func (h *BookHandler) getBookCount(w http.ResponseWriter, r *http.Request) {
	isbn, err := isolateISBN(w, r, countPath+"/")
	if err != nil {
		return
	}

	countView, err := h.bookService.GetBookCountByISBN(r.Context(), isbn)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, countView)
}

func (h *BookHandler) countByAuthor(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	author, ok := requiredParam(w, query.Get("author"), "author")
	if !ok {
		return
	}
	page, err := extractPageParams(query)
	if err != nil {
		handleError(err, w, r)
		return
	}

	counts, err := h.bookService.GetBooksCountByAuthor(r.Context(), author, page)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, counts)
}

func (h *BookHandler) countByTitle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	title, ok := requiredParam(w, query.Get("title"), "title")
	if !ok {
		return
	}
	page, err := extractPageParams(query)
	if err != nil {
		handleError(err, w, r)
		return
	}

	counts, err := h.bookService.GetBooksCountByTitle(r.Context(), title, page)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, counts)
}

/* Answers 400 when a mandatory query parameter is blank. */
func requiredParam(w http.ResponseWriter, value, name string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		errR := book.ErrResponseQueryFilterMissing
		log.Println(errR, name)
		responseError(w, http.StatusBadRequest, errR.Code, fmt.Sprintf("%s: '%s'", errR.Message, name))
		return "", false
	}
	return value, true
}
