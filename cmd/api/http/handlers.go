package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=mocks/mock_service.go -package=mocks

const (
	basePath  = "/api/v1"
	booksPath = basePath + "/books"
	countPath = basePath + "/count"
)

const DefaultRequestTimeout = 3 * time.Second

// ServiceAPI is what the handlers need from the book service.
type ServiceAPI interface {
	CreateBook(ctx context.Context, view book.BookView) (uuid.UUID, error)
	DeleteBookWithISBN(ctx context.Context, isbn uuid.UUID) error
	GetBookByISBN(ctx context.Context, isbn uuid.UUID) (book.BookView, error)
	GetBookCountByISBN(ctx context.Context, isbn uuid.UUID) (book.CountView, error)
	GetBooks(ctx context.Context, author, title string, page *book.PageRequest) ([]book.BookView, error)
	UpdateBook(ctx context.Context, view book.BookView) (uuid.UUID, error)
	AddBookCount(ctx context.Context, view book.CountView) (uuid.UUID, error)
	GetBooksCountByAuthor(ctx context.Context, author string, page *book.PageRequest) ([]book.CountAuthorView, error)
	GetBooksCountByTitle(ctx context.Context, title string, page *book.PageRequest) ([]book.CountTitleView, error)
}

type BookHandler struct {
	bookService    ServiceAPI
	requestTimeout time.Duration
}

func NewBookHandler(bookService ServiceAPI, requestTimeout time.Duration) *BookHandler {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &BookHandler{bookService: bookService, requestTimeout: requestTimeout}
}

/* Bounds the request context by the handler timeout. */
func (h *BookHandler) withTimeout(r *http.Request) (*http.Request, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	return r.WithContext(ctx), cancel
}

/* Addresses a call to "/books" according to the requested action.  */
func (h *BookHandler) books(w http.ResponseWriter, r *http.Request) {
	r, cancel := h.withTimeout(r)
	defer cancel()

	switch r.Method {
	case http.MethodGet:
		h.listBooks(w, r)
	case http.MethodPost:
		h.createBook(w, r)
	case http.MethodPut:
		h.updateBook(w, r)
	default:
		methodNotAllowed(w, "GET, POST, PUT")
	}
}

/* Addresses a call to "/books/(expected isbn here)" according to the requested action.  */
func (h *BookHandler) bookByISBN(w http.ResponseWriter, r *http.Request) {
	r, cancel := h.withTimeout(r)
	defer cancel()

	switch r.Method {
	case http.MethodGet:
		h.getBookByISBN(w, r)
	case http.MethodDelete:
		h.deleteBook(w, r)
	default:
		methodNotAllowed(w, "GET, DELETE")
	}
}

type BookEntry struct {
	ISBN   string           `json:"isbn" validate:"required,uuid"`
	Author string           `json:"author" validate:"required"`
	Title  string           `json:"title" validate:"required"`
	Price  *decimal.Decimal `json:"price" validate:"required,decimal_gte=0"`
}

/* Converts from BookEntry type to the full book view. The entry must be valid. */
func bookEntryToView(e BookEntry) book.BookView {
	return book.BookView{
		ISBN:   uuid.MustParse(e.ISBN),
		Author: e.Author,
		Title:  e.Title,
		Price:  *e.Price,
	}
}

/* Validates the entry, then stores it as a new book. */
func (h *BookHandler) createBook(w http.ResponseWriter, r *http.Request) {
	var bookEntry BookEntry
	if !decodeEntry(w, r, &bookEntry) {
		return
	}

	isbn, err := h.bookService.CreateBook(r.Context(), bookEntryToView(bookEntry))
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, isbn)
}

/* Validates the entry, then replaces the stored book with the same isbn. */
func (h *BookHandler) updateBook(w http.ResponseWriter, r *http.Request) {
	var bookEntry BookEntry
	if !decodeEntry(w, r, &bookEntry) {
		return
	}

	isbn, err := h.bookService.UpdateBook(r.Context(), bookEntryToView(bookEntry))
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, isbn)
}

/* Returns the book with that specific isbn. */
func (h *BookHandler) getBookByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, err := isolateISBN(w, r, booksPath+"/")
	if err != nil {
		return
	}

	returnedBook, err := h.bookService.GetBookByISBN(r.Context(), isbn)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, returnedBook)
}

/* Removes the book, succeeding whether or not it was stored. */
func (h *BookHandler) deleteBook(w http.ResponseWriter, r *http.Request) {
	isbn, err := isolateISBN(w, r, booksPath+"/")
	if err != nil {
		return
	}

	err = h.bookService.DeleteBookWithISBN(r.Context(), isbn)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, nil)
}

/* Returns the books matching the author and title filters, one page of them when asked. */
func (h *BookHandler) listBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := extractPageParams(query)
	if err != nil {
		handleError(err, w, r)
		return
	}

	books, err := h.bookService.GetBooks(r.Context(), query.Get("author"), query.Get("title"), page)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, books)
}

/* Reads the JSON body into entry and validates it, answering 400 on failure. */
func decodeEntry(w http.ResponseWriter, r *http.Request, entry any) bool {
	err := json.NewDecoder(r.Body).Decode(entry)
	if err != nil {
		log.Println(err)
		errR := book.ErrResponseEntryInvalidJSON
		responseError(w, http.StatusBadRequest, errR.Code, errR.Message+" "+err.Error())
		return false
	}

	if errs := ValidateStruct(entry); len(errs) > 0 {
		log.Println(book.ErrResponseEntryValidation, errs)
		responseError(w, http.StatusBadRequest, book.ErrResponseEntryValidation.Code, errs)
		return false
	}

	return true
}

/* Isolates the isbn from the URL. */
func isolateISBN(w http.ResponseWriter, r *http.Request, prefix string) (isbn uuid.UUID, err error) {
	justISBN := strings.TrimPrefix(r.URL.Path, prefix)
	isbn, err = uuid.Parse(justISBN)
	if err != nil {
		log.Println(err)
		errR := book.ErrResponseISBNInvalidFormat
		responseError(w, http.StatusBadRequest, errR.Code, errR.Message)
		return isbn, err
	}
	return isbn, nil
}
