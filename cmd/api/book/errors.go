package book

import (
	"fmt"
)

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

// Is matches catalogue errors by code, so wrapped copies carrying a longer
// message still satisfy errors.Is.
func (e ErrResponse) Is(target error) bool {
	t, ok := target.(ErrResponse)
	return ok && t.Code == e.Code
}

var ErrResponseEntryValidation = ErrResponse{100, "the entry is not valid."}
var ErrResponseBookNotFound = ErrResponse{101, "book not found"}
var ErrResponseEntryInvalidJSON = ErrResponse{102, "invalid json request."}
var ErrResponseISBNInvalidFormat = ErrResponse{103, "the isbn is not a valid format. Must be an uuid"}
var ErrResponseBookAlreadyExists = ErrResponse{104, "a book with this isbn already exists"}
var ErrResponseQuerySortInvalid = ErrResponse{105, "query parameter 'sort' must be: isbn, author, title, price or count, optionally followed by ',asc' or ',desc'."}
var ErrResponseQueryPageInvalid = ErrResponse{106, "query parameter 'page' must be an int starting in 0. 'size' must be an int between 1 and 100."}
var ErrResponseQueryFilterMissing = ErrResponse{107, "required query parameter is missing"}
var ErrResponseFromRepository = ErrResponse{108, "error from repository: "}
var ErrResponseRequestTimeout = ErrResponse{109, "context deadline exceeded"}
var ErrResponseISBNRequired = ErrResponse{110, "isbn must be provided"}
var ErrResponseInvalidCount = ErrResponse{111, "book count must not be negative"}

type ErrNotificationFailed struct {
	statusCode int
}

func (e ErrNotificationFailed) Error() string {
	return fmt.Sprintf("ntfy wrong response - want: 200 OK, got: %d", e.statusCode)
}

func NewErrNotificationFailed(statusCode int) ErrNotificationFailed {
	return ErrNotificationFailed{statusCode: statusCode}
}
