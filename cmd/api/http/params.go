package http

import (
	"net/url"
	"strconv"

	"github.com/bookstore-inventory/cmd/api/book"
)

/*
Builds the page request of the query. Paging starts only when both "page" and
"size" are present, otherwise the result is nil and "sort" is ignored.
*/
func extractPageParams(query url.Values) (*book.PageRequest, error) {
	pageStr := query.Get("page")
	sizeStr := query.Get("size")
	if pageStr == "" || sizeStr == "" {
		return nil, nil
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return nil, book.ErrResponseQueryPageInvalid
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, book.ErrResponseQueryPageInvalid
	}

	return book.NewPageRequest(page, size, query.Get("sort"))
}
