package book

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the stored inventory record. ISBN is the client supplied primary key.
type Book struct {
	ISBN   uuid.UUID
	Author string
	Title  string
	Price  decimal.Decimal
	Count  int64
}

const MaxPageSize = 100

const (
	SortISBN   = "isbn"
	SortAuthor = "author"
	SortTitle  = "title"
	SortPrice  = "price"
	SortCount  = "count"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

var sortFields = map[string]bool{
	SortISBN:   true,
	SortAuthor: true,
	SortTitle:  true,
	SortPrice:  true,
	SortCount:  true,
}

// PageRequest selects one bounded, sorted slice of a result set.
// A nil *PageRequest means the whole result set in store order.
type PageRequest struct {
	Page      int // zero based
	Size      int
	Sort      string // empty means isbn order
	Direction string
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

func (p PageRequest) Descending() bool {
	return p.Direction == DirectionDesc
}

/* Parses a sort expression in the form "field" or "field,asc|desc". */
func ParseSort(expr string) (field, direction string, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", "", nil
	}

	field, direction, _ = strings.Cut(expr, ",")
	field = strings.ToLower(strings.TrimSpace(field))
	direction = strings.ToLower(strings.TrimSpace(direction))

	if !sortFields[field] {
		return "", "", ErrResponseQuerySortInvalid
	}
	switch direction {
	case "":
		direction = DirectionAsc
	case DirectionAsc, DirectionDesc:
	default:
		return "", "", ErrResponseQuerySortInvalid
	}

	return field, direction, nil
}

/* Validates the page bounds, returning a usable page request. */
func NewPageRequest(page, size int, sort string) (*PageRequest, error) {
	if page < 0 || size < 1 || size > MaxPageSize {
		return nil, ErrResponseQueryPageInvalid
	}
	// The last row of the page must fit in an int.
	if page > math.MaxInt/size-1 {
		return nil, ErrResponseQueryPageInvalid
	}

	field, direction, err := ParseSort(sort)
	if err != nil {
		return nil, err
	}

	return &PageRequest{Page: page, Size: size, Sort: field, Direction: direction}, nil
}
