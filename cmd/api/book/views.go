package book

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Views are the projections of a Book exposed over the API.

type BookView struct {
	ISBN   uuid.UUID       `json:"isbn"`
	Author string          `json:"author"`
	Title  string          `json:"title"`
	Price  decimal.Decimal `json:"price"`
}

// MarshalJSON writes the price as a JSON number.
func (v BookView) MarshalJSON() ([]byte, error) {
	type bookView BookView
	return json.Marshal(struct {
		bookView
		Price json.Number `json:"price"`
	}{bookView(v), json.Number(v.Price.String())})
}

type CountView struct {
	ISBN  uuid.UUID `json:"isbn"`
	Count int64     `json:"count"`
}

type CountTitleView struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

type CountAuthorView struct {
	Author string `json:"author"`
	Count  int64  `json:"count"`
}

func ToBookView(b Book) BookView {
	return BookView{
		ISBN:   b.ISBN,
		Author: b.Author,
		Title:  b.Title,
		Price:  b.Price,
	}
}

// FromBookView builds a record from the full view. Count is left at zero.
func FromBookView(v BookView) Book {
	return Book{
		ISBN:   v.ISBN,
		Author: v.Author,
		Title:  v.Title,
		Price:  v.Price,
	}
}

func ToCountView(b Book) CountView {
	return CountView{ISBN: b.ISBN, Count: b.Count}
}

func ToCountTitleView(b Book) CountTitleView {
	return CountTitleView{Title: b.Title, Count: b.Count}
}

func ToCountAuthorView(b Book) CountAuthorView {
	return CountAuthorView{Author: b.Author, Count: b.Count}
}

/* Maps every book with fn, keeping the store order. Never returns nil. */
func mapBooks[V any](books []Book, fn func(Book) V) []V {
	views := make([]V, 0, len(books))
	for _, b := range books {
		views = append(views, fn(b))
	}
	return views
}
