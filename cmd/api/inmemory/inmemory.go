package inmemory

import (
	"context"
	"fmt"
	"sort"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/shopspring/decimal"
)

const tableBook = "book"

var _ book.Repository = (*InMemoryStore)(nil)

type InMemoryStore struct {
	db *memdb.MemDB
}

func NewInMemoryStore() (*InMemoryStore, error) {
	// Define the schema
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableBook: {
				Name: tableBook,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ISBN"},
					},
					"author": {
						Name:         "author",
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Author"},
					},
					"title": {
						Name:         "title",
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Title"},
					},
				},
			},
		},
	}

	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("validating in-memory schema: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db}, nil
}

// AdaptedBook is the stored row: memdb indexes strings, not uuids.
type AdaptedBook struct {
	ISBN   string
	Author string
	Title  string
	Price  decimal.Decimal
	Count  int64
}

func adaptBookIdToString(b book.Book) AdaptedBook {
	return AdaptedBook{
		ISBN:   b.ISBN.String(),
		Author: b.Author,
		Title:  b.Title,
		Price:  b.Price,
		Count:  b.Count,
	}
}

func adaptBookIdToUUID(adptBook AdaptedBook) book.Book {
	return book.Book{
		ISBN:   uuid.MustParse(adptBook.ISBN),
		Author: adptBook.Author,
		Title:  adptBook.Title,
		Price:  adptBook.Price,
		Count:  adptBook.Count,
	}
}

func (store *InMemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (store *InMemoryStore) GetBookByISBN(ctx context.Context, isbn uuid.UUID) (book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableBook, "id", isbn.String())
	if err != nil {
		return book.Book{}, fmt.Errorf("searching by isbn: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("searching by isbn: %w", book.ErrResponseBookNotFound)
	}

	return adaptBookIdToUUID(raw.(AdaptedBook)), nil
}

func (store *InMemoryStore) ListBooks(ctx context.Context, page *book.PageRequest) ([]book.Book, error) {
	return store.list("id", nil, page)
}

func (store *InMemoryStore) ListBooksByAuthor(ctx context.Context, author string, page *book.PageRequest) ([]book.Book, error) {
	return store.list("author", nil, page, author)
}

func (store *InMemoryStore) ListBooksByTitle(ctx context.Context, title string, page *book.PageRequest) ([]book.Book, error) {
	return store.list("title", nil, page, title)
}

func (store *InMemoryStore) ListBooksByAuthorAndTitle(ctx context.Context, author, title string, page *book.PageRequest) ([]book.Book, error) {
	sameTitle := func(b AdaptedBook) bool { return b.Title == title }
	return store.list("author", sameTitle, page, author)
}

/* Walks an index, keeps the rows accepted by filter and cuts the requested page. */
func (store *InMemoryStore) list(index string, filter func(AdaptedBook) bool, page *book.PageRequest, args ...any) ([]book.Book, error) {
	if index != "id" && len(args) == 1 && args[0] == "" {
		// Blank values are never indexed.
		return []book.Book{}, nil
	}

	txn := store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableBook, index, args...)
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	books := []book.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b := obj.(AdaptedBook)
		if filter != nil && !filter(b) {
			continue
		}
		books = append(books, adaptBookIdToUUID(b))
	}

	if page == nil {
		return books, nil
	}

	if err := sortBooks(page, books); err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	start := page.Offset()
	if start < 0 || start >= len(books) {
		return []book.Book{}, nil
	}
	end := start + page.Size
	if end > len(books) {
		end = len(books)
	}

	return books[start:end], nil
}

/* Orders the books by the page sort key, isbn breaking ties. */
func sortBooks(page *book.PageRequest, books []book.Book) error {
	var cmp func(a, b book.Book) int
	switch page.Sort {
	case "", book.SortISBN:
		cmp = func(a, b book.Book) int { return 0 }
	case book.SortAuthor:
		cmp = func(a, b book.Book) int { return compareStrings(a.Author, b.Author) }
	case book.SortTitle:
		cmp = func(a, b book.Book) int { return compareStrings(a.Title, b.Title) }
	case book.SortPrice:
		cmp = func(a, b book.Book) int { return a.Price.Cmp(b.Price) }
	case book.SortCount:
		cmp = func(a, b book.Book) int { return compareInts(a.Count, b.Count) }
	default:
		return book.ErrResponseQuerySortInvalid
	}

	desc := page.Descending()
	sort.SliceStable(books, func(i, j int) bool {
		c := cmp(books[i], books[j])
		if c == 0 {
			c = compareStrings(books[i].ISBN.String(), books[j].ISBN.String())
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (store *InMemoryStore) SaveBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(tableBook, adaptBookIdToString(bookEntry)); err != nil {
		return book.Book{}, fmt.Errorf("saving book on db: %w", err)
	}

	txn.Commit()
	return bookEntry, nil
}

func (store *InMemoryStore) CreateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableBook, "id", bookEntry.ISBN.String())
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if raw != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", book.ErrResponseBookAlreadyExists)
	}

	if err := txn.Insert(tableBook, adaptBookIdToString(bookEntry)); err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	txn.Commit()
	return bookEntry, nil
}

func (store *InMemoryStore) UpdateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	return store.modify(bookEntry.ISBN, "updating book on db", func(b *AdaptedBook) {
		b.Author = bookEntry.Author
		b.Title = bookEntry.Title
		b.Price = bookEntry.Price
		//Count will not change
	})
}

func (store *InMemoryStore) SetBookCount(ctx context.Context, isbn uuid.UUID, count int64) (book.Book, error) {
	return store.modify(isbn, "updating book count on db", func(b *AdaptedBook) {
		b.Count = count
	})
}

/* Applies change to an existing row inside a single write transaction. */
func (store *InMemoryStore) modify(isbn uuid.UUID, doing string, change func(b *AdaptedBook)) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableBook, "id", isbn.String())
	if err != nil {
		return book.Book{}, fmt.Errorf("%s: %w", doing, err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("%s: %w", doing, book.ErrResponseBookNotFound)
	}

	// Rows are values, so the indexed copy is never mutated in place.
	updatedBook := raw.(AdaptedBook)
	change(&updatedBook)

	if err := txn.Insert(tableBook, updatedBook); err != nil {
		return book.Book{}, fmt.Errorf("%s: %w", doing, err)
	}

	txn.Commit()
	return adaptBookIdToUUID(updatedBook), nil
}

func (store *InMemoryStore) DeleteBook(ctx context.Context, isbn uuid.UUID) error {
	txn := store.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tableBook, "id", isbn.String()); err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}

	txn.Commit()
	return nil
}
