package book

import (
	"context"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// Repository is the persistence gateway for books. A nil page selects the
// unpaged finder. Author and title filters are exact matches.
type Repository interface {
	GetBookByISBN(ctx context.Context, isbn uuid.UUID) (Book, error)
	ListBooks(ctx context.Context, page *PageRequest) ([]Book, error)
	ListBooksByAuthor(ctx context.Context, author string, page *PageRequest) ([]Book, error)
	ListBooksByTitle(ctx context.Context, title string, page *PageRequest) ([]Book, error)
	ListBooksByAuthorAndTitle(ctx context.Context, author, title string, page *PageRequest) ([]Book, error)
	// SaveBook inserts the book or replaces the one stored under the same isbn.
	SaveBook(ctx context.Context, bookEntry Book) (Book, error)
	// CreateBook fails with ErrResponseBookAlreadyExists when the isbn is taken.
	CreateBook(ctx context.Context, bookEntry Book) (Book, error)
	// UpdateBook replaces author, title and price of an existing book in one
	// conditional write. Count is kept.
	UpdateBook(ctx context.Context, bookEntry Book) (Book, error)
	SetBookCount(ctx context.Context, isbn uuid.UUID, count int64) (Book, error)
	DeleteBook(ctx context.Context, isbn uuid.UUID) error
}

type Notifier interface {
	BookCreated(ctx context.Context, b Book) error
	CountUpdated(ctx context.Context, b Book) error
}
