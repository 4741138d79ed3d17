package book

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// CreateMode decides what CreateBook does with an isbn that is already stored.
type CreateMode string

const (
	CreateModeUpsert CreateMode = "upsert"
	CreateModeReject CreateMode = "reject"
)

func ParseCreateMode(s string) (CreateMode, error) {
	switch CreateMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", CreateModeUpsert:
		return CreateModeUpsert, nil
	case CreateModeReject:
		return CreateModeReject, nil
	default:
		return "", fmt.Errorf("unknown create mode %q", s)
	}
}

type Service struct {
	repo       Repository
	ntfy       Notifier
	createMode CreateMode
}

// NewService wires the service. ntfy may be nil to disable notifications.
func NewService(repo Repository, ntfy Notifier, createMode CreateMode) *Service {
	if createMode == "" {
		createMode = CreateModeUpsert
	}
	return &Service{repo: repo, ntfy: ntfy, createMode: createMode}
}

func (s *Service) CreateBook(ctx context.Context, view BookView) (uuid.UUID, error) {
	bookEntry := FromBookView(view)
	bookEntry.Count = 0

	var storedBook Book
	var err error
	if s.createMode == CreateModeReject {
		storedBook, err = s.repo.CreateBook(ctx, bookEntry)
	} else {
		storedBook, err = s.repo.SaveBook(ctx, bookEntry)
	}
	if err != nil {
		return uuid.Nil, repositoryError("CreateBook", err)
	}

	s.notify(func(ctx context.Context) error { return s.ntfy.BookCreated(ctx, storedBook) })
	return storedBook.ISBN, nil
}

func (s *Service) DeleteBookWithISBN(ctx context.Context, isbn uuid.UUID) error {
	if isbn == uuid.Nil {
		return ErrResponseISBNRequired
	}
	if err := s.repo.DeleteBook(ctx, isbn); err != nil {
		return repositoryError("DeleteBookWithISBN", err)
	}
	return nil
}

func (s *Service) GetBookByISBN(ctx context.Context, isbn uuid.UUID) (BookView, error) {
	b, err := s.repo.GetBookByISBN(ctx, isbn)
	if err != nil {
		return BookView{}, repositoryError("GetBookByISBN", err)
	}
	return ToBookView(b), nil
}

func (s *Service) GetBookCountByISBN(ctx context.Context, isbn uuid.UUID) (CountView, error) {
	b, err := s.repo.GetBookByISBN(ctx, isbn)
	if err != nil {
		return CountView{}, repositoryError("GetBookCountByISBN", err)
	}
	return ToCountView(b), nil
}

// GetBooks picks the finder from the filters present: author and title,
// author only, title only, or none. A non-nil page selects the paged finder
// in every branch.
func (s *Service) GetBooks(ctx context.Context, author, title string, page *PageRequest) ([]BookView, error) {
	hasAuthor := strings.TrimSpace(author) != ""
	hasTitle := strings.TrimSpace(title) != ""

	var books []Book
	var err error
	switch {
	case hasAuthor && hasTitle:
		books, err = s.repo.ListBooksByAuthorAndTitle(ctx, author, title, page)
	case hasAuthor:
		books, err = s.repo.ListBooksByAuthor(ctx, author, page)
	case hasTitle:
		books, err = s.repo.ListBooksByTitle(ctx, title, page)
	default:
		books, err = s.repo.ListBooks(ctx, page)
	}
	if err != nil {
		return nil, repositoryError("GetBooks", err)
	}

	return mapBooks(books, ToBookView), nil
}

func (s *Service) UpdateBook(ctx context.Context, view BookView) (uuid.UUID, error) {
	updatedBook, err := s.repo.UpdateBook(ctx, FromBookView(view))
	if err != nil {
		return uuid.Nil, repositoryError("UpdateBook", err)
	}
	return updatedBook.ISBN, nil
}

// AddBookCount overwrites the stored count, it does not add to it.
func (s *Service) AddBookCount(ctx context.Context, view CountView) (uuid.UUID, error) {
	if view.Count < 0 {
		return uuid.Nil, ErrResponseInvalidCount
	}

	updatedBook, err := s.repo.SetBookCount(ctx, view.ISBN, view.Count)
	if err != nil {
		return uuid.Nil, repositoryError("AddBookCount", err)
	}

	s.notify(func(ctx context.Context) error { return s.ntfy.CountUpdated(ctx, updatedBook) })
	return updatedBook.ISBN, nil
}

func (s *Service) GetBooksCountByAuthor(ctx context.Context, author string, page *PageRequest) ([]CountAuthorView, error) {
	books, err := s.repo.ListBooksByAuthor(ctx, author, page)
	if err != nil {
		return nil, repositoryError("GetBooksCountByAuthor", err)
	}
	return mapBooks(books, ToCountAuthorView), nil
}

func (s *Service) GetBooksCountByTitle(ctx context.Context, title string, page *PageRequest) ([]CountTitleView, error) {
	books, err := s.repo.ListBooksByTitle(ctx, title, page)
	if err != nil {
		return nil, repositoryError("GetBooksCountByTitle", err)
	}
	return mapBooks(books, ToCountTitleView), nil
}

/* Sends a notification without holding the request. Failures are only logged. */
func (s *Service) notify(send func(ctx context.Context) error) {
	if s.ntfy == nil {
		return
	}
	go func() {
		if err := send(context.Background()); err != nil {
			log.Println(err)
		}
	}()
}

/* Keeps catalogue errors, flags timeouts and hides everything else behind ErrResponseFromRepository. */
func repositoryError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timeout on call to %s: %w", op, err)
	}

	var errR ErrResponse
	if errors.As(err, &errR) {
		return err
	}

	return ErrResponse{
		Code:    ErrResponseFromRepository.Code,
		Message: ErrResponseFromRepository.Message + err.Error(),
	}
}
