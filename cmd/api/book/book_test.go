package book_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookstore-inventory/cmd/api/book"
	bookmock "github.com/bookstore-inventory/cmd/api/book/mocks"
	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

func newTestService(t *testing.T, mode book.CreateMode) (*book.Service, *bookmock.MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := bookmock.NewMockRepository(ctrl)
	return book.NewService(mockRepo, nil, mode), mockRepo
}

func TestCreateBook(t *testing.T) {
	t.Run("creates a book with count forced to zero", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		view := book.BookView{
			ISBN:   uuid.New(),
			Author: "J.R.R Tolkien",
			Title:  "The Hobbit",
			Price:  decimal.NewFromInt(10),
		}

		mockRepo.EXPECT().SaveBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			is.Equal(b.ISBN, view.ISBN)
			is.Equal(b.Author, view.Author)
			is.Equal(b.Title, view.Title)
			is.True(b.Price.Equal(view.Price))
			is.Equal(b.Count, int64(0))
			return b, nil
		})

		isbn, err := mS.CreateBook(ctx, view)
		is.NoErr(err)
		is.Equal(isbn, view.ISBN)
	})

	t.Run("reject mode uses the strict insert and reports duplicates", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeReject)

		view := book.BookView{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(1)}

		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(book.Book{}, book.ErrResponseBookAlreadyExists)

		isbn, err := mS.CreateBook(ctx, view)
		is.True(errors.Is(err, book.ErrResponseBookAlreadyExists))
		is.Equal(isbn, uuid.Nil)
	})

	t.Run("notifies the creation without blocking", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mockNtfy := bookmock.NewMockNotifier(ctrl)
		mS := book.NewService(mockRepo, mockNtfy, book.CreateModeUpsert)

		view := book.BookView{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(1)}
		sent := make(chan book.Book, 1)

		mockRepo.EXPECT().SaveBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			return b, nil
		})
		mockNtfy.EXPECT().BookCreated(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) error {
			sent <- b
			return errors.New("ntfy is down")
		})

		_, err := mS.CreateBook(ctx, view)
		is.NoErr(err) // a failing notification never fails the request

		select {
		case b := <-sent:
			is.Equal(b.ISBN, view.ISBN)
		case <-time.After(time.Second):
			t.Fatal("notification was not sent")
		}
	})
}

func TestDeleteBookWithISBN(t *testing.T) {
	t.Run("deletes without checking existence", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		isbn := uuid.New()
		mockRepo.EXPECT().DeleteBook(gomock.Any(), isbn).Return(nil).Times(2)

		is.NoErr(mS.DeleteBookWithISBN(ctx, isbn))
		is.NoErr(mS.DeleteBookWithISBN(ctx, isbn))
	})

	t.Run("nil isbn is an invalid argument", func(t *testing.T) {
		is := is.New(t)
		mS, _ := newTestService(t, book.CreateModeUpsert)

		err := mS.DeleteBookWithISBN(ctx, uuid.Nil)
		is.True(errors.Is(err, book.ErrResponseISBNRequired))
	})
}

func TestGetBookByISBN(t *testing.T) {
	t.Run("maps the stored book to the full view", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		stored := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(3), Count: 7}
		mockRepo.EXPECT().GetBookByISBN(gomock.Any(), stored.ISBN).Return(stored, nil)

		view, err := mS.GetBookByISBN(ctx, stored.ISBN)
		is.NoErr(err)
		is.Equal(view, book.ToBookView(stored))
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		isbn := uuid.New()
		mockRepo.EXPECT().GetBookByISBN(gomock.Any(), isbn).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err := mS.GetBookByISBN(ctx, isbn)
		is.True(errors.Is(err, book.ErrResponseBookNotFound))

		mockRepo.EXPECT().GetBookByISBN(gomock.Any(), isbn).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err = mS.GetBookCountByISBN(ctx, isbn)
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestGetBookCountByISBN(t *testing.T) {
	is := is.New(t)
	mS, mockRepo := newTestService(t, book.CreateModeUpsert)

	stored := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(3), Count: 350}
	mockRepo.EXPECT().GetBookByISBN(gomock.Any(), stored.ISBN).Return(stored, nil)

	view, err := mS.GetBookCountByISBN(ctx, stored.ISBN)
	is.NoErr(err)
	is.Equal(view, book.CountView{ISBN: stored.ISBN, Count: 350})
}

func TestGetBooks(t *testing.T) {
	page := &book.PageRequest{Page: 0, Size: 3, Sort: book.SortCount, Direction: book.DirectionAsc}
	result := []book.Book{{ISBN: uuid.New(), Author: "X", Title: "T1", Price: decimal.NewFromInt(1)}}

	t.Run("author and title uses the combined finder", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooksByAuthorAndTitle(gomock.Any(), "X", "T1", nil).Return(result, nil)

		views, err := mS.GetBooks(ctx, "X", "T1", nil)
		is.NoErr(err)
		is.Equal(len(views), 1)
	})

	t.Run("author only uses the author finder", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooksByAuthor(gomock.Any(), "X", page).Return(result, nil)

		_, err := mS.GetBooks(ctx, "X", "  ", page)
		is.NoErr(err)
	})

	t.Run("title only uses the title finder", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooksByTitle(gomock.Any(), "T1", nil).Return(result, nil)

		_, err := mS.GetBooks(ctx, "", "T1", nil)
		is.NoErr(err)
	})

	t.Run("no filter lists everything and honours the page", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooks(gomock.Any(), page).Return(result, nil)

		_, err := mS.GetBooks(ctx, "", "", page)
		is.NoErr(err)
	})

	t.Run("no results is an empty list, not an error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooksByAuthor(gomock.Any(), "nobody", nil).Return(nil, nil)

		views, err := mS.GetBooks(ctx, "nobody", "", nil)
		is.NoErr(err)
		is.True(views != nil)
		is.Equal(len(views), 0)
	})

	t.Run("expected error from repository", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		dbErr := errors.New("fake error from database")
		mockRepo.EXPECT().ListBooks(gomock.Any(), nil).Return(nil, dbErr)

		views, err := mS.GetBooks(ctx, "", "", nil)
		is.Equal(views, nil)
		is.True(errors.Is(err, book.ErrResponseFromRepository))
		is.Equal(err.Error(), book.ErrResponseFromRepository.Message+dbErr.Error())
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooks(gomock.Any(), nil).Return(nil, context.DeadlineExceeded)

		_, err := mS.GetBooks(ctx, "", "", nil)
		is.True(errors.Is(err, context.DeadlineExceeded))
		is.Equal(err.Error(), "timeout on call to GetBooks: "+context.DeadlineExceeded.Error())
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("updates through the conditional write", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		view := book.BookView{ISBN: uuid.New(), Author: "a", Title: "new title", Price: decimal.NewFromInt(5)}
		mockRepo.EXPECT().UpdateBook(gomock.Any(), book.FromBookView(view)).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			b.Count = 12 // kept by the store
			return b, nil
		})

		isbn, err := mS.UpdateBook(ctx, view)
		is.NoErr(err)
		is.Equal(isbn, view.ISBN)
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).Return(book.Book{}, book.ErrResponseBookNotFound)

		isbn, err := mS.UpdateBook(ctx, book.BookView{ISBN: uuid.New()})
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
		is.Equal(isbn, uuid.Nil)
	})
}

func TestAddBookCount(t *testing.T) {
	t.Run("overwrites the count", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		isbn := uuid.New()
		mockRepo.EXPECT().SetBookCount(gomock.Any(), isbn, int64(450)).Return(book.Book{ISBN: isbn, Count: 450}, nil)

		got, err := mS.AddBookCount(ctx, book.CountView{ISBN: isbn, Count: 450})
		is.NoErr(err)
		is.Equal(got, isbn)
	})

	t.Run("negative count is rejected before reaching the store", func(t *testing.T) {
		is := is.New(t)
		mS, _ := newTestService(t, book.CreateModeUpsert)

		_, err := mS.AddBookCount(ctx, book.CountView{ISBN: uuid.New(), Count: -1})
		is.True(errors.Is(err, book.ErrResponseInvalidCount))
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().SetBookCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err := mS.AddBookCount(ctx, book.CountView{ISBN: uuid.New(), Count: 1})
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestGetBooksCount(t *testing.T) {
	stored := []book.Book{
		{ISBN: uuid.New(), Author: "J.R.R Tolkien", Title: "The Hobbit", Count: 350},
		{ISBN: uuid.New(), Author: "J.R.R Tolkien", Title: "The Silmarillion", Count: 20},
	}

	t.Run("by author projects author and count", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		mockRepo.EXPECT().ListBooksByAuthor(gomock.Any(), "J.R.R Tolkien", nil).Return(stored, nil)

		views, err := mS.GetBooksCountByAuthor(ctx, "J.R.R Tolkien", nil)
		is.NoErr(err)
		is.Equal(views, []book.CountAuthorView{{Author: "J.R.R Tolkien", Count: 350}, {Author: "J.R.R Tolkien", Count: 20}})
	})

	t.Run("by title projects title and count", func(t *testing.T) {
		is := is.New(t)
		mS, mockRepo := newTestService(t, book.CreateModeUpsert)

		page := &book.PageRequest{Page: 0, Size: 1}
		mockRepo.EXPECT().ListBooksByTitle(gomock.Any(), "The Hobbit", page).Return(stored[:1], nil)

		views, err := mS.GetBooksCountByTitle(ctx, "The Hobbit", page)
		is.NoErr(err)
		is.Equal(views, []book.CountTitleView{{Title: "The Hobbit", Count: 350}})
	})
}

func TestParseCreateMode(t *testing.T) {
	is := is.New(t)

	mode, err := book.ParseCreateMode("")
	is.NoErr(err)
	is.Equal(mode, book.CreateModeUpsert)

	mode, err = book.ParseCreateMode("Reject")
	is.NoErr(err)
	is.Equal(mode, book.CreateModeReject)

	_, err = book.ParseCreateMode("merge")
	is.True(err != nil)
}
