package database_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/bookstore-inventory/cmd/api/database"
	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

var store *database.Store
var sqlDB *sqlx.DB
var ctx context.Context = context.Background()

// TestMain is called before all the tests run.
// These tests need a real postgres, reachable through DATABASE_URL.
func TestMain(m *testing.M) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Println("DATABASE_URL not set, skipping postgres store tests")
		os.Exit(0)
	}

	var err error
	sqlDB, err = database.ConnectDb(connStr)
	if err != nil {
		log.Fatalln(err)
	}

	store = database.NewStore(sqlDB)
	path := os.Getenv("DATABASE_MIGRATIONS_PATH")
	if path == "" {
		path = "../../../migrations"
	}
	err = database.MigrationUp(store, path)
	if err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalln(err)
		}
		log.Println(err)
	}

	code := m.Run()
	sqlDB.Close()
	os.Exit(code)
}

func TestSaveBook(t *testing.T) {
	// Removing all data from the test database.
	// We don't want to the database to be tainted with
	// this test data in another tests.
	t.Cleanup(func() {
		teardownDB(t)
	})

	t.Run("saves a book and replaces it on a second save", func(t *testing.T) {
		is := is.New(t)

		b := book.Book{
			ISBN:   uuid.New(),
			Author: "J.R.R Tolkien",
			Title:  "The Hobbit",
			Price:  decimal.RequireFromString("10.50"),
			Count:  3,
		}

		saved, err := store.SaveBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, saved, b)

		b.Title = "The Hobbit, annotated"
		b.Count = 0
		saved, err = store.SaveBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, saved, b)
	})
}

func TestCreateBook(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	t.Run("creates a book without errors", func(t *testing.T) {
		is := is.New(t)

		b := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(40)}

		newBook, err := store.CreateBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, newBook, b)

		_, err = store.CreateBook(ctx, b)
		is.True(errors.Is(err, book.ErrResponseBookAlreadyExists))
	})
}

func TestGetBook(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	t.Run("Gets a book by isbn without errors", func(t *testing.T) {
		is := is.New(t)

		b := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(40), Count: 10}
		_, err := store.SaveBook(ctx, b)
		is.NoErr(err)

		got, err := store.GetBookByISBN(ctx, b.ISBN)
		is.NoErr(err)
		compareBooks(is, got, b)
	})

	t.Run("Gets a non existing book should return a not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.GetBookByISBN(ctx, uuid.New())
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestUpdateBook(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	t.Run("updates a book and keeps the count", func(t *testing.T) {
		is := is.New(t)

		b := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(40), Count: 7}
		_, err := store.SaveBook(ctx, b)
		is.NoErr(err)

		b.Title = "The book is now updated"
		b.Price = decimal.NewFromInt(50)
		updated, err := store.UpdateBook(ctx, book.Book{ISBN: b.ISBN, Author: b.Author, Title: b.Title, Price: b.Price})
		is.NoErr(err)
		compareBooks(is, updated, b)
	})

	t.Run("sets the count of a book", func(t *testing.T) {
		is := is.New(t)

		b := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(1)}
		_, err := store.SaveBook(ctx, b)
		is.NoErr(err)

		_, err = store.SetBookCount(ctx, b.ISBN, 100)
		is.NoErr(err)
		updated, err := store.SetBookCount(ctx, b.ISBN, 450)
		is.NoErr(err)
		is.Equal(updated.Count, int64(450))
	})

	t.Run("Updates an non existing book should return a not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.UpdateBook(ctx, book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(1)})
		is.True(errors.Is(err, book.ErrResponseBookNotFound))

		_, err = store.SetBookCount(ctx, uuid.New(), 1)
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestDeleteBook(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	is := is.New(t)

	b := book.Book{ISBN: uuid.New(), Author: "a", Title: "t", Price: decimal.NewFromInt(1)}
	_, err := store.SaveBook(ctx, b)
	is.NoErr(err)

	is.NoErr(store.DeleteBook(ctx, b.ISBN))
	is.NoErr(store.DeleteBook(ctx, b.ISBN))

	_, err = store.GetBookByISBN(ctx, b.ISBN)
	is.True(errors.Is(err, book.ErrResponseBookNotFound))
}

func TestListBooks(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	is := is.New(t)

	counts := []int64{350, 300, 240, 110}
	for i, count := range counts {
		b := book.Book{ISBN: uuid.New(), Author: "J.R.R Tolkien", Title: "book", Price: decimal.NewFromInt(int64(10 - i)), Count: count}
		_, err := store.SaveBook(ctx, b)
		is.NoErr(err)
	}
	other := book.Book{ISBN: uuid.New(), Author: "someone else", Title: "book", Price: decimal.NewFromInt(1)}
	_, err := store.SaveBook(ctx, other)
	is.NoErr(err)

	t.Run("first page by author sorted by count", func(t *testing.T) {
		is := is.New(t)

		page := &book.PageRequest{Page: 0, Size: 3, Sort: book.SortCount, Direction: book.DirectionAsc}
		books, err := store.ListBooksByAuthor(ctx, "J.R.R Tolkien", page)
		is.NoErr(err)
		is.Equal(len(books), 3)
		is.Equal(books[0].Count, int64(110))
		is.Equal(books[1].Count, int64(240))
		is.Equal(books[2].Count, int64(300))
	})

	t.Run("second page descending", func(t *testing.T) {
		is := is.New(t)

		page := &book.PageRequest{Page: 1, Size: 3, Sort: book.SortCount, Direction: book.DirectionDesc}
		books, err := store.ListBooksByAuthor(ctx, "J.R.R Tolkien", page)
		is.NoErr(err)
		is.Equal(len(books), 1)
		is.Equal(books[0].Count, int64(110))
	})

	t.Run("unpaged finders", func(t *testing.T) {
		is := is.New(t)

		all, err := store.ListBooks(ctx, nil)
		is.NoErr(err)
		is.Equal(len(all), 5)

		byTitle, err := store.ListBooksByTitle(ctx, "book", nil)
		is.NoErr(err)
		is.Equal(len(byTitle), 5)

		both, err := store.ListBooksByAuthorAndTitle(ctx, "someone else", "book", nil)
		is.NoErr(err)
		is.Equal(len(both), 1)

		none, err := store.ListBooksByAuthor(ctx, "nobody", nil)
		is.NoErr(err)
		is.True(none != nil)
		is.Equal(len(none), 0)
	})
}

func compareBooks(is *is.I, a, b book.Book) {
	is.Helper()

	// NUMERIC comes back with its own scale.
	is.True(a.Price.Equal(b.Price))
	b.Price = a.Price

	// Assert that they are equal.
	is.Equal(a, b)
}

func teardownDB(t *testing.T) {
	is := is.New(t)

	// Truncating books table, cleaning up all the records.
	_, err := sqlDB.Exec(`TRUNCATE TABLE books CASCADE`)
	is.NoErr(err)
}
