package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const uniqueViolation = "23505"

const bookColumns = `isbn, author, title, price, count`

// Sort keys are whitelisted into column names before reaching the query text.
var sortColumns = map[string]string{
	book.SortISBN:   "isbn",
	book.SortAuthor: "author",
	book.SortTitle:  "title",
	book.SortPrice:  "price",
	book.SortCount:  "count",
}

var _ book.Repository = (*Store)(nil)

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type bookRow struct {
	ISBN   uuid.UUID       `db:"isbn"`
	Author string          `db:"author"`
	Title  string          `db:"title"`
	Price  decimal.Decimal `db:"price"`
	Count  int64           `db:"count"`
}

func (r bookRow) toBook() book.Book {
	return book.Book{
		ISBN:   r.ISBN,
		Author: r.Author,
		Title:  r.Title,
		Price:  r.Price,
		Count:  r.Count,
	}
}

/* Connects to the database trought a connection string and returns a valid DB object. */
func ConnectDb(connStr string) (*sqlx.DB, error) {
	sqlDB, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, openning: %w", err)
	}

	err = sqlDB.Ping()
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connecting to db, pingging: %w", err)
	}

	log.Println("Successfully connected!")
	return sqlDB, nil
}

// MigrationUp applies the migrations found under path. migrate.ErrNoChange is
// returned as is so callers can ignore it.
func MigrationUp(store *Store, path string) error {
	driver, err := postgres.WithInstance(store.db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Up()
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

func (store *Store) Ping(ctx context.Context) error {
	return store.db.PingContext(ctx)
}

/* Searches a book in database based on isbn and returns it if succeed. */
func (store *Store) GetBookByISBN(ctx context.Context, isbn uuid.UUID) (book.Book, error) {
	sqlStatement := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`

	var row bookRow
	err := store.db.GetContext(ctx, &row, sqlStatement, isbn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return book.Book{}, fmt.Errorf("searching by isbn: %w", book.ErrResponseBookNotFound)
		}
		return book.Book{}, fmt.Errorf("searching by isbn: %w", err)
	}

	return row.toBook(), nil
}

func (store *Store) ListBooks(ctx context.Context, page *book.PageRequest) ([]book.Book, error) {
	return store.list(ctx, "", page)
}

func (store *Store) ListBooksByAuthor(ctx context.Context, author string, page *book.PageRequest) ([]book.Book, error) {
	return store.list(ctx, "WHERE author = $1", page, author)
}

func (store *Store) ListBooksByTitle(ctx context.Context, title string, page *book.PageRequest) ([]book.Book, error) {
	return store.list(ctx, "WHERE title = $1", page, title)
}

func (store *Store) ListBooksByAuthorAndTitle(ctx context.Context, author, title string, page *book.PageRequest) ([]book.Book, error) {
	return store.list(ctx, "WHERE author = $1 AND title = $2", page, author, title)
}

/* Returns the books matching where, one page of them when page is set. */
func (store *Store) list(ctx context.Context, where string, page *book.PageRequest, args ...any) ([]book.Book, error) {
	sqlStatement := `SELECT ` + bookColumns + ` FROM books ` + where

	if page != nil {
		orderBy, err := orderClause(page)
		if err != nil {
			return nil, fmt.Errorf("listing books from db: %w", err)
		}
		sqlStatement = fmt.Sprintf("%s %s LIMIT $%d OFFSET $%d", sqlStatement, orderBy, len(args)+1, len(args)+2)
		args = append(args, page.Size, page.Offset())
	}

	rows := []bookRow{}
	err := store.db.SelectContext(ctx, &rows, sqlStatement, args...)
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	books := make([]book.Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.toBook())
	}
	return books, nil
}

func orderClause(page *book.PageRequest) (string, error) {
	if page.Sort == "" || page.Sort == book.SortISBN {
		if page.Descending() {
			return "ORDER BY isbn DESC", nil
		}
		return "ORDER BY isbn ASC", nil
	}

	column, ok := sortColumns[page.Sort]
	if !ok {
		return "", book.ErrResponseQuerySortInvalid
	}

	direction := "ASC"
	if page.Descending() {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, isbn ASC", column, direction), nil
}

/* Inserts the book, replacing every column of an existing row with the same isbn. */
func (store *Store) SaveBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	sqlStatement := `
	INSERT INTO books (isbn, author, title, price, count)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (isbn) DO UPDATE
	SET author = EXCLUDED.author, title = EXCLUDED.title, price = EXCLUDED.price, count = EXCLUDED.count
	RETURNING ` + bookColumns

	var row bookRow
	err := store.db.GetContext(ctx, &row, sqlStatement, bookEntry.ISBN, bookEntry.Author, bookEntry.Title, bookEntry.Price, bookEntry.Count)
	if err != nil {
		return book.Book{}, fmt.Errorf("saving book on db: %w", err)
	}

	return row.toBook(), nil
}

/* Stores a new book, failing when the isbn is already taken. */
func (store *Store) CreateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	sqlStatement := `
	INSERT INTO books (isbn, author, title, price, count)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + bookColumns

	var row bookRow
	err := store.db.GetContext(ctx, &row, sqlStatement, bookEntry.ISBN, bookEntry.Author, bookEntry.Title, bookEntry.Price, bookEntry.Count)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return book.Book{}, fmt.Errorf("storing book on db: %w", book.ErrResponseBookAlreadyExists)
		}
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	return row.toBook(), nil
}

/* Replaces author, title and price of an existing book, count is untouched. */
func (store *Store) UpdateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	sqlStatement := `
	UPDATE books
	SET author = $2, title = $3, price = $4
	WHERE isbn = $1
	RETURNING ` + bookColumns

	var row bookRow
	err := store.db.GetContext(ctx, &row, sqlStatement, bookEntry.ISBN, bookEntry.Author, bookEntry.Title, bookEntry.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return book.Book{}, fmt.Errorf("updating on db: %w", book.ErrResponseBookNotFound)
		}
		return book.Book{}, fmt.Errorf("updating on db: %w", err)
	}

	return row.toBook(), nil
}

func (store *Store) SetBookCount(ctx context.Context, isbn uuid.UUID, count int64) (book.Book, error) {
	sqlStatement := `
	UPDATE books
	SET count = $2
	WHERE isbn = $1
	RETURNING ` + bookColumns

	var row bookRow
	err := store.db.GetContext(ctx, &row, sqlStatement, isbn, count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return book.Book{}, fmt.Errorf("updating count on db: %w", book.ErrResponseBookNotFound)
		}
		return book.Book{}, fmt.Errorf("updating count on db: %w", err)
	}

	return row.toBook(), nil
}

func (store *Store) DeleteBook(ctx context.Context, isbn uuid.UUID) error {
	sqlStatement := `DELETE FROM books WHERE isbn = $1`
	_, err := store.db.ExecContext(ctx, sqlStatement, isbn)
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}
	return nil
}
