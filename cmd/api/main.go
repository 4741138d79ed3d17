package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/bookstore-inventory/cmd/api/database"
	bookhttp "github.com/bookstore-inventory/cmd/api/http"
	"github.com/bookstore-inventory/cmd/api/inmemory"
	"github.com/bookstore-inventory/cmd/api/notifications"

	"github.com/golang-migrate/migrate/v4"
)

const shutdownTimeout = 10 * time.Second

type store interface {
	book.Repository
	bookhttp.Pinger
}

func main() {
	err := run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	loadEnvFiles()
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ntfy := notifications.NewNtfy(cfg.notificationsEnabled, cfg.notificationsTimeout, cfg.notificationsURL, &http.Client{})
	bookService := book.NewService(repo, ntfy, cfg.createMode)
	bookHandler := bookhttp.NewBookHandler(bookService, cfg.requestTimeout)

	//create and init http server:
	server := bookhttp.NewServer(bookhttp.ServerConfig{Port: cfg.httpPort, Pinger: repo}, bookHandler)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s, store=%s, create mode=%s", server.Addr, cfg.storeDriver, cfg.createMode)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("unexpected http server error: %w", err)
		}
		close(serverErr)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sc:
	case err := <-serverErr:
		return err
	}

	ctx, shutdownRelease := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	log.Println("Graceful shutdown complete.")
	return nil
}

/* Opens the configured book store. The returned func releases it. */
func openStore(cfg config) (store, func(), error) {
	if cfg.storeDriver == storeDriverMemory {
		memStore, err := inmemory.NewInMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("creating in-memory store: %w", err)
		}
		return memStore, func() {}, nil
	}

	//connect to db:
	dbObject, err := database.ConnectDb(cfg.databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting with db: %w", err)
	}

	//apply migrations:
	pgStore := database.NewStore(dbObject)
	err = database.MigrationUp(pgStore, cfg.migrationsPath)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		dbObject.Close()
		return nil, nil, fmt.Errorf("migrating: %w", err)
	}

	return pgStore, func() { dbObject.Close() }, nil
}
