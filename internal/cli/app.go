package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/techmarket/internal/cart"
	"github.com/dmitrijs2005/techmarket/internal/catalog"
	"github.com/dmitrijs2005/techmarket/internal/config"
	"github.com/dmitrijs2005/techmarket/internal/filex"
	"github.com/dmitrijs2005/techmarket/internal/logging"
	"github.com/dmitrijs2005/techmarket/internal/notify"
	"github.com/dmitrijs2005/techmarket/internal/session"
	"github.com/dmitrijs2005/techmarket/internal/storage"
	"github.com/dmitrijs2005/techmarket/internal/users"
)

// SessionService is the account surface the terminal needs.
type SessionService interface {
	Login(ctx context.Context, email string, password []byte) (users.Record, error)
	Register(ctx context.Context, r session.Registration) (users.Record, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (users.Record, bool)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    storage.Store
	session  SessionService
	catalog  *catalog.Catalog
	cart     *cart.Cart
	notifier notify.Notifier

	subscribers []Subscriber

	// lastEmail is kept after a failed login so only the password has to
	// be typed again.
	lastEmail string

	// lastForm holds the fields of a rejected registration, without the
	// password, to prefill the next attempt.
	lastForm session.Registration

	reader *bufio.Reader
	out    io.Writer
}

// Subscriber is a newsletter sign-up kept for the running session.
type Subscriber struct {
	Name  string
	Email string
}

// NewApp wires the storefront from cfg: opens the store (falling back to
// memory), seeds the demo account, loads the catalog and restores the last
// search and filters.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	notifier := notify.NewConsole(os.Stdout, logger)

	store := openStore(ctx, c.DBPath, logger, notifier)

	products, err := loadProducts(c.CatalogFile)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	dir := users.NewDirectory(store, logger, c.KDF.Params())
	if c.SeedDemoUser {
		if err := dir.Bootstrap(ctx); err != nil {
			logger.Warn(ctx, "demo user not seeded", "error", err)
		}
	}

	a := &App{
		config:   c,
		logger:   logger.With("component", "cli"),
		store:    store,
		session:  session.NewManager(store, dir, logger),
		catalog:  catalog.New(products, store, logger),
		cart:     cart.New(),
		notifier: notifier,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.catalog.Restore(ctx)
	return a, nil
}

// openStore opens the SQLite store or degrades to an in-memory one.
func openStore(ctx context.Context, dsn string, logger logging.Logger, n notify.Notifier) storage.Store {
	err := filex.EnsureParentDir(dsn)
	var s *storage.SQLiteStore
	if err == nil {
		s, err = storage.Open(ctx, dsn)
	}
	if err != nil {
		logger.Warn(ctx, "database unavailable, using in-memory store", "dsn", dsn, "error", err)
		n.Notify(notify.Warning, "Storage unavailable: sessions will not be saved.")
		return storage.NewMemoryStore()
	}
	return s
}

func loadProducts(path string) ([]catalog.Product, error) {
	if path == "" {
		return catalog.Default()
	}
	products, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return products, nil
}

// Run starts the REPL and closes the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "close store", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.session.CurrentUser(ctx)
	return ok
}
