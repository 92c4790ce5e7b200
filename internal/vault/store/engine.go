package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/vault/migrations"
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/singleflight"

	_ "modernc.org/sqlite"
)

// Handle is the opened, migrated store shared by all engine operations.
type Handle struct {
	db      *sql.DB
	path    string
	version int64
}

// Path is the database location the handle was opened from.
func (h *Handle) Path() string { return h.path }

// Version is the schema version applied by the migrations.
func (h *Handle) Version() int64 { return h.version }

// Opener opens the underlying database. Tests replace it to count or fail opens.
type Opener func(path string) (*sql.DB, error)

func openSQLite(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

type Option func(*Engine)

// WithOpener overrides how the database is opened.
func WithOpener(o Opener) Option {
	return func(e *Engine) { e.open = o }
}

// Engine is the transactional collection layer over users, files and metadata.
// It is safe for concurrent use.
type Engine struct {
	path   string
	logger logging.Logger
	open   Opener

	group  singleflight.Group
	mu     sync.RWMutex
	handle *Handle
}

// New returns an engine for the database at path. Nothing is opened until the
// first operation or an explicit Initialize.
func New(path string, logger logging.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	e := &Engine{path: path, logger: logger.With("component", "store"), open: openSQLite}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) current() *Handle {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.handle
}

// Initialize opens the store, creating and migrating it if needed. It is
// idempotent: concurrent callers wait for the same attempt and get the same
// handle. Failures wrap common.ErrStoreUnavailable.
func (e *Engine) Initialize(ctx context.Context) (*Handle, error) {
	if h := e.current(); h != nil {
		return h, nil
	}

	v, err, _ := e.group.Do("initialize", func() (any, error) {
		if h := e.current(); h != nil {
			return h, nil
		}

		// one caller's cancellation must not fail the others waiting on this attempt
		h, err := e.openHandle(context.WithoutCancel(ctx))
		if err != nil {
			e.logger.Error(ctx, "store open failed", "path", e.path, "error", err)
			return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
		}

		e.mu.Lock()
		e.handle = h
		e.mu.Unlock()

		e.logger.Info(ctx, "store opened", "path", h.path, "version", h.version)
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Handle), nil
}

func (e *Engine) openHandle(ctx context.Context) (*Handle, error) {
	db, err := e.open(e.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", e.path, err)
	}

	// SQLite serializes writers anyway; one connection also keeps :memory: databases intact.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", e.path, err)
	}

	version, err := migrate(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Handle{db: db, path: e.path, version: version}, nil
}

func migrate(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return 0, fmt.Errorf("migrate: %w", err)
	}
	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	return version, nil
}

// Close releases the database. A later operation opens it again.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handle == nil {
		return nil
	}
	err := e.handle.db.Close()
	e.handle = nil
	return err
}
