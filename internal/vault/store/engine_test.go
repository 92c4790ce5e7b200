package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := New(filepath.Join(t.TempDir(), "vault.db"), nil, opts...)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func tableExists(t *testing.T, db *sql.DB, kind, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type=? AND name=?`, kind, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitialize_CreatesSchemaAndIndex(t *testing.T) {
	e := newEngine(t)

	h, err := e.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.Version())
	assert.Equal(t, e.path, h.Path())

	for _, name := range []string{"users", "files", "metadata", "goose_db_version"} {
		assert.True(t, tableExists(t, h.db, "table", name), "table %s", name)
	}
	assert.True(t, tableExists(t, h.db, "index", "by_owner"))
}

func TestInitialize_IsIdempotent(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	h1, err := e.Initialize(ctx)
	require.NoError(t, err)
	h2, err := e.Initialize(ctx)
	require.NoError(t, err)
	assert.Same(t, h1, h2)
}

func TestInitialize_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")
	ctx := context.Background()

	e := New(path, nil)
	require.NoError(t, e.PutFile(ctx, fileRecord("f1", "a@x.com", []byte("abc"))))
	require.NoError(t, e.Close())

	e2 := New(path, nil)
	t.Cleanup(func() { _ = e2.Close() })
	got, err := e2.GetFileByID(ctx, "f1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("abc"), got.Payload)
}

func TestInitialize_ConcurrentCallersShareOneOpen(t *testing.T) {
	var opens atomic.Int32
	e := newEngine(t, WithOpener(func(path string) (*sql.DB, error) {
		opens.Add(1)
		return openSQLite(path)
	}))

	const n = 16
	handles := make([]*Handle, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := e.Initialize(context.Background())
			assert.NoError(t, err)
			handles[i] = h
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), opens.Load())
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestInitialize_UnavailableThenRetry(t *testing.T) {
	fail := true
	e := newEngine(t, WithOpener(func(path string) (*sql.DB, error) {
		if fail {
			return nil, errors.New("access denied")
		}
		return openSQLite(path)
	}))
	ctx := context.Background()

	_, err := e.Initialize(ctx)
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	require.ErrorContains(t, err, "access denied")

	_, err = e.GetUser(ctx, "a@x.com")
	require.ErrorIs(t, err, common.ErrStoreUnavailable)

	fail = false
	h, err := e.Initialize(ctx)
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestInitialize_BadPathIsUnavailable(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "missing", "dir", "vault.db"), nil)

	_, err := e.Initialize(context.Background())
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestClose_ThenReinitialize(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	h1, err := e.Initialize(ctx)
	require.NoError(t, err)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	h2, err := e.Initialize(ctx)
	require.NoError(t, err)
	assert.NotSame(t, h1, h2)
}

func TestOperations_SurfaceHostErrors(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	h, err := e.Initialize(ctx)
	require.NoError(t, err)
	require.NoError(t, h.db.Close())

	err = e.AddUser(ctx, userRecord("a@x.com", "p"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrStoreUnavailable))
	assert.ErrorContains(t, err, "database is closed")

	_, err = e.GetFilesByOwner(ctx, "a@x.com")
	assert.ErrorContains(t, err, "database is closed")
}
