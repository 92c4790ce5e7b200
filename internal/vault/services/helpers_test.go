package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/vault/compress"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
	"github.com/dmitrijs2005/memoryvault/internal/vault/store"
)

// ---- helpers ----

func newStore(t *testing.T) *store.Engine {
	t.Helper()
	e := store.New(filepath.Join(t.TempDir(), "vault.db"), nil)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func sequentialIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i]
		i++
		return id
	}
}

// ---- fakes ----

type fakeCompressor struct {
	out   *compress.Payload
	err   error
	calls int
	last  compress.Payload
}

func (f *fakeCompressor) Compress(in compress.Payload, budget int64) (*compress.Payload, error) {
	f.calls++
	f.last = in
	return f.out, f.err
}

// failingFileStore fails every write with err and otherwise reports nothing.
type failingFileStore struct {
	err error
}

func (f *failingFileStore) PutFile(context.Context, *models.File) error { return f.err }
func (f *failingFileStore) GetFilesByOwner(context.Context, string) ([]*models.File, error) {
	return nil, f.err
}
func (f *failingFileStore) GetFileByID(context.Context, string) (*models.File, error) {
	return nil, f.err
}
func (f *failingFileStore) DeleteFile(context.Context, string) error        { return f.err }
func (f *failingFileStore) ClearFilesByOwner(context.Context, string) error { return f.err }

var errDisk = errors.New("disk full")
