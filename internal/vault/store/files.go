package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// PutFile inserts the record or replaces the one with the same id. The row
// and its by_owner index entry change in one transaction.
//
// f is brought to its stored form first: CreatedAt in UTC and an empty
// Payload as nil, so a later GetFileByID returns a record equal to f.
func (e *Engine) PutFile(ctx context.Context, f *models.File) error {
	if f.Size != int64(len(f.Payload)) {
		return fmt.Errorf("file %s: size %d, payload %d bytes: %w", f.ID, f.Size, len(f.Payload), common.ErrSizeMismatch)
	}
	f.CreatedAt = f.CreatedAt.UTC()
	if len(f.Payload) == 0 {
		f.Payload = nil
	}

	h, err := e.Initialize(ctx)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return filesRepo(tx).Upsert(ctx, f)
	})
}

// GetFilesByOwner returns all records of owner in no particular order, or an
// empty slice.
func (e *Engine) GetFilesByOwner(ctx context.Context, owner string) ([]*models.File, error) {
	h, err := e.Initialize(ctx)
	if err != nil {
		return nil, err
	}
	return dbx.QueryTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) ([]*models.File, error) {
		return filesRepo(tx).GetByOwner(ctx, owner)
	})
}

// GetFileByID returns the record or (nil, nil) when absent.
func (e *Engine) GetFileByID(ctx context.Context, id string) (*models.File, error) {
	h, err := e.Initialize(ctx)
	if err != nil {
		return nil, err
	}
	return dbx.QueryTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) (*models.File, error) {
		return filesRepo(tx).GetByID(ctx, id)
	})
}

// DeleteFile removes the record and its index entry. Deleting an absent id
// is a no-op.
func (e *Engine) DeleteFile(ctx context.Context, id string) error {
	h, err := e.Initialize(ctx)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return filesRepo(tx).DeleteByID(ctx, id)
	})
}

// PartialDeleteError reports a ClearFilesByOwner run that stopped after
// deleting some, but not all, of the owner's files.
type PartialDeleteError struct {
	Owner     string
	Deleted   []string
	Remaining []string
	Err       error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("clear files of %s: deleted %d, %d remaining (%s): %v",
		e.Owner, len(e.Deleted), len(e.Remaining), strings.Join(e.Remaining, ","), e.Err)
}

func (e *PartialDeleteError) Unwrap() error { return e.Err }

// ClearFilesByOwner reads the owner's current ids and deletes them one by one,
// each in its own transaction. The run as a whole is NOT atomic: if a delete
// fails, the files deleted before it stay deleted and a *PartialDeleteError
// lists what is left. Callers needing all-or-nothing must reconcile
// themselves, e.g. by calling it again.
func (e *Engine) ClearFilesByOwner(ctx context.Context, owner string) error {
	h, err := e.Initialize(ctx)
	if err != nil {
		return err
	}

	ids, err := dbx.QueryTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) ([]string, error) {
		return filesRepo(tx).IDsByOwner(ctx, owner)
	})
	if err != nil {
		return err
	}

	for i, id := range ids {
		if err := e.DeleteFile(ctx, id); err != nil {
			perr := &PartialDeleteError{Owner: owner, Deleted: slices.Clone(ids[:i]), Remaining: slices.Clone(ids[i:]), Err: err}
			e.logger.Warn(ctx, "clear files stopped partway", "owner", owner, "deleted", i, "remaining", len(ids)-i, "error", err)
			return perr
		}
	}

	e.logger.Info(ctx, "files cleared", "owner", owner, "count", len(ids))
	return nil
}
