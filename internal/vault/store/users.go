package store

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// AddUser inserts a new user. An existing email fails with
// common.ErrDuplicateKey; users are never upserted. u.CreatedAt is
// converted to UTC, the zone it reads back in.
func (e *Engine) AddUser(ctx context.Context, u *models.User) error {
	u.CreatedAt = u.CreatedAt.UTC()
	h, err := e.Initialize(ctx)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return usersRepo(tx).Insert(ctx, u)
	})
}

// GetUser looks a user up by email. A miss returns (nil, nil).
func (e *Engine) GetUser(ctx context.Context, email string) (*models.User, error) {
	h, err := e.Initialize(ctx)
	if err != nil {
		return nil, err
	}
	return dbx.QueryTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) (*models.User, error) {
		return usersRepo(tx).GetByEmail(ctx, email)
	})
}
