package store

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
)

// SetSession remembers email as the logged-in identity.
func (e *Engine) SetSession(ctx context.Context, email string) error {
	h, err := e.Initialize(ctx)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadataRepo(tx).Set(ctx, common.SessionKey, []byte(email))
	})
}

// Session returns the remembered identity, or "" when nobody is logged in.
func (e *Engine) Session(ctx context.Context) (string, error) {
	h, err := e.Initialize(ctx)
	if err != nil {
		return "", err
	}
	v, err := dbx.QueryTx(ctx, h.db, func(ctx context.Context, tx dbx.DBTX) ([]byte, error) {
		return metadataRepo(tx).Get(ctx, common.SessionKey)
	})
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// ClearSession forgets the logged-in identity.
func (e *Engine) ClearSession(ctx context.Context) error {
	h, err := e.Initialize(ctx)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, h.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadataRepo(tx).Delete(ctx, common.SessionKey)
	})
}
