// Package services contains the application services of the vault: account
// registration and login, upload admission, and file management. They sit
// between the CLI or viewer and the storage engine.
package services

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/vault/compress"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// UserStore is the part of the storage engine used for accounts and the
// remembered session. *store.Engine satisfies it.
type UserStore interface {
	AddUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, email string) (*models.User, error)
	SetSession(ctx context.Context, email string) error
	Session(ctx context.Context) (string, error)
	ClearSession(ctx context.Context) error
}

// FileStore is the part of the storage engine used for file records.
// *store.Engine satisfies it.
type FileStore interface {
	PutFile(ctx context.Context, f *models.File) error
	GetFilesByOwner(ctx context.Context, owner string) ([]*models.File, error)
	GetFileByID(ctx context.Context, id string) (*models.File, error)
	DeleteFile(ctx context.Context, id string) error
	ClearFilesByOwner(ctx context.Context, owner string) error
}

// Compressor shrinks an image payload to fit budget. *compress.Pipeline
// satisfies it.
type Compressor interface {
	Compress(in compress.Payload, budget int64) (*compress.Payload, error)
}
