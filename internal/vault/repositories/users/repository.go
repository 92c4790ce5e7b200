// Package users persists User records in the users collection.
package users

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// Repository is the users collection contract. Email is the primary key.
type Repository interface {
	// Insert adds a new user; an existing email yields common.ErrDuplicateKey.
	Insert(ctx context.Context, u *models.User) error
	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
