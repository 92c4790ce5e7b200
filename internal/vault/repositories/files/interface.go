package files

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// Repository describes the files collection operations. CreatedAt is kept
// as Unix nanoseconds and read back in UTC; a zero-length payload reads back
// as nil.
type Repository interface {
	// Upsert inserts the record or replaces the one with the same id.
	Upsert(ctx context.Context, f *models.File) error

	// GetByID returns (nil, nil) when the id is absent.
	GetByID(ctx context.Context, id string) (*models.File, error)

	// GetByOwner returns every record of owner, in no particular order.
	GetByOwner(ctx context.Context, owner string) ([]*models.File, error)

	// IDsByOwner returns the ids of owner's records without loading payloads.
	IDsByOwner(ctx context.Context, owner string) ([]string, error)

	// DeleteByID removes the record; an absent id is not an error.
	DeleteByID(ctx context.Context, id string) error
}
