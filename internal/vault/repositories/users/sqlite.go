package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (email, password, created_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, u.Email, u.Password, u.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", u.Email, common.ErrDuplicateKey)
	}

	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT email, password, created_at FROM users WHERE email = ?`

	u := &models.User{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.Email, &u.Password, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u.CreatedAt = time.Unix(0, createdAt).UTC()
	return u, nil
}
