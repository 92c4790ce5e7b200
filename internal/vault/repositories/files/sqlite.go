package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectColumns = `SELECT id, owner, name, mime_type, size, created_at, payload FROM files`

func (r *SQLiteRepository) Upsert(ctx context.Context, f *models.File) error {
	query := `INSERT INTO files (id, owner, name, mime_type, size, created_at, payload)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				owner = excluded.owner,
				name = excluded.name,
				mime_type = excluded.mime_type,
				size = excluded.size,
				created_at = excluded.created_at,
				payload = excluded.payload`

	payload := f.Payload
	if payload == nil {
		payload = []byte{}
	}

	_, err := r.db.ExecContext(ctx, query, f.ID, f.Owner, f.Name, f.MimeType, f.Size, f.CreatedAt.UnixNano(), payload)
	if err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	f, err := scanFile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", id, err)
	}
	return f, nil
}

func (r *SQLiteRepository) GetByOwner(ctx context.Context, owner string) ([]*models.File, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` INDEXED BY by_owner WHERE owner = ?`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	result := make([]*models.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate file rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) IDsByOwner(ctx context.Context, owner string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM files INDEXED BY by_owner WHERE owner = ?`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to select file ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan file id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate file ids: %w", err)
	}

	return ids, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.File, error) {
	f := &models.File{}
	var createdAt int64
	if err := s.Scan(&f.ID, &f.Owner, &f.Name, &f.MimeType, &f.Size, &createdAt, &f.Payload); err != nil {
		return nil, err
	}
	f.CreatedAt = time.Unix(0, createdAt).UTC()
	if len(f.Payload) == 0 {
		f.Payload = nil
	}
	return f, nil
}
