package services

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// FileService reads and removes stored files.
type FileService interface {
	List(ctx context.Context, session models.Session) ([]*models.File, error)
	Get(ctx context.Context, id string) (*models.File, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, session models.Session) error
	ShareLink(id string) string
}

type fileService struct {
	store      FileStore
	viewerAddr string
}

// NewFileService constructs a FileService. viewerAddr is the host:port share
// links point at.
func NewFileService(store FileStore, viewerAddr string) FileService {
	return &fileService{store: store, viewerAddr: viewerAddr}
}

// List returns the session owner's files, newest first.
func (s *fileService) List(ctx context.Context, session models.Session) ([]*models.File, error) {
	if !session.Valid() {
		return nil, common.ErrNotLoggedIn
	}

	files, err := s.store.GetFilesByOwner(ctx, session.Email)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		if !files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].CreatedAt.After(files[j].CreatedAt)
		}
		return files[i].ID < files[j].ID
	})
	return files, nil
}

// Get returns the file with id or common.ErrNotFound. Any holder of the id
// may read the file; ids are what share links carry.
func (s *fileService) Get(ctx context.Context, id string) (*models.File, error) {
	f, err := s.store.GetFileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("file %s: %w", id, common.ErrNotFound)
	}
	return f, nil
}

func (s *fileService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteFile(ctx, id)
}

// Clear deletes all files of the session owner. A partial failure returns the
// store's *store.PartialDeleteError.
func (s *fileService) Clear(ctx context.Context, session models.Session) error {
	if !session.Valid() {
		return common.ErrNotLoggedIn
	}
	return s.store.ClearFilesByOwner(ctx, session.Email)
}

// ShareLink returns the viewer URL for id. It only resolves against the
// vault that stored the file.
func (s *fileService) ShareLink(id string) string {
	return "http://" + s.viewerAddr + "/view/" + url.PathEscape(id)
}
