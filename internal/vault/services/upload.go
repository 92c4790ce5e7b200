package services

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/vault/compress"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
	"github.com/google/uuid"
)

// allowedTypes lists the media types accepted for upload.
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
	"video/mp4":  {},
	"video/webm": {},
}

// UploadService admits files into the vault.
//
// Contract:
//   - Upload: validate type and size, compress oversized images, store the record.
//   - UploadFromPath: read a local file, detect its type, then Upload it.
//
// The session identity becomes the record owner; an empty session fails with
// common.ErrNotLoggedIn.
type UploadService interface {
	Upload(ctx context.Context, session models.Session, req models.UploadRequest) (*models.File, error)
	UploadFromPath(ctx context.Context, session models.Session, path string) (*models.File, error)
}

type uploadService struct {
	store      FileStore
	compressor Compressor
	budget     int64
	logger     logging.Logger

	now   func() time.Time
	newID func() string
}

// NewUploadService constructs an UploadService. budget is the largest
// payload, in bytes, that may be stored.
func NewUploadService(store FileStore, compressor Compressor, budget int64, logger logging.Logger) UploadService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &uploadService{
		store:      store,
		compressor: compressor,
		budget:     budget,
		logger:     logger.With("component", "upload"),
		now:        nowUTC,
		newID:      uuid.NewString,
	}
}

// mediaType strips MIME parameters and normalizes case.
func mediaType(s string) string {
	if mt, _, err := mime.ParseMediaType(s); err == nil {
		return mt
	}
	s, _, _ = strings.Cut(s, ";")
	return strings.ToLower(strings.TrimSpace(s))
}

// Upload runs admission and stores the file. Oversized images go through
// the compressor; other oversized types fail with
// common.ErrSizeLimitExceeded. Store errors are returned as is.
func (s *uploadService) Upload(ctx context.Context, session models.Session, req models.UploadRequest) (*models.File, error) {
	if !session.Valid() {
		return nil, common.ErrNotLoggedIn
	}

	mt := mediaType(req.MimeType)
	if _, ok := allowedTypes[mt]; !ok {
		return nil, fmt.Errorf("%q: %w", req.MimeType, common.ErrUnsupportedType)
	}

	payload := compress.Payload{Name: req.Name, MimeType: mt, Data: req.Data}
	compressed := false

	if req.Size() > s.budget {
		if !compress.IsImage(mt) {
			return nil, fmt.Errorf("%s is %d bytes, limit %d: %w", req.Name, req.Size(), s.budget, common.ErrSizeLimitExceeded)
		}

		out, err := s.compressor.Compress(payload, s.budget)
		if err != nil {
			s.logger.Warn(ctx, "compression failed", "name", req.Name, "size", req.Size(), "error", err)
			return nil, err
		}
		s.logger.Debug(ctx, "file compressed", "name", req.Name, "from", req.Size(), "to", out.Size())
		payload = *out
		compressed = true
	}

	f := &models.File{
		ID:        s.newID(),
		Owner:     session.Email,
		Name:      payload.Name,
		MimeType:  payload.MimeType,
		Size:      payload.Size(),
		CreatedAt: s.now(),
		Payload:   payload.Data,
	}

	if err := s.store.PutFile(ctx, f); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "file uploaded", "id", f.ID, "owner", f.Owner, "size", f.Size, "compressed", compressed)
	return f, nil
}

// UploadFromPath reads path and uploads it under its base name. The type
// comes from the extension, falling back to content sniffing.
func (s *uploadService) UploadFromPath(ctx context.Context, session models.Session, path string) (*models.File, error) {
	if !session.Valid() {
		return nil, common.ErrNotLoggedIn
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return s.Upload(ctx, session, models.UploadRequest{
		Name:     filepath.Base(path),
		MimeType: DetectType(path, data),
		Data:     data,
	})
}

// DetectType guesses the media type of a local file.
func DetectType(path string, data []byte) string {
	if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); mt != "" {
		return mt
	}
	return http.DetectContentType(data)
}
