package models

import (
	"strings"
	"time"
)

// File is a stored upload. Size always equals len(Payload) at write time.
type File struct {
	ID        string
	Owner     string
	Name      string
	MimeType  string
	Size      int64
	CreatedAt time.Time
	Payload   []byte
}

// IsImage reports whether the record holds an image payload.
func (f *File) IsImage() bool {
	return strings.HasPrefix(f.MimeType, "image/")
}

// FileInfo is the payload-free view of a File used for listings.
type FileInfo struct {
	ID        string
	Name      string
	MimeType  string
	Size      int64
	CreatedAt time.Time
}

// Info drops the payload.
func (f *File) Info() FileInfo {
	return FileInfo{ID: f.ID, Name: f.Name, MimeType: f.MimeType, Size: f.Size, CreatedAt: f.CreatedAt}
}
