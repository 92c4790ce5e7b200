package compress

import (
	"image"
	"image/jpeg"
	"io"
)

// Encoder writes an image in one output format at a given quality percent.
type Encoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
	MimeType() string
	Ext() string
}

// JPEGEncoder encodes baseline JPEG; quality maps directly to jpeg.Options.
type JPEGEncoder struct{}

func (JPEGEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

func (JPEGEncoder) MimeType() string { return "image/jpeg" }

func (JPEGEncoder) Ext() string { return ".jpg" }
