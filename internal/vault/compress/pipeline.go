package compress

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"path"
	"strings"

	// decoders registered for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/dmitrijs2005/memoryvault/internal/common"
)

// DefaultMaxDimension is the longest side, in pixels, kept before encoding.
const DefaultMaxDimension = 2000

// DefaultMaxPixels caps width×height of a source image. Decoding
// allocates about four bytes per pixel before any downscaling.
const DefaultMaxPixels = 64 << 20

// qualitySteps is the descending quality schedule, in percent.
var qualitySteps = [...]int{90, 75, 60, 45, 30}

// Payload is an encoded file and the metadata that travels with it.
type Payload struct {
	Name     string
	MimeType string
	Data     []byte
}

// Size is the payload length in bytes.
func (p Payload) Size() int64 { return int64(len(p.Data)) }

// Pipeline holds the fixed parameters of a compression run.
type Pipeline struct {
	MaxDimension int
	MaxPixels    int
	Encoder      Encoder

	// OnStep, when set, is called after every encode attempt.
	OnStep func(quality int, size int64)
}

// NewPipeline returns a JPEG pipeline that scales down to maxDim pixels.
// A non-positive maxDim selects DefaultMaxDimension.
func NewPipeline(maxDim int) *Pipeline {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	return &Pipeline{MaxDimension: maxDim, MaxPixels: DefaultMaxPixels, Encoder: JPEGEncoder{}}
}

// IsImage reports whether mimeType is an image type the pipeline can decode.
func IsImage(mimeType string) bool {
	switch baseType(mimeType) {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// Compress returns a re-encoded copy of in whose Data is at most budget bytes.
// It fails with common.ErrUnsupportedType for non-image input, wraps
// common.ErrDecode when the source cannot be decoded or its header declares
// more than MaxPixels pixels, and returns
// common.ErrCompressionExhausted when even the lowest quality step is too big.
func (p *Pipeline) Compress(in Payload, budget int64) (*Payload, error) {
	if !IsImage(in.MimeType) {
		return nil, fmt.Errorf("%s: %w", in.MimeType, common.ErrUnsupportedType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(in.Data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", in.Name, common.ErrDecode, err)
	}
	if p.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(p.MaxPixels) {
		return nil, fmt.Errorf("%s: %dx%d exceeds %d pixels: %w",
			in.Name, cfg.Width, cfg.Height, p.MaxPixels, common.ErrDecode)
	}

	src, _, err := image.Decode(bytes.NewReader(in.Data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", in.Name, common.ErrDecode, err)
	}

	img := p.scale(src)

	var buf bytes.Buffer
	var smallest int64 = -1
	for _, q := range qualitySteps {
		buf.Reset()
		if err := p.Encoder.Encode(&buf, img, q); err != nil {
			return nil, fmt.Errorf("encode at quality %d: %w", q, err)
		}

		size := int64(buf.Len())
		if p.OnStep != nil {
			p.OnStep(q, size)
		}
		if smallest < 0 || size < smallest {
			smallest = size
		}
		if size <= budget {
			out := make([]byte, buf.Len())
			copy(out, buf.Bytes())
			return &Payload{
				Name:     DerivedName(in.Name, p.Encoder.Ext()),
				MimeType: p.Encoder.MimeType(),
				Data:     out,
			}, nil
		}
	}

	return nil, fmt.Errorf("%s: smallest attempt %d bytes, budget %d: %w",
		in.Name, smallest, budget, common.ErrCompressionExhausted)
}

// TargetSize returns the dimensions after uniform downscaling so that the
// longer side is at most maxDim. Sides round to the nearest pixel, minimum 1.
func TargetSize(w, h, maxDim int) (int, int) {
	longer := max(w, h)
	if maxDim <= 0 || longer <= maxDim {
		return w, h
	}
	ratio := float64(maxDim) / float64(longer)
	nw := int(math.Round(float64(w) * ratio))
	nh := int(math.Round(float64(h) * ratio))
	return max(nw, 1), max(nh, 1)
}

func (p *Pipeline) scale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := TargetSize(b.Dx(), b.Dy(), p.MaxDimension)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// DerivedName replaces the extension of name with ext, or appends ext when
// name has none.
func DerivedName(name, ext string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	if base == "" {
		base = "image"
	}
	return base + ext
}

func baseType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
