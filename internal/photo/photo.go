// Package photo loads contact photos from the store and normalizes them
// to PNG, downscaling to a thumbnail for the low-resolution tier.
package photo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	// Decoders the store's blobs may need.
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mesh-intelligence/rolodex/internal/logger"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// thumbMaxDim bounds the longest side of the low-resolution tier.
const thumbMaxDim = 96

// Opener is the slice of the store the loader needs.
type Opener interface {
	OpenPhoto(ctx context.Context, identifier string) (io.ReadCloser, error)
}

// Loader reads photo blobs and re-encodes them to PNG regardless of the
// on-disk format.
type Loader struct {
	store Opener
	log   *logger.Logger
}

// NewLoader returns a Loader over the given store.
func NewLoader(store Opener, log *logger.Logger) *Loader {
	return &Loader{store: store, log: log}
}

// Load returns the contact's photo as PNG bytes. A missing photo is not
// an error: the result is nil, nil. When highRes is false the image is
// downscaled so its longest side is at most 96px before re-encoding.
// Undecodable blobs return ErrDecodeFailure (wrapped), logged here;
// callers that tolerate missing photos treat that as absent.
func (l *Loader) Load(ctx context.Context, identifier string, highRes bool) ([]byte, error) {
	rc, err := l.store.OpenPhoto(ctx, identifier)
	if err == types.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		l.log.Error("photo decode failed", "identifier", identifier, "error", err)
		return nil, fmt.Errorf("%w: %v", types.ErrDecodeFailure, err)
	}
	l.log.Debug("photo decoded", "identifier", identifier, "format", format, "highRes", highRes)

	if !highRes {
		img = Thumbnail(img, thumbMaxDim)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode photo: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail scales img down so its longest side is at most maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func Thumbnail(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
