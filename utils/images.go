package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	// MaxUploadBytes is the limit on the original file, before compression.
	MaxUploadBytes = 5 * 1024 * 1024

	maxWidth  = 800
	maxHeight = 600

	// targetBytes is the budget for the encoded JPEG stored inline in the
	// product document.
	targetBytes = 500 * 1024

	startQuality = 80
	minQuality   = 10
)

var (
	ErrImageTooLarge    = errors.New("selected image is too large, please select an image under 5MB")
	ErrUnsupportedImage = errors.New("failed to process image")
)

// CompressToDataURI decodes a JPEG/PNG/GIF upload, scales it to fit 800x600
// preserving aspect ratio, and re-encodes as JPEG at decreasing quality until
// the payload fits the inline budget. The result is a data URI, which is what
// product documents store instead of a blob reference.
func CompressToDataURI(r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", ErrUnsupportedImage
	}

	bounds := src.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	resized := src
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		resized = dst
	}

	var buf bytes.Buffer
	for quality := startQuality; ; quality -= 10 {
		buf.Reset()
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
			return "", err
		}
		if buf.Len() <= targetBytes || quality <= minQuality {
			break
		}
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fitWithin shrinks (w, h) keeping the aspect ratio: landscape images are
// bounded by maxW, portrait and square ones by maxH. Images inside their
// bound keep their size.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w > h {
		if w > maxW {
			h = h * maxW / w
			w = maxW
		}
	} else {
		if h > maxH {
			w = w * maxH / h
			h = maxH
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
