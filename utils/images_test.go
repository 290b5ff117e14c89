package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

// gradientImage produces a compressible but non-trivial test image.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 255,
			})
		}
	}
	return img
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"already fits", 640, 480, 640, 480},
		// Landscape images are only bounded by width; a 700x650 passes
		// untouched even though its height exceeds 600. This mirrors the
		// storefront's resize branches exactly.
		{"landscape within width keeps height", 700, 650, 700, 650},
		{"wide landscape", 1600, 900, 800, 450},
		{"large landscape", 4000, 3000, 800, 600},
		{"tall portrait", 900, 1800, 300, 600},
		{"square over limit", 1000, 1000, 600, 600},
		{"tiny", 10, 8, 10, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotW, gotH := fitWithin(tc.w, tc.h, maxWidth, maxHeight)
			if gotW != tc.wantW || gotH != tc.wantH {
				t.Errorf("fitWithin(%d, %d) = (%d, %d), want (%d, %d)",
					tc.w, tc.h, gotW, gotH, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestCompressToDataURI(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, gradientImage(2400, 1600)); err != nil {
		t.Fatal(err)
	}

	dataURI, err := CompressToDataURI(&buf)
	if err != nil {
		t.Fatalf("CompressToDataURI: %v", err)
	}

	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		t.Fatalf("result does not look like a JPEG data URI: %.40s", dataURI)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(raw) > targetBytes {
		t.Errorf("encoded image is %d bytes, budget is %d", len(raw), targetBytes)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a decodable JPEG: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		t.Errorf("image is %dx%d, must fit %dx%d", bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	}
	// 2400x1600 scales to exactly 800x533
	if bounds.Dx() != 800 || bounds.Dy() != 533 {
		t.Errorf("image is %dx%d, want 800x533", bounds.Dx(), bounds.Dy())
	}
}

func TestCompressToDataURIKeepsSmallImages(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gradientImage(320, 240), nil); err != nil {
		t.Fatal(err)
	}

	dataURI, err := CompressToDataURI(&buf)
	if err != nil {
		t.Fatalf("CompressToDataURI: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/jpeg;base64,"))
	decoded, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 320 || decoded.Bounds().Dy() != 240 {
		t.Errorf("small image was resized to %v", decoded.Bounds())
	}
}

func TestCompressToDataURIRejectsGarbage(t *testing.T) {
	_, err := CompressToDataURI(strings.NewReader("definitely not an image"))
	if err != ErrUnsupportedImage {
		t.Fatalf("got %v, want ErrUnsupportedImage", err)
	}
}
