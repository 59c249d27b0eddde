package main

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// loadGray reads an image file and returns it as a dense row-major uint8
// grayscale buffer along with its width and height. Color and paletted
// sources are flattened to grayscale by the standard library's own
// luminance conversion (image.Gray's draw path), since multi-channel
// filtering is outside this engine's domain.
func loadGray(path string) (pix []uint8, w, h int, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, err
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return gray.Pix, w, h, nil
}

// saveGray writes a dense row-major uint8 grayscale buffer to path. The
// encoding is chosen from the file extension, defaulting to PNG.
func saveGray(path string, pix []uint8, w, h int) error {
	gray := &image.Gray{
		Pix:    pix,
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, gray, &jpeg.Options{Quality: 92})
	case ".gif":
		return gif.Encode(f, gray, nil)
	default:
		return png.Encode(f, gray)
	}
}
