// Package imageio loads source logos and writes finished icon assets.
//
// Loading accepts anything the registered decoders understand (PNG, JPEG,
// WebP). Saving is PNG only and atomic: the encoder writes to a temporary
// file next to the destination and renames it into place on success, so a
// failing run never leaves a partial output file behind.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Load reads an image from a file path with WebP support.
func Load(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.Contains(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}
	if img, _, err := image.Decode(f); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// LoadFromReader decodes an image from an io.Reader.
func LoadFromReader(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// SavePNG writes img to path as a lossless PNG. The file appears at path
// only after the encode completed successfully.
func SavePNG(img image.Image, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finish writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// Info contains basic image metadata.
type Info struct {
	Width       int
	Height      int
	AspectRatio float64
	Area        int
}

// GetInfo returns basic information about an image.
func GetInfo(img image.Image) Info {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return Info{
		Width:       w,
		Height:      h,
		AspectRatio: float64(w) / float64(h),
		Area:        w * h,
	}
}
