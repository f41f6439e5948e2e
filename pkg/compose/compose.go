package compose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Placement describes how a source image is scaled and positioned on a canvas.
type Placement struct {
	Scale  float64
	Width  int // scaled width
	Height int // scaled height
	X      int // left offset on the canvas
	Y      int // top offset on the canvas
}

// SafeArea returns the square safe-area size for a canvas in pixels,
// truncating toward zero (432*0.66 -> 285, 512*0.80 -> 409).
func SafeArea(canvas int, fraction float64) int {
	return int(float64(canvas) * fraction)
}

// FitScale returns the aspect-preserving scale factor that fits a w x h
// source inside a safe x safe box.
func FitScale(w, h, safe int) float64 {
	sw := float64(safe) / float64(w)
	sh := float64(safe) / float64(h)
	if sw < sh {
		return sw
	}
	return sh
}

// Plan computes the placement for a source of srcW x srcH on a square canvas.
// The scaled size floors toward zero and the offset centers it with integer
// floor division; offsetX/offsetY are manual corrections applied afterwards
// and are deliberately not clipped to the canvas.
func Plan(srcW, srcH, canvas int, fraction float64, offsetX, offsetY int) (Placement, error) {
	if srcW <= 0 || srcH <= 0 {
		return Placement{}, fmt.Errorf("invalid source dimensions %dx%d", srcW, srcH)
	}
	if canvas <= 0 {
		return Placement{}, fmt.Errorf("invalid canvas size %d", canvas)
	}
	safe := SafeArea(canvas, fraction)
	if safe <= 0 {
		return Placement{}, fmt.Errorf("safe area fraction %.3f yields no usable area on a %dpx canvas", fraction, canvas)
	}

	scale := FitScale(srcW, srcH, safe)
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	if w < 1 || h < 1 {
		return Placement{}, fmt.Errorf("source %dx%d collapses to %dx%d within a %dpx safe area", srcW, srcH, w, h, safe)
	}

	return Placement{
		Scale:  scale,
		Width:  w,
		Height: h,
		X:      (canvas-w)/2 + offsetX,
		Y:      (canvas-h)/2 + offsetY,
	}, nil
}

// Scale resizes img to the placement's size using Lanczos resampling.
// Lanczos holds up for both upscaling and downscaling, which both occur
// depending on the source logo's resolution.
func Scale(img image.Image, p Placement) *image.NRGBA {
	return imaging.Resize(img, p.Width, p.Height, imaging.Lanczos)
}

// NewCanvas allocates a square canvas. A nil background yields transparent
// black, otherwise the canvas is filled with the given color.
func NewCanvas(size int, bg *color.NRGBA) *image.NRGBA {
	if bg == nil {
		return imaging.New(size, size, color.NRGBA{0, 0, 0, 0})
	}
	return imaging.New(size, size, *bg)
}

// Composite draws scaled onto canvas at the placement offset using
// source-over alpha compositing, so transparent source pixels leave the
// canvas background intact. Pixels falling outside the canvas are clipped.
func Composite(canvas *image.NRGBA, scaled image.Image, p Placement) *image.NRGBA {
	return imaging.Overlay(canvas, scaled, image.Pt(p.X, p.Y), 1.0)
}

// Flatten composites img over an opaque canvas filled with bg, discarding
// transparency. Flattening an already-opaque image leaves its pixels
// unchanged. The resulting image is fully opaque, so the PNG encoder writes
// it without an alpha channel.
func Flatten(img image.Image, bg color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	opaque := color.NRGBA{bg.R, bg.G, bg.B, 255}
	base := imaging.New(b.Dx(), b.Dy(), opaque)
	return imaging.Overlay(base, img, image.Pt(0, 0), 1.0)
}
