package bounds

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyContent is returned when an image contains no foreground pixels
// and no content rectangle exists.
var ErrEmptyContent = errors.New("empty content: image has no foreground pixels")

// Detect returns the tightest rectangle enclosing all foreground pixels of img.
//
// When the image carries transparency (at least one pixel with alpha below
// 255), a pixel is foreground if its alpha is greater than zero. For fully
// opaque images a pixel is foreground if its luminance is below maximum,
// treating pure white as background.
//
// The returned rectangle is half-open, relative to (0,0), and always lies
// within the image's own dimensions.
func Detect(img image.Image) (image.Rectangle, error) {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	if w == 0 || h == 0 {
		return image.Rectangle{}, ErrEmptyContent
	}

	useAlpha := hasTransparency(nrgba)

	rowAny := make([]bool, h)
	colAny := make([]bool, w)
	for y := 0; y < h; y++ {
		i := y * nrgba.Stride
		for x := 0; x < w; x++ {
			var fg bool
			if useAlpha {
				fg = nrgba.Pix[i+3] > 0
			} else {
				fg = luminance(nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2]) < 255
			}
			if fg {
				rowAny[y] = true
				colAny[x] = true
			}
			i += 4
		}
	}

	top, bottom, ok := span(rowAny)
	if !ok {
		return image.Rectangle{}, ErrEmptyContent
	}
	left, right, _ := span(colAny)

	return image.Rect(left, top, right+1, bottom+1), nil
}

// Expand grows rect by padding pixels on every side, clamped to limit.
func Expand(rect image.Rectangle, padding int, limit image.Rectangle) image.Rectangle {
	if padding <= 0 {
		return rect
	}
	return rect.Inset(-padding).Intersect(limit)
}

func hasTransparency(img *image.NRGBA) bool {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	for y := 0; y < h; y++ {
		i := y*img.Stride + 3
		for x := 0; x < w; x++ {
			if img.Pix[i] < 255 {
				return true
			}
			i += 4
		}
	}
	return false
}

// luminance converts to grayscale using ITU-R 601-2 weights. Pure white maps
// to exactly 255, so the < 255 foreground test never misfires on rounding.
func luminance(r, g, b uint8) int {
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}

// span returns the first and last true index in flags.
func span(flags []bool) (first, last int, ok bool) {
	first, last = -1, -1
	for i, f := range flags {
		if !f {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last, first >= 0
}
