package bounds

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createLogoImage creates a transparent image with an opaque block at rect
func createLogoImage(width, height int, rect image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, color.NRGBA{200, 40, 40, 255})
		}
	}

	return img
}

// createOpaqueImage creates a white image with a gray block at rect
func createOpaqueImage(width, height int, rect image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if image.Pt(x, y).In(rect) {
				img.Set(x, y, color.NRGBA{100, 100, 100, 255})
			} else {
				img.Set(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}

	return img
}

func TestDetectAlpha(t *testing.T) {
	content := image.Rect(20, 10, 60, 50)
	img := createLogoImage(100, 80, content)

	rect, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if rect != content {
		t.Errorf("Expected bounds %v, got %v", content, rect)
	}
}

func TestDetectLuminance(t *testing.T) {
	content := image.Rect(5, 8, 30, 22)
	img := createOpaqueImage(40, 40, content)

	rect, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if rect != content {
		t.Errorf("Expected bounds %v, got %v", content, rect)
	}
}

func TestDetectNearWhiteIsForeground(t *testing.T) {
	// 254-gray must count as content; only pure white is background
	img := createOpaqueImage(20, 20, image.Rectangle{})
	img.Set(7, 9, color.NRGBA{254, 254, 254, 255})

	rect, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	want := image.Rect(7, 9, 8, 10)
	if rect != want {
		t.Errorf("Expected bounds %v, got %v", want, rect)
	}
}

func TestDetectSemiTransparentPixel(t *testing.T) {
	// Any alpha above zero is foreground once the image carries transparency
	img := image.NewNRGBA(image.Rect(0, 0, 30, 30))
	img.Set(12, 4, color.NRGBA{0, 0, 0, 1})

	rect, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	want := image.Rect(12, 4, 13, 5)
	if rect != want {
		t.Errorf("Expected bounds %v, got %v", want, rect)
	}
}

func TestDetectContainment(t *testing.T) {
	content := image.Rect(0, 0, 17, 33)
	img := createLogoImage(17, 33, content)

	rect, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if !rect.In(img.Bounds()) {
		t.Errorf("Bounds %v exceed image bounds %v", rect, img.Bounds())
	}
	if rect != content {
		t.Errorf("Expected full-image bounds %v, got %v", content, rect)
	}
}

func TestDetectTightness(t *testing.T) {
	content := image.Rect(3, 7, 41, 29)
	img := createLogoImage(64, 48, content)

	rect, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	// Every edge row/column of the detected rectangle must contain at
	// least one foreground pixel, otherwise the rectangle is not tight.
	edgeHasForeground := func(r image.Rectangle) (top, bottom, left, right bool) {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, r.Min.Y).RGBA(); a > 0 {
				top = true
			}
			if _, _, _, a := img.At(x, r.Max.Y-1).RGBA(); a > 0 {
				bottom = true
			}
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if _, _, _, a := img.At(r.Min.X, y).RGBA(); a > 0 {
				left = true
			}
			if _, _, _, a := img.At(r.Max.X-1, y).RGBA(); a > 0 {
				right = true
			}
		}
		return
	}

	top, bottom, left, right := edgeHasForeground(rect)
	if !top || !bottom || !left || !right {
		t.Errorf("Bounds %v are not tight: top=%v bottom=%v left=%v right=%v",
			rect, top, bottom, left, right)
	}
}

func TestDetectEmptyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	_, err := Detect(img)
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected ErrEmptyContent, got %v", err)
	}
}

func TestDetectEmptyWhite(t *testing.T) {
	img := createOpaqueImage(16, 16, image.Rectangle{})

	_, err := Detect(img)
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected ErrEmptyContent, got %v", err)
	}
}

func TestExpand(t *testing.T) {
	limit := image.Rect(0, 0, 100, 100)

	tests := []struct {
		name    string
		rect    image.Rectangle
		padding int
		want    image.Rectangle
	}{
		{"interior", image.Rect(20, 20, 40, 40), 5, image.Rect(15, 15, 45, 45)},
		{"clamped at origin", image.Rect(2, 3, 40, 40), 5, image.Rect(0, 0, 45, 45)},
		{"clamped at limit", image.Rect(60, 60, 98, 99), 5, image.Rect(55, 55, 100, 100)},
		{"zero padding", image.Rect(10, 10, 20, 20), 0, image.Rect(10, 10, 20, 20)},
	}

	for _, tt := range tests {
		got := Expand(tt.rect, tt.padding, limit)
		if got != tt.want {
			t.Errorf("%s: Expand(%v, %d) = %v, want %v", tt.name, tt.rect, tt.padding, got, tt.want)
		}
	}
}

func BenchmarkDetect(b *testing.B) {
	img := createLogoImage(1024, 1024, image.Rect(100, 100, 900, 900))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect(img)
	}
}
