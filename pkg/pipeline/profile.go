package pipeline

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is an opaque RGB color serialized as "#RRGGBB".
type HexColor struct {
	R, G, B uint8
}

// ParseHexColor parses "#RRGGBB" (leading '#' optional).
func ParseHexColor(s string) (HexColor, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return HexColor{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c HexColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String returns the "#RRGGBB" form.
func (c HexColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// MarshalYAML implements yaml.Marshaler.
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Profile holds every parameter of one icon generation run. The three
// built-in profiles (adaptive foreground, content-centered foreground,
// Play Store listing icon) are three values of this structure; there is no
// per-variant code path.
type Profile struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// CanvasSize is the square output size in pixels.
	CanvasSize int `yaml:"canvas_size"`

	// SafeAreaFraction is the central fraction of the canvas the scaled
	// logo must fit inside. The pixel safe area truncates toward zero.
	SafeAreaFraction float64 `yaml:"safe_area_fraction"`

	// Background fills the canvas and triggers flattening to an opaque
	// output. Nil keeps the canvas transparent and preserves alpha.
	Background *HexColor `yaml:"background,omitempty"`

	// TrimToContent crops the source to its detected content bounds
	// (plus CropPadding pixels) before scaling.
	TrimToContent bool `yaml:"trim_to_content,omitempty"`
	CropPadding   int  `yaml:"crop_padding,omitempty"`

	// OffsetX/OffsetY nudge the centered placement to compensate for
	// visual weight. Applied after centering, never clipped.
	OffsetX int `yaml:"offset_x,omitempty"`
	OffsetY int `yaml:"offset_y,omitempty"`
}

// Validate checks if the profile is usable.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if p.Input == "" {
		return fmt.Errorf("profile %s: input path cannot be empty", p.Name)
	}
	if p.Output == "" {
		return fmt.Errorf("profile %s: output path cannot be empty", p.Name)
	}
	if p.CanvasSize < 1 {
		return fmt.Errorf("profile %s: canvas_size must be positive", p.Name)
	}
	if p.SafeAreaFraction <= 0 || p.SafeAreaFraction > 1 {
		return fmt.Errorf("profile %s: safe_area_fraction must be in (0, 1]", p.Name)
	}
	if p.CropPadding < 0 {
		return fmt.Errorf("profile %s: crop_padding must not be negative", p.Name)
	}
	return nil
}
