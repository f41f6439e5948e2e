// Package iconforge generates app icon assets from a single source logo.
//
// A parameterized pipeline scales a logo into the safe area of a square
// canvas, centers it (optionally within the tight bounds of its actual
// content) and writes the result as a lossless PNG. Three built-in profiles
// cover the assets an app release needs: an adaptive-icon foreground, a
// content-bounds-centered foreground and an opaque Play Store listing icon.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		iconforge "github.com/menta2k/icon-forge"
//	)
//
//	func main() {
//		forge := iconforge.New()
//
//		for _, profile := range forge.Profiles() {
//			profile.Input = "assets/applogo.png"
//			result, err := forge.Generate(profile)
//			if err != nil {
//				log.Fatal(err)
//			}
//			log.Printf("wrote %s at %dx%d", result.OutputPath,
//				result.Placement.Width, result.Placement.Height)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Bounds (pkg/bounds): detects the tight rectangle around foreground content
// 2. Compose (pkg/compose): fit scaling, centering and canvas compositing
// 3. ImageIO (pkg/imageio): image loading and atomic PNG output
// 4. Pipeline (pkg/pipeline): the linear per-profile run tying them together
//
// Content detection treats a pixel as foreground when its alpha is above
// zero, or, for fully opaque sources, when it is not pure white. Scaling is
// Lanczos in both directions and compositing is source-over, so transparent
// logo pixels never overwrite the canvas background. Profiles with a
// background color are flattened to a fully opaque image, which the PNG
// encoder then writes without an alpha channel.
package iconforge

import (
	"image"

	"github.com/menta2k/icon-forge/internal/config"
	"github.com/menta2k/icon-forge/pkg/bounds"
	"github.com/menta2k/icon-forge/pkg/imageio"
	"github.com/menta2k/icon-forge/pkg/pipeline"
)

// Version of the icon-forge library.
const Version = "1.0.0"

// Forge provides a high-level interface for icon asset generation.
type Forge struct {
	runner   *pipeline.Runner
	profiles []pipeline.Profile
}

// New creates a Forge with the built-in profiles.
func New() *Forge {
	return &Forge{
		runner:   pipeline.New(),
		profiles: config.Default().Profiles,
	}
}

// NewWithProfiles creates a Forge generating the given profiles.
func NewWithProfiles(profiles []pipeline.Profile) *Forge {
	return &Forge{
		runner:   pipeline.New(),
		profiles: profiles,
	}
}

// Profiles returns a copy of the configured profiles.
func (f *Forge) Profiles() []pipeline.Profile {
	out := make([]pipeline.Profile, len(f.profiles))
	copy(out, f.profiles)
	return out
}

// Generate runs one profile and returns the run's result.
func (f *Forge) Generate(p pipeline.Profile) (pipeline.Result, error) {
	return f.runner.Run(p)
}

// GenerateAll runs every configured profile, stopping at the first failure.
func (f *Forge) GenerateAll() ([]pipeline.Result, error) {
	return f.runner.RunAll(f.profiles)
}

// LoadImage loads a source image from file.
func (f *Forge) LoadImage(path string) (image.Image, error) {
	return imageio.Load(path)
}

// SaveImage writes an image to file as a lossless PNG.
func (f *Forge) SaveImage(img image.Image, path string) error {
	return imageio.SavePNG(img, path)
}

// DetectBounds returns the tight content bounds of an image.
func (f *Forge) DetectBounds(img image.Image) (image.Rectangle, error) {
	return bounds.Detect(img)
}

// GetImageInfo returns basic information about an image.
func (f *Forge) GetImageInfo(img image.Image) imageio.Info {
	return imageio.GetInfo(img)
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
