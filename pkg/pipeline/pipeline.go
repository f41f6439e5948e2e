// Package pipeline runs the icon generation pipeline: load the source logo,
// optionally trim it to its content bounds, scale it into the safe area,
// composite it onto a fresh canvas and write the finished PNG.
//
// Each run is strictly linear with no retries; the first failing stage
// aborts the run and the output path is left untouched.
package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/menta2k/icon-forge/internal/utils"
	"github.com/menta2k/icon-forge/pkg/bounds"
	"github.com/menta2k/icon-forge/pkg/compose"
	"github.com/menta2k/icon-forge/pkg/imageio"
)

// Runner executes icon generation profiles.
type Runner struct {
	log *slog.Logger
}

// New creates a Runner logging through slog.Default.
func New() *Runner {
	return &Runner{log: slog.Default()}
}

// NewWithLogger creates a Runner with a custom logger.
func NewWithLogger(logger *slog.Logger) *Runner {
	return &Runner{log: logger}
}

// Result describes a completed run.
type Result struct {
	OutputPath    string
	Source        imageio.Info
	ContentBounds *image.Rectangle // nil unless the profile trims to content
	Placement     compose.Placement
}

// Run executes one profile. On any failure the destination file is not
// created or modified.
func (r *Runner) Run(p Profile) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	src, err := imageio.Load(p.Input)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load %s: %w", p.Input, err)
	}
	info := imageio.GetInfo(src)
	r.log.Info("loaded source logo", "profile", p.Name, "path", p.Input,
		"size", fmt.Sprintf("%dx%d", info.Width, info.Height))

	// Work on an NRGBA clone so all rectangles are zero-based and the
	// source stays untouched.
	work := imaging.Clone(src)

	var contentBounds *image.Rectangle
	if p.TrimToContent {
		rect, err := bounds.Detect(work)
		if err != nil {
			return Result{}, fmt.Errorf("content bounds of %s: %w", p.Input, err)
		}
		crop := bounds.Expand(rect, p.CropPadding, work.Bounds())
		r.log.Info("detected content bounds", "profile", p.Name,
			"content", rect.String(), "crop", crop.String())
		work = imaging.Crop(work, crop)
		contentBounds = &rect
	}

	w, h := work.Bounds().Dx(), work.Bounds().Dy()
	plan, err := compose.Plan(w, h, p.CanvasSize, p.SafeAreaFraction, p.OffsetX, p.OffsetY)
	if err != nil {
		return Result{}, fmt.Errorf("placement for %s: %w", p.Input, err)
	}
	r.log.Info("planned placement", "profile", p.Name,
		"scale", fmt.Sprintf("%.3f", plan.Scale),
		"size", fmt.Sprintf("%dx%d", plan.Width, plan.Height),
		"offset", fmt.Sprintf("(%d, %d)", plan.X, plan.Y))

	scaled := compose.Scale(work, plan)

	var canvasBG *color.NRGBA
	if p.Background != nil {
		c := p.Background.NRGBA()
		canvasBG = &c
	}
	canvas := compose.NewCanvas(p.CanvasSize, canvasBG)
	canvas = compose.Composite(canvas, scaled, plan)

	var out image.Image = canvas
	if p.Background != nil {
		// Opaque store icon: discard the alpha channel entirely.
		out = compose.Flatten(canvas, p.Background.NRGBA())
	}

	if err := utils.EnsureDir(filepath.Dir(p.Output)); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imageio.SavePNG(out, p.Output); err != nil {
		return Result{}, err
	}
	r.log.Info("wrote icon", "profile", p.Name, "path", p.Output,
		"canvas", fmt.Sprintf("%dx%d", p.CanvasSize, p.CanvasSize))

	return Result{
		OutputPath:    p.Output,
		Source:        info,
		ContentBounds: contentBounds,
		Placement:     plan,
	}, nil
}

// RunAll executes profiles in order, stopping at the first failure.
func (r *Runner) RunAll(profiles []Profile) ([]Result, error) {
	results := make([]Result, 0, len(profiles))
	for _, p := range profiles {
		res, err := r.Run(p)
		if err != nil {
			return results, fmt.Errorf("profile %s: %w", p.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
