// Package cli wires the icon generation pipeline into a cobra command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/menta2k/icon-forge/internal/config"
	"github.com/menta2k/icon-forge/internal/utils"
)

// options holds the persistent flag values shared by every subcommand.
type options struct {
	configPath string
	input      string
	output     string
	quiet      bool
}

// NewRootCmd builds the icon-forge command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "icon-forge",
		Short: "Generate app icon assets from a single source logo",
		Long: `icon-forge turns one logo image into the icon assets an app release needs.

One shared pipeline (load, trim, scale, composite, save) runs once per
profile. The built-in profiles produce an adaptive-icon foreground, a
content-bounds-centered foreground and an opaque Play Store listing icon;
a YAML config file can override any of their parameters.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if opts.quiet {
				level = slog.LevelWarn
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "profile config file (default: "+config.GetConfigPath()+" if present)")
	cmd.PersistentFlags().StringVar(&opts.input, "in", "", "source logo path, overrides the profile input")
	cmd.PersistentFlags().StringVar(&opts.output, "out", "", "destination path, overrides the profile output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log warnings and errors")

	// Add subcommands
	cmd.AddCommand(newProfileCmd(opts, "adaptive", "Generate the adaptive-icon foreground (432px canvas, 66% safe area)"))
	cmd.AddCommand(newProfileCmd(opts, "centered", "Generate the content-bounds-centered foreground (432px canvas, 55% safe area)"))
	cmd.AddCommand(newProfileCmd(opts, "playstore", "Generate the opaque 512px Play Store listing icon"))
	cmd.AddCommand(newAllCmd(opts))
	cmd.AddCommand(newInitConfigCmd())

	return cmd
}

// validate checks the flag overrides before any file is touched.
func (o *options) validate() error {
	if o.input != "" && !utils.IsImageFile(o.input) {
		return fmt.Errorf("unsupported source image %q (want .png, .jpg or .webp)", o.input)
	}
	return nil
}

// loadConfig resolves the effective configuration: an explicit --config file,
// else the default config path when present, else the built-in profiles.
func (o *options) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		if p := config.GetConfigPath(); utils.FileExists(p) {
			path = p
		}
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
