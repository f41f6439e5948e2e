package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menta2k/icon-forge/internal/config"
	"github.com/menta2k/icon-forge/pkg/pipeline"
)

// newProfileCmd builds a subcommand that runs a single named profile.
func newProfileCmd(opts *options, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			profile, err := cfg.Profile(name)
			if err != nil {
				return err
			}

			p := *profile
			opts.apply(&p)

			result, err := pipeline.New().Run(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d canvas)\n",
				result.OutputPath, p.CanvasSize, p.CanvasSize)
			return nil
		},
	}
}

// newAllCmd builds the subcommand that runs every configured profile.
func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate every configured icon asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			profiles := make([]pipeline.Profile, len(cfg.Profiles))
			for i, profile := range cfg.Profiles {
				p := profile
				// Only the input override makes sense across profiles;
				// a shared --out would have them clobber each other.
				if opts.input != "" {
					p.Input = opts.input
				}
				profiles[i] = p
			}

			results, err := pipeline.New().RunAll(profiles)
			for _, result := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", result.OutputPath)
			}
			return err
		},
	}
}

// newInitConfigCmd writes the built-in profiles as a starting config file.
func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default profile configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.GetConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Default().SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

// apply layers the flag overrides onto a profile.
func (o *options) apply(p *pipeline.Profile) {
	if o.input != "" {
		p.Input = o.input
	}
	if o.output != "" {
		p.Output = o.output
	}
}
