// Package commands implements CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/config"
	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/cli/internal/version"
	"github.com/satishbabariya/pslcheck/internal/debug"
)

// NewRootCommand creates the pslcheck command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	cfg := &config.Config{}
	var (
		projectDir string
		debugFlag  bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "pslcheck",
		Short: "Check Postgres index definitions in Prisma schemas",
		Long: `pslcheck validates the indexes of a Prisma schema against Postgres:
index algorithms, operator classes and the native types of indexed fields.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(projectDir)
			if err != nil {
				return err
			}
			*cfg = *loaded

			debug.Init(debugFlag || cfg.Debug)
			if noColor {
				ui.DisableColor()
			}
			if cfg.File != "" {
				debug.Debug("Loaded config", "file", cfg.File)
			}

			if err := version.Check(version.Version, cfg.RequiredVersion); err != nil {
				return fmt.Errorf("%w (set in %s)", err, configSource(cfg))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Project directory holding .pslcheck.yaml and .env files")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logs to stderr")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(NewValidateCommand(cfg))
	cmd.AddCommand(NewCapabilitiesCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func configSource(cfg *config.Config) string {
	if cfg.File == "" {
		return "environment"
	}
	return cfg.File
}
