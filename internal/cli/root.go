package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/itemcheck/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	DatabaseURL string
	ConfigPath  string

	// RunIDs overrides the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator

	// LookupEnv overrides environment lookup (for testing).
	// If nil, defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the itemcheck CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itemcheck",
		Short: "itemcheck - compare IN-list and JSON batch queries",
		Long: `Bootstrap a seeded items table and verify that a fixed IN-list query
and a JSON-array batch query return the same rows.

The connection string is read from --database-url, then the DATABASE_URL
environment variable, then the database_url key of the --config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", "", "database connection string (overrides "+config.EnvDatabaseURL+")")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Add subcommands
	cmd.AddCommand(NewBootstrapCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewExpandCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolveConfig layers defaults, the config file, the environment and flags.
func (o *RootOptions) resolveConfig() (config.Config, error) {
	cfg := config.Default()

	if o.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFile(o.ConfigPath, cfg)
		if err != nil {
			return cfg, err
		}
	}

	lookup := o.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg.ApplyEnv(lookup)

	if o.DatabaseURL != "" {
		cfg.DatabaseURL = o.DatabaseURL
	}

	return cfg, cfg.Validate()
}

func (o *RootOptions) runIDs() RunIDGenerator {
	if o.RunIDs == nil {
		return UUIDv7Generator{}
	}
	return o.RunIDs
}
