// Package cli implements the cardsmith command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cardsmith/internal/config"
	"cardsmith/internal/log"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
}

// NewRootCmd builds the cardsmith command tree.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cardsmith",
		Short:         "Maintain the JSON card database",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.Configure(log.Config{
				Level:  opts.logLevel,
				Output: stderr,
				JSON:   opts.logJSON,
			})
			cmd.SetContext(log.WithContext(cmd.Context(), log.Base()))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return invalidInvocationf("unknown command %q for %q", args[0], cmd.CommandPath())
			}

			_ = cmd.Usage()

			return invalidInvocationf("missing command")
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidInvocationf("%v", err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to the YAML config file (defaults are used when empty)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "emit JSON log lines")

	root.AddCommand(
		newConvertCmd(opts),
		newMoveCmd(opts),
		newDedupeCmd(opts),
		newInitConfigCmd(),
	)

	return root
}

// Execute runs the command line and returns its exit code. Errors are
// printed to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
	}

	return ExitCode(err)
}

// loadConfig reads the config file, or the defaults when no file is given.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		cfg, err := config.Parse(nil)
		if err != nil {
			return nil, configError(err)
		}

		return cfg, nil
	}

	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, configError(err)
	}

	return cfg, nil
}

// flagString returns the flag value, or "" when the flag was not set.
func flagString(flags *pflag.FlagSet, name string) (string, error) {
	if !flags.Changed(name) {
		return "", nil
	}

	v, err := flags.GetString(name)
	if err != nil {
		return "", invalidInvocationf("failed to get %s flag: %v", name, err)
	}

	return v, nil
}

// flagPath is flagString for paths. Flag paths are relative to the working
// directory, not to the config file.
func flagPath(flags *pflag.FlagSet, name string) (string, error) {
	v, err := flagString(flags, name)
	if err != nil || v == "" {
		return v, err
	}

	abs, err := filepath.Abs(v)
	if err != nil {
		return "", invalidInvocationf("invalid --%s: %v", name, err)
	}

	return abs, nil
}

// applyOverrides merges the non-empty flag values in o onto cfg and
// validates the result.
func applyOverrides(cfg *config.Config, o config.Config) error {
	if err := config.Override(cfg, o); err != nil {
		return invalidInvocationf("%v", err)
	}

	return nil
}
