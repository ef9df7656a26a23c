package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cardsmith/internal/config"
)

const defaultConfigFile = "cardsmith.yaml"

func newInitConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration to a file",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return invalidInvocationf("%v", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return invalidInvocationf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			if err := config.WriteFile(&cfg, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
