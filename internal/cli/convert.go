package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cardsmith/internal/config"
	"cardsmith/internal/pipeline"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert pilot files into partitioned card files",
		Long: `Convert reads every pilot file of the input directory, maps limited pilots
to cards, drops cross-file duplicates and writes one sorted file per
configured card type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			var o config.Config

			flags := cmd.Flags()
			if o.Input.Dir, err = flagPath(flags, "input-dir"); err != nil {
				return err
			}

			if o.Input.Pattern, err = flagString(flags, "pattern"); err != nil {
				return err
			}

			if err := applyOverrides(cfg, o); err != nil {
				return err
			}

			sum, err := pipeline.Convert(cmd.Context(), cfg)
			if err != nil {
				if sum != nil {
					printDiagnostics(cmd.ErrOrStderr(), sum.Diagnostics)
				}

				return err
			}

			printConvertSummary(cmd.OutOrStdout(), sum)

			return nil
		},
	}

	cmd.Flags().String("input-dir", "", "directory holding the pilot files")
	cmd.Flags().String("pattern", "", "glob selecting pilot files inside the input directory")

	return cmd
}

func printConvertSummary(w io.Writer, sum *pipeline.ConvertSummary) {
	fmt.Fprintf(w, "Files processed: %d (%d skipped)\n", sum.Files, sum.Skipped)
	fmt.Fprintf(w, "Total cards processed: %d\n", sum.Processed)
	fmt.Fprintf(w, "Unique cards: %d\n", sum.Unique)
	fmt.Fprintf(w, "Duplicates removed: %d\n", sum.Removed)

	if sum.Unpartitioned > 0 {
		fmt.Fprintf(w, "Cards without an output: %d\n", sum.Unpartitioned)
	}

	for _, o := range sum.Outputs {
		fmt.Fprintf(w, "%s: %d %s cards\n", o.Path, o.Count, o.Type)

		for _, c := range o.Conflicts {
			fmt.Fprintf(w, "  shared id %s (%s)\n", c.ID, strings.Join(c.Names, ", "))
		}
	}

	printDiagnostics(w, sum.Diagnostics)
}
