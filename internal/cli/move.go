package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cardsmith/internal/config"
	"cardsmith/internal/pipeline"
)

func newMoveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move every card of one type into another card file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			var o config.Config

			flags := cmd.Flags()
			if o.Move.From, err = flagPath(flags, "from"); err != nil {
				return err
			}

			if o.Move.To, err = flagPath(flags, "to"); err != nil {
				return err
			}

			if o.Move.Type, err = flagString(flags, "type"); err != nil {
				return err
			}

			if err := applyOverrides(cfg, o); err != nil {
				return err
			}

			sum, err := pipeline.Move(cmd.Context(), cfg)
			if err != nil {
				if sum != nil {
					printDiagnostics(cmd.ErrOrStderr(), sum.Diagnostics)
				}

				return err
			}

			printMoveSummary(cmd.OutOrStdout(), sum)

			return nil
		},
	}

	cmd.Flags().String("from", "", "card file to take cards from")
	cmd.Flags().String("to", "", "card file receiving the cards")
	cmd.Flags().String("type", "", "card type to move")

	return cmd
}

func printMoveSummary(w io.Writer, sum *pipeline.MoveSummary) {
	if len(sum.Moved) == 0 {
		fmt.Fprintf(w, "No %s cards found in %s\n", sum.Type, sum.From)
	} else {
		for _, r := range sum.Moved {
			fmt.Fprintf(w, "  - %s (%s)\n", r.Name(), r.ID())
		}

		fmt.Fprintf(w, "Moved %d %s cards from %s to %s\n", len(sum.Moved), sum.Type, sum.From, sum.To)
		fmt.Fprintf(w, "%s: %d cards, %s: %d cards\n", sum.From, sum.Remaining, sum.To, sum.Total)
	}

	printDiagnostics(w, sum.Diagnostics)
}
