package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cardsmith/internal/config"
	"cardsmith/internal/pipeline"
	"cardsmith/internal/resolve"
)

func newDedupeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupe [path]",
		Short: "Rename cards that share an id",
		Long: `Dedupe gives every card whose id is shared a new id built from the id
without its tag suffix and the normalized card name. The file is only
rewritten when an id changed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return invalidInvocationf("%v", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := cmd.Flags().Set("path", args[0]); err != nil {
					return invalidInvocationf("%v", err)
				}
			}

			var o config.Config

			flags := cmd.Flags()
			if o.Resolve.Path, err = flagPath(flags, "path"); err != nil {
				return err
			}

			scope, err := flagString(flags, "scope")
			if err != nil {
				return err
			}

			if scope != "" {
				parsed, err := resolve.ParseScope(scope)
				if err != nil {
					return invalidInvocationf("%v", err)
				}

				o.Resolve.Scope = string(parsed)
			}

			// an empty suffix and a false reappend are values, not "unset"
			if flags.Changed("suffix") {
				cfg.Resolve.Suffix, _ = flags.GetString("suffix")
			}

			if flags.Changed("reappend") {
				cfg.Resolve.Reappend, _ = flags.GetBool("reappend")
			}

			if err := applyOverrides(cfg, o); err != nil {
				return err
			}

			sum, err := pipeline.Dedupe(cmd.Context(), cfg)
			if err != nil {
				if sum != nil {
					printDiagnostics(cmd.ErrOrStderr(), sum.Diagnostics)
				}

				return err
			}

			printDedupeSummary(cmd.OutOrStdout(), sum)

			return nil
		},
	}

	cmd.Flags().String("path", "", "card file to fix")
	cmd.Flags().String("suffix", "", "tag suffix stripped before renaming")
	cmd.Flags().String("scope", "", "records to rename: duplicates or tagged")
	cmd.Flags().Bool("reappend", false, "append the tag suffix to renamed ids again")

	return cmd
}

func printDedupeSummary(w io.Writer, sum *pipeline.DedupeSummary) {
	if len(sum.Renames) == 0 {
		fmt.Fprintf(w, "No changes needed in %s (%d cards)\n", sum.Path, sum.Records)
	} else {
		for _, rn := range sum.Renames {
			fmt.Fprintf(w, "  %s -> %s (%q)\n", rn.OldID, rn.NewID, rn.Name)
		}

		fmt.Fprintf(w, "Fixed %d card ids in %s\n", len(sum.Renames), sum.Path)
	}

	printDiagnostics(w, sum.Diagnostics)
}
