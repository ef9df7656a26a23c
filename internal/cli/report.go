package cli

import (
	"fmt"
	"io"

	"cardsmith/internal/diagnostic"
)

// printDiagnostics lists errors and warnings, then a tally by severity.
// Infos are only counted; they are already in the log.
func printDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.SeverityInfo {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag)
	}

	fmt.Fprintf(w, "%d errors, %d warnings, %d notes\n", len(d.Errors), len(d.Warnings), len(d.Infos))
}
