package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// PrintTable writes rows to w as a boxed table. The first row is the header.
// A table that fails to render is logged and skipped.
func PrintTable(rows [][]string, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	out, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(rows).
		Srender()
	if err != nil {
		slog.Warn(
			"unable to render table",
			slog.Int("rows", len(rows)),
			slog.Any("error", err),
		)

		return
	}

	fmt.Fprintln(w, out)
}
