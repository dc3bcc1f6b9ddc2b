package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/supportkit/logtriage/internal/domain"
)

// WriteText prints the terminal summary. The unstyled form is the
// fixed-format contract scripts can rely on; styled output adds color
// and a rendered table when stdout is a terminal.
func WriteText(w io.Writer, report domain.Report, styled bool) error {
	header := "=== Log Triage Report ==="
	if styled {
		header = Styles.Header.Render(header)
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", header); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "File: %s\n", report.File); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Generated: %s\n", report.GeneratedAt); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total lines: %d\n", report.TotalLines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Parsed lines: %d\n", report.ParsedLines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Invalid lines: %d\n", report.InvalidLines); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nLevel counts:\n"); err != nil {
		return err
	}
	for _, level := range domain.Levels {
		name := string(level)
		if styled {
			name = LevelStyle(level).Render(name)
		}
		if _, err := fmt.Fprintf(w, "  %s: %d\n", name, report.LevelCounts.Get(level)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nTop ERROR paths:\n"); err != nil {
		return err
	}
	if len(report.TopErrorPaths) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}

	if styled {
		return writePathTable(w, report.TopErrorPaths)
	}
	for _, pc := range report.TopErrorPaths {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", pc.Path, pc.Count); err != nil {
			return err
		}
	}
	return nil
}

// writePathTable renders the ranking as a bordered table for
// interactive use.
func writePathTable(w io.Writer, paths []domain.PathCount) error {
	table := tablewriter.NewWriter(w)
	table.Header("Path", "Count")
	for _, pc := range paths {
		if err := table.Append(pc.Path, fmt.Sprintf("%d", pc.Count)); err != nil {
			return err
		}
	}
	return table.Render()
}
