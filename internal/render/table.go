// Package render prints report rows as aligned text tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table writes a header and rows to w as an aligned text table.
func Table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return tw.Flush()
}
