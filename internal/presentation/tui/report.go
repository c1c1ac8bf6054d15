package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/drawodds/pkg/hypergeom"
)

// Report is everything needed to render one query's result table.
type Report struct {
	Label      string
	Population int // N
	Successes  int // K
	Draws      int // n
	Target     int // k
	Tails      hypergeom.Tails
}

const (
	lineWidth   = 80
	columnWidth = 22
)

// RenderReport writes the fixed-width probability table for a query: the
// label, two parameter summary lines, and a centered three-column table of
// percentages (less than / exactly / more than the target).
func RenderReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "\n%s\n", r.Label)
	fmt.Fprintf(w, "Total population size: %d, with %d success states in population\n", r.Population, r.Successes)
	fmt.Fprintf(w, "Number of draws: %d, with a target number of %d successes\n", r.Draws, r.Target)

	headers := []string{
		fmt.Sprintf("Less than %d", r.Target),
		fmt.Sprintf("Exactly %d", r.Target),
		fmt.Sprintf("More than %d", r.Target),
	}
	values := []string{
		fmt.Sprintf("%.2f", r.Tails.Less*100),
		fmt.Sprintf("%.2f", r.Tails.Exact*100),
		fmt.Sprintf("%.2f", r.Tails.More*100),
	}

	fmt.Fprintln(w, center(row(headers), lineWidth))
	fmt.Fprintln(w, center(row(values), lineWidth))
}

// row joins cells into a "- cell - cell - cell -" line with each cell
// centered in a fixed-width column.
func row(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = center(cell, columnWidth)
	}
	return "- " + strings.Join(padded, " - ") + " -"
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
