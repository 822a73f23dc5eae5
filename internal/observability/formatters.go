// Package observability provides logging, metrics and formatted CLI output for the recommender.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/app-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs the top ranked apps with their scores.
func (p *Printer) PrintRecommendations(userID string, recs []types.Recommendation) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User: %s\n", userID))
	sb.WriteString(fmt.Sprintf("Apps ranked: %d\n", len(recs)))

	if len(recs) == 0 {
		sb.WriteString("\nNo active apps in the catalog")
		p.printBox("RECOMMENDED APPS", sb.String())
		return
	}
	sb.WriteString("\n")

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		name := rec.App.Name
		if rec.App.IsBeta {
			name += " (beta)"
		}
		sb.WriteString(fmt.Sprintf("#%-2d %3d  %s\n", i+1, rec.Score, name))
		sb.WriteString(fmt.Sprintf("         /%s", rec.App.Route))
		if rec.App.Category != "" {
			sb.WriteString(fmt.Sprintf("  [%s]", rec.App.Category))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more apps", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED APPS", sb.String())
}
