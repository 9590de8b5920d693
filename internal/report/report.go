// Package report renders the run summary printed after a pipeline run.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"mastermaker/internal/enrich"
)

// Summary carries everything the final report prints.
type Summary struct {
	SourceFile string
	OutputFile string
	Duration   time.Duration
	Stats      *enrich.RunStats
}

// Render formats the summary as an aligned text block.
func Render(s *Summary) string {
	var b strings.Builder

	rule := strings.Repeat("-", 64)
	b.WriteString(rule + "\n")
	b.WriteString("Run Summary\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Run ID:   %s\n", s.Stats.RunID)
	fmt.Fprintf(&b, "Source:   %s\n", s.SourceFile)
	fmt.Fprintf(&b, "Output:   %s\n", s.OutputFile)
	fmt.Fprintf(&b, "Rows:     %d in, %d out\n", s.Stats.RowsIn, s.Stats.RowsOut)
	fmt.Fprintf(&b, "Duration: %v\n", s.Duration)

	if expanded := s.Stats.Expanded(); expanded > 0 {
		fmt.Fprintf(&b, "Warning:  joins multiplied %d row(s)\n", expanded)
	}

	b.WriteString("\n")
	b.WriteString(renderJoinTable(s.Stats.Joins))
	b.WriteString(rule + "\n")

	return b.String()
}

// renderJoinTable lays out per-join stats in display-width aligned
// columns.
func renderJoinTable(joins []enrich.JoinReport) string {
	headers := []string{"Join", "Rows", "Matched", "Unmatched", "Expanded"}
	rows := make([][]string, 0, len(joins))
	for _, j := range joins {
		rows = append(rows, []string{
			j.Name,
			fmt.Sprintf("%d", j.Stats.LeftRows),
			fmt.Sprintf("%d", j.Stats.Matched),
			fmt.Sprintf("%d", j.Stats.Unmatched),
			fmt.Sprintf("%d", j.Stats.Expanded),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
