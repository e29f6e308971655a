package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar draws a bar of width cells (at least 5) filled in proportion
// to done/total and labelled with the raw count, e.g. "█████░░░░░ 1/2".
// A zero total draws an empty bar.
func ProgressBar(done, total, width int) string {
	width = max(width, 5)
	filled := 0
	if total > 0 {
		filled = min(max(done*width/total, 0), width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %d/%d", done, total)
}

// Panel frames lines in a box drawn with the theme's border.
func Panel(t Theme, lines []string) string {
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}
