package windgen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for the generation summary. Lipgloss automatically
// degrades colors based on terminal capabilities.
var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleWarn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// WriteSummary prints a short generation report.
func WriteSummary(w io.Writer, result *Result, output string, useColors bool) {
	fmt.Fprintln(w, renderStyle(styleHeader, "windgen", useColors))
	fmt.Fprintf(w, "  %s %s\n", renderStyle(styleSuccess, "✓", useColors), output)
	fmt.Fprintf(w, "  files scanned:  %d", result.Stats.FilesScanned)
	if result.Stats.FilesSkipped > 0 {
		fmt.Fprintf(w, " %s", renderStyle(styleDim,
			fmt.Sprintf("(%d ignored)", result.Stats.FilesSkipped), useColors))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  candidates:     %d\n", result.Candidates)
	fmt.Fprintf(w, "  rules resolved: %d\n", result.Rules)
	if result.Collisions > 0 {
		fmt.Fprintf(w, "  %s %d selector collision(s), last-discovered wins\n",
			renderStyle(styleWarn, "⚠", useColors), result.Collisions)
	}
}
