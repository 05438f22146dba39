package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizgen/internal/quiz"
)

// renderSummary prints the outcome of a generate run.
func renderSummary(w io.Writer, summary quiz.Summary, styled bool) {
	headline := fmt.Sprintf("Created %s with %d randomized quiz sheets", summary.Output, len(summary.Sheets))
	details := fmt.Sprintf("Seed %d | Run %s", summary.Seed, summary.RunID)
	if !styled {
		fmt.Fprintln(w, headline)
		fmt.Fprintln(w, details)
		return
	}
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Render(headline))
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Render(details))
	fmt.Fprintln(w, sheetTable(summary.Sheets).View())
}

// sheetTable lays out one row per generated sheet.
func sheetTable(sheets []quiz.SheetSummary) table.Model {
	columns := []table.Column{
		{Title: "Sheet", Width: 10},
		{Title: "Label", Width: 7},
		{Title: "Question order", Width: 34},
		{Title: "First question", Width: 40},
	}
	rows := make([]table.Row, 0, len(sheets))
	for _, sheet := range sheets {
		first := ""
		if len(sheet.Questions) > 0 {
			first = truncate(sheet.Questions[0].Text, 40)
		}
		rows = append(rows, table.Row{sheet.Name, sheet.Label, formatOrder(sheet.QuestionOrder()), first})
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles),
	)
}

// formatOrder renders source rows as a compact list.
func formatOrder(order []int) string {
	parts := make([]string, 0, len(order))
	for _, row := range order {
		parts = append(parts, fmt.Sprint(row))
	}
	return strings.Join(parts, " ")
}

// truncate shortens text for display, collapsing whitespace.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}
