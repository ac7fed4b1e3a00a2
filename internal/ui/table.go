package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/moviedb/internal/movies"
)

// TableStyle selects how RenderTable lays out the records.
type TableStyle int

const (
	// TableDetailed draws aligned Title/Year/Rating columns inside a border.
	TableDetailed TableStyle = iota
	// TableCompact prints one "N. Title (Year) Rating: R" line per record.
	TableCompact
)

// EmptyListText is printed instead of a table when there are no records.
const EmptyListText = "No movies."

// RenderTable renders records in the given style. width is only used by
// TableDetailed.
func RenderTable(records []movies.Movie, style TableStyle, width int) string {
	if len(records) == 0 {
		return TableIndexStyle.Render(EmptyListText)
	}
	if style == TableCompact {
		return renderCompact(records)
	}
	return renderDetailed(records, width)
}

func renderCompact(records []movies.Movie) string {
	lines := make([]string, 0, len(records))
	for i, m := range records {
		lines = append(lines, TableIndexStyle.Render(fmt.Sprintf("%d.", i+1))+" "+TableCellStyle.Render(m.String()))
	}
	return strings.Join(lines, "\n")
}

func renderDetailed(records []movies.Movie, width int) string {
	width = clampWidth(width)

	idxW := len(fmt.Sprint(len(records))) + 1
	yearW, ratingW := len("Year"), len("Rating")
	for _, m := range records {
		yearW = max(yearW, lipgloss.Width(m.Year))
		ratingW = max(ratingW, lipgloss.Width(m.Rating))
	}
	// border(2) + padding(2) + three column gaps(6)
	titleW := width - 10 - idxW - yearW - ratingW
	if titleW < 10 {
		titleW = 10
	}

	row := func(style lipgloss.Style, idx, title, year, rating string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			TableIndexStyle.Width(idxW).Render(idx),
			"  ",
			style.Width(titleW).MaxWidth(titleW).Render(title),
			"  ",
			style.Width(yearW).Align(lipgloss.Right).Render(year),
			"  ",
			style.Width(ratingW).Align(lipgloss.Right).Render(rating),
		)
	}

	lines := []string{
		row(TableHeaderStyle, "#", "Title", "Year", "Rating"),
		RenderHorizontalDivider(idxW+titleW+yearW+ratingW+6, "─"),
	}
	for i, m := range records {
		lines = append(lines, row(TableCellStyle, fmt.Sprintf("%d.", i+1), m.Title, m.Year, m.Rating))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
