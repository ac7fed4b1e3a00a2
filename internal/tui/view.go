package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/moviedb/internal/movies"
)

var fieldLabels = map[movies.Field]string{
	movies.FieldTitle:  "Title",
	movies.FieldYear:   "Year",
	movies.FieldRating: "Rating",
}

// View renders the editor
func (m Model) View() string {
	width, height := m.Width, m.Height
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	if m.Notice != nil {
		return RenderModal(m.renderNotice(), width, height)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("Movie Database"),
		m.renderForm(),
		"",
		m.renderButtons(),
		m.renderStatus(),
		DividerStyle.Render(strings.Repeat("─", width-10)),
		m.renderList(),
	)

	return RenderApplicationContainer(content, m.Help.View(m.Keys.helpFor(m.Focus)), width, height)
}

// renderForm renders the three labelled inputs
func (m Model) renderForm() string {
	rows := make([]string, len(movies.Fields))
	for i, f := range movies.Fields {
		label := LabelStyle.Render(fieldLabels[f])
		if Focus(i) == m.Focus {
			label = FocusedLabelStyle.Render(fieldLabels[f])
		}
		rows[i] = label + " " + m.Inputs[i].View()
	}
	return strings.Join(rows, "\n")
}

// renderButtons renders the Add/Save and Clear buttons
func (m Model) renderButtons() string {
	button := func(label string, f Focus) string {
		if m.Focus == f {
			return ActiveButtonStyle.Render(label)
		}
		return ButtonStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		button(m.PrimaryLabel(), FocusPrimary),
		" ",
		button("Clear", FocusClear),
	)
}

// renderStatus renders the one-line status below the buttons
func (m Model) renderStatus() string {
	if m.Status == "" {
		return ""
	}
	if m.StatusIsErr {
		return ErrorStatusStyle.Render("✗ " + m.Status)
	}
	return StatusStyle.Render(m.Status)
}

// renderList renders one row per record with its Edit and Delete controls
func (m Model) renderList() string {
	records := m.State.Movies()
	if len(records) == 0 {
		return EmptyListStyle.Render("No movies. Fill out the form and press Add.")
	}

	editing, isEditing := m.State.EditIndex()
	listFocused := m.Focus == FocusList

	lines := make([]string, len(records))
	for i, rec := range records {
		text := fmt.Sprintf("%d. %s", i+1, rec.String())
		if isEditing && i == editing {
			text += " " + EditingMarkerStyle.Render("✎")
		}

		selected := listFocused && i == m.Cursor
		actions := RowActionStyle.Render("[Edit] [Delete]")
		if selected {
			actions = SelectedRowActionStyle.Render("[Edit] [Delete]")
			lines[i] = SelectedRowStyle.Render("→ "+text) + "  " + actions
		} else {
			lines[i] = RowStyle.Render(text) + "  " + actions
		}
	}
	return strings.Join(lines, "\n")
}

// renderNotice renders the blocking notice for a rejected submit
func (m Model) renderNotice() string {
	var b strings.Builder
	b.WriteString("⚠  " + m.Notice.Error())
	b.WriteString("\n\n")

	for _, f := range m.Notice.Missing {
		b.WriteString(lipgloss.NewStyle().Foreground(TextColor).Render("• " + fieldLabels[f] + " is empty"))
		b.WriteString("\n")
	}
	for _, f := range m.Notice.Invalid {
		b.WriteString(lipgloss.NewStyle().Foreground(TextColor).Render("• " + fieldLabels[f] + " must be a number"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StatusStyle.Render("Press any key to continue"))

	return NoticeStyle.Render(b.String())
}
