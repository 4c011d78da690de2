package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/numinput/internal/components"
)

const (
	minFieldWidth = 8
	maxFieldWidth = 40
)

// placed is a rendered field and the screen row it starts on.
type placed struct {
	top  int
	view string
	components.FieldLayout
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), ""}
	for i, p := range m.layout() {
		if i > 0 {
			sections = append(sections, "")
		}
		sections = append(sections, p.view)
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.title
	if title == "" {
		title = "numinput"
	}
	return components.TypographyStyle(components.TypographyVariantTitle).Render(title)
}

func (m Model) renderFooter() string {
	var rows []string
	if m.feed.notice != nil {
		rows = append(rows, m.feed.notice.View())
	}
	if m.feed.last != "" {
		rows = append(rows, components.TypographyStyle(components.TypographyVariantCode).Render(m.feed.last))
	}
	rows = append(rows, components.TypographyStyle(components.TypographyVariantHint).Render(
		"tab/shift+tab switch • ↑/↓ step • click ▲▼ to step, hold to repeat • esc quit"))
	footer := components.Style(lipgloss.NewStyle(), components.MarginTop(components.SpacingSizeSmall))
	return footer.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) fieldWidth() int {
	return min(max(m.width-12, minFieldWidth), maxFieldWidth)
}

// layout renders every field and records where each one lands. The header
// takes one row followed by a blank row; fields are separated by blank rows.
func (m Model) layout() []placed {
	width := m.fieldWidth()

	out := make([]placed, 0, len(m.fields))
	top := 2
	for _, f := range m.fields {
		nf := components.NewNumberField(f.label, f.input.State()).
			WithHint(f.hint).
			WithWidth(width).
			WithContent(f.editor.View())
		if f.pressed != nil {
			nf = nf.WithPressed(*f.pressed)
		}
		view, fl := nf.Render()
		out = append(out, placed{top: top, view: view, FieldLayout: fl})
		top += fl.Height + 1
	}
	return out
}
