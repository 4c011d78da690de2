package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// DefaultFieldWidth is the content width used when none is set.
const DefaultFieldWidth = 24

// FieldLayout locates the step controls inside a rendered field, relative to
// its top-left cell.
type FieldLayout struct {
	Height        int
	ControlsX     int
	ControlsWidth int
	UpRow         int
	DownRow       int
}

// ControlAt maps a cell inside the field to the step control drawn there.
func (l FieldLayout) ControlAt(x, y int) (numeric.Direction, bool) {
	if x < l.ControlsX || x >= l.ControlsX+l.ControlsWidth {
		return 0, false
	}
	switch y {
	case l.UpRow:
		return numeric.DirectionUp, true
	case l.DownRow:
		return numeric.DirectionDown, true
	default:
		return 0, false
	}
}

// NumberField draws a number input with its label and step controls.
type NumberField struct {
	label   string
	hint    string
	content string
	width   int
	state   numberinput.RenderState
	// pressed is the control being held, if any.
	pressed *numeric.Direction
}

// NewNumberField creates a field view for state.
func NewNumberField(label string, state numberinput.RenderState) *NumberField {
	return &NumberField{
		label: label,
		state: state,
		width: DefaultFieldWidth,
	}
}

// WithHint sets the faint text shown after the label.
func (f *NumberField) WithHint(hint string) *NumberField {
	f.hint = hint
	return f
}

// WithContent replaces the plain text with a pre-rendered editor line, such
// as a text input showing its caret.
func (f *NumberField) WithContent(content string) *NumberField {
	f.content = content
	return f
}

// WithWidth sets the content width in cells.
func (f *NumberField) WithWidth(width int) *NumberField {
	if width > 0 {
		f.width = width
	}
	return f
}

// WithPressed marks the held control.
func (f *NumberField) WithPressed(dir numeric.Direction) *NumberField {
	f.pressed = &dir
	return f
}

// View renders the field
func (f *NumberField) View() string {
	view, _ := f.Render()
	return view
}

// Render returns the field and where its controls landed.
func (f *NumberField) Render() (string, FieldLayout) {
	var rows []string
	if header := f.header(); header != "" {
		rows = append(rows, header)
	}
	top := len(rows)

	content := f.content
	if content == "" {
		content = f.state.Text
	}
	box := InputStyle(f.inputState()).Width(f.width + 2).Render(content)

	up := UpControl().WithDisabled(f.state.UpDisabled).WithPressed(f.isPressed(numeric.DirectionUp))
	down := DownControl().WithDisabled(f.state.DownDisabled).WithPressed(f.isPressed(numeric.DirectionDown))
	controlsWidth := max(up.Width(), down.Width())

	boxHeight := lipgloss.Height(box)
	column := make([]string, boxHeight)
	column[0] = up.View()
	column[boxHeight-1] = down.View()
	for i := 1; i < boxHeight-1; i++ {
		column[i] = strings.Repeat(" ", controlsWidth)
	}
	if boxHeight == 1 {
		column = []string{up.View() + down.View()}
	}

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, box, strings.Join(column, "\n")))
	view := lipgloss.JoinVertical(lipgloss.Left, rows...)

	layout := FieldLayout{
		Height:        lipgloss.Height(view),
		ControlsX:     lipgloss.Width(box),
		ControlsWidth: controlsWidth,
		UpRow:         top,
		DownRow:       top + boxHeight - 1,
	}
	return view, layout
}

func (f *NumberField) header() string {
	if f.label == "" && f.hint == "" {
		return ""
	}
	parts := make([]string, 0, 2)
	if f.label != "" {
		parts = append(parts, TypographyStyle(TypographyVariantLabel).Render(f.label))
	}
	if hint := f.fullHint(); hint != "" {
		parts = append(parts, TypographyStyle(TypographyVariantHint).Render(hint))
	}
	return strings.Join(parts, " ")
}

func (f *NumberField) fullHint() string {
	var tags []string
	if f.hint != "" {
		tags = append(tags, f.hint)
	}
	switch {
	case f.state.Disabled:
		tags = append(tags, "disabled")
	case f.state.ReadOnly:
		tags = append(tags, "read-only")
	}
	if len(tags) == 0 {
		return ""
	}
	return "(" + strings.Join(tags, ", ") + ")"
}

func (f *NumberField) inputState() InputState {
	switch {
	case f.state.Disabled:
		return InputStateDisabled
	case f.state.ReadOnly:
		return InputStateReadOnly
	case f.state.Focused:
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

func (f *NumberField) isPressed(dir numeric.Direction) bool {
	return f.pressed != nil && *f.pressed == dir && f.state.Holding
}
