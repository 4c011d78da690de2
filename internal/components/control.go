package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	// UpGlyph and DownGlyph label the step controls.
	UpGlyph   = "▲"
	DownGlyph = "▼"
)

// ControlOptions defines the state of a step control.
type ControlOptions struct {
	Variant  ControlVariant
	Disabled bool
	// Pressed is set while the control is held down.
	Pressed bool
}

// StepControl is one of the two arrow buttons beside a number field.
type StepControl struct {
	label   string
	options ControlOptions
}

// NewStepControl creates a control with the given label and options
func NewStepControl(label string, opts ControlOptions) *StepControl {
	return &StepControl{
		label:   label,
		options: opts,
	}
}

// UpControl returns the increment control.
func UpControl() *StepControl {
	return NewStepControl(UpGlyph, ControlOptions{})
}

// DownControl returns the decrement control.
func DownControl() *StepControl {
	return NewStepControl(DownGlyph, ControlOptions{})
}

// WithVariant sets the control variant
func (c *StepControl) WithVariant(variant ControlVariant) *StepControl {
	c.options.Variant = variant
	return c
}

// WithDisabled sets the control disabled state
func (c *StepControl) WithDisabled(disabled bool) *StepControl {
	c.options.Disabled = disabled
	return c
}

// WithPressed sets the held state
func (c *StepControl) WithPressed(pressed bool) *StepControl {
	c.options.Pressed = pressed
	return c
}

// Width is the number of cells the control occupies.
func (c *StepControl) Width() int {
	return lipgloss.Width(c.View())
}

// View renders the control
func (c *StepControl) View() string {
	return c.buildStyle().Render(c.label)
}

func (c *StepControl) buildStyle() lipgloss.Style {
	style := Style(lipgloss.NewStyle(), PaddingX(SpacingSizeExtraSmall))

	switch {
	case c.options.Disabled:
		style = Style(style, Foreground(PaletteNeutral)).Faint(true)
	case c.options.Pressed:
		style = Style(style, Background(PalettePrimary)).Bold(true)
	case c.options.Variant == ControlVariantMuted:
		style = Style(style, Foreground(PaletteNeutral))
	default:
		style = Style(style, Foreground(PalettePrimary))
	}
	return style
}
