package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
}

// Alert is a one-off notice shown under the fields, such as a rejected
// keystroke or a bound being reached.
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		message: message,
		options: opts,
	}
}

// Message returns the alert body.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.options.Variant
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// WithDismissible sets whether the alert can be dismissed
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.options.Dismissible = dismissible
	return a
}

// View renders the alert
func (a *Alert) View() string {
	var content []string

	if a.options.Title != "" {
		titleStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))
		content = append(content, titleStyle.Render(a.options.Title+":"))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	if a.options.Dismissible {
		content = append(content, "[x]")
	}

	return a.buildStyle().Render(strings.Join(content, " "))
}

func (a *Alert) buildStyle() lipgloss.Style {
	return Style(lipgloss.NewStyle(), AlertStyle(alertSlot(a.options.Variant))...)
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantError:
		return PaletteDanger
	case AlertVariantWarning:
		return PaletteWarning
	default:
		return PaletteInfo
	}
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantError,
		Title:       "Rejected",
		Dismissible: true,
	})
}

// WarningAlert creates a warning alert
func WarningAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantWarning,
		Title:       "Limit",
		Dismissible: true,
	})
}

// InfoAlert creates an info alert
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant: AlertVariantInfo,
	})
}
