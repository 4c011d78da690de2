package numberinput

import (
	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
	"github.com/alexisbeaulieu97/numinput/internal/logger"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// Cursor is the part of the hosting text field the input moves the caret in.
type Cursor interface {
	SetCursor(pos int)
	SelectAll()
}

// Option configures a NumberInput at construction.
type Option func(*NumberInput)

// WithValue makes the input controlled: edits are reported through OnChange
// but only SetValue changes the stored value.
func WithValue(v numeric.Value) Option {
	return func(n *NumberInput) {
		n.controlled = true
		n.initial = v
	}
}

// WithDefaultValue seeds an uncontrolled input.
func WithDefaultValue(v numeric.Value) Option {
	return func(n *NumberInput) {
		n.defaultValue = v
	}
}

// WithScheduler sets the queue used for cursor fix-ups and step-hold timers.
// Without one, fix-ups run inline and held controls step only once.
func WithScheduler(s eventloop.Scheduler) Option {
	return func(n *NumberInput) {
		n.scheduler = s
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *logger.Logger) Option {
	return func(n *NumberInput) {
		n.log = l
	}
}

// WithHandlers sets the notification callbacks.
func WithHandlers(h Handlers) Option {
	return func(n *NumberInput) {
		n.handlers = h
	}
}

// WithCursor connects the caret of the hosting text field.
func WithCursor(c Cursor) Option {
	return func(n *NumberInput) {
		n.cursor = c
	}
}
