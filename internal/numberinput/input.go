// Package numberinput hosts the numeric value engine behind a text field: it
// takes raw field events, keeps the stored value and display text in sync and
// reports changes to the host.
package numberinput

import (
	"unicode/utf8"

	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
	"github.com/alexisbeaulieu97/numinput/internal/logger"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// Key identifies a key press the input reacts to.
type Key string

const (
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeyBackspace Key = "Backspace"
)

// RenderState is everything a host needs to draw the field and its controls.
type RenderState struct {
	Text         string
	Value        numeric.Value
	Mode         numeric.Mode
	Focused      bool
	UpDisabled   bool
	DownDisabled bool
	ReadOnly     bool
	Disabled     bool
	Holding      bool
}

// NumberInput is one numeric text field. All methods must be called from the
// goroutine that owns the input's scheduler.
type NumberInput struct {
	cfg          numeric.Config
	latch        numeric.ModeLatch
	value        numeric.Value
	text         string
	initial      numeric.Value
	defaultValue numeric.Value
	controlled   bool
	focused      bool
	closed       bool

	scheduler eventloop.Scheduler
	cursor    Cursor
	log       *logger.Logger
	handlers  Handlers
	handle    *Handle
	hold      *holdSession
}

// New creates an input. The mode is chosen from the controlled or default value.
func New(cfg numeric.Config, opts ...Option) *NumberInput {
	n := &NumberInput{cfg: cfg, handle: &Handle{}}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}

	n.latch = numeric.NewModeLatch(n.initial, n.defaultValue)
	start := n.defaultValue
	if n.controlled {
		start = n.initial
	}
	n.value = n.latch.Coerce(start)
	n.text = numeric.DisplayText(n.value, cfg)
	n.refreshHandle()

	n.log.Debug("number input created", "mode", n.latch.Mode().String(), "value", n.value.String(), "controlled", n.controlled)
	return n
}

// Value returns the stored value.
func (n *NumberInput) Value() numeric.Value {
	return n.value
}

// Text returns the text the field shows.
func (n *NumberInput) Text() string {
	return n.text
}

// Mode returns the latched arithmetic mode.
func (n *NumberInput) Mode() numeric.Mode {
	return n.latch.Mode()
}

// Config returns the current configuration.
func (n *NumberInput) Config() numeric.Config {
	return n.cfg
}

// Handle returns the stable imperative handle.
func (n *NumberInput) Handle() *Handle {
	return n.handle
}

// State returns the render contract for the current value.
func (n *NumberInput) State() RenderState {
	locked := n.cfg.Disabled || n.cfg.ReadOnly
	return RenderState{
		Text:         n.text,
		Value:        n.value,
		Mode:         n.latch.Mode(),
		Focused:      n.focused,
		UpDisabled:   locked || numeric.AtOrAboveMax(n.value, n.cfg),
		DownDisabled: locked || numeric.AtOrBelowMin(n.value, n.cfg),
		ReadOnly:     n.cfg.ReadOnly,
		Disabled:     n.cfg.Disabled,
		Holding:      n.hold != nil,
	}
}

// ChangeText handles new text in the field. It reports whether the edit was
// accepted; a rejected edit leaves both the value and the text unchanged.
func (n *NumberInput) ChangeText(display string) bool {
	if n.closed || n.cfg.Disabled || n.cfg.ReadOnly {
		return false
	}

	mode := n.latch.Mode()
	values := numeric.ParseInput(display, n.cfg, mode)
	if !numeric.AllowEntry(values, n.cfg, mode) {
		n.log.Debug("keystroke rejected", "text", display)
		return false
	}

	next := numeric.Sanitize(values, n.cfg, mode)
	n.text = values.FormattedValue
	n.commit(next)
	n.handlers.valueChange(values, SourceEvent)
	return true
}

// Focus marks the field focused.
func (n *NumberInput) Focus() {
	if n.closed {
		return
	}
	n.focused = true
	if n.cfg.SelectAllOnFocus && n.cursor != nil {
		n.deferTask(n.cursor.SelectAll)
	}
	n.handlers.focus()
}

// Blur marks the field unfocused and normalizes the value.
func (n *NumberInput) Blur() {
	if n.closed {
		return
	}
	n.focused = false

	next, changed := numeric.NormalizeOnBlur(n.value, n.cfg, n.latch.Mode())
	if changed {
		n.log.Debug("value normalized on blur", "from", n.value.String(), "to", next.String())
		n.text = numeric.DisplayText(next, n.cfg)
		n.commit(next)
		n.handlers.valueChange(numeric.ValuesOf(next, n.cfg), SourceBlur)
	} else if next.IsResolved() {
		// Typed decoration such as "00100" for a resolved 100.
		n.text = numeric.DisplayText(next, n.cfg)
	}
	n.handlers.blur()
}

// KeyDown handles a key press with the current selection, in runes. It
// reports whether the input consumed the key, in which case the host must not
// apply its default editing behaviour.
func (n *NumberInput) KeyDown(key Key, selStart, selEnd int) bool {
	if n.closed || n.cfg.Disabled {
		return false
	}

	switch key {
	case KeyArrowUp, KeyArrowDown:
		if !n.cfg.KeyboardStepping || n.cfg.ReadOnly {
			return false
		}
		dir := numeric.DirectionUp
		if key == KeyArrowDown {
			dir = numeric.DirectionDown
		}
		n.stepWith(n.cfg, dir)
		return true
	case KeyBackspace:
		if n.cfg.ReadOnly {
			return false
		}
		// Nothing left of the caret but the prefix.
		return selStart == selEnd && selStart <= utf8.RuneCountInString(n.cfg.Prefix)
	default:
		return false
	}
}

// SetValue supplies a value from the host. Text that already represents v is
// kept so in-progress formatting survives a controlled round trip.
func (n *NumberInput) SetValue(v numeric.Value) {
	if n.closed {
		return
	}

	mode := n.latch.Observe(v)
	v = n.latch.Coerce(v)
	current := numeric.Sanitize(numeric.ParseInput(n.text, n.cfg, mode), n.cfg, mode)

	n.value = v
	if !current.Equal(v) {
		if text := numeric.DisplayText(v, n.cfg); text != n.text {
			n.text = text
			n.handlers.valueChange(numeric.ValuesOf(v, n.cfg), SourceProp)
		}
	}
	n.refreshHandle()
}

// SetConfig replaces the configuration. A held control is released when the
// input becomes disabled or read-only.
func (n *NumberInput) SetConfig(cfg numeric.Config) {
	if n.closed {
		return
	}
	n.cfg = cfg
	if cfg.Disabled || cfg.ReadOnly {
		n.endHold("locked")
	}
	if n.value.IsResolved() {
		n.text = numeric.DisplayText(n.value, cfg)
	}
	n.refreshHandle()
}

// Close releases timers. The input ignores all events afterwards.
func (n *NumberInput) Close() {
	if n.closed {
		return
	}
	n.endHold("close")
	n.closed = true
	n.log.Debug("number input closed")
}

func (n *NumberInput) stepWith(cfg numeric.Config, dir numeric.Direction) bool {
	if n.closed {
		return false
	}

	res := numeric.Step(n.value, dir, cfg, n.latch.Mode())
	if !res.Applied {
		n.log.Debug("step ignored", "direction", dir.String(), "value", n.value.String())
		return false
	}

	if res.MaxReached {
		n.log.Debug("max reached", "value", res.Values.Value)
		n.handlers.maxReached()
	}
	if res.MinReached {
		n.log.Debug("min reached", "value", res.Values.Value)
		n.handlers.minReached()
	}

	n.text = numeric.DisplayText(res.Value, cfg)
	n.commit(res.Value)

	source := SourceIncrement
	if dir == numeric.DirectionDown {
		source = SourceDecrement
	}
	n.handlers.valueChange(res.Values, source)
	n.restoreCursor()
	return true
}

// commit stores next, unless the input is controlled, and reports it.
func (n *NumberInput) commit(next numeric.Value) {
	if next.Equal(n.value) {
		return
	}
	if !n.controlled {
		n.value = next
	}
	n.handlers.change(next)
}

// restoreCursor moves the caret to the end of the text once the host has
// rendered it.
func (n *NumberInput) restoreCursor() {
	if n.cursor == nil {
		return
	}
	pos := utf8.RuneCountInString(n.text)
	n.deferTask(func() { n.cursor.SetCursor(pos) })
}

func (n *NumberInput) deferTask(fn func()) {
	if n.scheduler == nil {
		fn()
		return
	}
	n.scheduler.Defer(func() {
		if !n.closed {
			fn()
		}
	})
}
