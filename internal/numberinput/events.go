package numberinput

import "github.com/alexisbeaulieu97/numinput/internal/numeric"

// Source names what caused a value change notification.
type Source string

const (
	// SourceEvent is a keystroke or paste in the text field.
	SourceEvent Source = "event"
	// SourceIncrement is a step up from a key, a step control or the handle.
	SourceIncrement Source = "increment"
	// SourceDecrement is a step down.
	SourceDecrement Source = "decrement"
	// SourceBlur is normalization when the field loses focus.
	SourceBlur Source = "blur"
	// SourceProp is a value supplied by the host through SetValue.
	SourceProp Source = "prop"
)

// ValueChange is the detailed payload sent with every accepted edit or step.
type ValueChange struct {
	Values numeric.FormatValues
	Source Source
}

// Handlers receive the notifications of one input. Nil handlers are skipped.
type Handlers struct {
	// OnChange receives every new stored value.
	OnChange func(numeric.Value)
	// OnValueChange receives the bare, formatted and float forms of each accepted edit.
	OnValueChange func(ValueChange)
	// OnMinReached and OnMaxReached fire when a step is clamped at a bound.
	OnMinReached func()
	OnMaxReached func()
	OnFocus      func()
	OnBlur       func()
}

func (h Handlers) change(v numeric.Value) {
	if h.OnChange != nil {
		h.OnChange(v)
	}
}

func (h Handlers) valueChange(values numeric.FormatValues, source Source) {
	if h.OnValueChange != nil {
		h.OnValueChange(ValueChange{Values: values, Source: source})
	}
}

func (h Handlers) minReached() {
	if h.OnMinReached != nil {
		h.OnMinReached()
	}
}

func (h Handlers) maxReached() {
	if h.OnMaxReached != nil {
		h.OnMaxReached()
	}
}

func (h Handlers) focus() {
	if h.OnFocus != nil {
		h.OnFocus()
	}
}

func (h Handlers) blur() {
	if h.OnBlur != nil {
		h.OnBlur()
	}
}
