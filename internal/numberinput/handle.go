package numberinput

import "github.com/alexisbeaulieu97/numinput/internal/numeric"

// Handle exposes programmatic stepping. The pointer returned by
// NumberInput.Handle stays the same for the life of the input; its functions
// are replaced whenever the configuration or value changes.
type Handle struct {
	Increment func()
	Decrement func()
}

func (n *NumberInput) refreshHandle() {
	cfg := n.cfg
	n.handle.Increment = func() { n.stepWith(cfg, numeric.DirectionUp) }
	n.handle.Decrement = func() { n.stepWith(cfg, numeric.DirectionDown) }
}
