package numberinput

import (
	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// holdSession is the state of one press on a step control. It owns at most
// one pending timer.
type holdSession struct {
	dir       numeric.Direction
	stepCount int
	timer     eventloop.Timer
}

// StepPointerDown presses a step control: one step now and, when holding is
// configured, repeated steps until the pointer is released or leaves.
func (n *NumberInput) StepPointerDown(dir numeric.Direction) {
	if n.closed || n.cfg.Disabled || n.cfg.ReadOnly {
		return
	}
	state := n.State()
	if (dir == numeric.DirectionUp && state.UpDisabled) || (dir == numeric.DirectionDown && state.DownDisabled) {
		return
	}

	n.endHold("restart")
	s := &holdSession{dir: dir}
	n.hold = s
	n.log.Debug("step hold started", "direction", dir.String())

	n.holdStep(s)
	if n.hold == s && n.cfg.HoldEnabled() && n.scheduler != nil {
		s.timer = n.scheduler.AfterFunc(n.cfg.StepHoldDelay, func() { n.holdTick(s) })
	}
}

// StepPointerUp releases the held control.
func (n *NumberInput) StepPointerUp() {
	n.endHold("release")
}

// StepPointerLeave ends the hold when the pointer leaves the control.
func (n *NumberInput) StepPointerLeave() {
	n.endHold("leave")
}

// HoldSteps reports how many steps the active hold has taken.
func (n *NumberInput) HoldSteps() int {
	if n.hold == nil {
		return 0
	}
	return n.hold.stepCount
}

func (n *NumberInput) holdStep(s *holdSession) {
	n.stepWith(n.cfg, s.dir)
	s.stepCount++
}

func (n *NumberInput) holdTick(s *holdSession) {
	if n.closed || n.hold != s {
		return
	}
	s.timer = nil
	n.holdStep(s)

	if n.hold != s {
		return
	}
	if !n.cfg.HoldEnabled() || n.scheduler == nil {
		n.endHold("hold disabled")
		return
	}
	interval := n.cfg.StepHoldInterval(s.stepCount)
	s.timer = n.scheduler.AfterFunc(interval, func() { n.holdTick(s) })
}

func (n *NumberInput) endHold(reason string) {
	s := n.hold
	if s == nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	n.log.Debug("step hold ended", "reason", reason, "steps", s.stepCount)
	s.stepCount = 0
	n.hold = nil
}
