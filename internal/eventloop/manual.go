package eventloop

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Nothing runs until Flush or
// Advance is called, which makes timer behaviour deterministic in tests and
// replayed scripts. Manual is not safe for concurrent use.
type Manual struct {
	now      time.Time
	seq      int
	deferred []func()
	timers   []*manualTimer
}

// NewManual returns a scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Defer implements Scheduler.
func (m *Manual) Defer(fn func()) {
	if fn == nil {
		return
	}
	m.deferred = append(m.deferred, fn)
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{owner: m, when: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Flush runs deferred callbacks, including ones queued while flushing, and
// returns how many ran.
func (m *Manual) Flush() int {
	ran := 0
	for len(m.deferred) > 0 {
		fn := m.deferred[0]
		m.deferred[0] = nil
		m.deferred = m.deferred[1:]
		fn()
		ran++
	}
	return ran
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// Deferred work is flushed before the first timer and after each one. It
// returns the number of timer callbacks that ran.
func (m *Manual) Advance(d time.Duration) int {
	m.Flush()
	target := m.now.Add(d)
	fired := 0
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.remove(t)
		m.now = t.when
		t.fn()
		fired++
		m.Flush()
	}
	m.now = target
	return fired
}

// Pending reports how many timers are live.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Deferred reports how many deferred callbacks are queued.
func (m *Manual) Deferred() int {
	return len(m.deferred)
}

// NextDeadline returns the deadline of the earliest live timer.
func (m *Manual) NextDeadline() (time.Time, bool) {
	if len(m.timers) == 0 {
		return time.Time{}, false
	}
	m.sortTimers()
	return m.timers[0].when, true
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	m.sortTimers()
	if t := m.timers[0]; !t.when.After(target) {
		return t
	}
	return nil
}

func (m *Manual) sortTimers() {
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].when.Equal(m.timers[j].when) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].when.Before(m.timers[j].when)
	})
}

func (m *Manual) remove(target *manualTimer) bool {
	for i, t := range m.timers {
		if t == target {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	owner *Manual
	when  time.Time
	seq   int
	fn    func()
}

func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}
