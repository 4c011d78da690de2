package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
)

// flushMsg runs the deferred tasks. It is delivered after the frame that
// queued them has been drawn.
type flushMsg struct{}

// timerMsg fires the timer with the given id.
type timerMsg struct {
	id int
}

// scheduler adapts Bubble Tea's command loop to eventloop.Scheduler. Every
// task runs inside Update, so inputs stay on the program goroutine.
type scheduler struct {
	deferred    []func()
	flushQueued bool
	timers      map[int]func()
	nextID      int
	cmds        []tea.Cmd
}

var _ eventloop.Scheduler = (*scheduler)(nil)

func newScheduler() *scheduler {
	return &scheduler{timers: make(map[int]func())}
}

func (s *scheduler) Defer(fn func()) {
	s.deferred = append(s.deferred, fn)
	if s.flushQueued {
		return
	}
	s.flushQueued = true
	s.cmds = append(s.cmds, func() tea.Msg { return flushMsg{} })
}

func (s *scheduler) AfterFunc(d time.Duration, fn func()) eventloop.Timer {
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} }))
	return &teaTimer{s: s, id: id}
}

// flush runs the queued tasks. Tasks deferred while flushing wait for the
// next flushMsg.
func (s *scheduler) flush() {
	tasks := s.deferred
	s.deferred = nil
	s.flushQueued = false
	for _, fn := range tasks {
		fn()
	}
}

func (s *scheduler) fire(id int) {
	fn, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	fn()
}

// pending is the number of live timers.
func (s *scheduler) pending() int {
	return len(s.timers)
}

// drain returns the commands queued since the last call.
func (s *scheduler) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

type teaTimer struct {
	s  *scheduler
	id int
}

// Stop forgets the timer. Its tick still arrives but finds nothing to run.
func (t *teaTimer) Stop() bool {
	if _, ok := t.s.timers[t.id]; !ok {
		return false
	}
	delete(t.s.timers, t.id)
	return true
}
