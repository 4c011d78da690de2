package script

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/numinput/internal/config"
	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
	"github.com/alexisbeaulieu97/numinput/internal/logger"
)

// NewLiveRunner creates the input described by field on loop. Events are
// replayed with RunLive while the loop runs; waits take real time.
func NewLiveRunner(field config.Field, loop *eventloop.Loop, log *logger.Logger) (*Runner, error) {
	timers := &trackedScheduler{Scheduler: loop}
	r := &Runner{loop: loop, timers: timers, now: time.Now}
	if err := r.init(field, timers, log); err != nil {
		return nil, err
	}
	return r, nil
}

// RunLive replays events on the runner's loop. Each event runs as one loop
// task and its entry is recorded once the deferred work it queued has run.
// Hold timers fire on the wall clock, so a wait reports the steps taken
// while it slept.
func (r *Runner) RunLive(ctx context.Context, events []Event) ([]Entry, error) {
	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		if err := r.call(ctx, func() {
			r.emitted = nil
			r.dispatch(ev)
		}); err != nil {
			return entries, err
		}

		if ev.Command == CmdWait {
			select {
			case <-time.After(ev.Wait):
			case <-ctx.Done():
				return entries, ctx.Err()
			}
		}

		var entry Entry
		if err := r.call(ctx, func() { entry = r.record(ev) }); err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// call runs fn on the loop and waits for it.
func (r *Runner) call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	r.loop.Post(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// trackedScheduler counts timers that have neither fired nor been stopped.
type trackedScheduler struct {
	eventloop.Scheduler
	live atomic.Int64
}

func (s *trackedScheduler) AfterFunc(d time.Duration, fn func()) eventloop.Timer {
	t := &trackedTimer{owner: s}
	s.live.Add(1)
	t.inner = s.Scheduler.AfterFunc(d, func() {
		t.settle()
		fn()
	})
	return t
}

// Live reports the outstanding timers.
func (s *trackedScheduler) Live() int {
	return int(s.live.Load())
}

type trackedTimer struct {
	owner *trackedScheduler
	inner eventloop.Timer
	done  atomic.Bool
}

func (t *trackedTimer) Stop() bool {
	stopped := t.inner.Stop()
	t.settle()
	return stopped
}

func (t *trackedTimer) settle() {
	if t.done.CompareAndSwap(false, true) {
		t.owner.live.Add(-1)
	}
}
