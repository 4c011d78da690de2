package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/numinput/internal/config"
	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
	"github.com/alexisbeaulieu97/numinput/internal/logger"
	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// Entry is the trace of one replayed event.
type Entry struct {
	Line    int      `yaml:"line"`
	Event   string   `yaml:"event"`
	Elapsed string   `yaml:"elapsed"`
	Text    string   `yaml:"text"`
	Kind    string   `yaml:"kind"`
	Value   string   `yaml:"value"`
	Emitted []string `yaml:"emitted,omitempty"`
}

// Runner drives one input, acting as its host text field. A runner built by
// NewRunner replays on a manual clock; one built by NewLiveRunner replays on
// an event loop in real time.
type Runner struct {
	field   string
	input   *numberinput.NumberInput
	clock   *eventloop.Manual
	loop    *eventloop.Loop
	timers  *trackedScheduler
	now     func() time.Time
	start   time.Time
	caret   int
	emitted []string
	log     *logger.Logger
}

// NewRunner creates the input described by field on a manual clock.
// Controlled fields are fed back every reported value, as a host would.
func NewRunner(field config.Field, log *logger.Logger) (*Runner, error) {
	clock := eventloop.NewManual(time.Unix(0, 0).UTC())
	r := &Runner{clock: clock, now: clock.Now}
	if err := r.init(field, clock, log); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runner) init(field config.Field, sched eventloop.Scheduler, log *logger.Logger) error {
	cfg, err := field.NumericConfig()
	if err != nil {
		return err
	}
	value, defaultValue, controlled, err := field.InitialValues()
	if err != nil {
		return err
	}

	r.field = field.Name
	r.start = r.now()
	r.log = log.WithFields(map[string]any{"field": field.Name})

	handlers := numberinput.Handlers{
		OnChange: func(v numeric.Value) {
			r.emit("change %s", describe(v))
			if controlled {
				r.input.SetValue(v)
			}
		},
		OnValueChange: func(vc numberinput.ValueChange) {
			r.emit("value_change %s %q", vc.Source, vc.Values.FormattedValue)
		},
		OnMinReached: func() { r.emit("min_reached") },
		OnMaxReached: func() { r.emit("max_reached") },
		OnFocus:      func() { r.emit("focus") },
		OnBlur:       func() { r.emit("blur") },
	}

	opts := []numberinput.Option{
		numberinput.WithScheduler(sched),
		numberinput.WithLogger(r.log),
		numberinput.WithHandlers(handlers),
		numberinput.WithCursor(r),
	}
	if controlled {
		opts = append(opts, numberinput.WithValue(value))
	} else {
		opts = append(opts, numberinput.WithDefaultValue(defaultValue))
	}
	r.input = numberinput.New(cfg, opts...)
	r.caret = utf8.RuneCountInString(r.input.Text())
	return nil
}

// Input exposes the driven input.
func (r *Runner) Input() *numberinput.NumberInput {
	return r.input
}

// Run replays events in order and returns one entry per event.
func (r *Runner) Run(events []Event) []Entry {
	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, r.Apply(ev))
	}
	return entries
}

// Apply replays a single event on the manual clock.
func (r *Runner) Apply(ev Event) Entry {
	r.emitted = nil
	r.dispatch(ev)
	if r.clock != nil {
		r.clock.Flush()
	}
	return r.record(ev)
}

func (r *Runner) dispatch(ev Event) {
	switch ev.Command {
	case CmdType:
		if r.input.ChangeText(ev.Text) {
			r.caret = utf8.RuneCountInString(r.input.Text())
		} else {
			r.emit("rejected %q", ev.Text)
		}
	case CmdFocus:
		r.input.Focus()
	case CmdBlur:
		r.input.Blur()
	case CmdUp:
		r.input.Handle().Increment()
	case CmdDown:
		r.input.Handle().Decrement()
	case CmdKey:
		r.key(ev)
	case CmdPress:
		r.input.StepPointerDown(ev.Direction)
	case CmdRelease:
		r.input.StepPointerUp()
	case CmdLeave:
		r.input.StepPointerLeave()
	case CmdWait:
		if r.clock != nil {
			r.clock.Advance(ev.Wait)
		}
	}
}

func (r *Runner) record(ev Event) Entry {
	elapsed := r.now().Sub(r.start)
	if r.loop != nil {
		elapsed = elapsed.Round(10 * time.Millisecond)
	}

	value := r.input.Value()
	entry := Entry{
		Line:    ev.Line,
		Event:   ev.String(),
		Elapsed: elapsed.String(),
		Text:    r.input.Text(),
		Kind:    value.Kind().String(),
		Value:   value.String(),
		Emitted: r.emitted,
	}
	r.log.Debug("script event applied", "line", ev.Line, "event", entry.Event, "text", entry.Text)
	return entry
}

// Close tears the input down. A live runner's loop must still be running.
func (r *Runner) Close() {
	if r.loop == nil {
		r.input.Close()
		return
	}
	done := make(chan struct{})
	r.loop.Post(func() {
		r.input.Close()
		close(done)
	})
	<-done
}

// Pending reports live timers, which must be zero once every hold is released.
func (r *Runner) Pending() int {
	if r.timers != nil {
		return r.timers.Live()
	}
	return r.clock.Pending()
}

// SetCursor implements numberinput.Cursor.
func (r *Runner) SetCursor(pos int) {
	r.caret = pos
}

// SelectAll implements numberinput.Cursor. The runner has no selection; the
// caret moves to the end.
func (r *Runner) SelectAll() {
	r.caret = utf8.RuneCountInString(r.input.Text())
}

func (r *Runner) key(ev Event) {
	caret := r.caret
	if ev.Caret >= 0 {
		caret = ev.Caret
	}
	if r.input.KeyDown(ev.Key, caret, caret) {
		return
	}
	if ev.Key != numberinput.KeyBackspace {
		return
	}

	// Default editing: drop the rune left of the caret.
	runes := []rune(r.input.Text())
	caret = min(caret, len(runes))
	if caret <= 0 {
		return
	}
	next := string(runes[:caret-1]) + string(runes[caret:])
	if r.input.ChangeText(next) {
		r.caret = caret - 1
	} else {
		r.emit("rejected %q", next)
	}
}

func (r *Runner) emit(format string, args ...any) {
	r.emitted = append(r.emitted, fmt.Sprintf(format, args...))
}

func describe(v numeric.Value) string {
	if v.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s(%s)", v.Kind(), v)
}

// WriteTable prints entries as a bordered table.
func WriteTable(w io.Writer, entries []Entry) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LINE", "EVENT", "ELAPSED", "TEXT", "VALUE", "EMITTED")
	for _, e := range entries {
		value := e.Kind
		if e.Value != "" {
			value = fmt.Sprintf("%s(%s)", e.Kind, e.Value)
		}
		t.Row(strconv.Itoa(e.Line), e.Event, e.Elapsed, strconv.Quote(e.Text), value, strings.Join(e.Emitted, "; "))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
