package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/numinput/internal/components"
	"github.com/alexisbeaulieu97/numinput/internal/config"
	"github.com/alexisbeaulieu97/numinput/internal/logger"
	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// Result is the final state of one field when the program ends.
type Result struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
	Text  string `yaml:"text"`
}

// field pairs a number input with the text editor that hosts it.
type field struct {
	name       string
	label      string
	hint       string
	controlled bool
	input      *numberinput.NumberInput
	editor     textinput.Model
	// selected mirrors a select-all; the next edit replaces the whole text.
	selected bool
	pressed  *numeric.Direction
}

// SetCursor implements numberinput.Cursor.
func (f *field) SetCursor(pos int) {
	f.selected = false
	f.editor.SetCursor(pos)
}

// SelectAll implements numberinput.Cursor.
func (f *field) SelectAll() {
	f.selected = utf8.RuneCountInString(f.editor.Value()) > 0
	f.editor.CursorEnd()
}

// activity is the feedback line shared by every field's callbacks.
type activity struct {
	notice *components.Alert
	last   string
}

// Model is the Bubble Tea model of the interactive field demo.
type Model struct {
	title  string
	fields []*field
	focus  int
	sched  *scheduler
	feed   *activity
	log    *logger.Logger

	width    int
	height   int
	quitting bool
}

// NewModel builds one input per field of doc. The first enabled field takes
// focus.
func NewModel(doc *config.Document, log *logger.Logger) (Model, error) {
	if doc == nil || len(doc.Fields) == 0 {
		return Model{}, fmt.Errorf("no fields to show")
	}

	m := Model{
		title: doc.Name,
		sched: newScheduler(),
		feed:  &activity{},
		log:   log,
		focus: -1,
		width: 80,
	}

	for _, def := range doc.Fields {
		f, err := m.newField(def)
		if err != nil {
			return Model{}, err
		}
		m.fields = append(m.fields, f)
	}

	m.resizeEditors()
	if next := m.nextFocusable(-1, 1); next >= 0 {
		m.focusField(next)
	}
	m.feed.notice = components.InfoAlert("tab to switch fields, arrows to step, esc to quit")
	return m, nil
}

func (m Model) newField(def config.Field) (*field, error) {
	cfg, err := def.NumericConfig()
	if err != nil {
		return nil, err
	}
	value, defaultValue, controlled, err := def.InitialValues()
	if err != nil {
		return nil, err
	}

	f := &field{
		name:       def.Name,
		label:      def.DisplayLabel(),
		controlled: controlled,
		editor:     textinput.New(),
	}
	f.editor.Prompt = ""
	f.editor.Cursor.SetMode(cursor.CursorStatic)

	feed := m.feed
	handlers := numberinput.Handlers{
		OnChange: func(v numeric.Value) {
			if f.controlled {
				f.input.SetValue(v)
			}
		},
		OnValueChange: func(vc numberinput.ValueChange) {
			feed.last = fmt.Sprintf("%s: %s %q", f.name, vc.Source, vc.Values.FormattedValue)
		},
		OnMinReached: func() {
			feed.notice = components.WarningAlert(fmt.Sprintf("%s reached its minimum", f.label))
		},
		OnMaxReached: func() {
			feed.notice = components.WarningAlert(fmt.Sprintf("%s reached its maximum", f.label))
		},
	}

	opts := []numberinput.Option{
		numberinput.WithScheduler(m.sched),
		numberinput.WithLogger(m.log.WithFields(map[string]any{"field": def.Name})),
		numberinput.WithHandlers(handlers),
		numberinput.WithCursor(f),
	}
	if controlled {
		opts = append(opts, numberinput.WithValue(value))
	} else {
		opts = append(opts, numberinput.WithDefaultValue(defaultValue))
	}
	f.input = numberinput.New(cfg, opts...)
	f.editor.SetValue(f.input.Text())

	if f.input.Mode() == numeric.ModeBigInt {
		f.hint = "bigint"
	}
	return f, nil
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return m.sched.drain()
}

// Results reports every field's value.
func (m Model) Results() []Result {
	results := make([]Result, 0, len(m.fields))
	for _, f := range m.fields {
		v := f.input.Value()
		results = append(results, Result{
			Name:  f.name,
			Kind:  v.Kind().String(),
			Value: v.String(),
			Text:  f.input.Text(),
		})
	}
	return results
}

// Focused returns the name of the focused field, or "" when none is.
func (m Model) Focused() string {
	if m.focus < 0 {
		return ""
	}
	return m.fields[m.focus].name
}

// Notice returns the current feedback alert.
func (m Model) Notice() *components.Alert {
	return m.feed.notice
}

// LastChange describes the most recent value change notification.
func (m Model) LastChange() string {
	return m.feed.last
}

// Close releases every input's timers.
func (m Model) Close() {
	for _, f := range m.fields {
		f.input.Close()
	}
}

func (m *Model) focusField(i int) tea.Cmd {
	if i == m.focus {
		return nil
	}
	if m.focus >= 0 {
		prev := m.fields[m.focus]
		prev.input.Blur()
		prev.editor.Blur()
		prev.selected = false
	}
	m.focus = i
	if i < 0 {
		return nil
	}
	f := m.fields[i]
	cmd := f.editor.Focus()
	f.input.Focus()
	return cmd
}

// nextFocusable walks from i in steps of delta, wrapping, and skips disabled
// fields. It returns -1 when nothing can take focus.
func (m Model) nextFocusable(i, delta int) int {
	n := len(m.fields)
	for j := 0; j < n; j++ {
		i = ((i+delta)%n + n) % n
		if !m.fields[i].input.State().Disabled {
			return i
		}
	}
	return -1
}

// resizeEditors fits the editors inside the field frames, keeping a cell
// for the caret.
func (m Model) resizeEditors() {
	for _, f := range m.fields {
		f.editor.Width = m.fieldWidth() - 1
	}
}

// syncEditors copies the inputs' display text into their editors.
func (m Model) syncEditors() {
	for _, f := range m.fields {
		if text := f.input.Text(); f.editor.Value() != text {
			f.editor.SetValue(text)
		}
	}
}
