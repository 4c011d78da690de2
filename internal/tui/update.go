package tui

import (
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/numinput/internal/components"
	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditors()
	case flushMsg:
		m.sched.flush()
	case timerMsg:
		m.sched.fire(msg.id)
	case tea.KeyMsg:
		var quit bool
		m, cmd, quit = m.handleKeyPress(msg)
		if quit {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.syncEditors()
	return m, tea.Batch(cmd, m.sched.drain())
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.Close()
		m.quitting = true
		return m, nil, true
	case "tab":
		return m, m.focusField(m.nextFocusable(m.focus, 1)), false
	case "shift+tab":
		return m, m.focusField(m.nextFocusable(m.focus, -1)), false
	}

	if m.focus < 0 {
		return m, nil, false
	}
	f := m.fields[m.focus]

	switch msg.Type {
	case tea.KeyUp:
		f.keyDown(numberinput.KeyArrowUp)
		return m, nil, false
	case tea.KeyDown:
		f.keyDown(numberinput.KeyArrowDown)
		return m, nil, false
	case tea.KeyBackspace:
		if f.keyDown(numberinput.KeyBackspace) {
			return m, nil, false
		}
	}

	return m, m.edit(f, msg), false
}

// keyDown offers a key to the input with the editor's selection.
func (f *field) keyDown(key numberinput.Key) bool {
	start, end := f.selection()
	consumed := f.input.KeyDown(key, start, end)
	if consumed {
		f.selected = false
	}
	return consumed
}

func (f *field) selection() (int, int) {
	if f.selected {
		return 0, utf8.RuneCountInString(f.editor.Value())
	}
	pos := f.editor.Position()
	return pos, pos
}

// edit lets the editor apply a key and hands the resulting text to the input.
// Rejected text is rolled back.
func (m Model) edit(f *field, msg tea.KeyMsg) tea.Cmd {
	before := f.editor.Value()
	beforePos := f.editor.Position()

	var cmd tea.Cmd
	switch {
	case f.selected && (msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete):
		f.editor.SetValue("")
	case f.selected && msg.Type == tea.KeyRunes:
		f.editor.SetValue("")
		f.editor, cmd = f.editor.Update(msg)
	default:
		f.editor, cmd = f.editor.Update(msg)
	}
	f.selected = false

	after := f.editor.Value()
	if after == before {
		return cmd
	}

	if !f.input.ChangeText(after) {
		f.editor.SetValue(before)
		f.editor.SetCursor(beforePos)
		if state := f.input.State(); !state.ReadOnly && !state.Disabled {
			m.feed.notice = components.ErrorAlert(fmt.Sprintf("%s cannot be %q", f.label, after))
		}
		return cmd
	}

	// Formatting may insert or drop characters; keep the caret the same
	// distance from the end.
	if text := f.input.Text(); text != after {
		fromEnd := utf8.RuneCountInString(after) - f.editor.Position()
		f.editor.SetValue(text)
		f.editor.SetCursor(max(utf8.RuneCountInString(text)-fromEnd, 0))
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	held := m.heldField()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		i, dir, ok := m.controlAt(msg.X, msg.Y)
		if !ok || m.fields[i].input.State().Disabled {
			return
		}
		if held != nil {
			held.pressed = nil
			held.input.StepPointerUp()
		}
		m.focusField(i)
		f := m.fields[i]
		f.pressed = &dir
		f.input.StepPointerDown(dir)
	case tea.MouseActionRelease:
		if held != nil {
			held.pressed = nil
			held.input.StepPointerUp()
		}
	case tea.MouseActionMotion:
		if held == nil {
			return
		}
		i, dir, ok := m.controlAt(msg.X, msg.Y)
		if !ok || m.fields[i] != held || dir != *held.pressed {
			held.pressed = nil
			held.input.StepPointerLeave()
		}
	}
}

func (m Model) heldField() *field {
	for _, f := range m.fields {
		if f.pressed != nil {
			return f
		}
	}
	return nil
}

// controlAt finds the step control drawn at a screen cell.
func (m Model) controlAt(x, y int) (int, numeric.Direction, bool) {
	for i, placed := range m.layout() {
		if y < placed.top || y >= placed.top+placed.FieldLayout.Height {
			continue
		}
		dir, ok := placed.ControlAt(x, y-placed.top)
		return i, dir, ok
	}
	return 0, 0, false
}
