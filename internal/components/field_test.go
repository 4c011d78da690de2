package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

func TestNumberFieldRendersTextAndControls(t *testing.T) {
	state := numberinput.RenderState{Text: "$1,234.5", Value: numeric.Float(1234.5)}

	view, layout := NewNumberField("Amount", state).Render()

	assert.Contains(t, view, "Amount")
	assert.Contains(t, view, "$1,234.5")
	assert.Contains(t, view, UpGlyph)
	assert.Contains(t, view, DownGlyph)
	assert.Equal(t, 4, layout.Height)
	assert.Equal(t, 1, layout.UpRow)
	assert.Equal(t, 3, layout.DownRow)
	assert.Equal(t, DefaultFieldWidth+4, layout.ControlsX)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, layout.Height)
	assert.Contains(t, lines[layout.UpRow], UpGlyph)
	assert.Contains(t, lines[layout.DownRow], DownGlyph)
}

func TestNumberFieldWithoutLabel(t *testing.T) {
	_, layout := NewNumberField("", numberinput.RenderState{}).WithWidth(10).Render()

	assert.Equal(t, 0, layout.UpRow)
	assert.Equal(t, 2, layout.DownRow)
	assert.Equal(t, 14, layout.ControlsX)
}

func TestNumberFieldFrameFollowsState(t *testing.T) {
	focused := NewNumberField("", numberinput.RenderState{Focused: true}).View()
	blurred := NewNumberField("", numberinput.RenderState{}).View()

	assert.Contains(t, focused, lipgloss.ThickBorder().TopLeft)
	assert.Contains(t, blurred, lipgloss.RoundedBorder().TopLeft)

	readOnly := NewNumberField("Qty", numberinput.RenderState{ReadOnly: true, Focused: true}).View()
	assert.Contains(t, readOnly, "(read-only)")
	assert.NotContains(t, readOnly, lipgloss.ThickBorder().TopLeft)

	disabled := NewNumberField("Qty", numberinput.RenderState{Disabled: true}).WithHint("bigint").View()
	assert.Contains(t, disabled, "(bigint, disabled)")
}

func TestNumberFieldPrefersRenderedContent(t *testing.T) {
	view := NewNumberField("", numberinput.RenderState{Text: "12"}).WithContent("> 12_").View()
	assert.Contains(t, view, "> 12_")
}

func TestFieldLayoutControlAt(t *testing.T) {
	layout := FieldLayout{Height: 4, ControlsX: 10, ControlsWidth: 3, UpRow: 1, DownRow: 3}

	dir, ok := layout.ControlAt(11, 1)
	require.True(t, ok)
	assert.Equal(t, numeric.DirectionUp, dir)

	dir, ok = layout.ControlAt(12, 3)
	require.True(t, ok)
	assert.Equal(t, numeric.DirectionDown, dir)

	_, ok = layout.ControlAt(11, 2)
	assert.False(t, ok)
	_, ok = layout.ControlAt(9, 1)
	assert.False(t, ok)
	_, ok = layout.ControlAt(13, 1)
	assert.False(t, ok)
}

func TestStepControlStates(t *testing.T) {
	up := UpControl()
	assert.Equal(t, 3, up.Width())
	assert.Contains(t, up.View(), UpGlyph)

	assert.True(t, up.WithDisabled(true).buildStyle().GetFaint())
	assert.True(t, up.WithDisabled(false).WithPressed(true).buildStyle().GetBold())
	assert.False(t, DownControl().buildStyle().GetBold())
}

func TestAlerts(t *testing.T) {
	rejected := ErrorAlert(`"15" is out of range`)
	assert.Equal(t, AlertVariantError, rejected.Variant())
	assert.Contains(t, rejected.View(), "Rejected:")
	assert.Contains(t, rejected.View(), `"15" is out of range`)
	assert.Contains(t, rejected.View(), "[x]")

	limit := WarningAlert("max reached")
	assert.Contains(t, limit.View(), "Limit:")

	info := InfoAlert("tab to switch fields")
	assert.Equal(t, "tab to switch fields", info.Message())
	assert.NotContains(t, info.View(), "[x]")
}
