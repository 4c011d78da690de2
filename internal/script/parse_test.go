package script

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	src := `# checkout quantity
focus
type 12
type "1 2"
type ""

key ArrowUp
key backspace 0
press down
wait 350ms
release
leave
up
down
blur
`
	events, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, events, 13)

	require.Equal(t, Event{Line: 2, Command: CmdFocus, Caret: -1}, events[0])
	require.Equal(t, "12", events[1].Text)
	require.Equal(t, "1 2", events[2].Text)
	require.Equal(t, "", events[3].Text)
	require.Equal(t, numberinput.KeyArrowUp, events[4].Key)
	require.Equal(t, -1, events[4].Caret)
	require.Equal(t, numberinput.KeyBackspace, events[5].Key)
	require.Equal(t, 0, events[5].Caret)
	require.Equal(t, numeric.DirectionDown, events[6].Direction)
	require.Equal(t, 350*time.Millisecond, events[7].Wait)
	require.Equal(t, 8, events[5].Line)
	require.Equal(t, CmdBlur, events[12].Command)

	require.Equal(t, `type "1 2"`, events[2].String())
	require.Equal(t, "key Backspace 0", events[5].String())
	require.Equal(t, "press down", events[6].String())
	require.Equal(t, "wait 350ms", events[7].String())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"jump":             1,
		"focus\nfocus now": 2,
		"press sideways":   1,
		"press":            1,
		"wait":             1,
		"wait soon":        1,
		"wait -1s":         1,
		"key F1":           1,
		"key":              1,
		"key up 1 2":       1,
		"key backspace x":  1,
	}

	for src, line := range cases {
		_, err := Parse(strings.NewReader(src))
		var scriptErr *numerrors.ScriptError
		require.ErrorAs(t, err, &scriptErr, "script %q", src)
		require.Equal(t, line, scriptErr.Line, "script %q", src)
	}
}
