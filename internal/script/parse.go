// Package script replays line-oriented event scripts against a numeric input
// on a virtual clock and records what the input reported.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/numinput/internal/numberinput"
	"github.com/alexisbeaulieu97/numinput/internal/numeric"
	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

// Command is the verb of a script line.
type Command string

const (
	CmdType    Command = "type"
	CmdFocus   Command = "focus"
	CmdBlur    Command = "blur"
	CmdUp      Command = "up"
	CmdDown    Command = "down"
	CmdKey     Command = "key"
	CmdPress   Command = "press"
	CmdRelease Command = "release"
	CmdLeave   Command = "leave"
	CmdWait    Command = "wait"
)

var (
	errMissingArgument = errors.New("missing argument")
	errExtraArgument   = errors.New("unexpected argument")
	errUnknownCommand  = errors.New("unknown command")
)

var keyAliases = map[string]numberinput.Key{
	"arrowup":   numberinput.KeyArrowUp,
	"up":        numberinput.KeyArrowUp,
	"arrowdown": numberinput.KeyArrowDown,
	"down":      numberinput.KeyArrowDown,
	"backspace": numberinput.KeyBackspace,
}

// Event is one parsed script line.
type Event struct {
	Line      int
	Command   Command
	Text      string
	Key       numberinput.Key
	Caret     int
	Direction numeric.Direction
	Wait      time.Duration
}

// String renders the event the way it is written in a script.
func (e Event) String() string {
	switch e.Command {
	case CmdType:
		return fmt.Sprintf("type %q", e.Text)
	case CmdKey:
		if e.Caret >= 0 {
			return fmt.Sprintf("key %s %d", e.Key, e.Caret)
		}
		return fmt.Sprintf("key %s", e.Key)
	case CmdPress:
		return fmt.Sprintf("press %s", e.Direction)
	case CmdWait:
		return fmt.Sprintf("wait %s", e.Wait)
	default:
		return string(e.Command)
	}
}

// Parse reads a script. Blank lines and lines starting with '#' are skipped.
//
//	type <text>            replace the field text ("quoted" for spaces or empty)
//	focus | blur
//	up | down              step through the imperative handle
//	key <name> [caret]     ArrowUp, ArrowDown or Backspace
//	press up|down          press a step control
//	release | leave        release it or move the pointer off it
//	wait <duration>        advance the clock
func Parse(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		ev, err := parseLine(line, raw)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseLine(line int, raw string) (Event, error) {
	verb, rest, _ := strings.Cut(raw, " ")
	rest = strings.TrimSpace(rest)
	ev := Event{Line: line, Command: Command(strings.ToLower(verb)), Caret: -1}
	fail := func(err error) (Event, error) {
		return Event{}, numerrors.NewScriptError(line, verb, err)
	}

	switch ev.Command {
	case CmdType:
		ev.Text = rest
		if unquoted, err := strconv.Unquote(rest); err == nil {
			ev.Text = unquoted
		}
	case CmdFocus, CmdBlur, CmdUp, CmdDown, CmdRelease, CmdLeave:
		if rest != "" {
			return fail(errExtraArgument)
		}
	case CmdKey:
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return fail(errMissingArgument)
		}
		if len(fields) > 2 {
			return fail(errExtraArgument)
		}
		key, ok := keyAliases[strings.ToLower(fields[0])]
		if !ok {
			return fail(fmt.Errorf("unknown key %q", fields[0]))
		}
		ev.Key = key
		if len(fields) == 2 {
			caret, err := strconv.Atoi(fields[1])
			if err != nil || caret < 0 {
				return fail(fmt.Errorf("invalid caret %q", fields[1]))
			}
			ev.Caret = caret
		}
	case CmdPress:
		switch strings.ToLower(rest) {
		case "up":
			ev.Direction = numeric.DirectionUp
		case "down":
			ev.Direction = numeric.DirectionDown
		case "":
			return fail(errMissingArgument)
		default:
			return fail(fmt.Errorf("unknown direction %q", rest))
		}
	case CmdWait:
		if rest == "" {
			return fail(errMissingArgument)
		}
		d, err := time.ParseDuration(rest)
		if err != nil {
			return fail(err)
		}
		if d < 0 {
			return fail(fmt.Errorf("negative duration %s", rest))
		}
		ev.Wait = d
	default:
		return fail(errUnknownCommand)
	}
	return ev, nil
}
