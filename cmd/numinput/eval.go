package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/numinput/internal/config"
	"github.com/alexisbeaulieu97/numinput/internal/eventloop"
	"github.com/alexisbeaulieu97/numinput/internal/logger"
	"github.com/alexisbeaulieu97/numinput/internal/script"
	"github.com/alexisbeaulieu97/numinput/pkg/diff"
)

type evalOptions struct {
	configPath string
	field      string
	scriptPath string
	format     string
	expectPath string
	realtime   bool
}

func newEvalCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Replay an event script against one field and print the trace",
		Long: `Replay keystrokes, focus changes, steps and held controls against a field on a
virtual clock. Each script line is one event:

  type <text>        replace the field text ("type" with quotes keeps spaces)
  focus | blur
  up | down          step through the imperative handle
  key <name> [caret] ArrowUp, ArrowDown or Backspace at a caret position
  press up|down      press a step control
  release | leave    release it or move the pointer away
  wait <duration>    advance the clock, firing hold timers

With --expect, the YAML trace is compared against a golden file written earlier
with --format yaml, and any difference is printed as a diff.

With --realtime the script runs on a live event loop: waits sleep and held
controls repeat on the wall clock, so step counts may vary between runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Field document (defaults to the built-in order form)")
	cmd.Flags().StringVarP(&opts.field, "field", "f", "", "Field to drive; optional when the document has one field")
	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "-", "Event script, or - for stdin")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "table", "Output format: table or yaml")
	cmd.Flags().StringVar(&opts.expectPath, "expect", "", "Golden YAML trace to compare against")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "Replay on a live event loop instead of a virtual clock")

	return cmd
}

func runEval(cmd *cobra.Command, rootFlags *rootFlags, opts *evalOptions) error {
	if opts.format != "table" && opts.format != "yaml" {
		return newCommandError("evaluate", "checking flags", fmt.Errorf("unknown format %q", opts.format), "Use --format table or --format yaml.")
	}

	log, err := rootFlags.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	doc, err := loadDocument(opts.configPath)
	if err != nil {
		return newCommandError("evaluate", "loading the field document", err, "Run 'numinput check --config <file>' to see every problem in the document.")
	}
	field, err := selectField(doc, opts.field)
	if err != nil {
		return newCommandError("evaluate", "selecting the field", err, "Pass --field with one of the document's field names.")
	}

	events, err := readScript(cmd, opts.scriptPath)
	if err != nil {
		return newCommandError("evaluate", "reading the script", err, "Fix the script line shown above.")
	}

	replay := replayManual
	if opts.realtime {
		replay = replayLive
	}
	entries, pending, err := replay(cmd.Context(), field, events, log)
	if err != nil {
		return newCommandError("evaluate", fmt.Sprintf("replaying field %q", field.Name), err, "Check the field document.")
	}
	if pending > 0 {
		log.Warn("timers still pending after close", "count", pending)
	}
	log.Debug("script replayed", "field", field.Name, "events", len(events))

	out := cmd.OutOrStdout()
	if opts.expectPath != "" {
		return compareTrace(out, opts.expectPath, field.Name, entries)
	}
	if opts.format == "yaml" {
		data, err := encodeTrace(field.Name, entries)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	return script.WriteTable(out, entries)
}

func replayManual(_ context.Context, field config.Field, events []script.Event, log *logger.Logger) ([]script.Entry, int, error) {
	runner, err := script.NewRunner(field, log)
	if err != nil {
		return nil, 0, err
	}
	entries := runner.Run(events)
	runner.Close()
	return entries, runner.Pending(), nil
}

func replayLive(ctx context.Context, field config.Field, events []script.Event, log *logger.Logger) ([]script.Entry, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := eventloop.NewLoop()
	runner, err := script.NewLiveRunner(field, loop, log)
	if err != nil {
		return nil, 0, err
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	entries, err := runner.RunLive(ctx, events)
	if err != nil {
		return entries, 0, err
	}
	runner.Close()
	return entries, runner.Pending(), nil
}

func encodeTrace(field string, entries []script.Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"field": field, "trace": entries}); err != nil {
		return nil, fmt.Errorf("encode trace: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode trace: %w", err)
	}
	return buf.Bytes(), nil
}

// compareTrace checks the trace against a golden file and prints the
// difference when they disagree.
func compareTrace(out io.Writer, path, field string, entries []script.Entry) error {
	expected, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("evaluate", "reading the expected trace", err, "Write one with 'numinput eval --format yaml > <file>'.")
	}
	actual, err := encodeTrace(field, entries)
	if err != nil {
		return err
	}

	if d := diff.Lines(string(expected), string(actual), path, "trace"); d != "" {
		fmt.Fprint(out, d)
		return newCommandError("evaluate", "comparing the trace", errors.New("trace differs from "+path), "Review the diff; regenerate the file if the new behaviour is intended.")
	}
	_, err = fmt.Fprintf(out, "trace matches %s (%d events)\n", path, len(entries))
	return err
}
