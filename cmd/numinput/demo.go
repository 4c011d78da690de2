package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/numinput/internal/logger"
	"github.com/alexisbeaulieu97/numinput/internal/tui"
)

type demoOptions struct {
	configPath string
	logFile    string
}

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newDemoCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Edit the fields of a document in an interactive terminal UI",
		Long: `Launch a terminal UI with one number input per field. Type to edit, use the
arrow keys or click the step controls, and hold a control to repeat. The final
values are printed as YAML on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Field document (defaults to a built-in order form)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file; logging is off otherwise")

	return cmd
}

func runDemo(cmd *cobra.Command, rootFlags *rootFlags, opts *demoOptions) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return newCommandError("start demo", "checking the terminal", errors.New("stdin and stdout must be a terminal"), "Use 'numinput eval' to replay a script without a terminal.")
	}

	doc, err := loadDocument(opts.configPath)
	if err != nil {
		return newCommandError("start demo", "loading the field document", err, "Run 'numinput check --config <file>' to see every problem in the document.")
	}

	var log *logger.Logger
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return newCommandError("start demo", "opening the log file", err, "Choose a writable --log-file path.")
		}
		defer file.Close()
		if log, err = rootFlags.newLogger(file); err != nil {
			return err
		}
	}

	model, err := tui.NewModel(doc, log)
	if err != nil {
		return newCommandError("start demo", "building the fields", err, "Check the field document.")
	}
	log.Info("demo started", "document", doc.Name, "fields", len(doc.Fields))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	result.Close()
	log.Info("demo finished")

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(map[string]any{"fields": result.Results()})
}
