package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numinput/internal/numeric"
)

type checkOptions struct {
	configPath string
}

func newCheckCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a field document and list its fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Field document (defaults to the built-in order form)")

	return cmd
}

func runCheck(cmd *cobra.Command, rootFlags *rootFlags, opts *checkOptions) error {
	log, err := rootFlags.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	doc, err := loadDocument(opts.configPath)
	if err != nil {
		return newCommandError("check", "loading the field document", err, "Fix the reported field and run the check again.")
	}
	log.Debug("document valid", "name", doc.Name, "fields", len(doc.Fields))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD", "MODE", "RANGE", "STEP", "CLAMP", "FLAGS")
	for _, f := range doc.Fields {
		cfg, err := f.NumericConfig()
		if err != nil {
			return err
		}
		t.Row(f.Name, f.NumericMode().String(), describeRange(cfg), describeStep(cfg), string(cfg.ClampBehavior), describeFlags(cfg))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d field(s) OK\n", doc.Name, len(doc.Fields))
	_, err = fmt.Fprintln(out, t.Render())
	return err
}

func describeRange(cfg numeric.Config) string {
	lo, hi := "-inf", "+inf"
	if !cfg.Min.IsEmpty() {
		lo = cfg.Min.String()
	}
	if !cfg.Max.IsEmpty() {
		hi = cfg.Max.String()
	}
	return fmt.Sprintf("[%s, %s]", lo, hi)
}

func describeStep(cfg numeric.Config) string {
	step := "1"
	if !cfg.Step.IsEmpty() {
		step = cfg.Step.String()
	}
	if cfg.HoldEnabled() {
		step += fmt.Sprintf(" (hold %s)", cfg.StepHoldDelay)
	}
	return step
}

func describeFlags(cfg numeric.Config) string {
	var flags []string
	if !cfg.AllowNegative {
		flags = append(flags, "no-negative")
	}
	if !cfg.AllowDecimal {
		flags = append(flags, "integer")
	}
	if cfg.ReadOnly {
		flags = append(flags, "read-only")
	}
	if cfg.Disabled {
		flags = append(flags, "disabled")
	}
	if cfg.SelectAllOnFocus {
		flags = append(flags, "select-all")
	}
	return strings.Join(flags, ",")
}
