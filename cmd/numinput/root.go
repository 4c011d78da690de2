package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numinput/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "numinput",
		Short:         "numinput exercises a numeric text field from a terminal or a script",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.validate()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newEvalCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) validate() error {
	switch f.logFormat {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", f.logFormat)
	}
}

// newLogger builds the command logger writing to w.
func (f *rootFlags) newLogger(w io.Writer) (*logger.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.logFormat != "json",
		Writer:        w,
	})
}
