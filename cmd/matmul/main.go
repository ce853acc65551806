// SPDX-License-Identifier: MIT

// Command matmul fills two matrices with a fixed index pattern, multiplies
// the first by the transpose of the second and prints all three.
//
// Usage:
//
//	matmul                                 # A 2x4, B 3x4, plain output
//	matmul --cols-a 8 --cols-b 8           # wider operands
//	matmul --format grid --verbose         # gonum layout, debug logs on stderr
//
// The process exits 0 on success and 1 on any error (for example when A
// and B do not share their column count). Nothing is printed to stdout
// when an error occurs.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Zhang-joey/tiny-gpu-next/demo"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd(log).Execute(); err != nil {
		log.WithError(err).Fatal("matmul failed")
	}
}

// newRootCmd wires flags onto a demo.Runner. Defaults reproduce the fixed demo.
func newRootCmd(log *logrus.Logger) *cobra.Command {
	cfg := demo.DefaultConfig()
	var (
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "matmul",
		Short:         "Print A, B and A·Bᵗ for index-patterned matrices",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			f, err := demo.ParseFormat(format)
			if err != nil {
				return err
			}
			r := demo.Runner{
				Out:    cmd.OutOrStdout(),
				Format: f,
				Log:    log.WithField("cmd", cmd.Name()),
			}
			return r.Run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.A.Rows, "rows-a", cfg.A.Rows, "rows of A")
	flags.IntVar(&cfg.A.Cols, "cols-a", cfg.A.Cols, "columns of A")
	flags.IntVar(&cfg.B.Rows, "rows-b", cfg.B.Rows, "rows of B")
	flags.IntVar(&cfg.B.Cols, "cols-b", cfg.B.Cols, "columns of B (must equal --cols-a)")
	flags.StringVar(&format, "format", string(demo.FormatPlain), "output format: plain or grid")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log each step at debug level")

	return cmd
}
