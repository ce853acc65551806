// SPDX-License-Identifier: MIT

package demo

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Runner executes the demo end to end and writes the rendered matrices to Out.
type Runner struct {
	Out    io.Writer          // destination of the three rendered blocks
	Format Format             // FormatPlain when empty
	Log    logrus.FieldLogger // standard logger when nil
}

// Run validates cfg, builds A, B and C and writes them to r.Out.
// Output is buffered and written once, so a failure leaves Out untouched.
func (r *Runner) Run(cfg Config) error {
	log := r.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	format := FormatPlain
	if r.Format != "" {
		var err error
		if format, err = ParseFormat(string(r.Format)); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"a": cfg.A.String(),
		"b": cfg.B.String(),
	}).Debug("building matrices")

	res, err := Build(cfg)
	if err != nil {
		return err
	}
	rows, cols := res.C.Shape()
	log.WithFields(logrus.Fields{
		"rows": rows,
		"cols": cols,
	}).Debug("computed A·Bᵗ")

	var buf bytes.Buffer
	if err = Render(&buf, res, format); err != nil {
		return err
	}
	if _, err = r.Out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.WithField("bytes", buf.Len()).Debug("output written")

	return nil
}
