// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/Zhang-joey/tiny-gpu-next/matrix"
)

// Format selects how matrices are rendered.
type Format string

const (
	// FormatPlain prints one "[v0, v1, ...]" line per row (Dense.String).
	FormatPlain Format = "plain"
	// FormatGrid prints gonum's bracketed, column-aligned layout.
	FormatGrid Format = "grid"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatGrid:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Render writes A, then B, then C to w, each block followed by a blank line.
func Render(w io.Writer, res *Result, f Format) error {
	if res == nil {
		return fmt.Errorf("render: %w", matrix.ErrNilMatrix)
	}
	for _, m := range []*matrix.Dense{res.A, res.B, res.C} {
		if err := renderOne(w, m, f); err != nil {
			return err
		}
	}

	return nil
}

func renderOne(w io.Writer, m *matrix.Dense, f Format) error {
	var err error
	switch f {
	case FormatPlain:
		_, err = fmt.Fprintf(w, "%s\n", m)
	case FormatGrid:
		var g *mat.Dense
		if g, err = matrix.ToGonum(m); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		_, err = fmt.Fprintf(w, "%v\n\n", mat.Formatted(g, mat.Squeeze()))
	default:
		return fmt.Errorf("render %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
