// SPDX-License-Identifier: MIT

package demo

import (
	"errors"
	"fmt"

	"github.com/Zhang-joey/tiny-gpu-next/matrix"
)

// ErrInvalidShape is returned when the configured shapes cannot form A·Bᵗ:
// either a dimension is non-positive or A and B differ in column count.
// It wraps matrix.ErrInvalidShape, so errors.Is matches both sentinels.
var ErrInvalidShape = fmt.Errorf("demo: %w", matrix.ErrInvalidShape)

// ErrUnknownFormat is returned by Render and Runner.Run for an unsupported Format.
var ErrUnknownFormat = errors.New("demo: unknown output format")

// Default shapes of the demo: A is 2×4, B is 3×4, so C = A·Bᵗ is 2×3.
const (
	DefaultRowsA = 2
	DefaultColsA = 4
	DefaultRowsB = 3
	DefaultColsB = 4
)

// Shape is a row/column count pair.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Config holds the shapes of both operands.
type Config struct {
	A Shape
	B Shape
}

// DefaultConfig returns the fixed shapes the demo runs with when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		A: Shape{Rows: DefaultRowsA, Cols: DefaultColsA},
		B: Shape{Rows: DefaultRowsB, Cols: DefaultColsB},
	}
}

// Validate checks both shapes are positive and share their column count.
// It runs before anything is allocated.
func (c Config) Validate() error {
	if c.A.Rows <= 0 || c.A.Cols <= 0 {
		return fmt.Errorf("matrix A %s: %w", c.A, ErrInvalidShape)
	}
	if c.B.Rows <= 0 || c.B.Cols <= 0 {
		return fmt.Errorf("matrix B %s: %w", c.B, ErrInvalidShape)
	}
	if c.A.Cols != c.B.Cols {
		return fmt.Errorf("A %s and B %s must share column count: %w", c.A, c.B, ErrInvalidShape)
	}

	return nil
}
