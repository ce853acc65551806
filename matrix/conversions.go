// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense, nested row slices and
// gonum.org/v1/gonum/mat matrices.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows constructs a Dense from a non-empty rectangular [][]float64.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Time Complexity: O(r*c)
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(r, c, flat)
}

// ToRows returns m as freshly allocated nested row slices.
// Time Complexity: O(r*c)
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToGonum copies any Matrix into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil input; At errors are propagated for custom implementations.
//
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)
		return mat.NewDense(rows, cols, buf), nil
	}

	buf := make([]float64, rows*cols)
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if buf[i*cols+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToGonum: %w", err)
			}
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies a gonum matrix (including views such as T()) into a Dense.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrInvalidDimensions for empty shapes; ErrNaNInf for non-finite values.
//
// Time Complexity: O(r*c)
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	rows, cols := src.Dims()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	if err = res.Fill(src.At); err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return res, nil
}
