// SPDX-License-Identifier: MIT

// Package demo builds and prints a reproducible example of multiplying a
// matrix by the transpose of another.
//
// Flow (strictly sequential):
//
//	Validate shapes → allocate A, B → fill A, B → C = A·Bᵗ → render A, B, C
//
// Fill patterns are index-derived and deterministic:
//
//	A[i][j] = i + j
//	B[i][j] = i + 2 + j
//
// With the default 2×4 and 3×4 shapes:
//
//	A = [[0 1 2 3] [1 2 3 4]]
//	B = [[2 3 4 5] [3 4 5 6] [4 5 6 7]]
//	C = [[26 32 38] [40 50 60]]
package demo

import (
	"fmt"

	"github.com/Zhang-joey/tiny-gpu-next/matrix"
)

// offsetB is added to every element of B on top of i + j.
const offsetB = 2

// Result holds the two filled operands and their transpose product.
type Result struct {
	A *matrix.Dense // rA × cA, A[i][j] = i + j
	B *matrix.Dense // rB × cB, B[i][j] = i + 2 + j
	C *matrix.Dense // rA × rB, C = A·Bᵗ
}

// FillA writes A[i][j] = i + j into every element of m.
func FillA(m *matrix.Dense) error {
	return m.Fill(func(i, j int) float64 { return float64(i + j) })
}

// FillB writes B[i][j] = i + 2 + j into every element of m.
func FillB(m *matrix.Dense) error {
	return m.Fill(func(i, j int) float64 { return float64(i + offsetB + j) })
}

// Build validates cfg, allocates and fills A and B, and computes C = A·Bᵗ.
//
// Errors:
//   - ErrInvalidShape when cfg fails Validate; nothing is allocated in that case.
func Build(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := matrix.NewDense(cfg.A.Rows, cfg.A.Cols)
	if err != nil {
		return nil, fmt.Errorf("allocate A: %w", err)
	}
	b, err := matrix.NewDense(cfg.B.Rows, cfg.B.Cols)
	if err != nil {
		return nil, fmt.Errorf("allocate B: %w", err)
	}

	if err = FillA(a); err != nil {
		return nil, fmt.Errorf("fill A: %w", err)
	}
	if err = FillB(b); err != nil {
		return nil, fmt.Errorf("fill B: %w", err)
	}

	c, err := matrix.MulTransposed(a, b)
	if err != nil {
		return nil, fmt.Errorf("compute C: %w", err)
	}

	return &Result{A: a, B: b, C: c}, nil
}
