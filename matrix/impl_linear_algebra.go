// SPDX-License-Identifier: MIT
// Package matrix provides products on any Matrix implementation:
// matrix multiplication, transpose, the transpose product a·bᵗ and the
// vector dot product. All functions perform strict fail-fast validation
// and return package sentinels wrapped with the operation tag.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; other implementations go
//     through At/Set with the same loop order, so both paths produce
//     bitwise-identical results.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opMulTransposed = "MulTransposed"
	opDot           = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns Σ_k x[k]*y[k], accumulated in increasing k.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != len(y).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, fmt.Errorf("len %d vs %d: %w", len(x), len(y), ErrDimensionMismatch))
	}

	return dot(x, y), nil
}

// dot assumes len(x) == len(y).
func dot(x, y []float64) float64 {
	sum := ZeroSum
	for k := range x {
		sum += x[k] * y[k]
	}

	return sum
}

// Mul computes C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For two *Dense operands walk the flat buffers i→j→k;
//     otherwise use the same i→j→k order through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k     int
		av, bv, sum float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// MulTransposed computes C = A · Bᵗ without materializing Bᵗ.
// C has shape A.Rows × B.Rows and C[i][j] is the dot product of row i of A
// with row j of B.
//
// Implementation:
//   - Stage 1: ValidateMulTransposedCompatible (A.Cols == B.Cols) before any allocation.
//   - Stage 2: For two *Dense operands every cell is dot(rowA_i, rowB_j) over
//     contiguous sub-slices; otherwise the same i→j→k order through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidShape (column counts differ).
//
// Determinism:
//   - Fixed k order per cell; results are exact for small integer inputs.
//
// Complexity:
//   - Time O(rA*rB*n), Space O(rA*rB).
func MulTransposed(a, b Matrix) (*Dense, error) {
	if err := ValidateMulTransposedCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}

	aRows, bRows, n := a.Rows(), b.Rows(), a.Cols()
	res, err := NewDense(aRows, bRows)
	if err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}

	var (
		i, j, k     int
		av, bv, sum float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA []float64
			for i = 0; i < aRows; i++ {
				rowA = da.data[i*n : (i+1)*n]
				for j = 0; j < bRows; j++ {
					res.data[i*bRows+j] = dot(rowA, db.data[j*n:(j+1)*n])
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bRows; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMulTransposed, err)
				}
				if bv, err = b.At(j, k); err != nil {
					return nil, matrixErrorf(opMulTransposed, err)
				}
				sum += av * bv
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, matrixErrorf(opMulTransposed, err)
			}
		}
	}

	return res, nil
}
