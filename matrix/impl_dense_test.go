// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zhang-joey/tiny-gpu-next/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroFilled verifies the constructor yields the requested shape of zeros.
func TestNewDenseZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	rows, cols := m.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	m.Do(func(i, j int, v float64) bool {
		require.Zero(t, v, "(%d,%d)", i, j)
		return true
	})
}

// TestNewDenseFrom checks copy semantics and length validation.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)

	src[0] = 99 // caller's slice must not alias storage
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(func(int, int) float64 { return math.Inf(-1) }), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Apply(func(int, int, float64) float64 { return math.NaN() }), matrix.ErrNaNInf)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestFillApply checks index-derived fills and in-place transforms.
func TestFillApply(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Fill(func(i, j int) float64 { return float64(10*i + j) }))
	require.Equal(t, [][]float64{{0, 1, 2}, {10, 11, 12}}, m.ToRows())

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	require.Equal(t, [][]float64{{0, 2, 4}, {20, 22, 24}}, m.ToRows())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{20, 22, 24}, row)
}

// TestDoStopsEarly ensures the visitor halts when the callback returns false.
func TestDoStopsEarly(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	var visited int
	m.Do(func(i, j int, _ float64) bool {
		visited++
		return !(i == 0 && j == 1)
	})
	require.Equal(t, 2, visited)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4.5}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestEqual covers shape, value and nil cases.
func TestEqual(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b := a.Clone()
	require.True(t, matrix.Equal(a, b))

	require.NoError(t, b.Set(1, 1, 5))
	require.False(t, matrix.Equal(a, b))

	c, err := matrix.NewDense(4, 1)
	require.NoError(t, err)
	require.False(t, matrix.Equal(a, c))
	require.False(t, matrix.Equal(a, nil))
}
