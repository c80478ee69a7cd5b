// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/proxnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSet_Bounds checks the bounds policy of the public indexers.
func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestClone_Independent verifies Clone performs a deep copy.
func TestClone_Independent(t *testing.T) {
	m, _ := matrix.NewDense(1, 2)
	_ = m.Set(0, 1, 7)

	c := m.Clone()
	_ = m.Set(0, 1, 9)

	v, err := c.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

// TestIsSymmetric covers square, rectangular and NaN-diagonal inputs.
func TestIsSymmetric(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, math.NaN())
	_ = m.Set(0, 1, 3)
	_ = m.Set(1, 0, 3)
	require.True(t, m.IsSymmetric())

	_ = m.Set(1, 0, 2)
	require.False(t, m.IsSymmetric())

	r, _ := matrix.NewDense(2, 3)
	require.False(t, r.IsSymmetric())
}

// TestString renders rows on separate lines.
func TestString(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 1, 1.5)
	require.Equal(t, "[0, 1.5]\n[0, 0]\n", m.String())
}
