// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for the kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polconv/matrix"
)

const tol = 1e-12

// hide wraps any Matrix to hide its concrete type and force the At/Set fallback paths.
type hide struct{ matrix.Matrix }

// MustDenseFrom builds a *Dense from row slices or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		require.Len(t, row, c, "ragged fixture")
		flat = append(flat, row...)
	}
	d, err := matrix.NewDenseFrom(r, c, flat)
	require.NoError(t, err)

	return d
}

// MustCDenseFrom builds a *CDense from row slices or fails the test.
func MustCDenseFrom(t *testing.T, rows [][]complex128) *matrix.CDense {
	t.Helper()
	r, c := len(rows), len(rows[0])
	flat := make([]complex128, 0, r*c)
	for _, row := range rows {
		require.Len(t, row, c, "ragged fixture")
		flat = append(flat, row...)
	}
	m, err := matrix.NewCDenseFrom(r, c, flat)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireDenseClose compares two real matrices element-wise within eps.
func RequireDenseClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), eps, "[%d,%d]", i, j)
		}
	}
}

// RequireCDenseClose compares two complex matrices element-wise within eps.
func RequireCDenseClose(t *testing.T, want, got *matrix.CDense, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	w, g := want.Data(), got.Data()
	for k := range w {
		require.LessOrEqual(t, cmplx.Abs(w[k]-g[k]), eps, "flat[%d]: want %v got %v", k, w[k], g[k])
	}
}
