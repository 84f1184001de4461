package stokes_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polconv/polarization"
	"github.com/katalvlaran/polconv/stokes"
)

const tol = 1e-12

var (
	stokesTypes   = polarization.Stokes.Types()
	circularTypes = polarization.Circular.Types()
	linearTypes   = polarization.Linear.Types()
)

// MustNew builds a converter or fails the test; it is freed on cleanup.
func MustNew(t *testing.T, in, out polarization.List, opts ...stokes.Option) *stokes.Converter {
	t.Helper()
	c, err := stokes.New(in, out, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Free)

	return c
}

// RequireVecClose compares complex vectors element-wise within tol.
func RequireVecClose(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for k := range want {
		require.LessOrEqualf(t, cmplx.Abs(want[k]-got[k]), tol, "slot %d: want %v, got %v", k, want[k], got[k])
	}
}

// widen casts a single-precision vector for comparison.
func widen(v []complex64) []complex128 {
	out := make([]complex128, len(v))
	for k, x := range v {
		out[k] = complex128(x)
	}

	return out
}
