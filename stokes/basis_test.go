package stokes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polconv/matrix"
	"github.com/katalvlaran/polconv/polarization"
	"github.com/katalvlaran/polconv/stokes"
)

func TestRelationRows(t *testing.T) {
	for _, tc := range []struct {
		typ  polarization.Type
		want [4]complex128
	}{
		{polarization.I, [4]complex128{1, 0, 0, 0}},
		{polarization.V, [4]complex128{0, 0, 0, 1}},
		{polarization.RR, [4]complex128{1, 0, 0, 1}},
		{polarization.RL, [4]complex128{0, 1, 1i, 0}},
		{polarization.LR, [4]complex128{0, 1, -1i, 0}},
		{polarization.LL, [4]complex128{1, 0, 0, -1}},
		{polarization.XX, [4]complex128{1, 1, 0, 0}},
		{polarization.XY, [4]complex128{0, 0, 1, 1i}},
		{polarization.YX, [4]complex128{0, 0, 1, -1i}},
		{polarization.YY, [4]complex128{1, -1, 0, 0}},
		{polarization.Undefined, [4]complex128{}},
	} {
		t.Run(tc.typ.String(), func(t *testing.T) {
			require.Equal(t, tc.want, stokes.Relation(tc.typ))
		})
	}
}

// TestBackwardInvertsForward checks the closed-form tables against each other exactly.
func TestBackwardInvertsForward(t *testing.T) {
	for _, b := range []polarization.Basis{polarization.Stokes, polarization.Circular, polarization.Linear} {
		t.Run(b.String(), func(t *testing.T) {
			fwd, bwd := stokes.Forward(b), stokes.Backward(b)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					var s complex128
					for k := 0; k < 4; k++ {
						s += bwd[i][k] * fwd[k][j]
					}
					want := complex128(0)
					if i == j {
						want = 1
					}
					require.Equalf(t, want, s, "(%d,%d)", i, j)
				}
			}
		})
	}
	require.Equal(t, [4][4]complex128{}, stokes.Forward(polarization.Invalid))
	require.Equal(t, [4][4]complex128{}, stokes.Backward(polarization.Invalid))
}

func TestBridgeStacksRows(t *testing.T) {
	b, err := stokes.Bridge(polarization.List{polarization.XY, polarization.I})
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 4, b.Cols())
	require.Equal(t, []complex128{0, 0, 1, 1i, 1, 0, 0, 0}, b.Data())

	_, err = stokes.Bridge(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
