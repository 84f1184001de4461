//go:build polconv_debug

package stokes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polconv/stokes"
)

func TestDebugPreconditions(t *testing.T) {
	c, err := stokes.New(circularTypes, stokesTypes)
	require.NoError(t, err)

	require.Panics(t, func() { c.Convert64(make([]complex128, 3), make([]complex128, 4)) })
	require.Panics(t, func() { c.Convert32(make([]complex64, 4), make([]complex64, 5)) })

	c.Free()
	require.PanicsWithValue(t, "stokes: Convert on a freed converter", func() {
		c.Convert64(make([]complex128, 4), make([]complex128, 4))
	})
}
