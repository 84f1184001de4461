// SPDX-License-Identifier: MIT

package stokes

import (
	"fmt"

	"github.com/katalvlaran/polconv/polarization"
)

var (
	// Unpolarized is the Stokes vector of an unpolarized point source of unit intensity.
	Unpolarized = [4]complex128{1, 0, 0, 0}

	// ReferenceSource is the point source behind GivePSFVis32/64: I = Q = U = V = 1.
	// In the circular basis it reads RR=2, RL=1+i, LR=1-i, LL=0.
	ReferenceSource = [4]complex128{1, 1, 1, 1}
)

// PSF64 writes the visibilities of an unpolarized unit point source, expressed in
// out, into vis. A circular request yields RR=1, RL=0, LR=0, LL=1.
// It needs no Converter.
func PSF64(out polarization.List, vis []complex128) error {
	return Synthesize64(Unpolarized, out, vis)
}

// PSF32 is PSF64 in single precision.
func PSF32(out polarization.List, vis []complex64) error {
	return Synthesize32(Unpolarized, out, vis)
}

// Synthesize64 expresses the source with Stokes parameters s = (I, Q, U, V) in out:
// vis[j] = Relation(out[j]) · s.
//
// Errors: list validation sentinels from package polarization; ErrVectorLength
// when len(vis) != len(out).
func Synthesize64(s [4]complex128, out polarization.List, vis []complex128) error {
	if err := checkSynthesis("stokes.Synthesize64", out, len(vis)); err != nil {
		return err
	}
	for j, t := range out {
		vis[j] = project(t, s)
	}

	return nil
}

// Synthesize32 is Synthesize64 in single precision. Accumulation is done in
// double precision and cast once per slot.
func Synthesize32(s [4]complex128, out polarization.List, vis []complex64) error {
	if err := checkSynthesis("stokes.Synthesize32", out, len(vis)); err != nil {
		return err
	}
	for j, t := range out {
		vis[j] = complex64(project(t, s))
	}

	return nil
}

func checkSynthesis(op string, out polarization.List, n int) error {
	if err := out.Validate(); err != nil {
		return stokesErrorf(op, err)
	}
	if n != len(out) {
		return stokesErrorf(op, fmt.Errorf("%w: got %d values for %d types", ErrVectorLength, n, len(out)))
	}

	return nil
}

func project(t polarization.Type, s [4]complex128) complex128 {
	row := Relation(t)
	var v complex128
	for k := range row {
		v += row[k] * s[k]
	}

	return v
}
