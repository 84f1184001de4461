// SPDX-License-Identifier: MIT

package stokes

import (
	"sync"

	"github.com/katalvlaran/polconv/polarization"
)

// Process-wide slot for callers that drive a single configuration through
// integer casacore codes. New code should hold a *Converter instead.
var slot struct {
	mu   sync.RWMutex
	conv *Converter
}

// InitConverter builds a converter from casacore codes and stores it in the
// process-wide slot, releasing whatever was stored before.
func InitConverter(in, out []int, opts ...Option) error {
	const op = "stokes.InitConverter"
	inTypes, err := polarization.FromCodes(in)
	if err != nil {
		return stokesErrorf(op, err)
	}
	outTypes, err := polarization.FromCodes(out)
	if err != nil {
		return stokesErrorf(op, err)
	}
	c, err := New(inTypes, outTypes, opts...)
	if err != nil {
		return stokesErrorf(op, err)
	}

	slot.mu.Lock()
	prev := slot.conv
	slot.conv = c
	slot.mu.Unlock()
	if prev != nil {
		prev.Free()
	}

	return nil
}

// ConvertCorrs64 applies the stored converter. Calling it with no converter
// stored is a contract violation; it leaves out untouched.
func ConvertCorrs64(in, out []complex128) {
	slot.mu.RLock()
	if c := slot.conv; c != nil {
		c.Convert64(in, out)
	}
	slot.mu.RUnlock()
}

// ConvertCorrs32 is ConvertCorrs64 in single precision.
func ConvertCorrs32(in, out []complex64) {
	slot.mu.RLock()
	if c := slot.conv; c != nil {
		c.Convert32(in, out)
	}
	slot.mu.RUnlock()
}

// GivePSFVis64 writes the visibilities of ReferenceSource, expressed in the
// types named by the casacore codes out, into vis. It does not touch the slot.
func GivePSFVis64(out []int, vis []complex128) error {
	types, err := polarization.FromCodes(out)
	if err != nil {
		return stokesErrorf("stokes.GivePSFVis64", err)
	}

	return Synthesize64(ReferenceSource, types, vis)
}

// GivePSFVis32 is GivePSFVis64 in single precision.
func GivePSFVis32(out []int, vis []complex64) error {
	types, err := polarization.FromCodes(out)
	if err != nil {
		return stokesErrorf("stokes.GivePSFVis32", err)
	}

	return Synthesize32(ReferenceSource, types, vis)
}

// FreeLibrary releases the stored converter. Safe to call when nothing is stored.
func FreeLibrary() {
	slot.mu.Lock()
	c := slot.conv
	slot.conv = nil
	slot.mu.Unlock()
	if c != nil {
		c.Free()
	}
}
