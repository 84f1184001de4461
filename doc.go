// SPDX-License-Identifier: MIT

// Package polconv converts radio-interferometric visibilities between
// polarization bases.
//
// Any ordered subset of
//
//	Stokes   I, Q, U, V
//	circular RR, RL, LR, LL
//	linear   XX, XY, YX, YY
//
// can be converted to any other subset. Conversions that the inputs fully
// determine are exact; the rest resolve through the Moore–Penrose
// pseudo-inverse, so outputs with no support in the inputs come out as zero.
//
// Layout:
//
//	polarization/  product catalogue (casacore codes), basis classification, type lists
//	matrix/        dense real/complex kernels and the pseudo-inverse
//	stokes/        relation tables, Converter (build/apply/free), PSF synthesis
//	cmd/polconv/   command line front end and YAML job runner
//
// Quick start:
//
//	c, err := stokes.New(polarization.Circular.Types(), polarization.Stokes.Types())
//	if err != nil {
//		return err
//	}
//	defer c.Free()
//	iquv := make([]complex128, c.OutCount())
//	c.Convert64(rrrllrll, iquv)
package polconv
