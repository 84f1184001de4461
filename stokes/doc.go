// SPDX-License-Identifier: MIT

// Package stokes converts interferometric visibilities between polarization
// bases: Stokes (I, Q, U, V), circular (RR, RL, LR, LL) and linear
// (XX, XY, YX, YY), for any subset of input types and any subset of output types.
//
// A Converter is built once per configuration:
//
//	A = Bridge(in)        rows of the relation table for each input type
//	B = Bridge(out)       same for the outputs
//	T = B · A⁺            A⁺ is the Moore–Penrose pseudo-inverse
//
// When the inputs span a full basis A⁺ is the exact inverse and T reproduces
// the closed-form relations. When they do not, each output receives only what
// the inputs determine; unsupported outputs are exactly zero.
//
// Applying T (Convert32, Convert64) is the hot path: it does not allocate,
// does not branch on polarization type and does not validate its arguments.
// Build with -tags polconv_debug to turn the preconditions into panics.
//
// PSF32/PSF64 synthesize the response of an unpolarized unit point source in
// any requested basis without a Converter.
//
// InitConverter, ConvertCorrs32/64, GivePSFVis32/64 and FreeLibrary keep the
// single-slot, integer-code interface for callers ported from older pipelines.
package stokes
