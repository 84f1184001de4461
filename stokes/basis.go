// SPDX-License-Identifier: MIT

package stokes

import (
	"github.com/katalvlaran/polconv/matrix"
	"github.com/katalvlaran/polconv/polarization"
)

// Relation tables. Rows are the products of a basis in canonical order,
// columns are the Stokes parameters (I, Q, U, V).
var (
	stokesToCircular = [4][4]complex128{
		{1, 0, 0, 1},   // RR = I + V
		{0, 1, 1i, 0},  // RL = Q + iU
		{0, 1, -1i, 0}, // LR = Q − iU
		{1, 0, 0, -1},  // LL = I − V
	}
	stokesToLinear = [4][4]complex128{
		{1, 1, 0, 0},   // XX = I + Q
		{0, 0, 1, 1i},  // XY = U + iV
		{0, 0, 1, -1i}, // YX = U − iV
		{1, -1, 0, 0},  // YY = I − Q
	}
	circularToStokes = [4][4]complex128{
		{0.5, 0, 0, 0.5},    // I = (RR + LL)/2
		{0, 0.5, 0.5, 0},    // Q = (RL + LR)/2
		{0, -0.5i, 0.5i, 0}, // U = (RL − LR)/2i
		{0.5, 0, 0, -0.5},   // V = (RR − LL)/2
	}
	linearToStokes = [4][4]complex128{
		{0.5, 0, 0, 0.5},    // I = (XX + YY)/2
		{0.5, 0, 0, -0.5},   // Q = (XX − YY)/2
		{0, 0.5, 0.5, 0},    // U = (XY + YX)/2
		{0, -0.5i, 0.5i, 0}, // V = (XY − YX)/2i
	}
	identity4 = [4][4]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
)

// Forward returns the map from (I, Q, U, V) to the products of b.
// Stokes yields the identity; Invalid yields the zero matrix.
func Forward(b polarization.Basis) [4][4]complex128 {
	switch b {
	case polarization.Stokes:
		return identity4
	case polarization.Circular:
		return stokesToCircular
	case polarization.Linear:
		return stokesToLinear
	default:
		return [4][4]complex128{}
	}
}

// Backward returns the closed-form inverse of Forward(b): products of b to (I, Q, U, V).
func Backward(b polarization.Basis) [4][4]complex128 {
	switch b {
	case polarization.Stokes:
		return identity4
	case polarization.Circular:
		return circularToStokes
	case polarization.Linear:
		return linearToStokes
	default:
		return [4][4]complex128{}
	}
}

// Relation returns the row expressing t as a combination of (I, Q, U, V).
// Invalid types yield the zero row.
func Relation(t polarization.Type) [4]complex128 {
	idx := t.Index()
	if idx < 0 {
		return [4]complex128{}
	}

	return Forward(t.Basis())[idx]
}

// Bridge stacks Relation rows for every entry of l into a len(l)×4 matrix.
// l must be non-empty.
func Bridge(l polarization.List) (*matrix.CDense, error) {
	data := make([]complex128, 0, 4*len(l))
	for _, t := range l {
		row := Relation(t)
		data = append(data, row[:]...)
	}

	return matrix.NewCDenseFrom(len(l), 4, data)
}
