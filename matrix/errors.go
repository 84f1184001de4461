// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; tests and
// callers match them via errors.Is. No kernel panics on user-triggered errors.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a data slice of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is encountered during LU/Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrMatrixEigenFailed indicates that the Jacobi sweeps did not converge
	// under the given tolerance/iterations.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags for uniform error wrapping.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opEigen         = "Eigen"
	opInverse       = "Inverse"
	opLU            = "LU"
	opCMul          = "CMul"
	opComplexify    = "Complexify"
	opPseudoInverse = "PseudoInverse"
	opNewCDense     = "NewCDenseFrom"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
