// SPDX-License-Identifier: MIT

// Package matrix - complex companion storage and the real embedding.
//
// Purpose:
//   - CDense stores complex128 coefficients row-major, mirroring Dense.
//   - Realify/Complexify move between CDense and its 2r×2c real embedding so that
//     complex products and inverses reuse the real kernels unchanged.
//
// Complexity quicksheet:
//   - Realify/Complexify: O(r*c); CMul: O(8·r*n*c) through Mul on the embedding.

package matrix

import (
	"fmt"
	"strings"
)

// CDense is a row-major complex128 matrix.
type CDense struct {
	r, c int
	data []complex128
}

var _ fmt.Stringer = (*CDense)(nil)

// NewCDense creates an r×c complex zero matrix.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewCDenseFrom copies data (row-major, len == rows*cols) into a new CDense.
func NewCDenseFrom(rows, cols int, data []complex128) (*CDense, error) {
	m, err := NewCDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewCDense, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewCDense, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CDense) Cols() int { return m.c }

// At retrieves the element at (row, col).
func (m *CDense) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CDense.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col).
func (m *CDense) Set(row, col int, v complex128) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("CDense.%s(%d,%d): %w", ctxSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Data returns a copy of the row-major coefficients.
func (m *CDense) Data() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *CDense) Row(i int) []complex128 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Clone returns a deep copy.
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// String renders one bracketed row per line.
func (m *CDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Realify returns the 2r×2c real embedding [[Re, −Im], [Im, Re]] of m.
func Realify(m *CDense) *Dense {
	rr, rc := 2*m.r, 2*m.c
	out := &Dense{r: rr, c: rc, data: make([]float64, rr*rc)}

	var i, j int
	var v complex128
	var re, im float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			re, im = real(v), imag(v)
			out.data[i*rc+j] = re
			out.data[i*rc+m.c+j] = -im
			out.data[(m.r+i)*rc+j] = im
			out.data[(m.r+i)*rc+m.c+j] = re
		}
	}

	return out
}

// Complexify reads a 2r×2c real embedding back into an r×c CDense.
// Only the left block column is read; the caller guarantees the embedding structure.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (odd rows or cols).
func Complexify(d *Dense) (*CDense, error) {
	if d == nil {
		return nil, matrixErrorf(opComplexify, ErrNilMatrix)
	}
	if d.r%2 != 0 || d.c%2 != 0 {
		return nil, matrixErrorf(opComplexify, ErrDimensionMismatch)
	}

	r, c := d.r/2, d.c/2
	out := &CDense{r: r, c: c, data: make([]complex128, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = complex(d.data[i*d.c+j], d.data[(r+i)*d.c+j])
		}
	}

	return out, nil
}

// CMul returns a × b, computed as Complexify(Realify(a) · Realify(b)).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func CMul(a, b *CDense) (*CDense, error) {
	if err := ValidateCMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opCMul, err)
	}
	prod, err := Mul(Realify(a), Realify(b))
	if err != nil {
		return nil, matrixErrorf(opCMul, err)
	}

	return Complexify(prod)
}
