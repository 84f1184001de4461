// SPDX-License-Identifier: MIT

package stokes

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polconv/matrix"
	"github.com/katalvlaran/polconv/polarization"
)

var (
	// ErrFreed is returned by accessors on a released Converter.
	ErrFreed = errors.New("stokes: converter has been freed")

	// ErrVectorLength is returned when a caller-supplied vector does not match its type list.
	ErrVectorLength = errors.New("stokes: vector length does not match type list")
)

// chopTolerance snaps transform coefficients that are rounding noise to exact zero,
// so outputs with no support in the inputs receive exactly nothing.
const chopTolerance = 1e-12

func stokesErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Converter holds one built transform T (len(out)×len(in)) mapping visibility
// vectors laid out per the input list to vectors laid out per the output list.
//
// A Converter is immutable after New, so Convert32/Convert64 may run from many
// goroutines at once. Free must not race with them.
type Converter struct {
	in, out   polarization.List
	nIn, nOut int
	t64       []complex128 // row-major, nOut*nIn
	t32       []complex64  // t64 cast once at build time
	method    matrix.Method
	rank      int
	freed     bool
	log       *zap.Logger
}

// New builds the transform from in to out:
//
//	A = Bridge(in)   (len(in)×4)
//	B = Bridge(out)  (len(out)×4)
//	T = B · A⁺
//
// When in spans a full basis A⁺ is the exact inverse and T is the closed-form
// relation. Otherwise A⁺ is the minimum-norm solution: each output receives only
// the part of the inputs it linearly depends on, and unsupported outputs get zero.
//
// Errors: list validation sentinels from package polarization, or a wrapped
// matrix error if the pseudo-inverse cannot be computed.
func New(in, out polarization.List, opts ...Option) (*Converter, error) {
	const op = "stokes.New"
	if err := in.Validate(); err != nil {
		return nil, stokesErrorf(op, fmt.Errorf("inputs: %w", err))
	}
	if err := out.Validate(); err != nil {
		return nil, stokesErrorf(op, fmt.Errorf("outputs: %w", err))
	}
	o := gatherOptions(opts)

	a, err := Bridge(in)
	if err != nil {
		return nil, stokesErrorf(op, err)
	}
	b, err := Bridge(out)
	if err != nil {
		return nil, stokesErrorf(op, err)
	}
	pinv, err := matrix.SolvePseudoInverse(a, o.matrixOpts...)
	if err != nil {
		return nil, stokesErrorf(op, err)
	}
	t, err := matrix.CMul(b, pinv.Inverse)
	if err != nil {
		return nil, stokesErrorf(op, err)
	}

	c := &Converter{
		in:     append(polarization.List(nil), in...),
		out:    append(polarization.List(nil), out...),
		nIn:    len(in),
		nOut:   len(out),
		t64:    t.Data(),
		method: pinv.Method,
		rank:   pinv.Rank,
		log:    o.logger,
	}
	c.t32 = make([]complex64, len(c.t64))
	for k, v := range c.t64 {
		v = chop(v)
		c.t64[k] = v
		c.t32[k] = complex64(v)
	}

	c.log.Debug("stokes converter built",
		zap.Stringer("inputs", c.in),
		zap.Stringer("outputs", c.out),
		zap.String("method", c.method.String()),
		zap.Int("rank", c.rank),
	)

	return c, nil
}

func chop(v complex128) complex128 {
	re, im := real(v), imag(v)
	if math.Abs(re) < chopTolerance {
		re = 0
	}
	if math.Abs(im) < chopTolerance {
		im = 0
	}

	return complex(re, im)
}

// Convert64 computes out[j] = Σ_i T[j][i]·in[i].
//
// Preconditions (not checked unless built with -tags polconv_debug):
//   - len(in) == InCount(), len(out) == OutCount();
//   - in and out do not overlap;
//   - the converter has not been freed.
//
// Convert64 does not allocate and never modifies in.
func (c *Converter) Convert64(in, out []complex128) {
	if debugChecks {
		c.mustApply(len(in), len(out))
	}
	n := c.nIn
	var acc complex128
	for j := 0; j < c.nOut; j++ {
		row := c.t64[j*n : j*n+n]
		acc = 0
		for i, coef := range row {
			acc += coef * in[i]
		}
		out[j] = acc
	}
}

// Convert32 is Convert64 in single precision; coefficients were cast once in New.
func (c *Converter) Convert32(in, out []complex64) {
	if debugChecks {
		c.mustApply(len(in), len(out))
	}
	n := c.nIn
	var acc complex64
	for j := 0; j < c.nOut; j++ {
		row := c.t32[j*n : j*n+n]
		acc = 0
		for i, coef := range row {
			acc += coef * in[i]
		}
		out[j] = acc
	}
}

// ConvertRows64 applies Convert64 to rows records stored back to back:
// record r occupies in[r*InCount():(r+1)*InCount()] and out[r*OutCount():(r+1)*OutCount()].
func (c *Converter) ConvertRows64(in, out []complex128, rows int) {
	ni, no := c.nIn, c.nOut
	for r := 0; r < rows; r++ {
		c.Convert64(in[r*ni:(r+1)*ni], out[r*no:(r+1)*no])
	}
}

// ConvertRows32 is ConvertRows64 in single precision.
func (c *Converter) ConvertRows32(in, out []complex64, rows int) {
	ni, no := c.nIn, c.nOut
	for r := 0; r < rows; r++ {
		c.Convert32(in[r*ni:(r+1)*ni], out[r*no:(r+1)*no])
	}
}

// Free releases the transform and resets the counts. Calling Free twice is a no-op.
func (c *Converter) Free() {
	if c.freed {
		return
	}
	c.t64, c.t32 = nil, nil
	c.nIn, c.nOut = 0, 0
	c.freed = true
	c.log.Debug("stokes converter freed", zap.Stringer("inputs", c.in), zap.Stringer("outputs", c.out))
}

// Close is Free, for use with defer alongside other closers.
func (c *Converter) Close() error {
	c.Free()

	return nil
}

// Freed reports whether Free has been called.
func (c *Converter) Freed() bool { return c.freed }

// Inputs returns a copy of the input list.
func (c *Converter) Inputs() polarization.List { return append(polarization.List(nil), c.in...) }

// Outputs returns a copy of the output list.
func (c *Converter) Outputs() polarization.List { return append(polarization.List(nil), c.out...) }

// InCount is the required input vector length; zero after Free.
func (c *Converter) InCount() int { return c.nIn }

// OutCount is the required output vector length; zero after Free.
func (c *Converter) OutCount() int { return c.nOut }

// Method reports which pseudo-inverse path built the transform.
func (c *Converter) Method() matrix.Method { return c.method }

// Rank is the numerical rank of the input bridge: how many independent
// Stokes combinations the inputs carry.
func (c *Converter) Rank() int { return c.rank }

// Matrix returns a copy of T (OutCount×InCount).
func (c *Converter) Matrix() (*matrix.CDense, error) {
	if c.freed {
		return nil, stokesErrorf("stokes.Matrix", ErrFreed)
	}

	return matrix.NewCDenseFrom(c.nOut, c.nIn, c.t64)
}

func (c *Converter) mustApply(nIn, nOut int) {
	if c.freed {
		panic("stokes: Convert on a freed converter")
	}
	if nIn != c.nIn || nOut != c.nOut {
		panic(fmt.Sprintf("stokes: Convert with vectors %d→%d, converter is %d→%d", nIn, nOut, c.nIn, c.nOut))
	}
}
