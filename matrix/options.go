// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the pseudo-inverse.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics on nonsensical values (programmer error).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRankTolerance is the relative cut-off below which an eigenvalue of the
	// Gram matrix counts as zero: λ ≤ DefaultRankTolerance·λmax.
	DefaultRankTolerance = 1e-10

	// DefaultEigenTolerance is the absolute off-diagonal threshold for Jacobi convergence.
	DefaultEigenTolerance = 1e-13

	// DefaultMaxSweeps caps the number of Jacobi rotations.
	DefaultMaxSweeps = 1000
)

// Option mutates Options.
type Option func(*Options)

// Options holds the resolved numeric policy for PseudoInverse.
type Options struct {
	rankTol   float64
	eigenTol  float64
	maxSweeps int
}

// WithRankTolerance sets the relative eigenvalue cut-off. Panics unless 0 ≤ tol < 1 and finite.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic("matrix: WithRankTolerance requires 0 <= tol < 1")
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithEigenTolerance sets the Jacobi convergence threshold. Panics unless tol > 0 and finite.
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("matrix: WithEigenTolerance requires finite tol > 0")
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxSweeps caps Jacobi rotations. Panics unless n > 0.
func WithMaxSweeps(n int) Option {
	if n <= 0 {
		panic("matrix: WithMaxSweeps requires n > 0")
	}

	return func(o *Options) { o.maxSweeps = n }
}

// NewOptions resolves defaults and applies opts in order; nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{
		rankTol:   DefaultRankTolerance,
		eigenTol:  DefaultEigenTolerance,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// RankTolerance reports the resolved relative cut-off.
func (o Options) RankTolerance() float64 { return o.rankTol }

// EigenTolerance reports the resolved Jacobi threshold.
func (o Options) EigenTolerance() float64 { return o.eigenTol }

// MaxSweeps reports the resolved rotation cap.
func (o Options) MaxSweeps() int { return o.maxSweeps }
