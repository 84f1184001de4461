// SPDX-License-Identifier: MIT

// Package matrix - Moore–Penrose pseudo-inverse of complex matrices.
//
// Purpose:
//   - A⁺ for any r×c CDense, including rank-deficient and non-square inputs.
//   - Minimum-norm least-squares semantics: A⁺b solves min‖Ax−b‖ with the smallest ‖x‖.
//
// Implementation:
//   - Stage 1 (Gram): if A has full row rank, A⁺ = Aᴴ(AAᴴ)⁻¹. The Gram matrix is
//     Hermitian positive definite, so the non-pivoting LU is safe; its pivots are
//     also the rank test (every pivot must exceed rankTol·max pivot).
//   - Stage 2 (Spectral fallback): A⁺ = (AᴴA)⁺Aᴴ with (AᴴA)⁺ = V·Λ⁺·Vᵀ from Jacobi,
//     eigenvalues λ ≤ rankTol·λmax treated as zero.
//   - Both stages run on the real embedding (see complex.go).
//
// Determinism:
//   - Fixed stage order and loop orders; identical inputs give identical bits.

package matrix

import "math"

// Method names the path PseudoInverse took.
type Method int

const (
	// MethodGram is the closed form Aᴴ(AAᴴ)⁻¹ for full row rank.
	MethodGram Method = iota
	// MethodSpectral is the eigen-decomposition fallback for rank-deficient input.
	MethodSpectral
)

// String returns a stable lowercase name for logs.
func (m Method) String() string {
	switch m {
	case MethodGram:
		return "gram"
	case MethodSpectral:
		return "spectral"
	default:
		return "unknown"
	}
}

// Pinv is the result of a pseudo-inverse solve.
type Pinv struct {
	Inverse *CDense // c×r pseudo-inverse
	Method  Method  // path taken
	Rank    int     // numerical rank of the input
}

// PseudoInverse returns A⁺ (c×r) for an r×c complex matrix.
// Rank deficiency is never an error.
//
// Errors: ErrNilMatrix; ErrMatrixEigenFailed if the spectral fallback does not converge.
func PseudoInverse(a *CDense, opts ...Option) (*CDense, error) {
	p, err := SolvePseudoInverse(a, opts...)
	if err != nil {
		return nil, err
	}

	return p.Inverse, nil
}

// SolvePseudoInverse is PseudoInverse with the chosen method and numerical rank attached.
func SolvePseudoInverse(a *CDense, opts ...Option) (Pinv, error) {
	if a == nil {
		return Pinv{}, matrixErrorf(opPseudoInverse, ErrNilMatrix)
	}
	o := NewOptions(opts...)

	ra := Realify(a)
	rat, err := Transpose(ra)
	if err != nil {
		return Pinv{}, matrixErrorf(opPseudoInverse, err)
	}

	if inv, ok, err := gramPseudoInverse(ra, rat, o); err != nil {
		return Pinv{}, matrixErrorf(opPseudoInverse, err)
	} else if ok {
		return Pinv{Inverse: inv, Method: MethodGram, Rank: a.r}, nil
	}

	inv, rank, err := spectralPseudoInverse(ra, rat, o)
	if err != nil {
		return Pinv{}, matrixErrorf(opPseudoInverse, err)
	}

	return Pinv{Inverse: inv, Method: MethodSpectral, Rank: rank}, nil
}

// gramPseudoInverse returns ok=false when R·Rᵀ is (numerically) singular.
func gramPseudoInverse(ra, rat *Dense, o Options) (*CDense, bool, error) {
	gram, err := Mul(ra, rat)
	if err != nil {
		return nil, false, err
	}
	_, u, err := LU(gram)
	if err != nil {
		// A zero pivot only means rank deficiency here.
		return nil, false, nil
	}

	n := u.r
	maxPivot := ZeroSum
	for i := 0; i < n; i++ {
		maxPivot = math.Max(maxPivot, math.Abs(u.data[i*n+i]))
	}
	for i := 0; i < n; i++ {
		if u.data[i*n+i] <= o.rankTol*maxPivot {
			return nil, false, nil
		}
	}

	gInv, err := Inverse(gram)
	if err != nil {
		return nil, false, nil
	}
	p, err := Mul(rat, gInv)
	if err != nil {
		return nil, false, err
	}
	inv, err := Complexify(p)
	if err != nil {
		return nil, false, err
	}

	return inv, true, nil
}

func spectralPseudoInverse(ra, rat *Dense, o Options) (*CDense, int, error) {
	normal, err := Mul(rat, ra)
	if err != nil {
		return nil, 0, err
	}
	eigs, v, err := Eigen(normal, o.eigenTol, o.maxSweeps)
	if err != nil {
		return nil, 0, err
	}

	n := len(eigs)
	lmax := ZeroSum
	for _, l := range eigs {
		lmax = math.Max(lmax, l)
	}
	cut := o.rankTol * lmax

	// N⁺ = Σ_k (1/λ_k)·v_k·v_kᵀ over the kept eigenpairs.
	np, err := NewDense(n, n)
	if err != nil {
		return nil, 0, err
	}
	kept := 0
	var inv, vik float64
	for k := 0; k < n; k++ {
		if lmax <= 0 || eigs[k] <= cut {
			continue
		}
		kept++
		inv = 1.0 / eigs[k]
		for i := 0; i < n; i++ {
			vik = v.data[i*n+k] * inv
			if vik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				np.data[i*n+j] += vik * v.data[j*n+k]
			}
		}
	}

	p, err := Mul(np, rat)
	if err != nil {
		return nil, 0, err
	}
	out, err := Complexify(p)
	if err != nil {
		return nil, 0, err
	}

	// Each complex singular value appears twice in the real embedding.
	return out, kept / 2, nil
}
