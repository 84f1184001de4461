// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernels used by the
// polarization converter: a row-major real Dense matrix, a complex CDense
// companion, and the Moore–Penrose pseudo-inverse built on top of them.
//
// Layout:
//
//	Dense    float64, row-major (offset = i*cols + j); At/Set return errors.
//	CDense   complex128, row-major; converted to and from Dense by realification.
//	Kernels  Mul, Transpose, LU, Inverse, Eigen (Jacobi) on Dense;
//	         CMul, PseudoInverse on CDense.
//
// Complex arithmetic is carried out on the real embedding
//
//	M = A + iB   ↦   R(M) = [ A  −B ]
//	                        [ B   A ]
//
// which is a ring homomorphism: R(MN) = R(M)R(N), R(Mᴴ) = R(M)ᵀ, and
// R(M⁺) = R(M)⁺. Every complex kernel therefore reuses the real kernels.
//
// Determinism:
//   - Fixed loop orders everywhere; no map iteration, no randomness.
//   - LU is Doolittle without pivoting; ErrSingular is reported on an exact zero pivot.
//
// Errors are package sentinels (errors.go), wrapped with an operation tag and
// matched via errors.Is.
package matrix
