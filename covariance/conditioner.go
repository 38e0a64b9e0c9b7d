// SPDX-License-Identifier: MIT
// Package covariance: positive-definiteness probe and eigenvalue repair.
// The probe is a Cholesky factorization attempt (stable, O(n³/3), no
// mutation). The repair eigen-decomposes, clamps eigenvalues below the
// floor, and reconstructs V·diag·Vᵀ in place — symmetric input, so the
// inverse of the eigenvector basis is its transpose.

package covariance

import "gonum.org/v1/gonum/mat"

// DefaultEps is the standard eigenvalue floor for covariance repair:
// small enough not to distort a healthy covariance, large enough to keep
// downstream Cholesky factorizations away from singularity.
const DefaultEps = 1e-10

// IsPositiveDefinite reports whether sigma is strictly positive
// definite, by attempting a Cholesky factorization. Read-only; a nil or
// empty matrix is not positive definite.
func IsPositiveDefinite(sigma mat.Symmetric) bool {
	if sigma == nil || sigma.SymmetricDim() == 0 {
		return false
	}
	var chol mat.Cholesky

	return chol.Factorize(sigma)
}

// AssurePositiveDefinite enforces positive-definiteness of sigma in
// place. Every eigenvalue below eps is raised to eps and the matrix is
// reconstructed from its eigenbasis; a matrix whose spectrum is already
// at or above the floor is left untouched. repaired reports whether the
// content was modified.
//
// This is a repair, not a rejection: ordinary covariance drift (a
// slightly negative eigenvalue after round-off-heavy arithmetic) comes
// back as a valid covariance. ErrRepairFailed, by contrast, means the
// reconstruction itself failed the definiteness probe — a deeper fault
// that callers should treat as fatal for the estimate.
func AssurePositiveDefinite(sigma *mat.SymDense, eps float64) (repaired bool, err error) {
	if sigma == nil {
		return false, ErrNilMatrix
	}
	if eps <= 0 {
		return false, ErrNonPositiveEps
	}

	var eig mat.EigenSym
	if !eig.Factorize(sigma, true) {
		return false, ErrEigenFailed
	}

	vals := eig.Values(nil)
	clamped := false
	for i, v := range vals {
		if v < eps {
			vals[i] = eps
			clamped = true
		}
	}
	if !clamped {
		return false, nil
	}

	// Reconstruct V·diag(clamped)·Vᵀ and write it back symmetrized;
	// the two O(n³) multiplies run only on the repair path.
	n := sigma.SymmetricDim()
	var vecs, tmp, rec mat.Dense
	eig.VectorsTo(&vecs)
	tmp.Mul(&vecs, mat.NewDiagDense(n, vals))
	rec.Mul(&tmp, vecs.T())
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, 0.5*(rec.At(i, j)+rec.At(j, i)))
		}
	}

	if !IsPositiveDefinite(sigma) {
		return true, ErrRepairFailed
	}

	return true, nil
}
