// SPDX-License-Identifier: MIT
// Package covariance: sentinel error set.
// User-triggered conditions return these sentinels (match with
// errors.Is); panics are reserved for AssertFinite's assertion semantics
// and programmer errors.

package covariance

import "errors"

var (
	// ErrNilMatrix is returned when a nil covariance is offered for
	// conditioning.
	ErrNilMatrix = errors.New("covariance: nil matrix")

	// ErrNonPositiveEps is returned when the eigenvalue floor is not
	// strictly positive; a zero floor cannot enforce definiteness.
	ErrNonPositiveEps = errors.New("covariance: eigenvalue floor must be > 0")

	// ErrEigenFailed is returned when the symmetric eigen-decomposition
	// does not converge; the matrix content is left untouched.
	ErrEigenFailed = errors.New("covariance: eigen-decomposition failed")

	// ErrRepairFailed is returned when the clamped reconstruction still
	// fails the positive-definiteness probe. This indicates a deeper
	// numerical fault than ordinary covariance drift; callers should
	// treat it as fatal for the estimate.
	ErrRepairFailed = errors.New("covariance: repair did not restore positive definiteness")
)
