// Package covariance keeps filter covariances numerically healthy:
// positive-definiteness checks, eigenvalue-floor repair, and finiteness
// guards for linearization boundaries.
//
// 🚀 Why condition covariances?
//
//	Covariance arithmetic in a running filter — propagation, Joseph
//	updates, reference transforms J·Σ·Jᵀ — slowly erodes symmetry and
//	positive-definiteness through round-off.  A covariance with a
//	negative eigenvalue poisons every downstream gain computation.
//	This package detects the drift and repairs it in place, instead of
//	rejecting the matrix and stalling the filter.
//
// ✨ Key operations:
//   - IsPositiveDefinite — read-only Cholesky probe (the numerically
//     stable triangular test).
//   - AssurePositiveDefinite — eigen-decompose, clamp every eigenvalue
//     below the floor eps up to eps, reconstruct V·diag·Vᵀ in place.
//     Already-healthy matrices pass through untouched.
//   - IsFinite / AssertFinite — defensive NaN/±Inf screens; AssertFinite
//     panics on the first non-finite argument (assertion semantics).
//
// ⚙️ Usage:
//
//	sigma := mat.NewSymDense(3, ...)
//	// after covariance arithmetic:
//	if repaired, err := covariance.AssurePositiveDefinite(sigma, covariance.DefaultEps); err != nil {
//	    // ErrRepairFailed signals a deeper fault (e.g. wildly non-symmetric
//	    // input), not ordinary covariance drift — stop and investigate.
//	}
//
// Errors:
//   - ErrNilMatrix      — nil covariance.
//   - ErrNonPositiveEps — eps must be > 0 (use DefaultEps).
//   - ErrEigenFailed    — the eigen-decomposition did not converge.
//   - ErrRepairFailed   — the reconstructed matrix still fails the
//     definiteness probe.
//
// Complexity: IsPositiveDefinite O(n³/3); AssurePositiveDefinite O(n³)
// for the symmetric eigen-decomposition plus O(n³) reconstruction, only
// when a repair is actually needed.
package covariance
