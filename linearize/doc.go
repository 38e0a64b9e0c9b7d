// Package linearize computes local Jacobians of manifold-valued state
// transformations by forward-mode automatic differentiation — the
// re-linearization core of manifold Extended Kalman Filters.
//
// 🚀 What does linearize do?
//
//	A Gaussian belief over a manifold state is stored as a reference
//	point plus a tangent-space mean and covariance.  Moving the belief
//	to a new reference point bends its covariance: Σ₂ ≈ J·Σ₁·Jᵀ, where
//	J is the Jacobian of
//	    f(δ) = (ref1 ⊕ (Er1 + δ)) ⊖ ref2     evaluated at δ = 0.
//	linearize evaluates f in jet arithmetic, seeded with the standard
//	basis, and reads J straight off the result — exact to machine
//	precision, no finite differences, no hand derivation.
//
// ✨ Entry points:
//   - TransformReferenceJacobian(ref1, ref2) — the mean coincides with
//     ref1 (Er1 = 0); typical right after a filter update.
//   - TransformReferenceJacobianAt(ref1, ref2, er1) — general case with
//     an explicit tangent-space offset er1.
//   - ExtractJacobian(result) — harvest the dense L×R matrix from any
//     jet-valued evaluation (row j = result[j].Grad).
//
// Compound states are processed per sub-state: each sub-manifold's
// DOF×DOF transform lands on the diagonal block at its tangent offset,
// vector sub-states keep their identity block, and off-diagonal blocks
// stay zero (sub-state tangent spaces are independent coordinates — see
// the precondition in package manifold).
//
// ⚙️ Usage:
//
//	r1 := manifold.SO3FromAxisAngle([3]float64{0, 0, 1}, 0.3)
//	r2 := manifold.SO3FromAxisAngle([3]float64{0, 0, 1}, 0.5)
//	J, err := linearize.TransformReferenceJacobian(r1, r2)
//	if err != nil { ... }
//	// cov2 = J · cov1 · Jᵀ   (then see package covariance)
//
// Errors:
//   - ErrNilManifold  — a nil reference was passed.
//   - ErrOffsetLength — er1 is nil or its length differs from ref1's DOF.
//   - ErrEmptyResult / ErrRaggedGradient — malformed jet vectors in
//     ExtractJacobian (zero length, inconsistent gradient widths).
//
// Structural mismatch between compound references (different arity or
// sub-state types) is a caller contract violation and panics in the
// manifold layer; it is not reported as a recoverable error.
//
// Complexity: one jet evaluation per atomic manifold — O(DOF²) per
// arithmetic op — plus O(DOF²) for assembly; recursion depth equals the
// compound nesting depth.
package linearize
