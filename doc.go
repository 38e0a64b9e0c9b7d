// Package tangent is an automatic-differentiation toolkit for linearizing
// manifold-valued state transformations — the derivative engine behind
// Extended Kalman Filters on Lie groups and compound states.
//
// 🚀 What is tangent?
//
//	Instead of hand-deriving analytic Jacobians for every state transform,
//	tangent evaluates the transform in forward-mode dual-number arithmetic
//	and reads the Jacobian off the result:
//		• Dual numbers: value + fixed-length derivative vector, full chain rule
//		• Manifold contracts: boxplus (⊕) composition, boxminus (⊖) difference
//		• Reference re-linearization: the DOF×DOF Jacobian that carries a
//		  covariance from one linearization point to another
//		• Compound states: heterogeneous sub-manifolds, block-diagonal assembly
//		• Covariance hygiene: positive-definiteness checks and eigenvalue repair
//
// ✨ Why choose tangent?
//
//   - No hand derivatives – exact forward-mode Jacobians, not finite differences
//   - Manifold-aware – rotations, poses and plain vectors under one contract
//   - Deterministic – pure computation, no I/O, no hidden global state beyond
//     an immutable per-dimension seed cache
//   - gonum-native – every matrix is a gonum/mat value, ready for filter math
//
// Everything is organized under four subpackages:
//
//	jet/        — forward-mode dual numbers and the basis seed generator
//	manifold/   — State/Manifold/Compound contracts, descriptor, SO3, Vec, Product
//	linearize/  — Jacobian extraction and reference-transform Jacobians
//	covariance/ — positive-definite conditioning and finiteness guards
//
// Quick sketch:
//
//	r1 := manifold.SO3FromAxisAngle([3]float64{0, 0, 1}, 0.3)
//	r2 := manifold.SO3FromAxisAngle([3]float64{0, 0, 1}, 0.5)
//	J, err := linearize.TransformReferenceJacobian(r1, r2)
//	// cov2 = J · cov1 · Jᵀ
//
// Dive into each package's doc.go for contracts, complexity notes and the
// numerical edge cases (small-angle branches, eigenvalue floors).
//
//	go get github.com/katalvlaran/tangent
package tangent
