// Package manifold defines the state contracts consumed by the
// linearization engine — boxplus/boxminus manifolds, compound states and
// plain Euclidean vectors — plus a structural type descriptor and a small
// set of reference implementations (SO3 rotations, Vec, Scalar, Product).
//
// 🚀 What is a manifold state?
//
//	Filter states rarely live in flat ℝⁿ: rotations, poses and unit
//	vectors carry curvature and redundant parameterizations.  A manifold
//	state exposes exactly two operators to the estimation machinery:
//	  • Boxplus  (⊕): apply a tangent-space perturbation → new state
//	  • Boxminus (⊖): tangent-space difference between two states
//	Both are evaluated in jet arithmetic so the engine can differentiate
//	straight through them.
//
// ✨ Contracts:
//   - State     — DOF (tangent dimension) and GlobalSize (stored dimension)
//   - Manifold  — State + Boxplus/Boxminus over jets
//   - Compound  — Manifold + fixed-order paired iteration over sub-states
//   - Describe  — structural classification (vector / manifold / compound)
//
// The contract set is closed: plain-vector states are recognized through
// an unexported capability, so a type participates either as a Manifold
// (implement Boxplus/Boxminus) or as one of this package's vector kinds.
// Anything else is rejected as a programmer error — there is no generic
// fallback that would silently mis-linearize an unknown type.
//
// ⚠️ Compound precondition (block-diagonal assumption):
//
//	Sub-states of a Compound must have independent tangent coordinates:
//	the compound's Boxplus must not couple one sub-state's tangent
//	directions into another's. The engine assembles compound Jacobians
//	block-diagonally and will silently drop any cross-coupling a
//	composition introduces. This is a documented precondition, not a
//	verified invariant.
//
// ⚙️ Usage:
//
//	r := manifold.SO3FromAxisAngle([3]float64{0, 0, 1}, 0.25)
//	pose := manifold.NewProduct(r, manifold.Vec{10, -2})
//	info := manifold.Describe(pose) // {DOF:5 GlobalSize:6 Kind:KindCompound}
//
// All scalar storage is float64 — the gonum backend's element type —
// so the "scalar type" of every state in this package is float64.
package manifold
