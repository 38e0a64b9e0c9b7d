// Package jet implements forward-mode automatic differentiation over
// dual numbers with fixed-length derivative vectors, plus the basis
// "derivator" seed used to differentiate manifold transforms.
//
// 🚀 What is a jet?
//
//	A jet is a value paired with a vector of partial derivatives with
//	respect to N independent input directions.  Arithmetic on jets
//	carries those derivatives through the chain rule, so evaluating any
//	composition of supported operations yields both the result and its
//	exact Jacobian row — no finite differencing, no symbolic algebra.
//	Jets are the workhorse of:
//	  • EKF linearization of manifold-valued transforms
//	  • sensitivity analysis of numeric pipelines
//	  • gradient checks against hand-derived Jacobians
//
// ✨ Key features:
//   - value + gradient in one immutable-by-convention value type
//   - full chain rule: Add/Sub/Mul/Div/Neg/Scale/Shift/Sqrt/Sin/Cos/Atan2
//   - Derivator(n): the cached standard-basis seed vector for dimension n
//     (entry i carries value 0 and gradient eᵢ)
//   - race-free, write-once seed cache — safe for concurrent first use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tangent/jet"
//
//	seed := jet.Derivator(2)          // [ (0 | 1,0), (0 | 0,1) ]
//	x := seed[0].Shift(3)             // x = 3, dx = (1,0)
//	y := seed[1].Shift(4)             // y = 4, dy = (0,1)
//	r := x.Mul(x).Add(y.Mul(y)).Sqrt() // r = 5, dr = (3/5, 4/5)
//
// Numeric policy:
//
//   - All jets participating in one expression must share one gradient
//     length; mixing lengths is a programmer error and panics.
//   - Gradients are plain []float64 slices; operations allocate fresh
//     slices and never alias their operands.
//
// Performance:
//
//   - Every op: O(n) time and one O(n) allocation for the gradient.
//   - Derivator(n): O(n²) once per n, O(1) afterwards.
//
// See examples in example_test.go and the transform pipeline in
// package linearize for the intended end-to-end use.
package jet
