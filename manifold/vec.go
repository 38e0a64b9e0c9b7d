// SPDX-License-Identifier: MIT
// Package manifold: plain Euclidean states. Vec and Scalar are the
// minimally-parameterized cases: DOF == GlobalSize, boxplus is ordinary
// addition, boxminus ordinary subtraction, and every reference-transform
// Jacobian over them is the identity.

package manifold

import "github.com/katalvlaran/tangent/jet"

// Vec is a fixed-size Euclidean state: DOF == GlobalSize == len(v).
// It carries no manifold structure; within a Product its boxplus and
// boxminus are componentwise addition and subtraction.
type Vec []float64

// DOF returns the tangent-space dimension of v.
func (v Vec) DOF() int { return len(v) }

// GlobalSize returns the stored dimension of v (equal to DOF).
func (v Vec) GlobalSize() int { return len(v) }

// vectorValues exposes v's coordinates to Product.
func (v Vec) vectorValues() []float64 { return v }

// Scalar is a one-dimensional Euclidean state: DOF == GlobalSize == 1.
type Scalar float64

// DOF returns 1.
func (s Scalar) DOF() int { return 1 }

// GlobalSize returns 1.
func (s Scalar) GlobalSize() int { return 1 }

// vectorValues exposes the scalar as a one-element coordinate slice.
func (s Scalar) vectorValues() []float64 { return []float64{float64(s)} }

// liftVector applies delta to the coordinates vals componentwise:
// lifted[i] = vals[i] + delta[i]. Shared by Product for vector subs.
func liftVector(vals []float64, delta []jet.Jet) []jet.Jet {
	out := make([]jet.Jet, len(vals))
	for i := range vals {
		out[i] = delta[i].Shift(vals[i])
	}

	return out
}

// diffVector subtracts the coordinates vals from the lifted point
// componentwise: diff[i] = lifted[i] - vals[i].
func diffVector(vals []float64, lifted []jet.Jet) []jet.Jet {
	out := make([]jet.Jet, len(vals))
	for i := range vals {
		out[i] = lifted[i].Shift(-vals[i])
	}

	return out
}
