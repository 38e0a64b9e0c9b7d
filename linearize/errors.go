// SPDX-License-Identifier: MIT
// Package linearize: sentinel error set.
// All user-triggered failure modes return these sentinels and tests match
// them via errors.Is. Panics are reserved for caller contract violations
// (mismatched compound structure) and programmer errors.

package linearize

import "errors"

var (
	// ErrNilManifold is returned when a nil reference is passed to a
	// transform entry point.
	ErrNilManifold = errors.New("linearize: nil manifold reference")

	// ErrOffsetLength is returned when the explicit tangent offset er1
	// is nil or its length does not match the manifold's DOF.
	ErrOffsetLength = errors.New("linearize: offset length does not match DOF")

	// ErrEmptyResult is returned by ExtractJacobian when the jet vector
	// is empty or its gradients have zero width — there is no Jacobian
	// to read off.
	ErrEmptyResult = errors.New("linearize: empty differentiation result")

	// ErrRaggedGradient is returned by ExtractJacobian when the entries
	// of the jet vector carry gradients of different lengths; a Jacobian
	// needs one consistent input dimension.
	ErrRaggedGradient = errors.New("linearize: inconsistent gradient lengths")
)
