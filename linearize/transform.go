// SPDX-License-Identifier: MIT
// Package linearize: reference-transform Jacobians.
// Atomic manifolds take one seeded jet evaluation of
// (ref1 ⊕ (Er1 + δ)) ⊖ ref2; compounds recurse per sub-state, writing
// each sub-Jacobian onto the diagonal block at its running tangent
// offset inside an identity matrix. The offset lives in an explicit
// walker struct, not a captured loop variable.

package linearize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tangent/jet"
	"github.com/katalvlaran/tangent/manifold"
)

// TransformReferenceJacobian computes the DOF×DOF Jacobian that carries
// a covariance linearized around ref1 to one linearized around ref2, for
// the case where the belief's mean coincides with ref1 (zero tangent
// offset): cov2 ≈ J·cov1·Jᵀ.
//
// For ref1 == ref2 the result is the identity. Compound references are
// assembled block-diagonally; vector sub-states contribute identity
// blocks without any evaluation.
func TransformReferenceJacobian(ref1, ref2 manifold.Manifold) (*mat.Dense, error) {
	if ref1 == nil || ref2 == nil {
		return nil, ErrNilManifold
	}

	return transform(ref1, ref2, nil)
}

// TransformReferenceJacobianAt is the general form: the belief's mean is
// ref1 ⊕ er1 for the tangent-space offset er1 (length DOF of ref1).
// Use it when re-referencing a belief whose mean has drifted from its
// linearization point.
func TransformReferenceJacobianAt(ref1, ref2 manifold.Manifold, er1 *mat.VecDense) (*mat.Dense, error) {
	if ref1 == nil || ref2 == nil {
		return nil, ErrNilManifold
	}
	if er1 == nil || er1.Len() != ref1.DOF() {
		return nil, ErrOffsetLength
	}

	return transform(ref1, ref2, er1)
}

// transform dispatches on structure: compound pairs recurse per
// sub-state, everything else is a single atomic evaluation. er1 == nil
// means a zero offset.
func transform(ref1, ref2 manifold.Manifold, er1 *mat.VecDense) (*mat.Dense, error) {
	if c1, ok := ref1.(manifold.Compound); ok {
		// Pairing an atomic reference against a compound one violates
		// the caller contract; the assertion surfaces it immediately.
		c2, ok2 := ref2.(manifold.Compound)
		if !ok2 {
			panic("linearize: compound paired with atomic reference")
		}

		return transformCompound(c1, c2, er1)
	}

	return transformAtomic(ref1, ref2, er1)
}

// transformAtomic performs the single forward-mode evaluation
// f(δ) = (ref1 ⊕ (er1 + δ)) ⊖ ref2 at δ = 0 and extracts its Jacobian.
func transformAtomic(ref1, ref2 manifold.Manifold, er1 *mat.VecDense) (*mat.Dense, error) {
	dof := ref1.DOF()
	delta := jet.Derivator(dof)
	if er1 != nil {
		shifted := make([]jet.Jet, dof)
		for i := range shifted {
			shifted[i] = delta[i].Shift(er1.AtVec(i))
		}
		delta = shifted
	}

	return ExtractJacobian(ref2.Boxminus(ref1.Boxplus(delta)))
}

// compoundWalk carries the mutable traversal state of one compound
// assembly: the Jacobian under construction, the full-width offset
// vector, the running tangent offset, and the first error encountered.
type compoundWalk struct {
	jac *mat.Dense
	er1 *mat.VecDense
	dof int
	err error
}

// visit processes one sub-state pair: manifolds get their recursive
// transform written onto the diagonal block at the current offset,
// vector sub-states keep the identity block already in place. The
// offset always advances by the sub-state's DOF, error or not, so later
// blocks stay aligned with the compound's tangent layout.
func (w *compoundWalk) visit(sub, other manifold.State) {
	cur := sub.DOF()
	defer func() { w.dof += cur }()
	if w.err != nil {
		return
	}

	m1, ok1 := sub.(manifold.Manifold)
	m2, ok2 := other.(manifold.Manifold)
	if !ok1 || !ok2 {
		return
	}

	var seg *mat.VecDense
	if w.er1 != nil {
		seg = mat.NewVecDense(cur, nil)
		for i := 0; i < cur; i++ {
			seg.SetVec(i, w.er1.AtVec(w.dof+i))
		}
	}

	block, err := transform(m1, m2, seg)
	if err != nil {
		w.err = err

		return
	}
	for i := 0; i < cur; i++ {
		for j := 0; j < cur; j++ {
			w.jac.Set(w.dof+i, w.dof+j, block.At(i, j))
		}
	}
}

// transformCompound assembles the block-diagonal compound Jacobian:
// identity everywhere, per-sub-manifold transforms on the diagonal
// blocks. Off-diagonal blocks are never written — cross-coupling
// between sub-state tangent spaces is zero by the Compound contract.
func transformCompound(c1, c2 manifold.Compound, er1 *mat.VecDense) (*mat.Dense, error) {
	dof := c1.DOF()
	jac := mat.NewDense(dof, dof, nil)
	for i := 0; i < dof; i++ {
		jac.Set(i, i, 1)
	}

	walk := &compoundWalk{jac: jac, er1: er1}
	c1.ForEachPaired(c2, walk.visit)
	if walk.err != nil {
		return nil, walk.err
	}

	return jac, nil
}
