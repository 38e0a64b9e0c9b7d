// SPDX-License-Identifier: MIT
// Package manifold: Product — an ordered compound of heterogeneous
// sub-states. DOF and GlobalSize are sums over sub-states; boxplus and
// boxminus delegate per sub-state along a running tangent/global offset.
// Sub-state tangent coordinates stay independent (see the package doc's
// block-diagonal precondition).

package manifold

import "github.com/katalvlaran/tangent/jet"

// Product is a compound state over an ordered list of sub-states.
// Sub-states may be Manifolds (including nested *Product values) or this
// package's vector states (Vec, Scalar). The order fixes the tangent and
// global coordinate layout.
type Product struct {
	subs []State
}

// NewProduct assembles a compound from subs in the given order.
// Panics on an empty list or on a sub-state that is neither a Manifold
// nor a vector state — such a type cannot be linearized, and surfacing
// it at construction keeps the hot path check-free.
func NewProduct(subs ...State) *Product {
	if len(subs) == 0 {
		panic("manifold: Product needs at least one sub-state")
	}
	for _, sub := range subs {
		switch sub.(type) {
		case Manifold, vectorState:
		default:
			panic("manifold: unsupported sub-state type (implement Manifold or use Vec/Scalar)")
		}
	}
	out := make([]State, len(subs))
	copy(out, subs)

	return &Product{subs: out}
}

// Len reports the number of sub-states.
func (p *Product) Len() int { return len(p.subs) }

// At returns the i-th sub-state.
func (p *Product) At(i int) State { return p.subs[i] }

// DOF returns the sum of sub-state DOFs.
func (p *Product) DOF() int {
	dof := 0
	for _, sub := range p.subs {
		dof += sub.DOF()
	}

	return dof
}

// GlobalSize returns the sum of sub-state global sizes.
func (p *Product) GlobalSize() int {
	size := 0
	for _, sub := range p.subs {
		size += sub.GlobalSize()
	}

	return size
}

// Boxplus applies delta (length DOF) per sub-state and concatenates the
// lifted global coordinates (length GlobalSize).
func (p *Product) Boxplus(delta []jet.Jet) []jet.Jet {
	if len(delta) != p.DOF() {
		panic("manifold: Product Boxplus tangent length mismatch")
	}
	out := make([]jet.Jet, 0, p.GlobalSize())
	dof := 0
	for _, sub := range p.subs {
		seg := delta[dof : dof+sub.DOF()]
		switch s := sub.(type) {
		case Manifold:
			out = append(out, s.Boxplus(seg)...)
		case vectorState:
			out = append(out, liftVector(s.vectorValues(), seg)...)
		}
		dof += sub.DOF()
	}

	return out
}

// Boxminus computes lifted ⊖ p per sub-state and concatenates the
// tangent coordinates (length DOF).
func (p *Product) Boxminus(lifted []jet.Jet) []jet.Jet {
	if len(lifted) != p.GlobalSize() {
		panic("manifold: Product Boxminus lifted length mismatch")
	}
	out := make([]jet.Jet, 0, p.DOF())
	global := 0
	for _, sub := range p.subs {
		seg := lifted[global : global+sub.GlobalSize()]
		switch s := sub.(type) {
		case Manifold:
			out = append(out, s.Boxminus(seg)...)
		case vectorState:
			out = append(out, diffVector(s.vectorValues(), seg)...)
		}
		global += sub.GlobalSize()
	}

	return out
}

// ForEachPaired invokes fn once per sub-state, paired with the
// corresponding sub-state of other, in layout order. Panics if other is
// not a *Product of the same arity — pairing across mismatched compounds
// is a caller contract violation, surfaced here rather than as a silent
// mis-linearization.
func (p *Product) ForEachPaired(other Compound, fn func(sub, otherSub State)) {
	o, ok := other.(*Product)
	if !ok || len(o.subs) != len(p.subs) {
		panic("manifold: compound structure mismatch")
	}
	for i := range p.subs {
		fn(p.subs[i], o.subs[i])
	}
}
