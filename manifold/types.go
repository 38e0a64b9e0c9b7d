// SPDX-License-Identifier: MIT
// Package manifold: capability interfaces and the structural type
// descriptor. Classification is by interface satisfaction only — no
// reflection, no runtime registry — mirroring compile-time trait
// dispatch: Compound before Manifold before vector, most specific first.

package manifold

import "github.com/katalvlaran/tangent/jet"

// State is the minimal contract of any estimable quantity: the dimension
// of its local tangent space (DOF) and of its stored representation
// (GlobalSize). DOF ≤ GlobalSize always; they differ only for
// over-parameterized manifolds (e.g. unit quaternions: 4 stored, 3 DOF).
type State interface {
	// DOF is the tangent-space dimension.
	DOF() int

	// GlobalSize is the stored-representation dimension.
	GlobalSize() int
}

// Manifold is a state with boxplus/boxminus structure, evaluated in jet
// arithmetic so the linearize package can differentiate through it.
type Manifold interface {
	State

	// Boxplus applies the tangent perturbation delta (length DOF) and
	// returns the perturbed state's lifted global coordinates (length
	// GlobalSize). The receiver's own coordinates enter as constants;
	// only delta carries derivative structure.
	Boxplus(delta []jet.Jet) []jet.Jet

	// Boxminus returns the tangent coordinates (length DOF) of the
	// lifted point (length GlobalSize, as produced by Boxplus) relative
	// to the receiver: lifted ⊖ receiver.
	Boxminus(lifted []jet.Jet) []jet.Jet
}

// Compound is a manifold assembled from an ordered list of independent
// sub-states. DOF and GlobalSize are the sums over sub-states.
//
// Precondition (not runtime-verified): sub-state tangent coordinates are
// independent — Boxplus must not couple one sub-state's tangent
// directions into another's. See the package documentation.
type Compound interface {
	Manifold

	// ForEachPaired invokes fn once per sub-state, paired with the
	// corresponding sub-state of other, in the fixed order matching the
	// compound's DOF layout. Vector sub-states are visited too.
	// Behavior is undefined if other has a different structure; this is
	// a caller contract, not a checked condition.
	ForEachPaired(other Compound, fn func(sub, otherSub State))
}

// vectorState marks this package's plain Euclidean states (Vec, Scalar).
// The method is unexported on purpose: it closes the descriptor's type
// universe, so external types participate only through Manifold.
type vectorState interface {
	State

	// vectorValues exposes the stored coordinates for componentwise
	// boxplus/boxminus inside Product.
	vectorValues() []float64
}

// Kind classifies a state structurally.
//
//   - KindVector   — plain Euclidean state; reference transforms are the
//     identity (no manifold structure to re-reference).
//   - KindManifold — atomic manifold; differentiated as one unit.
//   - KindCompound — compound manifold; processed per sub-state.
type Kind int

const (
	// KindVector marks plain Euclidean states (Vec, Scalar).
	KindVector Kind = iota

	// KindManifold marks atomic boxplus/boxminus manifolds.
	KindManifold

	// KindCompound marks compounds of independent sub-states.
	KindCompound
)

// String implements fmt.Stringer for diagnostics and test output.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindManifold:
		return "manifold"
	case KindCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Info is the descriptor triple of a state type: tangent dimension,
// stored dimension and structural kind. The element scalar type is
// float64 for every state in this module (gonum backend).
type Info struct {
	DOF        int
	GlobalSize int
	Kind       Kind
}

// Describe classifies s structurally and reports its dimensions.
// Dispatch is most-specific-first: Compound, then Manifold, then this
// package's vector states. A State implementing none of the three
// capabilities cannot be linearized; Describe panics on it (programmer
// error — the type universe is closed by construction).
func Describe(s State) Info {
	info := Info{DOF: s.DOF(), GlobalSize: s.GlobalSize()}
	switch s.(type) {
	case Compound:
		info.Kind = KindCompound
	case Manifold:
		info.Kind = KindManifold
	case vectorState:
		info.Kind = KindVector
	default:
		panic("manifold: unsupported state type (implement Manifold or use Vec/Scalar)")
	}

	return info
}
