// SPDX-License-Identifier: MIT
// Package manifold: SO3 — rotations as unit quaternions.
// Boxplus is right-multiplication by the exponential of the tangent
// vector; Boxminus is the logarithm of the relative rotation. Both are
// evaluated in jet arithmetic, with series branches replacing √θ² near
// θ = 0 where the closed forms are not differentiable (the seed point of
// every linearization evaluates exactly there).

package manifold

import (
	"errors"
	"math"

	"github.com/katalvlaran/tangent/jet"
)

// smallAngleTol is the squared-angle threshold below which exp and log
// switch to their two-term series. At θ² = 1e-8 the truncation error is
// O(θ⁴) ≈ 1e-16, below float64 round-off for the closed forms.
const smallAngleTol = 1e-8

// ErrZeroQuaternion is returned when a quaternion with zero norm is
// offered as a rotation; it has no direction and cannot be normalized.
var ErrZeroQuaternion = errors.New("manifold: quaternion has zero norm")

// SO3 is a rotation stored as a unit quaternion (W scalar part, X/Y/Z
// vector part): GlobalSize 4 for DOF 3, the canonical over-parameterized
// manifold. Construct via NewSO3 or SO3FromAxisAngle; both normalize and
// canonicalize to W ≥ 0 (the double cover maps q and -q to one rotation).
type SO3 struct {
	W, X, Y, Z float64
}

// NewSO3 normalizes (w, x, y, z) into a rotation.
// Returns ErrZeroQuaternion if the norm is zero (or not finite).
func NewSO3(w, x, y, z float64) (SO3, error) {
	n := math.Sqrt(w*w + x*x + y*y + z*z)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return SO3{}, ErrZeroQuaternion
	}
	if w < 0 {
		n = -n
	}

	return SO3{W: w / n, X: x / n, Y: y / n, Z: z / n}, nil
}

// SO3FromAxisAngle builds the rotation of angle radians about axis.
// The axis is normalized internally; a zero axis yields the identity
// rotation regardless of angle.
func SO3FromAxisAngle(axis [3]float64, angle float64) SO3 {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n == 0 {
		return SO3{W: 1}
	}
	s := math.Sin(angle/2) / n
	r := SO3{
		W: math.Cos(angle / 2),
		X: axis[0] * s,
		Y: axis[1] * s,
		Z: axis[2] * s,
	}
	if r.W < 0 {
		r = SO3{W: -r.W, X: -r.X, Y: -r.Y, Z: -r.Z}
	}

	return r
}

// DOF returns 3: the tangent space of rotations is ℝ³ (rotation vectors).
func (r SO3) DOF() int { return 3 }

// GlobalSize returns 4: the stored unit-quaternion representation.
func (r SO3) GlobalSize() int { return 4 }

// Boxplus returns the lifted coordinates of r ⊗ exp(delta).
// delta must have length 3; its jets fix the gradient dimension.
func (r SO3) Boxplus(delta []jet.Jet) []jet.Jet {
	if len(delta) != 3 {
		panic("manifold: SO3 Boxplus needs a length-3 tangent vector")
	}

	return quatMul(r.lift(delta[0].Dim()), expQuat(delta))
}

// Boxminus returns log(r⁻¹ ⊗ lifted): the rotation vector carrying r to
// the lifted point. lifted must have length 4 (as produced by Boxplus).
// The relative quaternion is sign-canonicalized before the logarithm so
// the result is the shortest rotation.
func (r SO3) Boxminus(lifted []jet.Jet) []jet.Jet {
	if len(lifted) != 4 {
		panic("manifold: SO3 Boxminus needs length-4 lifted coordinates")
	}
	conj := SO3{W: r.W, X: -r.X, Y: -r.Y, Z: -r.Z}
	d := quatMul(conj.lift(lifted[0].Dim()), lifted)
	if d[0].Real < 0 {
		for i := range d {
			d[i] = d[i].Neg()
		}
	}

	return logQuat(d)
}

// lift raises r's stored coordinates to constant jets of dimension n.
func (r SO3) lift(n int) []jet.Jet {
	return []jet.Jet{
		jet.Const(r.W, n),
		jet.Const(r.X, n),
		jet.Const(r.Y, n),
		jet.Const(r.Z, n),
	}
}

// quatMul is the Hamilton product a ⊗ b over jet coordinates [w x y z].
func quatMul(a, b []jet.Jet) []jet.Jet {
	w := a[0].Mul(b[0]).Sub(a[1].Mul(b[1])).Sub(a[2].Mul(b[2])).Sub(a[3].Mul(b[3]))
	x := a[0].Mul(b[1]).Add(a[1].Mul(b[0])).Add(a[2].Mul(b[3])).Sub(a[3].Mul(b[2]))
	y := a[0].Mul(b[2]).Sub(a[1].Mul(b[3])).Add(a[2].Mul(b[0])).Add(a[3].Mul(b[1]))
	z := a[0].Mul(b[3]).Add(a[1].Mul(b[2])).Sub(a[2].Mul(b[1])).Add(a[3].Mul(b[0]))

	return []jet.Jet{w, x, y, z}
}

// expQuat maps the rotation vector v (3 jets) to its unit quaternion
// exp(v) = [cos(θ/2), sin(θ/2)·v/θ] with θ = ‖v‖. Near θ = 0 both
// coefficients are evaluated as series in θ², which is smooth where
// √θ² is not.
func expQuat(v []jet.Jet) []jet.Jet {
	t2 := jet.Dot(v, v)

	var w, k jet.Jet
	if t2.Real < smallAngleTol {
		// cos(θ/2)     = 1 - θ²/8  + O(θ⁴)
		// sin(θ/2)/θ   = ½ - θ²/48 + O(θ⁴)
		w = t2.Scale(-1.0 / 8).Shift(1)
		k = t2.Scale(-1.0 / 48).Shift(0.5)
	} else {
		t := t2.Sqrt()
		half := t.Scale(0.5)
		w = half.Cos()
		k = half.Sin().Div(t)
	}

	return []jet.Jet{w, v[0].Mul(k), v[1].Mul(k), v[2].Mul(k)}
}

// logQuat maps a unit quaternion q = [w, xyz] with w ≥ 0 to its rotation
// vector 2·atan2(‖xyz‖, w)·xyz/‖xyz‖, using a series in ‖xyz‖² near the
// identity.
func logQuat(q []jet.Jet) []jet.Jet {
	xyz := q[1:4]
	s2 := jet.Dot(xyz, xyz)

	var f jet.Jet
	if s2.Real < smallAngleTol {
		// 2·atan2(s, w)/s = (2/w)·(1 - s²/(3w²)) + O(s⁴)
		w := q[0]
		f = s2.Div(w.Mul(w)).Scale(-1.0 / 3).Shift(1).Div(w).Scale(2)
	} else {
		s := s2.Sqrt()
		f = s.Atan2(q[0]).Scale(2).Div(s)
	}

	return []jet.Jet{xyz[0].Mul(f), xyz[1].Mul(f), xyz[2].Mul(f)}
}
