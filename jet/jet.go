// SPDX-License-Identifier: MIT
// Package jet: dual-number value type and forward-mode arithmetic.
// This file defines the Jet type and every differentiable operation the
// manifold and linearize packages compose. All operations are pure: they
// allocate a fresh gradient and never mutate or alias their operands.
// Gradient-length mismatches are programmer errors and panic.

package jet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Jet is a forward-mode dual number: a real value paired with the vector
// of its partial derivatives with respect to n independent directions.
//
// The zero value (Real 0, nil Grad) is a valid constant of dimension 0;
// use Const to lift a plain float64 into a given dimension.
type Jet struct {
	// Real is the value part.
	Real float64

	// Grad holds ∂Real/∂δᵢ for each of the n seed directions.
	// Treat as read-only; operations never mutate it.
	Grad []float64
}

// Const lifts x into an n-dimensional jet with zero gradient.
// Constants are transparent to differentiation: d(const)/dδ = 0.
func Const(x float64, n int) Jet {
	return Jet{Real: x, Grad: make([]float64, n)}
}

// Dim reports the gradient length of j.
func (j Jet) Dim() int { return len(j.Grad) }

// sameDim panics unless j and k carry gradients of equal length.
// Mixing dimensions inside one expression is a programmer error.
func sameDim(j, k Jet) {
	if len(j.Grad) != len(k.Grad) {
		panic("jet: gradient length mismatch")
	}
}

// clone returns a fresh copy of g.
func clone(g []float64) []float64 {
	out := make([]float64, len(g))
	copy(out, g)

	return out
}

// Add returns j + k.
func (j Jet) Add(k Jet) Jet {
	sameDim(j, k)
	grad := clone(j.Grad)
	floats.Add(grad, k.Grad)

	return Jet{Real: j.Real + k.Real, Grad: grad}
}

// Sub returns j - k.
func (j Jet) Sub(k Jet) Jet {
	sameDim(j, k)
	grad := clone(j.Grad)
	floats.Sub(grad, k.Grad)

	return Jet{Real: j.Real - k.Real, Grad: grad}
}

// Mul returns j * k with the product rule: d(jk) = k·dj + j·dk.
func (j Jet) Mul(k Jet) Jet {
	sameDim(j, k)
	grad := make([]float64, len(j.Grad))
	floats.AddScaled(grad, k.Real, j.Grad)
	floats.AddScaled(grad, j.Real, k.Grad)

	return Jet{Real: j.Real * k.Real, Grad: grad}
}

// Div returns j / k with the quotient rule: d(j/k) = dj/k - j·dk/k².
// Division by a zero value propagates ±Inf/NaN exactly as float64 does;
// use covariance.AssertFinite at integration points to catch it.
func (j Jet) Div(k Jet) Jet {
	sameDim(j, k)
	inv := 1 / k.Real
	grad := make([]float64, len(j.Grad))
	floats.AddScaled(grad, inv, j.Grad)
	floats.AddScaled(grad, -j.Real*inv*inv, k.Grad)

	return Jet{Real: j.Real * inv, Grad: grad}
}

// Neg returns -j.
func (j Jet) Neg() Jet {
	grad := clone(j.Grad)
	floats.Scale(-1, grad)

	return Jet{Real: -j.Real, Grad: grad}
}

// Scale returns c * j for a plain constant c.
func (j Jet) Scale(c float64) Jet {
	grad := clone(j.Grad)
	floats.Scale(c, grad)

	return Jet{Real: c * j.Real, Grad: grad}
}

// Shift returns j + c for a plain constant c; the gradient is unchanged.
func (j Jet) Shift(c float64) Jet {
	return Jet{Real: j.Real + c, Grad: clone(j.Grad)}
}

// Sqrt returns √j with d√j = dj / (2√j).
// Not differentiable at j.Real == 0: the gradient degenerates to NaN/Inf
// there, exactly as the analytic derivative does. Callers evaluating near
// zero must branch to a series form first (see manifold.SO3 for the
// canonical small-angle treatment).
func (j Jet) Sqrt() Jet {
	s := math.Sqrt(j.Real)
	grad := clone(j.Grad)
	floats.Scale(1/(2*s), grad)

	return Jet{Real: s, Grad: grad}
}

// Sin returns sin(j) with d sin = cos(j)·dj.
func (j Jet) Sin() Jet {
	grad := clone(j.Grad)
	floats.Scale(math.Cos(j.Real), grad)

	return Jet{Real: math.Sin(j.Real), Grad: grad}
}

// Cos returns cos(j) with d cos = -sin(j)·dj.
func (j Jet) Cos() Jet {
	grad := clone(j.Grad)
	floats.Scale(-math.Sin(j.Real), grad)

	return Jet{Real: math.Cos(j.Real), Grad: grad}
}

// Atan2 returns atan2(j, x) — j is the ordinate, x the abscissa —
// with the full two-argument derivative d = (x·dj - j·dx) / (j² + x²).
func (j Jet) Atan2(x Jet) Jet {
	sameDim(j, x)
	den := j.Real*j.Real + x.Real*x.Real
	grad := make([]float64, len(j.Grad))
	floats.AddScaled(grad, x.Real/den, j.Grad)
	floats.AddScaled(grad, -j.Real/den, x.Grad)

	return Jet{Real: math.Atan2(j.Real, x.Real), Grad: grad}
}

// Dot returns the inner product Σ a[i]·b[i] as a jet.
// Panics if the vectors differ in length (programmer error).
func Dot(a, b []Jet) Jet {
	if len(a) != len(b) {
		panic("jet: vector length mismatch")
	}
	if len(a) == 0 {
		return Jet{}
	}
	acc := a[0].Mul(b[0])
	for i := 1; i < len(a); i++ {
		acc = acc.Add(a[i].Mul(b[i]))
	}

	return acc
}

// Values extracts the value parts of v into a fresh slice.
func Values(v []Jet) []float64 {
	out := make([]float64, len(v))
	for i, j := range v {
		out[i] = j.Real
	}

	return out
}
