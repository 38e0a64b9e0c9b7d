package jet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tangent/jet"
)

const tol = 1e-12

// TestConst_ZeroGradient verifies that constants carry a zero gradient of
// the requested dimension.
func TestConst_ZeroGradient(t *testing.T) {
	c := jet.Const(2.5, 3)
	assert.Equal(t, 2.5, c.Real, "value part must be preserved")
	assert.Equal(t, 3, c.Dim(), "gradient dimension must match the request")
	assert.Equal(t, []float64{0, 0, 0}, c.Grad, "constants must not carry sensitivity")
}

// TestAddSub_LinearRules checks the sum and difference rules on seeded jets.
func TestAddSub_LinearRules(t *testing.T) {
	seed := jet.Derivator(2)
	x := seed[0].Shift(3) // x = 3, dx = (1,0)
	y := seed[1].Shift(4) // y = 4, dy = (0,1)

	sum := x.Add(y)
	assert.InDelta(t, 7, sum.Real, tol)
	assert.InDeltaSlice(t, []float64{1, 1}, sum.Grad, tol, "d(x+y) = dx + dy")

	diff := x.Sub(y)
	assert.InDelta(t, -1, diff.Real, tol)
	assert.InDeltaSlice(t, []float64{1, -1}, diff.Grad, tol, "d(x-y) = dx - dy")
}

// TestMulDiv_ProductAndQuotientRules checks d(xy) and d(x/y) against the
// hand-derived rules at (x, y) = (3, 4).
func TestMulDiv_ProductAndQuotientRules(t *testing.T) {
	seed := jet.Derivator(2)
	x := seed[0].Shift(3)
	y := seed[1].Shift(4)

	prod := x.Mul(y)
	assert.InDelta(t, 12, prod.Real, tol)
	assert.InDeltaSlice(t, []float64{4, 3}, prod.Grad, tol, "d(xy) = y·dx + x·dy")

	quot := x.Div(y)
	assert.InDelta(t, 0.75, quot.Real, tol)
	assert.InDeltaSlice(t, []float64{0.25, -3.0 / 16}, quot.Grad, tol,
		"d(x/y) = dx/y - x·dy/y²")
}

// TestSqrt_ChainRule evaluates r = √(x²+y²) at (3, 4): the textbook
// r = 5, ∇r = (3/5, 4/5) case.
func TestSqrt_ChainRule(t *testing.T) {
	seed := jet.Derivator(2)
	x := seed[0].Shift(3)
	y := seed[1].Shift(4)

	r := x.Mul(x).Add(y.Mul(y)).Sqrt()
	assert.InDelta(t, 5, r.Real, tol)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, r.Grad, tol)
}

// TestTrig_Derivatives checks sin/cos against their analytic derivatives
// at a generic angle.
func TestTrig_Derivatives(t *testing.T) {
	seed := jet.Derivator(1)
	x := seed[0].Shift(0.7)

	s := x.Sin()
	assert.InDelta(t, math.Sin(0.7), s.Real, tol)
	assert.InDelta(t, math.Cos(0.7), s.Grad[0], tol, "d sin = cos")

	c := x.Cos()
	assert.InDelta(t, math.Cos(0.7), c.Real, tol)
	assert.InDelta(t, -math.Sin(0.7), c.Grad[0], tol, "d cos = -sin")
}

// TestAtan2_TwoArgumentDerivative checks the full two-argument derivative
// d atan2(y, x) = (x·dy - y·dx)/(x²+y²) at (y, x) = (1, 2).
func TestAtan2_TwoArgumentDerivative(t *testing.T) {
	seed := jet.Derivator(2)
	y := seed[0].Shift(1)
	x := seed[1].Shift(2)

	a := y.Atan2(x)
	assert.InDelta(t, math.Atan2(1, 2), a.Real, tol)
	assert.InDeltaSlice(t, []float64{2.0 / 5, -1.0 / 5}, a.Grad, tol)
}

// TestNegScaleShift covers the remaining elementary ops.
func TestNegScaleShift(t *testing.T) {
	seed := jet.Derivator(1)
	x := seed[0].Shift(2)

	n := x.Neg()
	assert.InDelta(t, -2, n.Real, tol)
	assert.InDelta(t, -1, n.Grad[0], tol)

	sc := x.Scale(3)
	assert.InDelta(t, 6, sc.Real, tol)
	assert.InDelta(t, 3, sc.Grad[0], tol)

	sh := x.Shift(10)
	assert.InDelta(t, 12, sh.Real, tol)
	assert.InDelta(t, 1, sh.Grad[0], tol, "shifting by a constant must not touch the gradient")
}

// TestDot_InnerProduct checks the jet inner product and its gradient.
func TestDot_InnerProduct(t *testing.T) {
	seed := jet.Derivator(2)
	a := []jet.Jet{seed[0].Shift(1), seed[1].Shift(2)}
	b := []jet.Jet{jet.Const(3, 2), jet.Const(4, 2)}

	d := jet.Dot(a, b)
	assert.InDelta(t, 11, d.Real, tol)
	assert.InDeltaSlice(t, []float64{3, 4}, d.Grad, tol)
}

// TestOps_NoAliasing verifies that operations never mutate their operands.
func TestOps_NoAliasing(t *testing.T) {
	seed := jet.Derivator(2)
	x := seed[0].Shift(3)
	before := append([]float64(nil), x.Grad...)

	_ = x.Mul(x)
	_ = x.Neg()
	_ = x.Sqrt()

	assert.Equal(t, before, x.Grad, "operand gradients must stay untouched")
}

// TestDimensionMismatch_Panics: mixing gradient widths in one expression
// is a programmer error and must panic.
func TestDimensionMismatch_Panics(t *testing.T) {
	a := jet.Const(1, 2)
	b := jet.Const(1, 3)

	assert.Panics(t, func() { a.Add(b) }, "mismatched dimensions must panic")
	assert.Panics(t, func() { jet.Dot([]jet.Jet{a}, nil) }, "mismatched vector lengths must panic")
}

// TestValues_ExtractsRealParts covers the Values helper.
func TestValues_ExtractsRealParts(t *testing.T) {
	seed := jet.Derivator(3)
	v := []jet.Jet{seed[0].Shift(1), seed[1].Shift(2), seed[2].Shift(3)}

	require.Equal(t, []float64{1, 2, 3}, jet.Values(v))
}
