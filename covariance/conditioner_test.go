package covariance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tangent/covariance"
)

// symClone copies a symmetric matrix for before/after comparisons.
func symClone(s *mat.SymDense) *mat.SymDense {
	n := s.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	out.CopySym(s)

	return out
}

// assertSymInDelta compares two symmetric matrices elementwise.
func assertSymInDelta(t *testing.T, want, got *mat.SymDense, tol float64) {
	t.Helper()
	n := want.SymmetricDim()
	require.Equal(t, n, got.SymmetricDim())
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), tol, "element (%d,%d)", i, j)
		}
	}
}

// TestIsPositiveDefinite_Probe covers the read-only Cholesky check.
func TestIsPositiveDefinite_Probe(t *testing.T) {
	pd := mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1})
	assert.True(t, covariance.IsPositiveDefinite(pd))

	indef := mat.NewSymDense(2, []float64{1, 2, 2, 1}) // eigenvalues {3, -1}
	assert.False(t, covariance.IsPositiveDefinite(indef))

	singular := mat.NewSymDense(2, []float64{1, 1, 1, 1}) // eigenvalues {2, 0}
	assert.False(t, covariance.IsPositiveDefinite(singular), "strictly positive definite is required")

	assert.False(t, covariance.IsPositiveDefinite(nil))
}

// TestAssure_HealthyUntouched: a covariance whose spectrum already
// clears the floor must pass through bit-identical.
func TestAssure_HealthyUntouched(t *testing.T) {
	sigma := mat.NewSymDense(3, []float64{
		0.04, 0.01, 0,
		0.01, 0.09, 0.02,
		0, 0.02, 0.16,
	})
	before := symClone(sigma)

	repaired, err := covariance.AssurePositiveDefinite(sigma, covariance.DefaultEps)
	require.NoError(t, err)
	assert.False(t, repaired)
	assertSymInDelta(t, before, sigma, 0)
}

// TestAssure_RepairsNegativeEigenvalue: the canonical drift case — one
// negative eigenvalue — must come back strictly positive definite.
func TestAssure_RepairsNegativeEigenvalue(t *testing.T) {
	sigma := mat.NewSymDense(2, []float64{1, 2, 2, 1}) // eigenvalues {3, -1}
	require.False(t, covariance.IsPositiveDefinite(sigma))

	repaired, err := covariance.AssurePositiveDefinite(sigma, covariance.DefaultEps)
	require.NoError(t, err)
	assert.True(t, repaired)
	assert.True(t, covariance.IsPositiveDefinite(sigma), "repair must restore definiteness")

	// The healthy eigendirection must survive the repair: spectrum
	// becomes {3, eps}, so the trace is 3 + eps ≈ 3.
	assert.InDelta(t, 3, sigma.At(0, 0)+sigma.At(1, 1), 1e-9)
}

// TestAssure_DiagonalKnownValues pins the exact clamp on a diagonal
// matrix, where the eigenbasis is the coordinate basis.
func TestAssure_DiagonalKnownValues(t *testing.T) {
	const eps = 1e-6
	sigma := mat.NewSymDense(2, []float64{-1, 0, 0, 2})

	repaired, err := covariance.AssurePositiveDefinite(sigma, eps)
	require.NoError(t, err)
	assert.True(t, repaired)
	assert.InDelta(t, eps, sigma.At(0, 0), 1e-12, "negative eigenvalue clamped to the floor")
	assert.InDelta(t, 2, sigma.At(1, 1), 1e-12, "healthy eigenvalue untouched")
	assert.InDelta(t, 0, sigma.At(0, 1), 1e-12)
}

// TestAssure_Idempotent: repairing a repaired covariance must leave it
// (numerically) unchanged.
func TestAssure_Idempotent(t *testing.T) {
	sigma := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	_, err := covariance.AssurePositiveDefinite(sigma, covariance.DefaultEps)
	require.NoError(t, err)

	once := symClone(sigma)
	_, err = covariance.AssurePositiveDefinite(sigma, covariance.DefaultEps)
	require.NoError(t, err)
	assertSymInDelta(t, once, sigma, 1e-9)
}

// TestAssure_Errors covers the sentinel conditions.
func TestAssure_Errors(t *testing.T) {
	_, err := covariance.AssurePositiveDefinite(nil, covariance.DefaultEps)
	assert.ErrorIs(t, err, covariance.ErrNilMatrix)

	sigma := mat.NewSymDense(1, []float64{1})
	_, err = covariance.AssurePositiveDefinite(sigma, 0)
	assert.ErrorIs(t, err, covariance.ErrNonPositiveEps)
	_, err = covariance.AssurePositiveDefinite(sigma, -1e-10)
	assert.ErrorIs(t, err, covariance.ErrNonPositiveEps)
}
