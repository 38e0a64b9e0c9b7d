// SPDX-License-Identifier: MIT
// Package covariance: finiteness guards.
// Defensive screens callers insert at linearization boundaries; they are
// not part of any algorithm's control flow. IsFinite observes without
// halting, AssertFinite halts with a panic — assertion semantics for
// values that must never be NaN or ±Inf.

package covariance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// IsFinite reports whether every element of m is finite (neither NaN nor
// ±Inf). A nil matrix is not finite.
func IsFinite(m mat.Matrix) bool {
	if m == nil {
		return false
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !finite(m.At(i, j)) {
				return false
			}
		}
	}

	return true
}

// AssertFinite asserts finiteness over a variadic list of numeric
// arguments — float64, []float64, or any mat.Matrix (vectors included).
// It panics on the first non-finite argument, naming its position, and
// panics on an unsupported argument type (programmer error).
func AssertFinite(args ...any) {
	for i, arg := range args {
		switch v := arg.(type) {
		case float64:
			if !finite(v) {
				panic(fmt.Sprintf("covariance: non-finite value in argument %d", i))
			}
		case []float64:
			for _, x := range v {
				if !finite(x) {
					panic(fmt.Sprintf("covariance: non-finite value in argument %d", i))
				}
			}
		case mat.Matrix:
			if !IsFinite(v) {
				panic(fmt.Sprintf("covariance: non-finite value in argument %d", i))
			}
		default:
			panic(fmt.Sprintf("covariance: AssertFinite does not support argument %d (%T)", i, arg))
		}
	}
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
