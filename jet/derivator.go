// SPDX-License-Identifier: MIT
// Package jet: the basis seed generator ("derivator") and its cache.
// This file owns the only shared state in the whole module: one immutable
// seed vector per requested dimension, built once and reused for the
// process lifetime. Initialization is guarded so that concurrent first
// use from multiple goroutines observes a fully built vector.

package jet

import "sync"

// derivatorCache maps dimension → its published seed vector.
// Entries are write-once: after publication a seed vector is never
// mutated, so unsynchronized concurrent reads through the RLock path
// are safe.
var (
	derivatorMu    sync.RWMutex
	derivatorCache = map[int][]Jet{}
)

// Derivator returns the standard-basis seed vector for dimension n:
// entry i carries value 0 and gradient eᵢ (the i-th standard basis
// vector of ℝⁿ). Adding the seed to a state's tangent perturbation and
// evaluating a transform in jet arithmetic realizes the transform at the
// unperturbed point while its gradients accumulate the Jacobian rows.
//
// The returned slice is shared and cached for the process lifetime:
// callers MUST NOT mutate it or the gradients it holds. Derive fresh
// jets from it (Shift, Add, ...) instead.
//
// Panics if n <= 0 (programmer error: a seed needs at least one
// direction, and the dimension is fixed by the state type).
//
// Complexity: O(n²) on the first call for a given n, O(1) afterwards.
func Derivator(n int) []Jet {
	if n <= 0 {
		panic("jet: Derivator requires n > 0")
	}

	// Fast path: already built.
	derivatorMu.RLock()
	seed, ok := derivatorCache[n]
	derivatorMu.RUnlock()
	if ok {
		return seed
	}

	// Slow path: build under the write lock; re-check to keep the entry
	// write-once when two goroutines race on the same dimension.
	derivatorMu.Lock()
	defer derivatorMu.Unlock()
	if seed, ok = derivatorCache[n]; ok {
		return seed
	}

	seed = make([]Jet, n)
	for i := 0; i < n; i++ {
		grad := make([]float64, n)
		grad[i] = 1
		seed[i] = Jet{Real: 0, Grad: grad}
	}
	derivatorCache[n] = seed

	return seed
}
