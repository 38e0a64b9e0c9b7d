// SPDX-License-Identifier: MIT
// Package linearize: Jacobian extraction.
// A jet vector produced by evaluating a function seeded with
// jet.Derivator already carries the true Jacobian rows in its gradients;
// extraction is a pure reshape into a dense matrix, no arithmetic.

package linearize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tangent/jet"
)

// ExtractJacobian reads the L×R Jacobian out of a length-L jet vector
// whose entries carry R-dimensional gradients: row j equals
// result[j].Grad. The input must be the outcome of evaluating a
// function whose tangent perturbation was seeded with jet.Derivator(R);
// only then do the gradients equal the partial-derivative rows at the
// evaluation point.
//
// Errors: ErrEmptyResult if result is empty or gradients have zero
// width; ErrRaggedGradient if gradient lengths disagree.
func ExtractJacobian(result []jet.Jet) (*mat.Dense, error) {
	rows := len(result)
	if rows == 0 {
		return nil, ErrEmptyResult
	}
	cols := result[0].Dim()
	if cols == 0 {
		return nil, ErrEmptyResult
	}

	jac := mat.NewDense(rows, cols, nil)
	for j, entry := range result {
		if entry.Dim() != cols {
			return nil, ErrRaggedGradient
		}
		jac.SetRow(j, entry.Grad)
	}

	return jac, nil
}
