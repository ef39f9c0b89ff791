// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Square to gonum kernels (factorizations, norms, solvers) and
//     bring gonum results back under the Square numeric policy.
//   - Both directions copy; neither side aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense holding a copy of m.
// Complexity: O(n^2).
func (m *Square) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.n, m.n, buf)
}

// NewSquareFromGonum copies a square gonum matrix into a new Square.
// Implementation:
//   - Stage 1: reject nil and non-square inputs.
//   - Stage 2: allocate via NewSquare; copy with At in row-major order under policy.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrDimensionMismatch when rows != cols.
//   - ErrNaNInf for non-finite cells (policy ON).
func NewSquareFromGonum(a mat.Matrix, opts ...Option) (*Square, error) {
	if a == nil {
		return nil, fmt.Errorf("Square.%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return nil, squareErrorf(ctxFromGonum, r, c, ErrDimensionMismatch)
	}
	m, err := NewSquare(r, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			if m.validateNaNInf && isNonFinite(v) {
				return nil, squareErrorf(ctxFromGonum, i, j, ErrNaNInf)
			}
			m.data[i*r+j] = v
		}
	}

	return m, nil
}
