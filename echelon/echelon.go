package echelon

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Sentinel errors returned by the echelon package.
var (
	// ErrNilOperations indicates that a nil matrix.RowOperations was passed.
	ErrNilOperations = errors.New("echelon: row operations are nil")
)

const (
	opRowEchelon = "RowEchelon"
	opRank       = "Rank"
)

// echelonErrorf wraps err with the operation tag; sentinels survive for errors.Is.
func echelonErrorf(op string, err error) error {
	return fmt.Errorf("echelon: %s: %w", op, err)
}

// RowEchelon transforms ops in place into row-echelon form and returns its rank.
//
// Validation:
//  1. ops must be non-nil (ErrNilOperations).
//
// On success:
//   - ops.ExistsWrongRow() is false.
//   - rows [0, rank) are non-zero with strictly increasing leading columns.
//   - rows [rank, n) are exactly zero.
//
// On error the matrix may be partially reduced; every step that completed is
// an elementary row operation, so the row space is unchanged.
func RowEchelon(ops matrix.RowOperations) (int, error) {
	if ops == nil {
		return 0, ErrNilOperations
	}
	n := ops.Size()
	eps := ops.Epsilon()

	p := 0
	for c := 0; c < n && p < n; c++ {
		if err := ops.SwapWithNonZeroRow(p); err != nil {
			return 0, echelonErrorf(opRowEchelon, err)
		}
		if err := pinResidue(ops, p, c, eps); err != nil {
			return 0, echelonErrorf(opRowEchelon, err)
		}

		pv, err := ops.At(p, c)
		if err != nil {
			return 0, echelonErrorf(opRowEchelon, err)
		}
		if pv == 0 {
			r, err := firstNonZeroBelow(ops, p, c)
			if err != nil {
				return 0, echelonErrorf(opRowEchelon, err)
			}
			if r < 0 {
				continue // no pivot in this column; p stays
			}
			if err = ops.MulAdd(p, r, 1); err != nil {
				return 0, echelonErrorf(opRowEchelon, err)
			}
			if pv, err = ops.At(p, c); err != nil {
				return 0, echelonErrorf(opRowEchelon, err)
			}
		}

		if err = eliminateBelow(ops, p, c, pv); err != nil {
			return 0, echelonErrorf(opRowEchelon, err)
		}
		p++
	}

	return p, nil
}

// pinResidue writes exact zeros over cells |v| <= eps in column c, rows p..n-1.
// With eps == 0 nothing is written.
func pinResidue(ops matrix.RowOperations, p, c int, eps float64) error {
	if eps == 0 {
		return nil
	}
	for i := p; i < ops.Size(); i++ {
		v, err := ops.At(i, c)
		if err != nil {
			return err
		}
		if v != 0 && math.Abs(v) <= eps {
			if err = ops.Set(i, c, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// firstNonZeroBelow returns the first row r > p with r[c] != 0, or -1.
func firstNonZeroBelow(ops matrix.RowOperations, p, c int) (int, error) {
	for r := p + 1; r < ops.Size(); r++ {
		v, err := ops.At(r, c)
		if err != nil {
			return -1, err
		}
		if v != 0 {
			return r, nil
		}
	}

	return -1, nil
}

// eliminateBelow clears column c under the pivot (p, c) whose value is pv.
func eliminateBelow(ops matrix.RowOperations, p, c int, pv float64) error {
	for i := p + 1; i < ops.Size(); i++ {
		v, err := ops.At(i, c)
		if err != nil {
			return err
		}
		if v == 0 {
			continue
		}
		if err = ops.MulAdd(i, p, -v/pv); err != nil {
			return err
		}
		// Round-off may leave i[c] a few ulps away from zero.
		if err = ops.Set(i, c, 0); err != nil {
			return err
		}
	}

	return nil
}

// Rank returns the rank of m without modifying it (elimination runs on a clone).
func Rank(m *matrix.Square) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, echelonErrorf(opRank, err)
	}
	rank, err := RowEchelon(m.Clone())
	if err != nil {
		return 0, echelonErrorf(opRank, err)
	}

	return rank, nil
}

// IsEchelon reports whether ops is already in row-echelon form.
// A nil argument is never in echelon form.
func IsEchelon(ops matrix.RowOperations) bool {
	return ops != nil && !ops.ExistsWrongRow()
}
