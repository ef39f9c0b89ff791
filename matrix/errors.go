// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context via %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are
// reserved for invalid Option values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Public methods wrap the sentinel with the method
// name and coordinates, e.g. "Square.MulAdd(3,0): matrix: index out of range".
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> index -> dimension mismatch -> NaN/Inf.

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that a requested dimension is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible lengths, e.g. a row slice whose
	// length differs from the matrix dimension, or ragged/non-square input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value (input or computed) where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange using the
// wording of elimination-oriented callers. errors.Is matches either name.
var ErrIndexOutOfRange = ErrOutOfRange
