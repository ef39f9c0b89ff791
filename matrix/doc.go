// Package matrix provides a square float64 grid with the elementary row
// operations used by Gaussian elimination.
//
// The matrix package provides:
//
//   - Square: an n×n row-major grid, zero-initialized, with bounds-checked
//     At/Set that return sentinel errors instead of panicking.
//   - Row primitives: MulAdd (scaled row addition), SwapRows,
//     SwapWithNonZeroRow and ScaleRow, each validated before any write.
//   - Degenerate-row queries: ExistsZeroRow, ExistsWrongRow, IsZeroRow,
//     LeadingColumn.
//   - RowOperations: the capability interface implemented by *Square, consumed
//     by elimination drivers such as package echelon.
//   - gonum interop: ToGonum / NewSquareFromGonum.
//
// Square is not safe for concurrent mutation; callers that share an instance
// must serialize access externally.
//
// See example_test.go for usage patterns.
package matrix
