// Package rowreduce is a small, deterministic toolkit for the row-reduction
// step of Gaussian elimination on square float64 matrices.
//
// 🚀 What is rowreduce?
//
//	A pure-Go library that brings together:
//		• matrix/  : Square grid, bounds-checked At/Set, elementary row
//		              operations (MulAdd, SwapRows, SwapWithNonZeroRow, ScaleRow)
//		              and degenerate-row queries (ExistsZeroRow, ExistsWrongRow)
//		• echelon/ : forward elimination to row-echelon form and rank, driven
//		              only through the matrix.RowOperations interface
//
// ✨ Why choose rowreduce?
//
//   - Sentinel errors instead of panics: every bad index is matrix.ErrOutOfRange
//   - All-or-nothing writes: a failed operation never leaves a half-updated row
//   - Substitutable: depend on matrix.RowOperations and swap in a recording
//     double in tests
//   - gonum interop for everything beyond row operations
//
// Quick ASCII example:
//
//	[1, 2, 3]            [1, 2, 3]
//	[0, 0, 0]  ──swap──▶ [4, 5, 6]
//	[4, 5, 6]            [0, 0, 0]
//
//	go get github.com/katalvlaran/rowreduce
package rowreduce
