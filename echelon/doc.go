// Package echelon reduces a square matrix to row-echelon form using only the
// elementary primitives exposed by matrix.RowOperations.
//
// Forward elimination walks columns left to right with a pivot row p:
//
//	1. SwapWithNonZeroRow(p) pulls a non-zero row up when row p is all zero.
//	2. Residue |v| <= eps in column c (rows p..n-1) is pinned to exact zero.
//	3. If p[c] is zero, the first later row r with a non-zero r[c] is added
//	   to row p (MulAdd(p, r, 1)); with no such row the column is skipped.
//	4. Every later row i with i[c] != 0 gets MulAdd(i, p, -i[c]/p[c]) and
//	   i[c] is pinned to 0.
//
// Pivot choice is first-non-zero (no partial pivoting), so the sequence of
// primitive calls is fully determined by the input.
//
// Complexity:
//
//	– Time:  O(n^3) primitive work.
//	– Space: O(n) per MulAdd staging row; no other allocation.
//
// Errors (sentinel):
//
//	– ErrNilOperations if the RowOperations argument is nil.
//	– Primitive errors (matrix.ErrOutOfRange, matrix.ErrNaNInf, ...) are
//	  wrapped with "echelon: RowEchelon" context and match via errors.Is.
//
// Example usage:
//
//	m, _ := matrix.NewSquareFromRows([][]float64{{0, 2}, {1, 1}})
//	rank, err := echelon.RowEchelon(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rank, m.ExistsWrongRow()) // 2 false
package echelon
