// Package matrix provides the dense linear-algebra kernels behind ReFACTor.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe At/Set (errors, never panics),
//     an optional NaN/Inf guard, and copy-based submatrix extraction
//     (Induced, LeadingCols).
//   - Kernels: Mul, Transpose and a deterministic Jacobi Eigen for symmetric input.
//   - Column statistics: CenterColumns, NormalizeColumnsL2 and ColumnDistances,
//     the building blocks of site ranking.
//
// All kernels allocate fresh results and never mutate their inputs. Loop
// orders are fixed, so identical inputs always yield bit-identical outputs.
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
