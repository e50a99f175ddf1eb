// Package matrix is the dense linear-algebra kernel of the truss solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float32 matrix, and Vector, a float32 column vector.
//   - In-place kernels (AddInPlace, ScaleInPlace and their vector forms) that
//     never allocate and only mutate their receiver argument.
//   - Allocating kernels (Clone, Mul, MulVec, Solve) whose results are owned by
//     the caller.
//   - Solve, Gaussian elimination with partial pivoting on a private copy.
//
// Every binary operation requires an exact dimension match and reports
// ErrDimensionMismatch otherwise. Singular systems surface as *SingularError,
// which matches ErrSingular via errors.Is and carries the failing column.
package matrix
