package matrix

import "errors"

var (
	// ErrShape is returned when operand dimensions are incompatible or when a
	// matrix is constructed with a coefficient count that does not match its shape.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrIndex is returned by Get for a row or column outside the matrix.
	ErrIndex = errors.New("matrix: index out of range")

	// ErrDivisionByZero is returned when the homogeneous w component is zero
	// during the perspective divide (a point on the camera plane).
	ErrDivisionByZero = errors.New("matrix: division by zero w component")
)
