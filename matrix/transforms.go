package matrix

import "math"

// The factories below return 4x4 homogeneous matrices. A point is multiplied
// as a column on the right: p' = M x [x y z 1]^T.

func Translate(x, y, z float64) Matrix {
	return must(New(4, 4,
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	))
}

func Scale(x, y, z float64) Matrix {
	return must(New(4, 4,
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	))
}

// RotateX rotates counterclockwise about the X axis, looking from +X toward the origin.
func RotateX(rad float64) Matrix {
	c, s := math.Cos(rad), math.Sin(rad)
	return must(New(4, 4,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	))
}

// RotateY rotates counterclockwise about the Y axis, looking from +Y toward the origin.
func RotateY(rad float64) Matrix {
	c, s := math.Cos(rad), math.Sin(rad)
	return must(New(4, 4,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	))
}

// RotateZ rotates counterclockwise about the Z axis, looking from +Z toward the origin.
func RotateZ(rad float64) Matrix {
	c, s := math.Cos(rad), math.Sin(rad)
	return must(New(4, 4,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	))
}
