package matrix

import "math"

// FocalDistance is the default distance d of the perspective projection.
const FocalDistance = 400.0

// Perspective returns the perspective projection with focal distance d.
// Row 3 is [0 0 1/d 1], so w = z/d + 1: points at z = 0 keep their size and
// points further along +z shrink.
//
// It panics if d is zero.
func Perspective(d float64) Matrix {
	if d == 0 {
		panic("matrix: zero focal distance")
	}
	return must(New(4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, d,
		0, 0, 1/d, 1,
	))
}

// Isometric returns the isometric projection: the three axes are mapped with
// equal foreshortening using the sqrt(2), sqrt(3), sqrt(6) axis terms.
func Isometric() Matrix {
	r2, r3, r6 := math.Sqrt2, math.Sqrt(3), math.Sqrt(6)
	return must(New(4, 4,
		r3, 0, -r3, 0,
		1, 2, 1, 0,
		r2, -r2, r2, 0,
		0, 0, 0, r6,
	))
}

// Process-wide projection constants. Matrix has no mutating methods, so these
// are safe to share.
var (
	PerspectiveMatrix = Perspective(FocalDistance)
	IsometricMatrix   = Isometric()
)
