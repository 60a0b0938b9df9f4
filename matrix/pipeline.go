package matrix

import "fmt"

// PointToColumn promotes p to the homogeneous column [x y z 1].
func PointToColumn(p Vec3) Matrix {
	return Matrix{h: 4, w: 1, vals: []float64{p.X, p.Y, p.Z, 1}}
}

// apply is the single normalization point shared by Transform and Project:
// multiply, then scale the whole column by 1/w.
func apply(m Matrix, p Vec3) (Matrix, error) {
	col, err := Multiply(m, PointToColumn(p))
	if err != nil {
		return Matrix{}, err
	}
	w, err := col.Get(3, 0)
	if err != nil {
		return Matrix{}, err
	}
	if w == 0 {
		return Matrix{}, fmt.Errorf("point (%g,%g,%g): %w", p.X, p.Y, p.Z, ErrDivisionByZero)
	}
	return Multiply(ScaledIdentity(4, 1/w), col)
}

// Transform applies m to p and returns the perspective-divided 3D point.
func Transform(m Matrix, p Vec3) (Vec3, error) {
	col, err := apply(m, p)
	if err != nil {
		return Vec3{}, fmt.Errorf("transform: %w", err)
	}
	return col.ToVec3()
}

// Project applies m to p and returns x and y after the divide. Depth is dropped.
func Project(m Matrix, p Vec3) (Vec2, error) {
	col, err := apply(m, p)
	if err != nil {
		return Vec2{}, fmt.Errorf("project: %w", err)
	}
	return col.ToVec2()
}
