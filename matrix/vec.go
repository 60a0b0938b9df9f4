package matrix

// Vec3 is a point in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a projected point. Y grows upward, X grows rightward.
type Vec2 struct {
	X, Y float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
