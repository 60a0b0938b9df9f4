package wiregl

import (
	"errors"
	"fmt"
	"sort"

	"wireframe/matrix"
)

var ErrUnknownShape = errors.New("wiregl: unknown shape")

// Cube returns the unit cube with vertices at (±1,±1,±1) and its 12 axis-aligned edges.
func Cube() *Shape {
	return mustShape(NewShape("cube",
		[]matrix.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: -1},
			{X: 1, Y: 1, Z: 1},
		},
		[]Edge{
			{0, 1}, {0, 2}, {0, 4},
			{1, 3}, {1, 5},
			{2, 3}, {2, 6},
			{3, 7},
			{4, 5}, {4, 6},
			{5, 7},
			{7, 6},
		},
	))
}

// Tetrahedron uses alternate corners of the unit cube.
func Tetrahedron() *Shape {
	return mustShape(NewShape("tetrahedron",
		[]matrix.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		[]Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	))
}

// Octahedron has its six vertices on the axes at distance 1.
func Octahedron() *Shape {
	return mustShape(NewShape("octahedron",
		[]matrix.Vec3{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		[]Edge{
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {2, 5}, {3, 4}, {3, 5},
		},
	))
}

var templates = map[string]func() *Shape{
	"cube":        Cube,
	"tetrahedron": Tetrahedron,
	"octahedron":  Octahedron,
}

// Template returns a fresh copy of the named template.
func Template(name string) (*Shape, error) {
	fn, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownShape)
	}
	return fn(), nil
}

func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func mustShape(s *Shape, err error) *Shape {
	if err != nil {
		panic(err)
	}
	return s
}
