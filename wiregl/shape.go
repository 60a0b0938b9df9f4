package wiregl

import (
	"errors"
	"fmt"
	"iter"

	"wireframe/matrix"
)

var ErrEdge = errors.New("wiregl: invalid edge")

// Edge is an unordered pair of vertex indices.
type Edge struct {
	A, B int
}

func (e Edge) key() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// Segment is a projected edge in core screen space (origin at the centre, Y up).
type Segment struct {
	A, B matrix.Vec2
}

// Shape is a polyhedron whose vertices are replaced by every transform while
// its edge topology stays fixed.
type Shape struct {
	Name string

	vertices []matrix.Vec3
	edges    []Edge
}

// NewShape validates edges against vertices: indices must be in range, no
// self loops and no duplicates in either orientation.
func NewShape(name string, vertices []matrix.Vec3, edges []Edge) (*Shape, error) {
	seen := make(map[Edge]struct{}, len(edges))
	for i, e := range edges {
		if e.A < 0 || e.B < 0 || e.A >= len(vertices) || e.B >= len(vertices) {
			return nil, fmt.Errorf("%s: edge %d (%d,%d) outside %d vertices: %w", name, i, e.A, e.B, len(vertices), ErrEdge)
		}
		if e.A == e.B {
			return nil, fmt.Errorf("%s: edge %d is a self loop on %d: %w", name, i, e.A, ErrEdge)
		}
		k := e.key()
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%s: edge %d (%d,%d) duplicated: %w", name, i, e.A, e.B, ErrEdge)
		}
		seen[k] = struct{}{}
	}
	s := &Shape{
		Name:     name,
		vertices: make([]matrix.Vec3, len(vertices)),
		edges:    make([]Edge, len(edges)),
	}
	copy(s.vertices, vertices)
	copy(s.edges, edges)
	return s, nil
}

func (s *Shape) Vertices() []matrix.Vec3 {
	out := make([]matrix.Vec3, len(s.vertices))
	copy(out, s.vertices)
	return out
}

func (s *Shape) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

func (s *Shape) Clone() *Shape {
	return &Shape{Name: s.Name, vertices: s.Vertices(), edges: s.Edges()}
}

// ApplyTransform replaces every vertex v with matrix.Transform(m, v) and
// returns s for chaining. If any vertex fails the shape is left unchanged.
func (s *Shape) ApplyTransform(m matrix.Matrix) (*Shape, error) {
	next := make([]matrix.Vec3, len(s.vertices))
	for i, v := range s.vertices {
		p, err := matrix.Transform(m, v)
		if err != nil {
			return s, fmt.Errorf("%s: vertex %d: %w", s.Name, i, err)
		}
		next[i] = p
	}
	s.vertices = next
	return s, nil
}

// ProjectedEdges returns a lazy sequence of the edges projected through proj.
// Each iteration starts from the vertices current at that moment; a later
// ApplyTransform does not affect an iteration already in progress.
//
// On a projection failure the sequence yields the error once and stops.
func (s *Shape) ProjectedEdges(proj matrix.Matrix) iter.Seq2[Segment, error] {
	return func(yield func(Segment, error) bool) {
		verts, edges := s.vertices, s.edges
		for _, e := range edges {
			a, err := matrix.Project(proj, verts[e.A])
			if err != nil {
				yield(Segment{}, fmt.Errorf("%s: edge (%d,%d): %w", s.Name, e.A, e.B, err))
				return
			}
			b, err := matrix.Project(proj, verts[e.B])
			if err != nil {
				yield(Segment{}, fmt.Errorf("%s: edge (%d,%d): %w", s.Name, e.A, e.B, err))
				return
			}
			if !yield(Segment{A: a, B: b}, nil) {
				return
			}
		}
	}
}
