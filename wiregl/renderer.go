package wiregl

import (
	"errors"
	"fmt"
	"math"

	"wireframe/matrix"
)

// ErrRender reports a Render call without a renderer, target or shape.
var ErrRender = errors.New("wiregl: nothing to render")

// Renderer draws projected shape edges as 1px lines.
//
// Create it once and reuse it.
type Renderer struct {
	ClearColor Color
	LineColor  Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		ClearColor: RGB(0, 0, 0),
		LineColor:  RGB(0xFF, 0xFF, 0xFF),
	}
}

// Render clears t and draws every edge of s projected through proj. It stops
// at the first projection error; lines drawn before it stay in the target.
func (r *Renderer) Render(t Target, s *Shape, proj matrix.Matrix) error {
	switch {
	case r == nil:
		return fmt.Errorf("render: nil renderer: %w", ErrRender)
	case t == nil:
		return fmt.Errorf("render: nil target: %w", ErrRender)
	case s == nil:
		return fmt.Errorf("render: nil shape: %w", ErrRender)
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	t.Clear(r.ClearColor)

	for seg, err := range s.ProjectedEdges(proj) {
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		x0, y0 := ToScreen(seg.A, w, h)
		x1, y1 := ToScreen(seg.B, w, h)
		r.drawLine(t, x0, y0, x1, y1, r.LineColor)
	}
	return nil
}

// ToScreen maps a core point (origin at the centre, Y up) to device pixels
// (origin top-left, Y down).
func ToScreen(p matrix.Vec2, w, h int) (x, y int) {
	sx := p.X + float64(w/2)
	sy := -p.Y + float64(h/2)
	return clampPixel(sx), clampPixel(sy)
}

// clampPixel rounds v and keeps it in a range where Bresenham stays bounded
// even for points projected far off screen.
func clampPixel(v float64) int {
	const lim = 1 << 15
	switch {
	case math.IsNaN(v):
		return 0
	case v > lim:
		return lim
	case v < -lim:
		return -lim
	}
	return int(math.Round(v))
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
