package viewer

import (
	"image/color"

	"tinygo.org/x/drivers"

	"wireframe/hal"
	"wireframe/wiregl"
)

// fbDisplayer lets tinyfont draw straight into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// Displayer wraps fb for tinyfont and other drivers.Displayer consumers.
// Only RGB565 framebuffers are drawn to.
func Displayer(fb hal.Framebuffer) drivers.Displayer { return &fbDisplayer{fb: fb} }

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := wiregl.RGB(c.R, c.G, c.B).RGB565()
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display is a no-op; the task presents the whole frame once per step.
func (d *fbDisplayer) Display() error { return nil }
