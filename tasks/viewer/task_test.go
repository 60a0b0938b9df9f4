package viewer

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"wireframe/hal"
	"wireframe/matrix"
	"wireframe/wiregl"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
	format   hal.PixelFormat
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2), format: hal.PixelFormatRGB565}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return f.format }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}
func (f *fakeFB) Present() error          { f.presents++; return nil }

func (f *fakeFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeInput struct{ kbd *fakeKeyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

var colorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func testKeymap() map[string]wiregl.Command {
	return map[string]wiregl.Command{
		"up":    wiregl.CmdPitchNeg,
		"down":  wiregl.CmdPitchPos,
		"left":  wiregl.CmdYawPos,
		"right": wiregl.CmdYawNeg,
		"w":     wiregl.CmdUp,
		"i":     wiregl.CmdIsometric,
		"p":     wiregl.CmdPerspective,
	}
}

func newTestTask(t *testing.T, fb *fakeFB) (*Task, *fakeKeyboard) {
	t.Helper()
	cube, err := wiregl.Cube().ApplyTransform(matrix.Scale(50, 50, 50))
	if err != nil {
		t.Fatalf("scale cube: %v", err)
	}
	kbd := &fakeKeyboard{ch: make(chan hal.KeyEvent, 64)}
	task := New(fakeDisplay{fb: fb}, fakeInput{kbd: kbd}, log.New(io.Discard), Options{
		Shape:      cube,
		Controller: wiregl.NewController(wiregl.DefaultStep, wiregl.DefaultAngle, matrix.FocalDistance),
		Keymap:     testKeymap(),
		Background: wiregl.RGB(0, 0, 0),
		Line:       wiregl.RGB(0xFF, 0xFF, 0xFF),
		HUD:        wiregl.RGB(0x90, 0xA0, 0xB8),
	})
	return task, kbd
}

func TestStepRendersOnceUntilDirty(t *testing.T) {
	fb := newFakeFB(320, 240)
	task, _ := newTestTask(t, fb)

	for i := 0; i < 3; i++ {
		if err := task.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if fb.presents != 1 || task.Frames() != 1 {
		t.Fatalf("presents=%d frames=%d, want 1", fb.presents, task.Frames())
	}

	// Perspective cube corner at (-50,-50,-50) lands on (103, 177).
	if got := fb.pixel(103, 177); got != 0xFFFF {
		t.Fatalf("corner pixel = %#04x, want white", got)
	}
}

func TestStepAppliesKeyCommands(t *testing.T) {
	fb := newFakeFB(320, 240)
	task, kbd := newTestTask(t, fb)
	before := task.Shape().Vertices()

	kbd.ch <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	kbd.ch <- hal.KeyEvent{Rune: 'W', Press: true}
	if err := task.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	m, err := matrix.Compose(matrix.Translate(0, 10, 0), matrix.RotateY(-wiregl.DefaultAngle))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	after := task.Shape().Vertices()
	for i, v := range before {
		want, err := matrix.Transform(m, v)
		if err != nil {
			t.Fatalf("transform: %v", err)
		}
		if d := want.Sub(after[i]); d.X*d.X+d.Y*d.Y+d.Z*d.Z > 1e-18 {
			t.Fatalf("vertex %d = %+v, want %+v", i, after[i], want)
		}
	}
}

func TestStepIgnoresReleasesAndUnboundKeys(t *testing.T) {
	fb := newFakeFB(320, 240)
	task, kbd := newTestTask(t, fb)
	before := task.Shape().Vertices()

	kbd.ch <- hal.KeyEvent{Code: hal.KeyRight, Press: false}
	kbd.ch <- hal.KeyEvent{Rune: 'z', Press: true}
	if err := task.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	after := task.Shape().Vertices()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("vertex %d moved: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestStepSwitchesProjection(t *testing.T) {
	fb := newFakeFB(320, 240)
	task, kbd := newTestTask(t, fb)
	if err := task.Step(); err != nil {
		t.Fatalf("first step: %v", err)
	}

	kbd.ch <- hal.KeyEvent{Rune: 'i', Press: true}
	if err := task.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := task.Controller().ProjectionKind(); got != wiregl.ProjectionIsometric {
		t.Fatalf("projection = %v, want isometric", got)
	}
	kbd.ch <- hal.KeyEvent{Rune: 'p', Press: true}
	if err := task.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := task.Controller().ProjectionKind(); got != wiregl.ProjectionPerspective {
		t.Fatalf("projection = %v, want perspective", got)
	}
	if fb.presents != 3 {
		t.Fatalf("presents = %d, want 3", fb.presents)
	}
}

func TestEscapeQuits(t *testing.T) {
	task, kbd := newTestTask(t, newFakeFB(64, 64))
	kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := task.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
}

func TestRenderErrorSkipsFrame(t *testing.T) {
	fb := newFakeFB(64, 64)
	task, kbd := newTestTask(t, fb)
	task.keymap["q"] = wiregl.CmdNear

	// 35 steps of -10 put the z=-50 face on the focal plane, where w == 0.
	for i := 0; i < 35; i++ {
		kbd.ch <- hal.KeyEvent{Rune: 'q', Press: true}
		if err := task.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if fb.presents != 34 {
		t.Fatalf("presents = %d, want 34", fb.presents)
	}

	kbd.ch <- hal.KeyEvent{Rune: 'q', Press: true}
	if err := task.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if fb.presents != 35 {
		t.Fatalf("presents = %d, want 35", fb.presents)
	}
}

func TestRenderErrorLoggedOnce(t *testing.T) {
	fb := newFakeFB(64, 64)
	var logs bytes.Buffer
	task, kbd := newTestTask(t, fb)
	task.log = log.New(&logs)
	task.keymap["q"] = wiregl.CmdNear

	for i := 0; i < 35; i++ {
		kbd.ch <- hal.KeyEvent{Rune: 'q', Press: true}
	}
	for i := 0; i < 60; i++ {
		if err := task.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if n := strings.Count(logs.String(), "frame skipped"); n != 1 {
		t.Fatalf("frame skipped logged %d times, want 1", n)
	}
	if fb.presents != 0 {
		t.Fatalf("presents = %d, want 0", fb.presents)
	}

	// The next command redraws.
	kbd.ch <- hal.KeyEvent{Rune: 'q', Press: true}
	if err := task.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
}

func TestStepRejectsUnsupportedFramebuffer(t *testing.T) {
	fb := newFakeFB(8, 8)
	fb.format = 0
	task, _ := newTestTask(t, fb)
	if err := task.Step(); err == nil {
		t.Fatal("expected error for non-RGB565 framebuffer")
	}
}

func TestDisplayerClipsAndEncodes(t *testing.T) {
	fb := newFakeFB(4, 4)
	d := &fbDisplayer{fb: fb}
	if w, h := d.Size(); w != 4 || h != 4 {
		t.Fatalf("size = %dx%d", w, h)
	}
	d.SetPixel(-1, 0, colorWhite)
	d.SetPixel(4, 4, colorWhite)
	d.SetPixel(1, 2, colorWhite)
	if got := fb.pixel(1, 2); got != 0xFFFF {
		t.Fatalf("pixel = %#04x", got)
	}
	if got := fb.pixel(0, 0); got != 0 {
		t.Fatalf("clipped write leaked: %#04x", got)
	}
}
