// Package viewer is the interactive loop around the wireframe engine: it
// turns key presses into commands, applies them to the shape and redraws the
// frame with a small text HUD.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"wireframe/hal"
	"wireframe/wiregl"
)

// Options configures a Task.
type Options struct {
	Shape      *wiregl.Shape
	Controller *wiregl.Controller
	// Keymap maps hal.KeyName values to commands. Escape always quits.
	Keymap map[string]wiregl.Command

	Background wiregl.Color
	Line       wiregl.Color
	HUD        wiregl.Color
}

type Task struct {
	disp hal.Display
	kbd  hal.Keyboard
	log  *log.Logger

	fb hal.Framebuffer
	w  int
	h  int

	font       tinyfont.Fonter
	fontHeight int16

	shape  *wiregl.Shape
	ctrl   *wiregl.Controller
	keymap map[string]wiregl.Command
	r      *wiregl.Renderer
	hud    color.RGBA

	dirty  bool
	frames uint64
}

func New(disp hal.Display, in hal.Input, logger *log.Logger, opts Options) *Task {
	if logger == nil {
		logger = log.Default()
	}
	t := &Task{
		disp:   disp,
		log:    logger,
		shape:  opts.Shape,
		ctrl:   opts.Controller,
		keymap: opts.Keymap,
		r: &wiregl.Renderer{
			ClearColor: opts.Background,
			LineColor:  opts.Line,
		},
		hud:   color.RGBA{R: opts.HUD.R, G: opts.HUD.G, B: opts.HUD.B, A: 0xFF},
		dirty: true,
	}
	if in != nil {
		t.kbd = in.Keyboard()
	}
	return t
}

func (t *Task) Shape() *wiregl.Shape           { return t.shape }
func (t *Task) Controller() *wiregl.Controller { return t.ctrl }

// Frames returns the number of frames presented so far.
func (t *Task) Frames() uint64 { return t.frames }

// Step runs one frame: drain pending key events, then redraw if anything changed.
// It returns hal.ErrQuit when the user asks to leave.
func (t *Task) Step() error {
	if t.fb == nil {
		if err := t.init(); err != nil {
			return err
		}
	}

	if t.kbd != nil {
		ch := t.kbd.Events()
	drain:
		for {
			select {
			case ev := <-ch:
				if err := t.handleKey(ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}
	}

	if t.dirty {
		t.render()
	}
	return nil
}

func (t *Task) init() error {
	if t.disp == nil {
		return fmt.Errorf("viewer: no display")
	}
	if t.shape == nil || t.ctrl == nil {
		return fmt.Errorf("viewer: shape and controller are required")
	}
	fb := t.disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return fmt.Errorf("viewer: need an RGB565 framebuffer")
	}
	t.fb = fb
	t.w = fb.Width()
	t.h = fb.Height()

	t.font = &proggy.TinySZ8pt7b
	t.fontHeight = int16(t.font.GetYAdvance())
	if t.fontHeight <= 0 {
		t.fontHeight = 10
	}
	t.log.Debug("viewer ready", "shape", t.shape.Name, "size", fmt.Sprintf("%dx%d", t.w, t.h), "projection", t.ctrl.ProjectionKind())
	return nil
}

func (t *Task) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	name := hal.KeyName(ev)
	if name == "" {
		return nil
	}
	if name == "esc" {
		t.log.Info("quit requested")
		return hal.ErrQuit
	}
	cmd, ok := t.keymap[name]
	if !ok {
		t.log.Debug("unbound key", "key", name)
		return nil
	}
	if err := t.ctrl.Apply(t.shape, cmd); err != nil {
		t.log.Error("command failed", "cmd", cmd, "err", err)
		return nil
	}
	t.log.Debug("command", "key", name, "cmd", cmd)
	t.dirty = true
	return nil
}

func (t *Task) render() {
	target := &wiregl.RGB565Target{
		Buf:    t.fb.Buffer(),
		Stride: t.fb.StrideBytes(),
		W:      t.w,
		H:      t.h,
	}
	if err := t.r.Render(target, t.shape, t.ctrl.Projection()); err != nil {
		// Nothing retries until the next command changes the scene.
		t.log.Error("frame skipped", "err", err)
		t.dirty = false
		return
	}

	t.drawText(6, 4, fmt.Sprintf("%s  %s", t.shape.Name, t.ctrl.ProjectionKind()))
	t.drawText(6, 4+int(t.fontHeight), "arrows rotate  wasdqe move  i/p projection  esc quit")

	if err := t.fb.Present(); err != nil {
		t.log.Error("present failed", "err", err)
		return
	}
	t.dirty = false
	t.frames++
}

func (t *Task) drawText(x, y int, s string) {
	d := &fbDisplayer{fb: t.fb}
	tinyfont.WriteLine(d, t.font, int16(x), int16(y)+t.fontHeight, s, t.hud)
}
