//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestKeyNameRoundTrip(t *testing.T) {
	for _, name := range []string{"up", "down", "left", "right", "enter", "esc", "w", "i", "1"} {
		ev, err := ParseKey(name)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", name, err)
		}
		if got := KeyName(ev); got != name {
			t.Fatalf("KeyName(ParseKey(%q))=%q", name, got)
		}
	}
	if got := KeyName(KeyEvent{Press: true, Rune: 'W'}); got != "w" {
		t.Fatalf("KeyName(W)=%q", got)
	}
	if _, err := ParseKey("ctrl"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPresentPublishesFrame(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	dst := make([]byte, len(fb.buf))
	fb.snapshotRGB565(dst)
	if dst[0] != 0 {
		t.Fatalf("unpresented frame visible")
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.snapshotRGB565(dst)
	if dst[0] != 0xFF {
		t.Fatalf("presented frame not visible")
	}
}

func TestWritePNG(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0xFF, 0, 0)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds=%v", b)
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 0xFF || g != 0 || b != 0 {
		t.Fatalf("pixel=%d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestRunTicksInjectsKeys(t *testing.T) {
	h := newHost(8, 8)
	ticks := make(chan time.Time, 4)
	for i := 0; i < 4; i++ {
		ticks <- time.Time{}
	}

	var got []KeyEvent
	step := func() error {
		for {
			select {
			case ev := <-h.kbd.Events():
				got = append(got, ev)
			default:
				return nil
			}
		}
	}
	cfg := HeadlessConfig{
		Ticks: 3,
		Keys:  []KeyEvent{{Code: KeyUp, Press: true}, {Rune: 'i', Press: true}},
	}
	if err := runTicks(context.Background(), ticks, h, step, cfg); err != nil {
		t.Fatalf("runTicks: %v", err)
	}
	if len(got) != 2 || got[0].Code != KeyUp || got[1].Rune != 'i' {
		t.Fatalf("events=%v", got)
	}
}

func TestRunTicksStopsOnQuit(t *testing.T) {
	h := newHost(8, 8)
	ticks := make(chan time.Time, 1)
	ticks <- time.Time{}
	err := runTicks(context.Background(), ticks, h, func() error { return ErrQuit }, HeadlessConfig{})
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("err=%v", err)
	}
}

func TestSnapshotUsesPresentedFrame(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0xFF, 0, 0)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	// Unpresented back buffer contents must not leak into the snapshot.
	fb.ClearRGB(0, 0, 0xFF)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writeSnapshot(fb, path); err != nil {
		t.Fatalf("writeSnapshot: %v", err)
	}
	r, g, b := decodePixel(t, path, 1, 1)
	if r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("pixel=%d,%d,%d, want red", r, g, b)
	}
}

func TestRunHeadlessSnapshotOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "frame.png")
	err := RunHeadless(ctx, HeadlessConfig{Width: 4, Height: 4, Snapshot: path}, func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		fb.ClearRGB(0, 0xFF, 0)
		if err := fb.Present(); err != nil {
			t.Fatalf("Present: %v", err)
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	r, g, b := decodePixel(t, path, 0, 0)
	if r != 0 || g != 0xFF || b != 0 {
		t.Fatalf("pixel=%d,%d,%d, want green", r, g, b)
	}
}

func decodePixel(t *testing.T, path string, x, y int) (r, g, b uint32) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}
