//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the run after N ticks (0 = run until ctx is done or ErrQuit).
	Ticks uint64
	// Keys are injected one per tick before the step runs.
	Keys []KeyEvent
	// Snapshot, if set, receives the last presented frame as PNG, also when
	// ctx ends the run.
	Snapshot string
}

// RunHeadless runs the step loop without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Width, cfg.Height)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	err := runTicks(ctx, t.C, h, step, cfg)
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	interrupted := ctx.Err() != nil && errors.Is(err, ctx.Err())
	if err != nil && !interrupted {
		return err
	}
	if cfg.Snapshot != "" {
		if serr := writeSnapshot(h.fb, cfg.Snapshot); serr != nil {
			return serr
		}
	}
	return err
}

func runTicks(ctx context.Context, ticks <-chan time.Time, h *hostHAL, step func() error, cfg HeadlessConfig) error {
	var tick uint64
	keys := cfg.Keys
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			if len(keys) > 0 {
				h.kbd.send(keys[0])
				keys = keys[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fb.writePresentedPNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
