package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wireframe/app"
	"wireframe/hal"
	"wireframe/internal/buildinfo"
	"wireframe/internal/config"
)

type runOptions struct {
	configPath string
	shape      string
	projection string

	headless bool
	ticks    uint64
	hz       int
	keys     []string
	snapshot string
}

func newRunCmd() *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the viewer",
		Long: `Open the viewer window. Arrows rotate, W/S/A/D/Q/E move, I and P switch
projection, Escape quits. With --headless the viewer runs on a ticker instead,
optionally replaying --keys and saving the last frame with --snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd.Context(), o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&o.shape, "shape", "", "shape template (overrides config)")
	f.StringVar(&o.projection, "projection", "", "perspective or isometric (overrides config)")
	f.BoolVar(&o.headless, "headless", false, "run without a window")
	f.Uint64Var(&o.ticks, "ticks", 0, "stop after N ticks in headless mode (0 = until interrupted)")
	f.IntVar(&o.hz, "hz", 60, "tick rate in headless mode")
	f.StringSliceVar(&o.keys, "keys", nil, "keys to inject in headless mode, one per tick (e.g. right,right,i)")
	f.StringVar(&o.snapshot, "snapshot", "", "write the last headless frame to this PNG file")

	return cmd
}

func loadConfig(path, shape, projection string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if shape != "" {
		cfg.Scene.Shape = shape
	}
	if projection != "" {
		cfg.Scene.Projection = projection
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runViewer(ctx context.Context, o runOptions) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(o.configPath, o.shape, o.projection)
	if err != nil {
		return err
	}
	opts, err := app.Options(cfg)
	if err != nil {
		return err
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, opts, logger) }

	logger.Debug("starting viewer",
		"shape", cfg.Scene.Shape,
		"projection", cfg.Scene.Projection,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"headless", o.headless,
	)

	if !o.headless {
		return hal.RunWindow(hal.WindowConfig{
			Title:  "wireframe " + buildinfo.Short(),
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.TPS,
		}, newApp)
	}

	keys := make([]hal.KeyEvent, 0, len(o.keys))
	for _, k := range o.keys {
		ev, err := hal.ParseKey(k)
		if err != nil {
			return err
		}
		keys = append(keys, ev)
	}

	err = hal.RunHeadless(ctx, hal.HeadlessConfig{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Hz:       o.hz,
		Ticks:    o.ticks,
		Keys:     keys,
		Snapshot: o.snapshot,
	}, newApp)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	if err != nil {
		return err
	}
	if o.snapshot != "" {
		logger.Info("snapshot written", "path", o.snapshot)
	}
	return nil
}
