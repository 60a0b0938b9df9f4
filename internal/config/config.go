// Package config loads viewer settings from defaults, an optional TOML file
// and WIREFRAME_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"wireframe/hal"
	"wireframe/matrix"
	"wireframe/wiregl"
)

// EnvPrefix prefixes every environment override, e.g. WIREFRAME_SCENE_FOCAL_DISTANCE.
const EnvPrefix = "WIREFRAME"

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Window   Window            `toml:"window"`
	Scene    Scene             `toml:"scene"`
	Controls Controls          `toml:"controls"`
	Colors   Colors            `toml:"colors"`
	Keys     map[string]string `toml:"keys"`
}

type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Scale  int `toml:"scale"`
	TPS    int `toml:"tps"`
}

type Scene struct {
	Shape         string  `toml:"shape"`
	Size          float64 `toml:"size"`
	FocalDistance float64 `toml:"focal_distance" split_words:"true"`
	Projection    string  `toml:"projection"`
}

type Controls struct {
	Step  float64 `toml:"step"`
	Angle float64 `toml:"angle"`
}

type Colors struct {
	Background string `toml:"background"`
	Line       string `toml:"line"`
	HUD        string `toml:"hud"`
}

// DefaultKeys binds the arrows to rotation, WASD/QE to translation and I/P
// to the projection switch. A key bound to "none" is ignored.
func DefaultKeys() map[string]string {
	return map[string]string{
		"down":  wiregl.CmdPitchPos.String(),
		"up":    wiregl.CmdPitchNeg.String(),
		"left":  wiregl.CmdYawPos.String(),
		"right": wiregl.CmdYawNeg.String(),
		"w":     wiregl.CmdUp.String(),
		"s":     wiregl.CmdDown.String(),
		"a":     wiregl.CmdLeft.String(),
		"d":     wiregl.CmdRight.String(),
		"q":     wiregl.CmdNear.String(),
		"e":     wiregl.CmdFar.String(),
		"i":     wiregl.CmdIsometric.String(),
		"p":     wiregl.CmdPerspective.String(),
	}
}

func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Scale: 1, TPS: 60},
		Scene: Scene{
			Shape:         "cube",
			Size:          50,
			FocalDistance: matrix.FocalDistance,
			Projection:    wiregl.ProjectionPerspective.String(),
		},
		Controls: Controls{Step: wiregl.DefaultStep, Angle: wiregl.DefaultAngle},
		Colors:   Colors{Background: "#000000", Line: "#ffffff", HUD: "#90a0b8"},
		Keys:     DefaultKeys(),
	}
}

// Load returns the defaults overlaid with path (if non-empty) and the
// environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.Window.Scale < 1:
		return fmt.Errorf("config: window scale %d: %w", c.Window.Scale, ErrInvalid)
	case c.Window.TPS < 1:
		return fmt.Errorf("config: window tps %d: %w", c.Window.TPS, ErrInvalid)
	case c.Scene.Size <= 0:
		return fmt.Errorf("config: scene size %g: %w", c.Scene.Size, ErrInvalid)
	case c.Scene.FocalDistance == 0:
		return fmt.Errorf("config: focal distance must be non-zero: %w", ErrInvalid)
	}
	if _, err := wiregl.Template(c.Scene.Shape); err != nil {
		return fmt.Errorf("config: scene shape: %w", errors.Join(err, ErrInvalid))
	}
	if _, err := c.Projection(); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	return nil
}

func (c Config) Projection() (wiregl.ProjectionKind, error) {
	k, err := wiregl.ParseProjection(c.Scene.Projection)
	if err != nil {
		return 0, fmt.Errorf("config: scene projection: %w", errors.Join(err, ErrInvalid))
	}
	return k, nil
}

// Palette is the parsed Colors section.
type Palette struct {
	Background wiregl.Color
	Line       wiregl.Color
	HUD        wiregl.Color
}

func (c Config) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		in   string
		out  *wiregl.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"line", c.Colors.Line, &p.Line},
		{"hud", c.Colors.HUD, &p.HUD},
	} {
		col, ok := wiregl.ParseHexColor(f.in)
		if !ok {
			return Palette{}, fmt.Errorf("config: colors.%s %q: %w", f.name, f.in, ErrInvalid)
		}
		*f.out = col
	}
	return p, nil
}

// Keymap resolves Keys into canonical key names (see hal.KeyName) and commands.
func (c Config) Keymap() (map[string]wiregl.Command, error) {
	out := make(map[string]wiregl.Command, len(c.Keys))
	names := make([]string, 0, len(c.Keys))
	for k := range c.Keys {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		v := c.Keys[k]
		ev, err := hal.ParseKey(k)
		if err != nil {
			return nil, fmt.Errorf("config: keys: %w", errors.Join(err, ErrInvalid))
		}
		if v == "" || v == "none" {
			continue
		}
		cmd, err := wiregl.ParseCommand(v)
		if err != nil {
			return nil, fmt.Errorf("config: keys.%s: %w", k, errors.Join(err, ErrInvalid))
		}
		out[hal.KeyName(ev)] = cmd
	}
	return out, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
