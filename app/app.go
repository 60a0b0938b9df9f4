// Package app assembles the viewer from a validated configuration.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"wireframe/hal"
	"wireframe/internal/config"
	"wireframe/matrix"
	"wireframe/tasks/viewer"
	"wireframe/wiregl"
)

// Scene returns the configured template scaled to Scene.Size.
func Scene(cfg config.Config) (*wiregl.Shape, error) {
	s, err := wiregl.Template(cfg.Scene.Shape)
	if err != nil {
		return nil, err
	}
	size := cfg.Scene.Size
	if _, err := s.ApplyTransform(matrix.Scale(size, size, size)); err != nil {
		return nil, fmt.Errorf("scale %s: %w", s.Name, err)
	}
	return s, nil
}

// Controller returns a controller in the configured projection.
func Controller(cfg config.Config) (*wiregl.Controller, error) {
	kind, err := cfg.Projection()
	if err != nil {
		return nil, err
	}
	ctrl := wiregl.NewController(cfg.Controls.Step, cfg.Controls.Angle, cfg.Scene.FocalDistance)
	if err := ctrl.SetProjection(kind); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// Options resolves cfg into everything the viewer needs.
func Options(cfg config.Config) (viewer.Options, error) {
	if err := cfg.Validate(); err != nil {
		return viewer.Options{}, err
	}
	shape, err := Scene(cfg)
	if err != nil {
		return viewer.Options{}, err
	}
	ctrl, err := Controller(cfg)
	if err != nil {
		return viewer.Options{}, err
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		return viewer.Options{}, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return viewer.Options{}, err
	}
	return viewer.Options{
		Shape:      shape,
		Controller: ctrl,
		Keymap:     keymap,
		Background: pal.Background,
		Line:       pal.Line,
		HUD:        pal.HUD,
	}, nil
}

// New starts a viewer on h and returns its per-tick step. A panic inside the
// step is logged, drawn on screen and returned as an error.
func New(h hal.HAL, opts viewer.Options, logger *log.Logger) func() error {
	if logger == nil {
		logger = log.Default()
	}
	t := viewer.New(h.Display(), h.Input(), logger, opts)
	return guard(h, logger, t.Step)
}
