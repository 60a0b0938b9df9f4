package wiregl

import (
	"errors"
	"fmt"

	"wireframe/matrix"
)

var ErrUnknownCommand = errors.New("wiregl: unknown command")

// Command is a discrete user action.
type Command uint8

const (
	CmdNone Command = iota
	CmdPitchPos
	CmdPitchNeg
	CmdYawPos
	CmdYawNeg
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdNear
	CmdFar
	CmdPerspective
	CmdIsometric
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdPitchPos:    "pitch+",
	CmdPitchNeg:    "pitch-",
	CmdYawPos:      "yaw+",
	CmdYawNeg:      "yaw-",
	CmdUp:          "up",
	CmdDown:        "down",
	CmdLeft:        "left",
	CmdRight:       "right",
	CmdNear:        "near",
	CmdFar:         "far",
	CmdPerspective: "perspective",
	CmdIsometric:   "isometric",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if i != int(CmdNone) && n == name {
			return Command(i), nil
		}
	}
	return CmdNone, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
}

// ProjectionKind selects one of the two prebuilt projections.
type ProjectionKind uint8

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionIsometric
)

func (k ProjectionKind) String() string {
	switch k {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionIsometric:
		return "isometric"
	}
	return fmt.Sprintf("projection(%d)", uint8(k))
}

func ParseProjection(name string) (ProjectionKind, error) {
	switch name {
	case "perspective":
		return ProjectionPerspective, nil
	case "isometric":
		return ProjectionIsometric, nil
	}
	return 0, fmt.Errorf("projection %q: %w", name, ErrUnknownCommand)
}

// Default controller parameters.
const (
	DefaultStep  = 10.0
	DefaultAngle = 3.1415 / 16.0
)

// Controller maps commands to transforms and holds the active projection.
//
// It is not safe for concurrent use; the viewer owns it on its frame loop.
type Controller struct {
	Step  float64
	Angle float64

	kind        ProjectionKind
	projections [2]matrix.Matrix
}

// NewController returns a controller starting in perspective mode. A focal
// distance of 400 reuses the shared matrix.PerspectiveMatrix.
func NewController(step, angle, focal float64) *Controller {
	persp := matrix.PerspectiveMatrix
	if focal != matrix.FocalDistance {
		persp = matrix.Perspective(focal)
	}
	return &Controller{
		Step:  step,
		Angle: angle,
		projections: [2]matrix.Matrix{
			ProjectionPerspective: persp,
			ProjectionIsometric:   matrix.IsometricMatrix,
		},
	}
}

func (c *Controller) Projection() matrix.Matrix      { return c.projections[c.kind] }
func (c *Controller) ProjectionKind() ProjectionKind { return c.kind }

// SetProjection swaps the active projection slot. The shape is not touched.
func (c *Controller) SetProjection(k ProjectionKind) error {
	if int(k) >= len(c.projections) {
		return fmt.Errorf("%v: %w", k, ErrUnknownCommand)
	}
	c.kind = k
	return nil
}

// Transform returns the matrix for a movement command. ok is false for
// projection commands and CmdNone.
func (c *Controller) Transform(cmd Command) (m matrix.Matrix, ok bool) {
	switch cmd {
	case CmdPitchPos:
		return matrix.RotateZ(c.Angle), true
	case CmdPitchNeg:
		return matrix.RotateZ(-c.Angle), true
	case CmdYawPos:
		return matrix.RotateY(c.Angle), true
	case CmdYawNeg:
		return matrix.RotateY(-c.Angle), true
	case CmdUp:
		return matrix.Translate(0, c.Step, 0), true
	case CmdDown:
		return matrix.Translate(0, -c.Step, 0), true
	case CmdLeft:
		return matrix.Translate(-c.Step, 0, 0), true
	case CmdRight:
		return matrix.Translate(c.Step, 0, 0), true
	case CmdNear:
		return matrix.Translate(0, 0, -c.Step), true
	case CmdFar:
		return matrix.Translate(0, 0, c.Step), true
	}
	return matrix.Matrix{}, false
}

// Apply executes cmd against s: movement commands transform the shape,
// projection commands only swap the projection slot.
func (c *Controller) Apply(s *Shape, cmd Command) error {
	switch cmd {
	case CmdPerspective:
		return c.SetProjection(ProjectionPerspective)
	case CmdIsometric:
		return c.SetProjection(ProjectionIsometric)
	}
	m, ok := c.Transform(cmd)
	if !ok {
		return fmt.Errorf("%v: %w", cmd, ErrUnknownCommand)
	}
	if _, err := s.ApplyTransform(m); err != nil {
		return fmt.Errorf("%v: %w", cmd, err)
	}
	return nil
}
