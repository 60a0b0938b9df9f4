package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"wireframe/app"
	"wireframe/wiregl"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleIndex  = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

func newProjectCmd() *cobra.Command {
	var (
		configPath string
		shape      string
		projection string
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "project [command ...]",
		Short: "Apply commands to a shape and print its projected edges",
		Long: `Apply the named commands (pitch+ pitch- yaw+ yaw- up down left right near far
perspective isometric) to the configured shape in order, then print every edge
as a projected 2D segment.`,
		Example: "  wireframe project --projection isometric yaw+ yaw+ up",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, shape, projection)
			if err != nil {
				return err
			}
			if scale > 0 {
				cfg.Scene.Size = scale
			}
			s, err := app.Scene(cfg)
			if err != nil {
				return err
			}
			ctrl, err := app.Controller(cfg)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			for _, name := range args {
				c, err := wiregl.ParseCommand(name)
				if err != nil {
					return err
				}
				if err := ctrl.Apply(s, c); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				logger.Debug("applied", "cmd", c)
			}
			return printProjection(cmd.OutOrStdout(), s, ctrl)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.StringVar(&shape, "shape", "", "shape template (overrides config)")
	f.StringVar(&projection, "projection", "", "perspective or isometric (overrides config)")
	f.Float64Var(&scale, "scale", 0, "uniform scale applied to the template (overrides config)")

	return cmd
}

func printProjection(w io.Writer, s *wiregl.Shape, ctrl *wiregl.Controller) error {
	edges := s.Edges()
	rows := make([][]string, 0, len(edges))
	i := 0
	for seg, err := range s.ProjectedEdges(ctrl.Projection()) {
		if err != nil {
			return err
		}
		e := edges[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d-%d", e.A, e.B),
			formatCoord(seg.A.X), formatCoord(seg.A.Y),
			formatCoord(seg.B.X), formatCoord(seg.B.Y),
		})
		i++
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Edge", "Ax", "Ay", "Bx", "By").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return styleIndex.Padding(0, 1)
			}
			return styleNumber.Padding(0, 1).Align(lipgloss.Right)
		})

	title := fmt.Sprintf("%s · %s · %d edges", s.Name, ctrl.ProjectionKind(), len(rows))
	_, err := fmt.Fprintln(w, styleTitle.Render(title)+"\n"+t.Render())
	return err
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
