package debug

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot 构建 gonum 图：每个二维以上的向量画成从原点出发的线段
func (c *Charts) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.title()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	lines := make([]any, 0, 2*c.Len())
	for i, s := range c.Snapshots {
		x, y, ok := s.Point()
		if !ok {
			continue
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Vector(%d)", i)
		}
		lines = append(lines, name, plotter.XYs{{X: 0, Y: 0}, {X: x, Y: y}})
	}
	if len(lines) > 0 {
		if err := plotutil.AddLinePoints(p, lines...); err != nil {
			return nil, fmt.Errorf("debug: add lines: %w", err)
		}
	}
	return p, nil
}

// WritePlot 以 format（png、svg、pdf 等）格式输出图片
func (c *Charts) WritePlot(w io.Writer, format string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	width, height := c.Width, c.Height
	if width == 0 {
		width = 4 * vg.Inch
	}
	if height == 0 {
		height = 4 * vg.Inch
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("debug: plot format %q: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("debug: write plot: %w", err)
	}
	return nil
}
