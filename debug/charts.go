package debug

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot/vg"
)

// Charts 向量绘制
type Charts struct {
	Record
	Title  string    // 标题
	Width  vg.Length // 图片宽度，默认 4 英寸
	Height vg.Length // 图片高度，默认 4 英寸
}

func (c *Charts) title() string {
	if c.Title == "" {
		return "Vectors"
	}
	return c.Title
}

// Render 输出 HTML 页面：(x, y) 散点图与模长柱状图
func (c *Charts) Render(w io.Writer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.title(),
			Subtitle: "x / y 平面投影",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:  "value",
			Name:  "x",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Name:  "y",
			Scale: opts.Bool(true),
		}),
	)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.title(),
			Subtitle: "模长",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	// 处理数据
	names := make([]string, 0, c.Len())
	magnitudes := make([]opts.BarData, 0, c.Len())
	for i, s := range c.Snapshots {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Vector(%d)", i)
		}
		names = append(names, name)
		// echarts 用 "-" 表示空值，JSON 无法编码 Inf/NaN
		var magnitude any = s.Magnitude
		if !finite(s.Magnitude) {
			magnitude = "-"
		}
		magnitudes = append(magnitudes, opts.BarData{Name: name, Value: magnitude})
		x, y, ok := s.Point()
		if !ok {
			continue
		}
		scatter.AddSeries(name, []opts.ScatterData{{
			Name:       name,
			Value:      []float64{x, y},
			SymbolSize: 12,
		}})
	}
	bar.SetXAxis(names).AddSeries("模长", magnitudes)
	// 构建界面
	page := components.NewPage()
	page.AddCharts(scatter, bar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("debug: render charts: %w", err)
	}
	return nil
}
