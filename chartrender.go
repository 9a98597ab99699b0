package surgereport

import (
	"bytes"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/mkodera/go-surgereport/internal/fontkit"
)

// goChartRenderer rasterizes chart specs to PNG via go-chart.
type goChartRenderer struct {
	font *truetype.Font // nil means the chart library's default face
}

// newGoChartRenderer parses the resolved regular face for chart labels.
// A baseline or unparsable face falls back to the chart library's default,
// which covers Latin only; labels are sanitized before rendering either way,
// so a missing glyph degrades to wrong-looking text, never to an error.
func newGoChartRenderer(fonts fontkit.Set, log zerolog.Logger) *goChartRenderer {
	r := &goChartRenderer{}
	if fonts.Regular.Builtin {
		return r
	}
	data, err := os.ReadFile(fonts.Regular.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", fonts.Regular.Path).Msg("chart font unreadable, using library default")
		return r
	}
	f, err := truetype.Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", fonts.Regular.Path).Msg("chart font unparsable, using library default")
		return r
	}
	r.font = f
	return r
}

func (r *goChartRenderer) Render(spec *ChartSpec) ([]byte, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrChartRender)
	}
	if len(spec.Series) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrChartRender, ErrNoSeries)
	}
	width := spec.Width
	if width <= 0 {
		width = DefaultChartWidth
	}
	height := spec.Height
	if height <= 0 {
		height = DefaultChartHeight
	}

	var buf bytes.Buffer
	var err error
	switch spec.Kind {
	case ChartLine:
		err = r.renderLine(spec, width, height, &buf)
	case ChartBar:
		err = r.renderBar(spec, width, height, &buf)
	default:
		return nil, fmt.Errorf("%w: %v (%d)", ErrChartRender, ErrUnknownChartKind, spec.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChartRender, err)
	}
	return buf.Bytes(), nil
}

func (r *goChartRenderer) renderLine(spec *ChartSpec, width, height int, buf *bytes.Buffer) error {
	series := make([]chart.Series, 0, len(spec.Series))
	for _, s := range spec.Series {
		if len(s.Values) == 0 {
			return fmt.Errorf("series %q has no values", s.Name)
		}
		xs := make([]float64, len(s.Values))
		for i := range xs {
			xs[i] = float64(i)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: s.Values,
		})
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Font:   r.font,
		XAxis:  chart.XAxis{Name: spec.XAxisName, Ticks: labelTicks(spec.Series[0])},
		YAxis:  chart.YAxis{Name: spec.YAxisName},
		Series: series,
	}
	if len(series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	return graph.Render(chart.PNG, buf)
}

func (r *goChartRenderer) renderBar(spec *ChartSpec, width, height int, buf *bytes.Buffer) error {
	first := spec.Series[0]
	if len(first.Values) == 0 {
		return fmt.Errorf("series %q has no values", first.Name)
	}
	bars := make([]chart.Value, len(first.Values))
	for i, v := range first.Values {
		label := ""
		if i < len(first.Labels) {
			label = first.Labels[i]
		}
		bars[i] = chart.Value{Value: v, Label: label}
	}

	graph := chart.BarChart{
		Title:    spec.Title,
		Width:    width,
		Height:   height,
		BarWidth: 30,
		Font:     r.font,
		YAxis:    chart.YAxis{Name: spec.YAxisName},
		Bars:     bars,
	}
	return graph.Render(chart.PNG, buf)
}

// labelTicks builds X axis ticks from the first series' labels, when they
// align with its values. Mismatched lengths fall back to numeric ticks.
func labelTicks(s ChartSeries) []chart.Tick {
	if len(s.Labels) == 0 || len(s.Labels) != len(s.Values) {
		return nil
	}
	ticks := make([]chart.Tick, len(s.Labels))
	for i, l := range s.Labels {
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}
	return ticks
}
