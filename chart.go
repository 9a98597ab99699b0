package surgereport

// ChartKind selects the plot type a ChartSpec rasterizes to.
type ChartKind int

const (
	ChartLine ChartKind = iota
	ChartBar
)

// Default raster dimensions in pixels, used when a spec leaves them zero.
const (
	DefaultChartWidth  = 800
	DefaultChartHeight = 400
)

// ChartSeries is one named data series. Labels, when present, annotate the
// X axis and must align with Values by index.
type ChartSeries struct {
	Name   string
	Labels []string
	Values []float64
}

// ChartSpec describes a chart to rasterize. The rasterizer always renders
// with the resolved report font; a spec cannot select its own font, so
// rasterization can never fail on a missing glyph in a caller-chosen face.
type ChartSpec struct {
	Title     string
	XAxisName string
	YAxisName string
	Kind      ChartKind
	Width     int
	Height    int
	Series    []ChartSeries
}

// clone returns a deep copy of the spec.
func (c *ChartSpec) clone() *ChartSpec {
	cp := *c
	cp.Series = make([]ChartSeries, len(c.Series))
	for i, s := range c.Series {
		cs := s
		cs.Labels = append([]string(nil), s.Labels...)
		cs.Values = append([]float64(nil), s.Values...)
		cp.Series[i] = cs
	}
	return &cp
}

// SanitizeChart returns a copy of spec with every user-visible string field
// passed through Sanitize. Fields that are empty to begin with stay empty;
// the placeholder applies only to text that existed and was filtered away.
// The original spec is never mutated. A nil spec passes through unchanged.
func SanitizeChart(spec *ChartSpec) *ChartSpec {
	if spec == nil {
		return nil
	}
	cp := spec.clone()
	cp.Title = sanitizeIfSet(cp.Title)
	cp.XAxisName = sanitizeIfSet(cp.XAxisName)
	cp.YAxisName = sanitizeIfSet(cp.YAxisName)
	for i := range cp.Series {
		cp.Series[i].Name = sanitizeIfSet(cp.Series[i].Name)
		for j, l := range cp.Series[i].Labels {
			cp.Series[i].Labels[j] = sanitizeIfSet(l)
		}
	}
	return cp
}

func sanitizeIfSet(s string) string {
	if s == "" {
		return s
	}
	return Sanitize(s)
}

// ChartResult is the outcome of rasterizing one chart. Failure is a value,
// not control flow: a failed chart becomes a placeholder block in the
// assembled document while the remaining charts render normally.
type ChartResult struct {
	Title string
	PNG   []byte
	Err   error
}

// Rendered reports whether the chart rasterized successfully.
func (r ChartResult) Rendered() bool { return r.Err == nil }

// Failed reports whether rasterization failed.
func (r ChartResult) Failed() bool { return r.Err != nil }

// ChartRenderer rasterizes a chart spec to a PNG image.
type ChartRenderer interface {
	Render(spec *ChartSpec) ([]byte, error)
}
