package surgereport

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mkodera/go-surgereport/internal/dateutil"
	"github.com/mkodera/go-surgereport/internal/fontkit"
)

// MIMEType is the content type of generated reports.
const MIMEType = "application/pdf"

// filenamePrefix starts every suggested download filename.
const filenamePrefix = "手術分析レポート"

// Service generates dashboard reports. Fonts are resolved once at
// construction; Generate itself is stateless and safe to call concurrently.
type Service struct {
	cfg       serviceConfig
	log       zerolog.Logger
	fonts     fontkit.Set
	resources ResourceSet
	engine    Engine
	charts    ChartRenderer
}

// New creates a Service, resolving the font fallback chain immediately.
// Use options to customize behavior (e.g., WithFontsDir, WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{fontsDir: DefaultFontsDir, now: time.Now},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.fonts = fontkit.Resolve(s.cfg.fontsDir, s.log)
	s.resources = toResourceSet(s.fonts)

	// Create default stages if not injected (e.g., by tests)
	if s.engine == nil && !s.cfg.engineSet {
		s.engine = newFpdfEngine(s.fonts)
	}
	if s.charts == nil {
		s.charts = newGoChartRenderer(s.fonts, s.log)
	}
	return s
}

// Resources returns the active font set chosen by the fallback chain.
func (s *Service) Resources() ResourceSet { return s.resources }

// Generate assembles and lays out one report, returning the document bytes.
// Section order is fixed: title page, summary, KPI table, performance table
// (only when rows exist), charts (only when provided; a failed chart becomes
// a placeholder paragraph), footer, and a font diagnostic block.
//
// Returns ErrEngineUnavailable when no formatting engine is wired.
func (s *Service) Generate(input Input) ([]byte, error) {
	if s.engine == nil {
		return nil, ErrEngineUnavailable
	}

	period := input.Period.sanitized()
	rows := sanitizeRows(input.Performance)
	now := s.cfg.now()

	blocks := s.titleBlocks(period, now)
	blocks = append(blocks, PageBreak{})
	blocks = append(blocks, s.summaryBlocks(input.KPI, period)...)
	blocks = append(blocks, s.kpiBlocks(input.KPI)...)
	if len(rows) > 0 {
		blocks = append(blocks, s.performanceBlocks(rows)...)
	}
	if len(input.Charts) > 0 {
		blocks = append(blocks, s.chartBlocks(input.Charts)...)
	}
	blocks = append(blocks, s.footerBlocks(now)...)
	blocks = append(blocks, s.fontInfoBlocks()...)

	return s.engine.Build(blocks)
}

// Filename suggests a download filename for the given reporting period:
// <prefix>_<period>_<YYYYMMDD_HHMMSS>.pdf, with the period sanitized the
// same way report text is.
func (s *Service) Filename(periodName string) string {
	return filenamePrefix + "_" + Sanitize(periodName) + "_" + dateutil.Timestamp(s.cfg.now()) + ".pdf"
}

// sanitizeRows copies rows with their free-text column sanitized. Numeric
// columns pass through untouched.
func sanitizeRows(rows []PerformanceRow) []PerformanceRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]PerformanceRow, len(rows))
	for i, r := range rows {
		r.Department = Sanitize(r.Department)
		out[i] = r
	}
	return out
}

// renderChart sanitizes and rasterizes one chart, capturing failure as a
// value rather than aborting the report.
func (s *Service) renderChart(title string, spec *ChartSpec) ChartResult {
	png, err := s.charts.Render(SanitizeChart(spec))
	if err != nil {
		s.log.Error().Err(err).Str("chart", title).Msg("chart rasterization failed")
		return ChartResult{Title: title, Err: err}
	}
	return ChartResult{Title: title, PNG: png}
}
