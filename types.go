package surgereport

import (
	"time"

	"github.com/rs/zerolog"
)

// KPI metric keys. Lookups with Get default to 0 when a key is absent.
const (
	KPIGasCases        = "gas_cases"
	KPITotalCases      = "total_cases"
	KPIDailyAvgGas     = "daily_avg_gas"
	KPIUtilizationRate = "utilization_rate"
	KPIActualMinutes   = "actual_minutes"
	KPIMaxMinutes      = "max_minutes"
	KPIWeekdays        = "weekdays"
)

// KPIData maps metric keys to numeric values.
type KPIData map[string]float64

// Get returns the value for key, or 0 if absent.
func (k KPIData) Get(key string) float64 {
	if k == nil {
		return 0
	}
	return k[key]
}

// PeriodInfo describes the reporting window. It is a plain value constructed
// by the caller; dates are preformatted display strings.
type PeriodInfo struct {
	PeriodName string
	StartDate  string
	EndDate    string
	TotalDays  int
	Weekdays   int
}

// sanitized returns a copy with every free-text field run through Sanitize.
func (p PeriodInfo) sanitized() PeriodInfo {
	p.PeriodName = Sanitize(p.PeriodName)
	p.StartDate = Sanitize(p.StartDate)
	p.EndDate = Sanitize(p.EndDate)
	return p
}

// PerformanceRow is one organizational unit's weekly performance figures.
// Display order matches input order.
type PerformanceRow struct {
	Department       string
	PeriodAverage    float64
	LatestWeekActual float64
	WeeklyTarget     float64
	AchievementRate  float64 // percent
}

// Input contains everything one report is generated from.
type Input struct {
	KPI         KPIData
	Performance []PerformanceRow
	Period      PeriodInfo
	Charts      map[string]*ChartSpec // optional; keyed by chart title
}

// DefaultFontsDir is the conventional font asset directory, relative to the
// working directory of the host process.
const DefaultFontsDir = "fonts"

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	fontsDir  string
	now       func() time.Time
	engineSet bool
}

// WithFontsDir overrides the font asset directory probed at construction.
func WithFontsDir(dir string) Option {
	return func(s *Service) {
		s.cfg.fontsDir = dir
	}
}

// WithLogger sets the logger used for resource-fallback and per-chart
// diagnostics. The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithClock injects the time source used for generation timestamps and
// filenames. Intended for tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("surgereport: WithClock requires a non-nil time source")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// WithEngine replaces the document-formatting engine. Passing nil models a
// missing engine: Generate then fails with ErrEngineUnavailable.
func WithEngine(e Engine) Option {
	return func(s *Service) {
		s.engine = e
		s.cfg.engineSet = true
	}
}

// WithChartRenderer replaces the chart rasterizer (e.g., by tests).
func WithChartRenderer(r ChartRenderer) Option {
	return func(s *Service) {
		s.charts = r
	}
}
