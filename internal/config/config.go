// Package config loads the YAML report document the CLI feeds to the
// report service.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mkodera/go-surgereport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrDocumentNotFound = errors.New("report document not found")
	ErrDocumentParse    = errors.New("failed to parse report document")
	ErrNoPeriodName     = errors.New("period name is required")
	ErrBadChartKind     = errors.New("chart kind must be \"line\" or \"bar\"")
	ErrSeriesMismatch   = errors.New("series labels and values differ in length")
	ErrEmptySeries      = errors.New("chart series needs at least one value")
)

// Document is one report request: reporting window, KPI values, the
// departmental performance table, and optional charts.
type Document struct {
	Period      PeriodConfig       `yaml:"period"`
	KPI         map[string]float64 `yaml:"kpi"`
	Performance []RowConfig        `yaml:"performance"`
	Charts      []ChartConfig      `yaml:"charts"`
}

// PeriodConfig describes the reporting window.
type PeriodConfig struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"startDate"`
	EndDate   string `yaml:"endDate"`
	TotalDays int    `yaml:"totalDays"`
	Weekdays  int    `yaml:"weekdays"`
}

// RowConfig is one departmental performance row.
type RowConfig struct {
	Department       string  `yaml:"department"`
	PeriodAverage    float64 `yaml:"periodAverage"`
	LatestWeekActual float64 `yaml:"latestWeekActual"`
	WeeklyTarget     float64 `yaml:"weeklyTarget"`
	AchievementRate  float64 `yaml:"achievementRate"`
}

// ChartConfig describes one chart to rasterize into the report.
type ChartConfig struct {
	Title  string         `yaml:"title"`
	Kind   string         `yaml:"kind"` // "line" or "bar"
	XAxis  string         `yaml:"xAxis"`
	YAxis  string         `yaml:"yAxis"`
	Width  int            `yaml:"width"`
	Height int            `yaml:"height"`
	Series []SeriesConfig `yaml:"series"`
}

// SeriesConfig is one named data series.
type SeriesConfig struct {
	Name   string    `yaml:"name"`
	Labels []string  `yaml:"labels"`
	Values []float64 `yaml:"values"`
}

// Load reads and validates a report document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI invocation
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentNotFound, err)
	}

	var doc Document
	if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document for mistakes a YAML author can make.
func (d *Document) Validate() error {
	if d.Period.Name == "" {
		return ErrNoPeriodName
	}
	for _, c := range d.Charts {
		if c.Kind != "line" && c.Kind != "bar" {
			return fmt.Errorf("%w: chart %q has kind %q", ErrBadChartKind, c.Title, c.Kind)
		}
		if len(c.Series) == 0 {
			return fmt.Errorf("%w: chart %q", ErrEmptySeries, c.Title)
		}
		for _, s := range c.Series {
			if len(s.Values) == 0 {
				return fmt.Errorf("%w: chart %q series %q", ErrEmptySeries, c.Title, s.Name)
			}
			if len(s.Labels) > 0 && len(s.Labels) != len(s.Values) {
				return fmt.Errorf("%w: chart %q series %q", ErrSeriesMismatch, c.Title, s.Name)
			}
		}
	}
	return nil
}
