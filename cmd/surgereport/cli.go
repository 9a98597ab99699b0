package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	surgereport "github.com/mkodera/go-surgereport"
	"github.com/mkodera/go-surgereport/internal/config"
	"github.com/mkodera/go-surgereport/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no report definition specified")
	ErrLoadReport       = errors.New("failed to load report definition")
	ErrGenerate         = errors.New("failed to generate report")
	ErrWriteReport      = errors.New("failed to write report")
	ErrInvalidExtension = errors.New("output file must have .pdf extension")
)

// Generator is the interface for the report generation service.
type Generator interface {
	Generate(input surgereport.Input) ([]byte, error)
	Filename(periodName string) string
}

// Compile-time interface implementation check.
var _ Generator = (*surgereport.Service)(nil)

// run loads the report definition, generates the PDF and writes it out.
func run(args []string, flags *cliFlags, svc Generator) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return ErrNoInput
	}

	doc, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadReport, err)
	}

	input := toInput(doc)

	pdf, err := svc.Generate(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = svc.Filename(input.Period.PeriodName)
	}
	if ext := filepath.Ext(outputPath); ext != ".pdf" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}

	if err := fileutil.WriteReport(outputPath, pdf); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}

	fmt.Printf("Created %s\n", outputPath)
	return nil
}

// toInput converts a loaded report definition into service input.
func toInput(doc *config.Document) surgereport.Input {
	input := surgereport.Input{
		KPI: surgereport.KPIData(doc.KPI),
		Period: surgereport.PeriodInfo{
			PeriodName: doc.Period.Name,
			StartDate:  doc.Period.StartDate,
			EndDate:    doc.Period.EndDate,
			TotalDays:  doc.Period.TotalDays,
			Weekdays:   doc.Period.Weekdays,
		},
	}

	for _, row := range doc.Performance {
		input.Performance = append(input.Performance, surgereport.PerformanceRow{
			Department:       row.Department,
			PeriodAverage:    row.PeriodAverage,
			LatestWeekActual: row.LatestWeekActual,
			WeeklyTarget:     row.WeeklyTarget,
			AchievementRate:  row.AchievementRate,
		})
	}

	if len(doc.Charts) > 0 {
		input.Charts = make(map[string]*surgereport.ChartSpec, len(doc.Charts))
		for _, c := range doc.Charts {
			input.Charts[c.Title] = toChartSpec(c)
		}
	}

	return input
}

// toChartSpec converts a chart definition into a renderable spec.
func toChartSpec(c config.ChartConfig) *surgereport.ChartSpec {
	spec := &surgereport.ChartSpec{
		Title:     c.Title,
		XAxisName: c.XAxis,
		YAxisName: c.YAxis,
		Kind:      toChartKind(c.Kind),
		Width:     c.Width,
		Height:    c.Height,
	}

	for _, s := range c.Series {
		spec.Series = append(spec.Series, surgereport.ChartSeries{
			Name:   s.Name,
			Labels: s.Labels,
			Values: s.Values,
		})
	}

	return spec
}

// toChartKind maps the YAML kind string to the renderer's kind. Validation
// has already rejected anything but "line" and "bar".
func toChartKind(kind string) surgereport.ChartKind {
	if kind == "bar" {
		return surgereport.ChartBar
	}
	return surgereport.ChartLine
}
