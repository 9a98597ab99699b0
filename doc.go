// Package surgereport renders the surgical analytics dashboard as a
// paginated PDF report.
//
// # Quick Start
//
// Create a service once (fonts are resolved at construction), then generate
// reports on demand:
//
//	svc := surgereport.New(surgereport.WithFontsDir("fonts"))
//
//	pdf, err := svc.Generate(surgereport.Input{
//	    KPI:    kpi,
//	    Period: period,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(svc.Filename(period.PeriodName), pdf, 0644)
//
// # Report Assembly
//
// Generate emits sections in a fixed order:
//
//  1. Title page (period metadata, generation info)
//  2. Executive summary and KPI table
//  3. Departmental performance table (when rows are present)
//  4. Chart pages (when charts are provided; one failed chart degrades to a
//     placeholder paragraph without aborting the report)
//  5. Footer and font diagnostic block
//
// Every externally-sourced string is filtered through Sanitize before it
// reaches the formatting engine, so arbitrary input (emoji, stray control
// characters) cannot corrupt the output encoding.
//
// # Fonts
//
// Construction walks a fallback chain: NotoSansJP files in the configured
// asset directory, then Japanese system fonts, then the engine's core font
// (which cannot render CJK glyphs; an accepted degraded mode). The chain
// never fails. CheckFontAvailability reports which branch a host can expect:
//
//	status := surgereport.CheckFontAvailability("fonts")
//	fmt.Println(status.Status) // "excellent", "good", "partial", ...
//
// # Concurrency
//
// A Service is immutable after New; Generate allocates per call and may be
// invoked concurrently without additional locking.
package surgereport
