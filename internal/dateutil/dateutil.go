// Package dateutil provides the fixed-locale date and timestamp formats
// used by report text and filenames.
package dateutil

import "time"

// Layouts for the ja-JP report surface.
const (
	// TimestampLayout stamps filenames: 14 digits split by an underscore.
	TimestampLayout = "20060102_150405"

	// ReportDateTimeLayout appears on the title page.
	ReportDateTimeLayout = "2006年01月02日 15:04"

	// FooterDateTimeLayout appears in the footer block.
	FooterDateTimeLayout = "2006年01月02日 15時04分"

	// SlashDateLayout formats period boundary dates.
	SlashDateLayout = "2006/01/02"
)

// Timestamp formats t for use in a generated filename.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ReportDateTime formats t for the title page generation line.
func ReportDateTime(t time.Time) string {
	return t.Format(ReportDateTimeLayout)
}

// FooterDateTime formats t for the footer generation line.
func FooterDateTime(t time.Time) string {
	return t.Format(FooterDateTimeLayout)
}

// SlashDate formats t as a period boundary date.
func SlashDate(t time.Time) string {
	return t.Format(SlashDateLayout)
}
