package dateutil

import (
	"testing"
	"time"
)

func TestFormats(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		format   func(time.Time) string
		expected string
	}{
		{name: "timestamp", format: Timestamp, expected: "20240315_143045"},
		{name: "report datetime", format: ReportDateTime, expected: "2024年03月15日 14:30"},
		{name: "footer datetime", format: FooterDateTime, expected: "2024年03月15日 14時30分"},
		{name: "slash date", format: SlashDate, expected: "2024/03/15"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.format(ref); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTimestampZeroPadding(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := Timestamp(ref); got != "20240102_030405" {
		t.Errorf("Timestamp() = %q, want %q", got, "20240102_030405")
	}
}
