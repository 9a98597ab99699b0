package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mkodera/go-surgereport/internal/yamlutil"
)

type reportPeriod struct {
	Name     string `yaml:"name"`
	Weekdays int    `yaml:"weekdays"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var p reportPeriod
	if err := yamlutil.UnmarshalStrict([]byte("name: 2024年Q1\nweekdays: 62"), &p); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if p.Name != "2024年Q1" || p.Weekdays != 62 {
		t.Errorf("parsed %+v", p)
	}
}

func TestUnmarshalStrictRejectsUnknownField(t *testing.T) {
	t.Parallel()

	var p reportPeriod
	if err := yamlutil.UnmarshalStrict([]byte("name: q1\nweekday_count: 62"), &p); err == nil {
		t.Error("UnmarshalStrict() accepted unknown field")
	}
}

func TestUnmarshalStrictInputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name:    "empty input",
			data:    nil,
			dest:    &reportPeriod{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: q1"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "oversized input",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &reportPeriod{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
