package surgereport

import (
	"errors"
	"testing"
)

func TestSanitizeChart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     *ChartSpec
		expected *ChartSpec
	}{
		{
			name: "clean spec unchanged",
			spec: &ChartSpec{
				Title:     "日別手術件数",
				XAxisName: "日付",
				YAxisName: "件数",
				Series:    []ChartSeries{{Name: "全身麻酔", Values: []float64{3, 5, 4}}},
			},
			expected: &ChartSpec{
				Title:     "日別手術件数",
				XAxisName: "日付",
				YAxisName: "件数",
				Series:    []ChartSeries{{Name: "全身麻酔", Values: []float64{3, 5, 4}}},
			},
		},
		{
			name: "emoji title filtered",
			spec: &ChartSpec{
				Title:  "🏥手術件数📊",
				Series: []ChartSeries{{Name: "cases", Values: []float64{1}}},
			},
			expected: &ChartSpec{
				Title:  "手術件数",
				Series: []ChartSeries{{Name: "cases", Values: []float64{1}}},
			},
		},
		{
			name: "emoji-only title becomes placeholder",
			spec: &ChartSpec{
				Title:  "📊",
				Series: []ChartSeries{{Name: "cases", Values: []float64{1}}},
			},
			expected: &ChartSpec{
				Title:  PlaceholderLabel,
				Series: []ChartSeries{{Name: "cases", Values: []float64{1}}},
			},
		},
		{
			name: "empty fields stay empty",
			spec: &ChartSpec{
				Title:  "recovery",
				Series: []ChartSeries{{Name: "", Values: []float64{1}}},
			},
			expected: &ChartSpec{
				Title:  "recovery",
				Series: []ChartSeries{{Name: "", Values: []float64{1}}},
			},
		},
		{
			name: "series labels filtered",
			spec: &ChartSpec{
				Title: "weekly",
				Series: []ChartSeries{{
					Name:   "cases",
					Labels: []string{"月✨", "火"},
					Values: []float64{1, 2},
				}},
			},
			expected: &ChartSpec{
				Title: "weekly",
				Series: []ChartSeries{{
					Name:   "cases",
					Labels: []string{"月", "火"},
					Values: []float64{1, 2},
				}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SanitizeChart(tt.spec)
			assertChartSpecEqual(t, got, tt.expected)
		})
	}
}

func TestSanitizeChartDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	original := &ChartSpec{
		Title:     "🏥手術件数",
		XAxisName: "日付✨",
		Series: []ChartSeries{{
			Name:   "全身麻酔🎉",
			Labels: []string{"月✨"},
			Values: []float64{3},
		}},
	}

	_ = SanitizeChart(original)

	if original.Title != "🏥手術件数" {
		t.Errorf("original title changed to %q", original.Title)
	}
	if original.XAxisName != "日付✨" {
		t.Errorf("original x axis changed to %q", original.XAxisName)
	}
	if original.Series[0].Name != "全身麻酔🎉" {
		t.Errorf("original series name changed to %q", original.Series[0].Name)
	}
	if original.Series[0].Labels[0] != "月✨" {
		t.Errorf("original label changed to %q", original.Series[0].Labels[0])
	}
}

func TestSanitizeChartNil(t *testing.T) {
	t.Parallel()

	if got := SanitizeChart(nil); got != nil {
		t.Errorf("SanitizeChart(nil) = %v, want nil", got)
	}
}

func TestChartResult(t *testing.T) {
	t.Parallel()

	ok := ChartResult{Title: "a", PNG: []byte{1}}
	if !ok.Rendered() || ok.Failed() {
		t.Error("successful result misclassified")
	}

	bad := ChartResult{Title: "b", Err: errors.New("boom")}
	if bad.Rendered() || !bad.Failed() {
		t.Error("failed result misclassified")
	}
}

func assertChartSpecEqual(t *testing.T, got, want *ChartSpec) {
	t.Helper()

	if got.Title != want.Title {
		t.Errorf("title = %q, want %q", got.Title, want.Title)
	}
	if got.XAxisName != want.XAxisName {
		t.Errorf("x axis = %q, want %q", got.XAxisName, want.XAxisName)
	}
	if got.YAxisName != want.YAxisName {
		t.Errorf("y axis = %q, want %q", got.YAxisName, want.YAxisName)
	}
	if len(got.Series) != len(want.Series) {
		t.Fatalf("series count = %d, want %d", len(got.Series), len(want.Series))
	}
	for i := range want.Series {
		if got.Series[i].Name != want.Series[i].Name {
			t.Errorf("series %d name = %q, want %q", i, got.Series[i].Name, want.Series[i].Name)
		}
		for j := range want.Series[i].Labels {
			if got.Series[i].Labels[j] != want.Series[i].Labels[j] {
				t.Errorf("series %d label %d = %q, want %q", i, j, got.Series[i].Labels[j], want.Series[i].Labels[j])
			}
		}
	}
}
