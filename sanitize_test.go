package surgereport

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ascii passes through",
			input:    "Weekly Report 2024",
			expected: "Weekly Report 2024",
		},
		{
			name:     "japanese passes through",
			input:    "手術件数の推移",
			expected: "手術件数の推移",
		},
		{
			name:     "full-width punctuation passes through",
			input:    "達成率（％）",
			expected: "達成率（％）",
		},
		{
			name:     "emoji stripped",
			input:    "手術🏥データ",
			expected: "手術データ",
		},
		{
			name:     "mixed scripts keep allowed runes",
			input:    "OP-1 稼働率 ✨ 85.2%",
			expected: "OP-1 稼働率  85.2%",
		},
		{
			name:     "only emoji becomes placeholder",
			input:    "🎉🎊",
			expected: PlaceholderLabel,
		},
		{
			name:     "empty becomes placeholder",
			input:    "",
			expected: PlaceholderLabel,
		},
		{
			name:     "whitespace only becomes placeholder",
			input:    "   ",
			expected: PlaceholderLabel,
		},
		{
			name:     "control characters stripped",
			input:    "a\tb\nc",
			expected: "abc",
		},
		{
			name:     "katakana and kanji",
			input:    "グラフ・チャート",
			expected: "グラフ・チャート",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sanitize(tt.input)
			if got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"手術分析ダッシュボード",
		"OP-1 🏥 Theater",
		"🎉",
		"",
		"（全角）と half-width",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeOutputStaysInAllowList(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"手術🏥データ✨",
		"日本語とEnglishと記号!@#$%^&*()",
		"éüñ accents dropped",
		"\U0001F3E5\U0001F389",
	}

	for _, input := range inputs {
		got := Sanitize(input)
		if got == PlaceholderLabel {
			continue
		}
		for _, r := range got {
			if !allowedRune(r) {
				t.Errorf("Sanitize(%q) emitted disallowed rune %U in %q", input, r, got)
			}
		}
	}
}

func TestSanitizeNeverEmpty(t *testing.T) {
	t.Parallel()

	inputs := []string{"", " ", "éè", "🎉", "ok"}
	for _, input := range inputs {
		got := Sanitize(input)
		if strings.TrimSpace(got) == "" {
			t.Errorf("Sanitize(%q) returned blank %q", input, got)
		}
	}
}
