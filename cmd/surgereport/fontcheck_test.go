package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunFontCheckMissingFolder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	code := runFontCheck(&buf, filepath.Join(t.TempDir(), "missing"))
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(buf.String(), "no_fonts_folder") {
		t.Errorf("output missing status:\n%s", buf.String())
	}
}

func TestRunFontCheckWithFonts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, f := range []string{
		"NotoSansJP-Regular.ttf",
		"NotoSansJP-Bold.ttf",
		"NotoSansJP-Light.ttf",
	} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("stub"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	code := runFontCheck(&buf, dir)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	out := buf.String()
	if !strings.Contains(out, "excellent") {
		t.Errorf("output missing status:\n%s", out)
	}
	if !strings.Contains(out, "[OK] NotoSansJP-Regular.ttf") {
		t.Errorf("output missing available font line:\n%s", out)
	}
	if !strings.Contains(out, "[MISSING] NotoSansJP-Medium.ttf") {
		t.Errorf("output missing missing-font line:\n%s", out)
	}
}
