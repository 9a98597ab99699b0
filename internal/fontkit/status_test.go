package fontkit

import (
	"path/filepath"
	"testing"
)

func TestCheckAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		files     []string
		expected  string
		folderOK  bool
		available int
	}{
		{
			name:      "all weights",
			files:     RequiredFiles(),
			expected:  StatusExcellent,
			folderOK:  true,
			available: 4,
		},
		{
			name:      "regular plus two",
			files:     []string{FileRegular, FileBold, FileLight},
			expected:  StatusExcellent,
			folderOK:  true,
			available: 3,
		},
		{
			name:      "regular only",
			files:     []string{FileRegular},
			expected:  StatusGood,
			folderOK:  true,
			available: 1,
		},
		{
			name:      "regular and bold",
			files:     []string{FileRegular, FileBold},
			expected:  StatusGood,
			folderOK:  true,
			available: 2,
		},
		{
			name:      "bold without regular",
			files:     []string{FileBold, FileLight, FileMedium},
			expected:  StatusPartial,
			folderOK:  true,
			available: 3,
		},
		{
			name:      "empty folder",
			files:     nil,
			expected:  StatusNoFonts,
			folderOK:  true,
			available: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for _, f := range tt.files {
				writeDummy(t, dir, f)
			}

			st := CheckAvailability(dir)
			if st.Status != tt.expected {
				t.Errorf("status = %q, want %q", st.Status, tt.expected)
			}
			if st.FontsFolderExists != tt.folderOK {
				t.Errorf("folder exists = %v, want %v", st.FontsFolderExists, tt.folderOK)
			}
			if len(st.AvailableFonts) != tt.available {
				t.Errorf("available = %v, want %d entries", st.AvailableFonts, tt.available)
			}
			if len(st.AvailableFonts)+len(st.MissingFonts) != len(RequiredFiles()) {
				t.Errorf("available + missing = %d, want %d",
					len(st.AvailableFonts)+len(st.MissingFonts), len(RequiredFiles()))
			}
		})
	}
}

func TestCheckAvailabilityMissingFolder(t *testing.T) {
	t.Parallel()

	st := CheckAvailability(filepath.Join(t.TempDir(), "missing"))
	if st.Status != StatusNoFontsFolder {
		t.Errorf("status = %q, want %q", st.Status, StatusNoFontsFolder)
	}
	if st.FontsFolderExists {
		t.Error("folder exists = true for missing folder")
	}
}

func TestCheckAvailabilityFileAsFolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDummy(t, dir, "notadir")

	st := CheckAvailability(filepath.Join(dir, "notadir"))
	if st.Status != StatusNoFontsFolder {
		t.Errorf("status = %q, want %q", st.Status, StatusNoFontsFolder)
	}
}
