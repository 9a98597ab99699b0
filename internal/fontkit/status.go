package fontkit

import (
	"os"
	"path/filepath"

	"github.com/mkodera/go-surgereport/internal/fileutil"
)

// Availability status values, ordered best to worst.
const (
	StatusExcellent     = "excellent"      // regular weight plus at least three files
	StatusGood          = "good"           // regular weight present
	StatusPartial       = "partial"        // some weights, but not regular
	StatusNoFonts       = "no_fonts"       // folder exists, no recognized fonts
	StatusNoFontsFolder = "no_fonts_folder"
	StatusError         = "error"
)

// Status reports the outcome of a filesystem probe of the font directory.
type Status struct {
	FontsFolderExists bool
	AvailableFonts    []string
	MissingFonts      []string
	Status            string
	Err               string
}

// CheckAvailability probes dir for the recommended font files. It is a pure
// filesystem check with no caching; each call re-stats the directory.
func CheckAvailability(dir string) Status {
	result := Status{
		AvailableFonts: []string{},
		MissingFonts:   []string{},
		Status:         StatusError,
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		result.FontsFolderExists = true
	case os.IsNotExist(err) || (err == nil && !info.IsDir()):
		result.Status = StatusNoFontsFolder
		return result
	default:
		result.Err = err.Error()
		return result
	}

	for _, file := range RequiredFiles() {
		if fileutil.FileExists(filepath.Join(dir, file)) {
			result.AvailableFonts = append(result.AvailableFonts, file)
		} else {
			result.MissingFonts = append(result.MissingFonts, file)
		}
	}

	switch {
	case contains(result.AvailableFonts, FileRegular) && len(result.AvailableFonts) >= 3:
		result.Status = StatusExcellent
	case contains(result.AvailableFonts, FileRegular):
		result.Status = StatusGood
	case len(result.AvailableFonts) > 0:
		result.Status = StatusPartial
	default:
		result.Status = StatusNoFonts
	}
	return result
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
