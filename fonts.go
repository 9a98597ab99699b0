package surgereport

import (
	"github.com/rs/zerolog"

	"github.com/mkodera/go-surgereport/internal/fontkit"
)

// FontSource identifies which fallback branch produced the active fonts.
type FontSource string

const (
	FontSourceAssets   FontSource = "assets"
	FontSourceSystem   FontSource = "system"
	FontSourceBaseline FontSource = "baseline"
)

// FontRef is an opaque handle to one glyph-rendering resource.
type FontRef struct {
	Family  string
	Path    string
	Builtin bool
}

// ResourceSet holds the three font roles the report consumes. It is created
// once per Service and immutable thereafter.
type ResourceSet struct {
	Regular FontRef
	Bold    FontRef
	Light   FontRef
	Source  FontSource
}

// ResolveFonts runs the font fallback chain against dir and returns the
// resulting set. It never fails; the worst case is the engine's core font
// for every role. Branch selection is logged at info, warn, and error
// severity respectively.
func ResolveFonts(dir string, log zerolog.Logger) ResourceSet {
	return toResourceSet(fontkit.Resolve(dir, log))
}

func toResourceSet(set fontkit.Set) ResourceSet {
	return ResourceSet{
		Regular: toFontRef(set.Regular),
		Bold:    toFontRef(set.Bold),
		Light:   toFontRef(set.Light),
		Source:  FontSource(set.Source.String()),
	}
}

func toFontRef(ref fontkit.Ref) FontRef {
	return FontRef{Family: ref.Family, Path: ref.Path, Builtin: ref.Builtin}
}

// Font availability status values reported by CheckFontAvailability.
const (
	FontStatusExcellent     = fontkit.StatusExcellent
	FontStatusGood          = fontkit.StatusGood
	FontStatusPartial       = fontkit.StatusPartial
	FontStatusNoFonts       = fontkit.StatusNoFonts
	FontStatusNoFontsFolder = fontkit.StatusNoFontsFolder
	FontStatusError         = fontkit.StatusError
)

// FontStatus reports which optional font assets are installed.
type FontStatus struct {
	FontsFolderExists bool
	AvailableFonts    []string
	MissingFonts      []string
	Status            string
	Err               string
}

// CheckFontAvailability probes dir for the recommended font files and
// classifies the result. Pure filesystem probe, no caching.
func CheckFontAvailability(dir string) FontStatus {
	st := fontkit.CheckAvailability(dir)
	return FontStatus{
		FontsFolderExists: st.FontsFolderExists,
		AvailableFonts:    st.AvailableFonts,
		MissingFonts:      st.MissingFonts,
		Status:            st.Status,
		Err:               st.Err,
	}
}
