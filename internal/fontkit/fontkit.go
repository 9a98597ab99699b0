// Package fontkit resolves which glyph-rendering resources the report
// engine uses. Resolution is pure discovery: it probes the filesystem and
// decides on a font set, but registration into a document happens later,
// per generated document, so the resolved set stays immutable shared state.
package fontkit

import (
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/rs/zerolog"

	"github.com/mkodera/go-surgereport/internal/fileutil"
)

// Font family identifiers registered with the PDF engine.
const (
	FamilyNoto      = "NotoSansJP"
	FamilyNotoLight = "NotoSansJP-Light"
	FamilySerif     = "JPSerif"
	FamilyGothic    = "JPGothic"
	FamilyBaseline  = "Helvetica"
)

// Asset font filenames probed in the fonts directory, in weight order.
const (
	FileRegular = "NotoSansJP-Regular.ttf"
	FileBold    = "NotoSansJP-Bold.ttf"
	FileLight   = "NotoSansJP-Light.ttf"
	FileMedium  = "NotoSansJP-Medium.ttf"
)

// RequiredFiles returns the asset filenames the resolver and the
// availability check look for.
func RequiredFiles() []string {
	return []string{FileRegular, FileBold, FileLight, FileMedium}
}

// System font candidates for the middle fallback branch. Only .ttf files:
// the engine's UTF-8 loader does not read .ttc collections.
var (
	gothicCandidates = []string{
		"ipag.ttf",
		"ipagp.ttf",
		"fonts-japanese-gothic.ttf",
		"NotoSansCJKjp-Regular.ttf",
	}
	serifCandidates = []string{
		"ipam.ttf",
		"ipamp.ttf",
		"fonts-japanese-mincho.ttf",
		"NotoSerifCJKjp-Regular.ttf",
	}
)

// Source identifies which fallback branch produced a Set.
type Source int

const (
	SourceAssets Source = iota // preferred fonts from the asset directory
	SourceSystem               // locale fonts discovered on the host system
	SourceBaseline             // engine core font; CJK glyphs will not render
)

func (s Source) String() string {
	switch s {
	case SourceAssets:
		return "assets"
	case SourceSystem:
		return "system"
	default:
		return "baseline"
	}
}

// Ref is an opaque handle to one glyph-rendering resource. Builtin refs name
// a core engine font and carry no path.
type Ref struct {
	Family  string
	Style   string // engine style suffix: "" or "B"
	Path    string
	Builtin bool
}

// Set holds the three font roles every report consumes. Created once per
// process, immutable afterwards.
type Set struct {
	Regular Ref
	Bold    Ref
	Light   Ref
	Source  Source
}

// baselineSet is the last-resort set. It always works but renders non-Latin
// glyphs incorrectly; callers accept that degraded mode.
func baselineSet() Set {
	return Set{
		Regular: Ref{Family: FamilyBaseline, Builtin: true},
		Bold:    Ref{Family: FamilyBaseline, Style: "B", Builtin: true},
		Light:   Ref{Family: FamilyBaseline, Builtin: true},
		Source:  SourceBaseline,
	}
}

// Resolve walks the fallback chain and returns a usable Set. It never fails:
// each branch degrades to the next, and the baseline always succeeds.
//
// Branch order: asset directory fonts, then system locale fonts, then the
// engine's core font for all three roles.
func Resolve(dir string, log zerolog.Logger) Set {
	if set, ok := resolveAssets(dir, log); ok {
		log.Info().
			Str("dir", dir).
			Str("regular", set.Regular.Path).
			Msg("using asset fonts")
		return set
	}

	if set, ok := resolveSystem(); ok {
		log.Warn().
			Str("dir", dir).
			Str("regular", set.Regular.Path).
			Msg("asset fonts missing, using system locale fonts")
		return set
	}

	log.Error().
		Str("dir", dir).
		Msg("no CJK fonts found, falling back to engine core font; non-Latin text will not render correctly")
	return baselineSet()
}

// resolveAssets probes dir for the preferred font family. The regular weight
// is mandatory; bold and light degrade to regular when absent.
func resolveAssets(dir string, log zerolog.Logger) (Set, bool) {
	regPath := filepath.Join(dir, FileRegular)
	if !fileutil.FileExists(regPath) {
		return Set{}, false
	}

	regular := Ref{Family: FamilyNoto, Path: regPath}
	bold := regular
	if p := filepath.Join(dir, FileBold); fileutil.FileExists(p) {
		bold = Ref{Family: FamilyNoto, Style: "B", Path: p}
	}
	light := regular
	if p := filepath.Join(dir, FileLight); fileutil.FileExists(p) {
		light = Ref{Family: FamilyNotoLight, Path: p}
	}
	if p := filepath.Join(dir, FileMedium); fileutil.FileExists(p) {
		// Registered weight without a role of its own; log so the probe
		// result is visible in diagnostics.
		log.Debug().Str("path", p).Msg("medium weight present")
	}

	return Set{Regular: regular, Bold: bold, Light: light, Source: SourceAssets}, true
}

// resolveSystem searches the host font directories for locale fonts.
// Role mapping mirrors the engine-bundled pairing: serif for regular and
// light, gothic for bold. A single found face serves every role.
func resolveSystem() (Set, bool) {
	serif := findFirst(serifCandidates)
	gothic := findFirst(gothicCandidates)
	if serif == "" && gothic == "" {
		return Set{}, false
	}
	if serif == "" {
		serif = gothic
	}
	if gothic == "" {
		gothic = serif
	}

	regular := Ref{Family: FamilySerif, Path: serif}
	bold := Ref{Family: FamilyGothic, Path: gothic}
	return Set{Regular: regular, Bold: bold, Light: regular, Source: SourceSystem}, true
}

func findFirst(names []string) string {
	for _, name := range names {
		if path, err := findfont.Find(name); err == nil {
			return path
		}
	}
	return ""
}

