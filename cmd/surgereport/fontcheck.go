package main

import (
	"fmt"
	"io"

	surgereport "github.com/mkodera/go-surgereport"
)

// runFontCheck prints a font availability diagnostic and returns an exit
// code. Exit codes: 0 = usable (any fallback works), 1 = probe error.
func runFontCheck(w io.Writer, dir string) int {
	st := surgereport.CheckFontAvailability(dir)
	printFontStatus(w, dir, st)

	if st.Status == surgereport.FontStatusError {
		return 1
	}
	return 0
}

// printFontStatus outputs human-readable font diagnostic results.
func printFontStatus(w io.Writer, dir string, st surgereport.FontStatus) {
	fmt.Fprintln(w, "surgereport font check")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Fonts directory: %s\n", dir)
	if st.FontsFolderExists {
		fmt.Fprintln(w, "  [OK] Folder exists")
	} else {
		fmt.Fprintln(w, "  [WARN] Folder not found")
	}

	for _, f := range st.AvailableFonts {
		fmt.Fprintf(w, "  [OK] %s\n", f)
	}
	for _, f := range st.MissingFonts {
		fmt.Fprintf(w, "  [MISSING] %s\n", f)
	}
	if st.Err != "" {
		fmt.Fprintf(w, "  [ERROR] %s\n", st.Err)
	}
	fmt.Fprintln(w)

	switch st.Status {
	case surgereport.FontStatusExcellent:
		fmt.Fprintln(w, "Status: excellent (full Japanese weight coverage)")
	case surgereport.FontStatusGood:
		fmt.Fprintln(w, "Status: good (regular weight available)")
	case surgereport.FontStatusPartial:
		fmt.Fprintln(w, "Status: partial (regular weight missing, system fallback will be tried)")
	case surgereport.FontStatusNoFonts:
		fmt.Fprintln(w, "Status: no_fonts (system fonts or Helvetica will be used)")
	case surgereport.FontStatusNoFontsFolder:
		fmt.Fprintln(w, "Status: no_fonts_folder (system fonts or Helvetica will be used)")
	default:
		fmt.Fprintln(w, "Status: error (see above)")
	}
}
