package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	surgereport "github.com/mkodera/go-surgereport"
)

// cliFlags holds all flags for the surgereport command.
type cliFlags struct {
	fontsDir   string
	output     string
	checkFonts bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("surgereport", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVar(&f.fontsDir, "fonts-dir", surgereport.DefaultFontsDir, "directory probed for NotoSansJP font files")
	fs.StringVarP(&f.output, "output", "o", "", "output file path (default: generated name in current directory)")
	fs.BoolVar(&f.checkFonts, "check-fonts", false, "report Japanese font availability and exit")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, `Usage: surgereport [flags] <report.yaml>

Generates a surgical analytics dashboard PDF from a YAML report definition.

Flags:
      --fonts-dir string   directory probed for NotoSansJP font files (default "fonts")
  -o, --output string      output file path (default: generated name in current directory)
      --check-fonts        report Japanese font availability and exit
  -v, --verbose            show debug logging
      --version            print version and exit`)
}
