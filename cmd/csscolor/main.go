// Command csscolor prints conversions and accessibility metrics for CSS colors.
//
// Usage:
//
//	csscolor [-against COLOR] [-upper] [-no-alpha] [-v] COLOR...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/csscolor"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("csscolor: %v", err)
	}
}

// run parses args and writes a report for each color to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("csscolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		against = fs.String("against", "white", "background color for the contrast ratio")
		upper   = fs.Bool("upper", false, "print hex digits in upper case")
		noAlpha = fs.Bool("no-alpha", false, "print six-digit hex without alpha")
		verbose = fs.Bool("v", false, "enable debug logging to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: csscolor [flags] COLOR...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no colors given")
	}

	if *verbose {
		csscolor.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer csscolor.SetLogger(nil)
	}

	bg, err := csscolor.Parse(*against)
	if err != nil {
		return fmt.Errorf("-against: %w", err)
	}

	var opts []csscolor.HexOption
	if *upper {
		opts = append(opts, csscolor.UpperCase())
	}
	if *noAlpha {
		opts = append(opts, csscolor.ExcludeAlpha())
	}

	for i, arg := range fs.Args() {
		c, err := csscolor.Parse(arg)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		report(stdout, arg, c, bg, opts)
	}
	return nil
}

func report(w io.Writer, input string, c, bg *csscolor.Color, opts []csscolor.HexOption) {
	fmt.Fprintf(w, "%s\n", input)
	fmt.Fprintf(w, "  hex:        %s\n", c.Hex(opts...))
	fmt.Fprintf(w, "  rgb:        %s\n", c.RGBString())
	fmt.Fprintf(w, "  hsl:        %s\n", c.HSLString())
	fmt.Fprintf(w, "  luminance:  %.4f\n", c.RelativeLuminance())
	fmt.Fprintf(w, "  lightness:  %.4f\n", c.PerceivedLightness())
	fmt.Fprintf(w, "  text:       %s\n", c.BestTextColor())
	fmt.Fprintf(w, "  contrast:   %.2f:1 against %s\n", c.ContrastRatio(bg), bg.Hex(opts...))
}
