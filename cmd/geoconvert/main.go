// Command geoconvert converts positions between latitude/longitude, UTM/UPS
// and MGRS.
//
// Usage:
//
//	geoconvert [flags] [coordinate]
//
// With no coordinate argument, one coordinate is read from each line of
// standard input.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/tzneal/coordconv/v2"
	"github.com/tzneal/coordconv/v2/internal/config"
	"github.com/tzneal/coordconv/v2/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status: 0 on success, 1 if
// any coordinate failed to convert, 2 for bad flags or configuration.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("geoconvert", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: geoconvert [flags] [coordinate]\n\n")
		fmt.Fprintf(stderr, "Coordinates are \"lat lon\", \"zone easting northing\" (e.g. 18n 585664 4511315) or MGRS.\n")
		fmt.Fprintf(stderr, "Without a coordinate, each line of standard input is converted.\n\n")
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)
	if err := fs.Parse(separateNumbers(fs, args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := logging.Setup(stderr, cfg.Log.Level, cfg.Log.Format)
	c := &converter{cfg: cfg}

	status := 0
	convert := func(n int, line string) {
		out, err := c.convert(line)
		if err != nil {
			fmt.Fprintf(stdout, "ERROR %s\n", err)
			logger.Warn("conversion failed", "line", n, "input", line, "error", err)
			status = 1
			return
		}
		logger.Debug("converted", "line", n, "input", line, "output", out)
		fmt.Fprintln(stdout, out)
	}

	if fs.NArg() > 0 {
		convert(1, strings.Join(fs.Args(), " "))
		return status
	}
	scanner := bufio.NewScanner(stdin)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		convert(n, line)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("read input", "error", err)
		return 2
	}
	return status
}

// separateNumbers moves negative numbers such as "-73.98" behind a "--" so
// the flag parser treats them as coordinates rather than shorthand flags.
func separateNumbers(fs *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case !strings.HasPrefix(arg, "-") || isNumber(arg):
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			if f := lookupFlag(fs, arg); f != nil && f.NoOptDefVal == "" && !strings.Contains(arg, "=") && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

func lookupFlag(fs *pflag.FlagSet, arg string) *pflag.Flag {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		return fs.Lookup(name)
	}
	if len(arg) == 2 {
		return fs.ShorthandLookup(arg[1:])
	}
	return nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

type converter struct {
	cfg *config.Config
}

// detect guesses the form of a coordinate: two numbers are a latitude and
// longitude, a zone token and two numbers are UTM/UPS, anything else is
// MGRS.
func detect(line string) string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	switch {
	case len(fields) == 2 && isNumber(fields[0]) && isNumber(fields[1]):
		return "latlon"
	case len(fields) == 3 && isNumber(fields[1]) && isNumber(fields[2]):
		return "utm"
	}
	return "mgrs"
}

func (c *converter) convert(line string) (string, error) {
	kind := c.cfg.Input
	if kind == "auto" {
		kind = detect(line)
	}

	var (
		geo      coordconv.LatLon
		u        coordconv.UtmUps
		m        coordconv.MGRS
		haveUTM  bool
		haveMGRS bool
		err      error
	)
	switch kind {
	case "latlon":
		if geo, err = coordconv.ParseLatLon(line); err != nil {
			return "", err
		}
	case "utm":
		if u, err = coordconv.ParseUtmUps(line); err != nil {
			return "", err
		}
		geo, haveUTM = u.ToLatLon(), true
	case "mgrs":
		if m, err = coordconv.ParseMGRS(line); err != nil {
			return "", err
		}
		u = m.ToUtmUps()
		geo, haveUTM, haveMGRS = u.ToLatLon(), true, true
	default:
		return "", fmt.Errorf("unknown input form %q", kind)
	}

	if zone := c.cfg.Zone; zone != config.StandardZone && (!haveUTM || u.Zone() != zone) {
		if u, err = geo.ToUtmUpsZone(zone); err != nil {
			return "", err
		}
		haveMGRS = false
	} else if !haveUTM {
		u = geo.ToUtmUps()
	}

	var parts []string
	if c.cfg.Output == "latlon" || c.cfg.Output == "all" {
		d := c.cfg.Decimals + 5
		parts = append(parts, fmt.Sprintf("%.*f %.*f", d, geo.Latitude(), d, geo.Longitude()))
	}
	if c.cfg.Output == "utm" || c.cfg.Output == "all" {
		d := c.cfg.Decimals
		parts = append(parts, fmt.Sprintf("%s %.*f %.*f", u.ZoneString(), d, u.Easting(), d, u.Northing()))
	}
	if c.cfg.Output == "mgrs" || c.cfg.Output == "all" {
		if haveMGRS {
			m, err = m.WithPrecision(c.cfg.Precision)
		} else {
			m, err = u.ToMGRS(c.cfg.Precision)
		}
		if err != nil {
			return "", err
		}
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " | "), nil
}
