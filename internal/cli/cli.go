package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/bmicalc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bmicalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
bmicalc - Body Mass Index calculator.

Usage:
  bmicalc -height CM -weight KG
  bmicalc [options] INPUT_PATH...
  bmicalc -interactive
  bmicalc -categories
  bmicalc -http-port PORT

Arguments:
  INPUT_PATH
    Path to a single .hcl file or a directory containing .hcl files with
    measurement blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	heightFlag := flagSet.String("height", "", "Height in centimeters.")
	weightFlag := flagSet.String("weight", "", "Weight in kilograms.")
	var files stringList
	flagSet.Var(&files, "file", "Path to an input file or directory (repeatable).")
	flagSet.Var(&files, "f", "Path to an input file or directory (shorthand).")
	interactiveFlag := flagSet.Bool("interactive", false, "Fill in the form line by line on stdin.")
	categoriesFlag := flagSet.Bool("categories", false, "Print the BMI status categories and exit.")
	formatFlag := flagSet.String("format", "text", "Result format. Options: 'text', 'json' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	httpPortFlag := flagSet.Int("http-port", 0, "Serve /evaluate, /health and /metrics on this port. 0 is disabled.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io URL of a remote view that receives every outcome.")
	publishNSFlag := flagSet.String("publish-namespace", "/", "socket.io namespace for -publish-url.")
	publishInsecureFlag := flagSet.Bool("publish-insecure", false, "Skip TLS certificate verification for -publish-url.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// An explicitly empty -height still selects single mode so the user
	// gets "Height is required" rather than the usage text.
	hasInput := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "height" || f.Name == "weight" {
			hasInput = true
		}
	})

	paths := append([]string(nil), files...)
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Input paths determined.", "paths", paths)

	if !hasInput && len(paths) == 0 && !*interactiveFlag && !*categoriesFlag && *httpPortFlag == 0 {
		slog.Debug("Nothing to do, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, ok := app.ParseLevel(logLevel); !ok {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Height:           *heightFlag,
		Weight:           *weightFlag,
		HasInput:         hasInput,
		InputPaths:       paths,
		Interactive:      *interactiveFlag,
		ShowCategories:   *categoriesFlag,
		Format:           *formatFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		HTTPPort:         *httpPortFlag,
		PublishURL:       *publishURLFlag,
		PublishNamespace: *publishNSFlag,
		PublishInsecure:  *publishInsecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "mode", config.Mode().String())
	return config, false, nil
}
