package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/upsconf/internal/app"
	"github.com/vk/upsconf/internal/argstore"
	"github.com/vk/upsconf/internal/options"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError. Validation is batch: every unknown option, option error and
// stray argument is written to output before the error return.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	store := argstore.Build(args)
	result := options.Validate(store)
	slog.Debug("Arguments validated.", "valid", result.Valid)

	// --help wins over everything else, including invalid options.
	if result.Help {
		printUsage(output)
		return nil, true, nil
	}

	if !result.Valid {
		reportInvalid(result, output)
		printUsage(output)
		return nil, false, &ExitError{Code: 1, Message: "invalid command line options"}
	}

	confDir := app.DefaultConfDir
	if result.Local != "" {
		confDir = result.Local
	}

	logLevel := os.Getenv("UPSCONF_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := os.Getenv("UPSCONF_LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	config, err := app.NewConfig(app.Config{
		ConfDir:   confDir,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Options:   result,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "conf_dir", confDir)
	return config, false, nil
}

// reportInvalid writes every collected problem to the output, in the order
// they were found: unknown options first, then option errors, then stray
// arguments.
func reportInvalid(result *options.Result, out io.Writer) {
	for _, name := range result.Unknown {
		if suggestion := options.Suggest(name); suggestion != "" {
			fmt.Fprintf(out, "Unknown option: %s (did you mean %s?)\n", name, suggestion)
			continue
		}
		fmt.Fprintf(out, "Unknown option: %s\n", name)
	}

	for _, e := range result.Errors {
		fmt.Fprintf(out, "Option error: %s\n", e.Message)
	}

	for _, arg := range result.Stray {
		fmt.Fprintf(out, "Unexpected argument: %s\n", arg)
	}
}
