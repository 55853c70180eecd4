package app

import (
	"fmt"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"io"
	"os"
	"strings"
	"time"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag (explicit always wins)
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. LOG_LEVEL or BOOKSHELF_LOG_LEVEL environment variable, or log_level in the config file
//  5. Default (info)
func NewLogger(config *Config, stderr io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(determineLogLevel(config, stderr))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(logWriter(config, stderr)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// determineLogLevel determines the log level using the precedence rules of NewLogger.
func determineLogLevel(config *Config, stderr io.Writer) string {
	if config.LogLevelFlag != "" {
		return validateLogLevel(config.LogLevelFlag, stderr)
	}

	if config.Verbose && config.Quiet {
		// Both specified - warn user and use quiet (more restrictive)
		_, _ = fmt.Fprintf(stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	if config.LogLevel != "" {
		return validateLogLevel(config.LogLevel, stderr)
	}

	return "info"
}

// validateLogLevel returns level if it is valid and "info" otherwise.
func validateLogLevel(level string, stderr io.Writer) string {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "trace", "debug", "info", "warn", "error":
		return l
	default:
		_, _ = fmt.Fprintf(stderr, "Warning: invalid log level %q, using %q\n", level, "info")
		return "info"
	}
}

// logWriter creates the writer for the configured output and format.
// Output is stderr, stdout, discard or a file path, format is auto, console or json.
func logWriter(config *Config, stderr io.Writer) io.Writer {
	var out io.Writer
	switch strings.ToLower(config.LogOutput) {
	case "", "stderr":
		out = stderr
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		out = io.Discard
	default:
		file, err := os.OpenFile(config.LogOutput, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			// Fall back to stderr
			_, _ = fmt.Fprintf(stderr, "Warning: can not open log file %s: %v, logging to stderr\n", config.LogOutput, err)
			out = stderr
		} else {
			out = file
		}
	}

	format := strings.ToLower(config.LogFormat)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
			format = "console"
		}
	}

	if format == "console" || format == "pretty" {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	return out
}
