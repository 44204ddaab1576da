// Package log builds the slog.Logger of the webfile command from its flags.
// It supports the formats json and text, the levels debug, info, warn and error,
// and the outputs stdout and stderr. In a browser both outputs end up in the console.
package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ocm.software/open-component-model/bindings/go/webfile/internal/flags/enum"
)

// Log format constants
const (
	FormatFlagName = "logformat" // Flag name for log format configuration

	FormatText = "text" // Human-readable text format, the default
	FormatJSON = "json" // JSON format for structured logging, suitable for machine processing
)

// Log level constants
const (
	LevelFlagName = "loglevel" // Flag name for log level configuration

	LevelWarn  = "warn"  // Warn level for conditions that don't prevent a read, the default
	LevelDebug = "debug" // Debug level, including the start and resolution of every read
	LevelInfo  = "info"  // Info level for general operational information
	LevelError = "error" // Error level for failed reads and exports
)

// Log output constants
const (
	OutputFlagName = "logoutput" // Flag name for log output configuration

	OutputStderr = "stderr" // Standard error destination, the default
	OutputStdout = "stdout" // Standard output destination
)

// RegisterLoggingFlags registers FormatFlagName, LevelFlagName and OutputFlagName on flagset.
// The defaults are text, warn and stderr.
//
// Usage examples:
//
//	--logformat json     # Output logs in JSON format
//	--loglevel debug     # Log every read as it starts and resolves
//	--loglevel error     # Show errors only
//	--logoutput stdout   # Write logs to standard output
func RegisterLoggingFlags(flagset *pflag.FlagSet) {
	enum.Var(flagset, FormatFlagName, []string{FormatText, FormatJSON}, "log format")
	enum.Var(flagset, LevelFlagName, []string{LevelWarn, LevelDebug, LevelInfo, LevelError}, "log level")
	enum.Var(flagset, OutputFlagName, []string{OutputStderr, OutputStdout}, "log output")
}

// GetBaseLogger creates a slog.Logger from the logging flags of cmd.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevelFromCommand(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get log level: %w", err)
	}

	format, err := enum.Get(cmd.Flags(), FormatFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log format from the command flag: %w", err)
	}

	output, err := enum.Get(cmd.Flags(), OutputFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log output from the command flag: %w", err)
	}

	var w io.Writer
	switch output {
	case OutputStdout:
		w = cmd.OutOrStdout()
	default:
		w = cmd.ErrOrStderr()
	}

	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

func loggerLevelFromCommand(cmd *cobra.Command) (slog.Level, error) {
	value, err := enum.Get(cmd.Flags(), LevelFlagName)
	if err != nil {
		return slog.LevelWarn, err
	}
	switch value {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", value)
	}
}
