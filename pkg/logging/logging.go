package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appDirName  = "dictator"
	logFileName = "dictator.log"
)

// Options configures Setup
type Options struct {
	// Verbosity is the -v count: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int

	// Console receives human readable lines. Defaults to stderr.
	Console io.Writer

	// NoColor disables ANSI colours on Console
	NoColor bool

	// LogFile overrides the XDG state log path. "-" disables the file.
	LogFile string
}

// Level maps a -v count to a zerolog level
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup installs the global logger: console lines plus JSON lines appended
// to the log file. The returned closer releases the file.
func Setup(opts Options) io.Closer {
	zerolog.SetGlobalLevel(Level(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logPath := opts.LogFile
	if logPath == "" {
		logPath = getLogFilePath()
	}

	var (
		file    *os.File
		fileErr error
	)
	if logPath != "-" {
		file, fileErr = openLogFile(logPath)
		if fileErr == nil {
			writers = append(writers, file)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logPath).Msg("Logger initialized")

	if file == nil {
		return nopCloser{}
	}
	return file
}

// SetupLogger is Setup with defaults for the given verbosity
func SetupLogger(verbosity int) io.Closer {
	return Setup(Options{Verbosity: verbosity, NoColor: os.Getenv("NO_COLOR") != ""})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithRunID tags a logger with a fresh run identifier so every line of one
// enforcement pass can be correlated in the log file.
func WithRunID(logger zerolog.Logger) (zerolog.Logger, string) {
	id := uuid.NewString()
	return logger.With().Str("run_id", id).Logger(), id
}

// LogFilePath returns the location of the persistent log file
func LogFilePath() string {
	return getLogFilePath()
}

// getLogFilePath respects XDG_STATE_HOME when set at call time and falls
// back to the xdg library's resolved state directory.
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return logFileName
	}
	return filepath.Join(stateHome, appDirName, logFileName)
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
