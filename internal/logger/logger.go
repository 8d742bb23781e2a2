// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger handles dual-output logging: clean messages on the
// console, timestamped leveled records in a log file. The file always
// receives every level; the console only shows debug when verbose.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes to a console stream and optionally a log file.
type Logger struct {
	console  *log.Logger
	file     *log.Logger
	logFile  *os.File
	verbose  bool
	minLevel Level
}

var global = &Logger{
	console:  log.New(os.Stderr, "", 0),
	minLevel: LevelInfo,
}

// Init initializes the global logger. Console output goes to console;
// all levels are appended to the file at logFilePath. An empty path
// disables file logging. Verbose lowers the console threshold to debug.
func Init(console io.Writer, logFilePath string, verbose bool) error {
	l := &Logger{
		console:  log.New(console, "", 0),
		verbose:  verbose,
		minLevel: LevelInfo,
	}
	if verbose {
		l.minLevel = LevelDebug
	}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		l.logFile = f
		l.file = log.New(f, "", log.LstdFlags)
	}

	global = l
	return nil
}

// Close closes the log file, if one is open.
func Close() {
	if global.logFile != nil {
		global.logFile.Close()
	}
}

// Debug logs a debug message (file always, console only when verbose).
func Debug(format string, args ...any) { global.log(LevelDebug, format, args...) }

// Info logs an info message.
func Info(format string, args ...any) { global.log(LevelInfo, format, args...) }

// Warn logs a warning message.
func Warn(format string, args ...any) { global.log(LevelWarn, format, args...) }

// Error logs an error message.
func Error(format string, args ...any) { global.log(LevelError, format, args...) }

// GetLogFilePath returns the path of the current log file, or "".
func GetLogFilePath() string {
	if global.logFile != nil {
		return global.logFile.Name()
	}
	return ""
}

// IsVerbose reports whether verbose logging is enabled.
func IsVerbose() bool { return global.verbose }

func (l *Logger) log(level Level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	// The file gets everything, with level tags.
	if l.file != nil {
		l.file.Printf("[%s] %s", level, message)
	}

	if level < l.minLevel {
		return
	}

	switch level {
	case LevelInfo:
		// Clean output for info.
		l.console.Print(message)
	default:
		l.console.Printf("[%s] %s", level, message)
	}
}
