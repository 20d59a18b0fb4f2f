// Package log is a thin package-level facade over logrus with printf-style
// helpers and caller attribution, so call sites stay as short as
// log.Info("scanned %d fonts", n).
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetLevel sets the minimum level emitted by the package logger.
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput redirects the package logger, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	logf(logrus.DebugLevel, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	logf(logrus.InfoLevel, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	logf(logrus.WarnLevel, format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	logf(logrus.ErrorLevel, format, args...)
}

// Fatal logs an error message and exits the process.
func Fatal(format string, args ...interface{}) {
	logf(logrus.FatalLevel, format, args...)
	logger.Exit(1)
}

func logf(level logrus.Level, format string, args ...interface{}) {
	if !logger.IsLevelEnabled(level) {
		return
	}

	entry := logrus.NewEntry(logger)
	if _, file, line, ok := runtime.Caller(2); ok {
		entry = entry.WithField("src", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	entry.Logf(level, format, args...)
}
