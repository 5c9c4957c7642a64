// Package util provides logger construction shared by the apvlan tools.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger constructs the run logger writing to an append-mode file at path.
// Every run of the tool appends to the same file; one line per event with
// timestamp, level, and message. The caller owns the returned closer.
//
// Loggers are constructed explicitly and handed to components; there is no
// package-global logger.
func NewLogger(path string) (*logrus.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	log := logrus.New()
	log.SetOutput(f)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return log, f, nil
}

// NewDiscardLogger returns a logger that drops everything. Used by tests and
// as a fallback when no log destination is configured.
func NewDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// SetLogLevel sets the logging level from a string like "debug" or "warn".
func SetLogLevel(log *logrus.Logger, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}
