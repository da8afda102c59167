// Package diag sets up dexter's diagnostic log. The TUI owns the terminal,
// so entries go to a JSON lines file that the diagnostics view tails.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configure the logger.
type Options struct {
	// Path is the log file; empty discards every entry.
	Path    string
	Verbose bool
	// Out overrides Path when set.
	Out io.Writer
}

// New returns a configured logger and a close function for its file.
func New(opts Options) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	noop := func() error { return nil }
	switch {
	case opts.Out != nil:
		log.SetOutput(opts.Out)
		return log, noop, nil
	case strings.TrimSpace(opts.Path) == "":
		log.SetOutput(io.Discard)
		return log, noop, nil
	}

	path := strings.TrimSpace(opts.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(file)
	return log, file.Close, nil
}

// Component returns a child logger tagged with the component name.
func Component(log logrus.FieldLogger, name string) logrus.FieldLogger {
	return log.WithField("component", name)
}
