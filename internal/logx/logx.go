package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/botguide/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the process logger. Every entry carries a session id so
// runs can be told apart in a shared log file. The returned closer
// releases the log file, if any.
func Setup(cfg config.LogConfig) (*logrus.Entry, io.Closer, error) {
	logger := logrus.New()
	logger.SetReportCaller(cfg.ShowCaller)
	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(lvl)

	var closer io.Closer = nopCloser{}
	if cfg.File == "" {
		logger.SetOutput(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	}

	return logger.WithField("session", uuid.NewString()), closer, nil
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that run without configuration.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// WithTab annotates the logger with the tab identifier.
func WithTab(log *logrus.Entry, tabID string) *logrus.Entry {
	if tabID == "" {
		return log
	}
	return log.WithField("tab", tabID)
}
