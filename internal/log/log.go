// Package log routes logrus output to a file so diagnostics never write to
// the terminal the TUI is drawing on.
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/alakhsir/studium/internal/config"
)

// Setup opens the log file and configures the global logrus logger. With no
// configured path the file lands in the XDG state directory.
func Setup(cfg config.LogConfig) (func(), error) {
	path := cfg.File
	if path == "" {
		p, err := xdg.StateFile(filepath.Join("studium", "studium.log"))
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return func() { _ = f.Close() }, nil
}
