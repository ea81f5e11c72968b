// Package logging builds the process logger from launcher settings.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// Config controls log output.
type Config struct {
	Verbosity int    // 0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Format    string // text or json
	Color     bool
	SentryDSN string // errors and above are reported when set
	Output    io.Writer
}

// Level maps a verbosity to a logrus level, clamping out-of-range values.
func Level(verbosity int) logrus.Level {
	switch {
	case verbosity < 0:
		verbosity = 0
	case verbosity > 5:
		verbosity = 5
	}
	return logrus.Level(verbosity + int(logrus.FatalLevel))
}

// New returns a logger configured by cfg.
func New(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetLevel(Level(cfg.Verbosity))

	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	switch cfg.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (text|json)", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		logger.AddHook(hook)
	}

	return logger, nil
}
