// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tally/internal/config"
)

type logFlags struct {
	Level  string `help:"Set log level, overriding the configuration file."`
	Format string `help:"Set log format: text or json."`
}

func newLogger(cfg *config.Config, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", config.ErrInvalidConfig, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch cfg.Log.Format {
	case config.FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
