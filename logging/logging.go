/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package logging

import (
	"fmt"
	"github.com/gorundebug/dynarray/config"
	"github.com/sirupsen/logrus"
	"io"
	"os"
)

func DefaultLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func MakeLogger(cfg *config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)
	switch cfg.Format {
	case config.LogFormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case config.LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unsupported log format: %q", cfg.Format)
	}
	return logger, nil
}
