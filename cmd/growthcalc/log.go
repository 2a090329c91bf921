package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// setLogLevel maps a level name onto logger. Trace and panic levels are not exposed.
func setLogLevel(logger *logrus.Logger, level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info", "":
		logger.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logger.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("bad log level %q: use debug, info, warn, error or fatal", level)
	}
	return nil
}
