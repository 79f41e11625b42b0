// Package log creates the logrus entry shared by every command.
package log

import (
	"log/slog"

	sloglogrus "github.com/samber/slog-logrus"
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"version": version,
		"program": "nestlint",
	})
}

// SetLevel changes the global log level.
// An empty level keeps the default. An invalid level is logged and ignored.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logrus.SetLevel(lvl)
}

// NewSlog returns a *slog.Logger writing through logE's logrus logger, for
// libraries that take a slog logger. The level is still filtered by logrus.
func NewSlog(logE *logrus.Entry) *slog.Logger {
	logger := slog.New(sloglogrus.Option{
		Level:  slog.LevelDebug,
		Logger: logE.Logger,
	}.NewLogrusHandler())
	for k, v := range logE.Data {
		logger = logger.With(k, v)
	}
	return logger
}
