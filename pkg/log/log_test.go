package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nestlint/nestlint/pkg/log"
	"github.com/sirupsen/logrus"
)

func TestNewSlog(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	logE := logrus.NewEntry(logger).WithField("program", "nestlint")

	slogger := log.NewSlog(logE)
	slogger.Debug("hidden by the logrus level")
	slogger.Warn("removed the token", "key_service", "nestlint/nestlint")

	got := buf.String()
	if strings.Contains(got, "hidden by the logrus level") {
		t.Errorf("debug logs must be filtered by logrus: %q", got)
	}
	for _, s := range []string{"level=warning", "removed the token", "key_service=nestlint/nestlint", "program=nestlint"} {
		if !strings.Contains(got, s) {
			t.Errorf("log must contain %q, got %q", s, got)
		}
	}
}
