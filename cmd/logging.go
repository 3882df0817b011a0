package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-website/config"
)

func configureLogging(cfg *config.Config) error {
	level := strings.TrimSpace(cfg.Log.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap:        logrus.FieldMap{logrus.FieldKeyMsg: "message"},
	})
	logrus.AddHook(serviceFieldHook{service: cfg.App.ServiceName})
	return nil
}

// serviceFieldHook stamps every entry with the configured service name.
type serviceFieldHook struct {
	service string
}

func (h serviceFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceFieldHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok && h.service != "" {
		entry.Data["service"] = h.service
	}
	return nil
}
