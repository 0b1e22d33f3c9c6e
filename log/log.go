// Package log configures loggers used by pads and elements.
//
// Logger is configured with environment variables:
//
//	FLOW_DEBUG=true        enables debug level;
//	FLOW_LOG_FORMAT=json   switches to json formatter, text is used by default.
package log

import (
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const envPrefix = "FLOW"

// config is populated from environment.
type config struct {
	Debug  bool   `envconfig:"DEBUG" default:"false"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// GetLogger returns a new logger instance configured from environment.
// Malformed environment falls back to defaults.
func GetLogger() *logrus.Logger {
	var c config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		c = config{Format: "text"}
	}
	return newLogger(c)
}

// Silent returns a logger which discards all entries.
func Silent() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newLogger(c config) *logrus.Logger {
	l := logrus.New()
	if c.Debug {
		l.SetLevel(logrus.DebugLevel)
	}
	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}
