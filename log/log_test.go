package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		l := GetLogger()
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
	})
	t.Run("debug json", func(t *testing.T) {
		t.Setenv("FLOW_DEBUG", "true")
		t.Setenv("FLOW_LOG_FORMAT", "json")
		l := GetLogger()
		assert.Equal(t, logrus.DebugLevel, l.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
	})
	t.Run("malformed", func(t *testing.T) {
		t.Setenv("FLOW_DEBUG", "maybe")
		l := GetLogger()
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	})
}
