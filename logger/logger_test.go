package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerTagsInstance(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo("dispatcher", "abc-123", &buf)
	l.Info("dispatched", "function", "mcp__sayHello")

	out := buf.String()
	assert.Contains(t, out, "dispatcher")
	assert.Contains(t, out, "instance=abc-123")
	assert.Contains(t, out, "function=mcp__sayHello")
	assert.Equal(t, "abc-123", l.ID())
}

func TestNamedKeepsInstance(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo("server", "id-1", &buf).Named("auth")
	l.Warn("rejected")

	assert.Equal(t, "id-1", l.ID())
	assert.Contains(t, buf.String(), "server.auth")
	assert.Contains(t, buf.String(), "instance=id-1")
}

func TestLogConfigDefaults(t *testing.T) {
	t.Setenv("POSTMCP_LOG_LEVEL", "")
	t.Setenv("POSTMCP_LOG_JSON", "")
	cfg := LogConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestLogConfigFromEnv(t *testing.T) {
	t.Setenv("POSTMCP_LOG_LEVEL", "debug")
	t.Setenv("POSTMCP_LOG_JSON", "true")
	cfg := LogConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.JSON)
}
