package cuentica

import (
	"github.com/hashicorp/go-hclog"
)

// The SDK logs on three channels: general request lifecycle (Debug), full
// per-request detail including method, URL, and body (Debug, only when
// Config.Debug is set), and failures (Error). With an hclog-backed logger the
// channels are filtered by level and by the named sub-logger they go through.

// hclogAdapter adapts an hclog.Logger to the Logger interface.
type hclogAdapter struct {
	logger hclog.Logger
}

// NewHCLogAdapter wraps an existing hclog.Logger as a cuentica.Logger.
func NewHCLogAdapter(logger hclog.Logger) Logger {
	return &hclogAdapter{logger: logger}
}

// NewLogger creates a named hclog-backed logger at the given level
// ("trace", "debug", "info", "warn", "error").
func NewLogger(name, level string) Logger {
	return &hclogAdapter{logger: hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(level),
	})}
}

func (l *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, flatten(fields)...)
}

func (l *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, flatten(fields)...)
}

func (l *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, flatten(fields)...)
}

func (l *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}
