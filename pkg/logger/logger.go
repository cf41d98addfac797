// Package logger builds the shared application logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a production SugaredLogger writing JSON to stdout, tagged
// with the service name. Construction failures are unrecoverable and panic.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}
	config.OutputPaths = []string{"stdout"}

	log, err := config.Build(zap.WithCaller(true))
	if err != nil {
		panic(err)
	}

	return log.Sugar()
}
