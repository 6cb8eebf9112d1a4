// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug":
		lvl = "debug"
	case "info":
		lvl = "info"
	case "warning", "warn":
		lvl = "warn"
	case "error":
		lvl = "error"
	default:
		lvl = "error"
	}

	rawJSON := []byte(
		`{
			"level": "` + lvl + `",
			"encoding": "json",
			"outputPaths": ["stdout"],
			"errorOutputPaths": ["stderr"],
			"encoderConfig": {
				"messageKey": "message",
				"levelKey": "severity",
				"levelEncoder": "lowercase",
				"timeKey": "@timestamp",
				"timeEncoder": "rfc3339nano"
			}
		}`,
	)

	config := zap.NewProductionConfig()

	if err := config.Level.UnmarshalText([]byte(lvl)); err != nil {
		panic(err)
	}

	if err := json.Unmarshal(rawJSON, &config); err != nil {
		panic(err)
	}

	config.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	logger := zap.Must(config.Build())
	logger.Debug("logger construction succeeded")

	// security events are always recorded, whatever the application log level
	securityConfig := config
	securityConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      newSecurityLogger(zap.Must(securityConfig.Build())),
	}
}

// NewLoggerWithCore builds a Logger writing application and security events
// to core.
func NewLoggerWithCore(core zapcore.Core) *Logger {
	logger := zap.New(core)

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      newSecurityLogger(logger),
	}
}
