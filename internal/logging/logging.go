// Package logging builds zap loggers and adapts them to orm.Logger.
package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// New returns a console logger at the named level ("debug", "info", ...).
func New(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// QueryLogger writes every statement at debug level.
type QueryLogger struct {
	L *zap.Logger
}

var _ orm.Logger = QueryLogger{}

func (q QueryLogger) Log(_ context.Context, query string, args ...any) {
	q.L.Debug("query", zap.String("sql", query), zap.Any("args", args))
}
