package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// storeLogger routes gorm's statement log into slog. Failed and slow
// statements are always reported, every statement only in debug mode.
type storeLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newStoreLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &storeLogger{logger: logger, level: gormlogger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Store != nil {
		l.slowThreshold = cfg.Store.SlowQueryThreshold
	}

	return l
}

func (l *storeLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *storeLogger) logf(ctx context.Context, at gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < at {
		return
	}

	l.logger.Log(ctx, level, "[Store] "+fmt.Sprintf(msg, args...))
}

// Trace is called by gorm after every statement.
func (l *storeLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "[Store] Statement failed"
	case slow && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "[Store] Slow statement"
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "[Store] Statement"
	default:
		return
	}

	query, rows := fc()
	attrs := []slog.Attr{
		slog.String("duration", elapsed.String()),
		slog.Int64("rows", rows),
		slog.String("query", query),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
