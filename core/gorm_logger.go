package core

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appConfig "github.com/tnote-app/tnote_service/config"
)

// GormLogger 将 GORM 的日志输出适配到 ZapLogger。
// - 慢查询阈值与日志级别来自 GormLogConfig。
// - RecordNotFound 不视为错误，避免正常的未命中刷屏。
type GormLogger struct {
	logger        *ZapLogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger 构造一个适配 GORM 的日志器。
func NewGormLogger(logger *ZapLogger, cfg appConfig.GormLogConfig) *GormLogger {
	level := gormlogger.Warn
	switch cfg.Level {
	case "silent":
		level = gormlogger.Silent
	case "error":
		level = gormlogger.Error
	case "warn":
		level = gormlogger.Warn
	case "info":
		level = gormlogger.Info
	}

	slow := time.Duration(cfg.SlowThresholdMs) * time.Millisecond
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}

	return &GormLogger{
		logger:        logger,
		level:         level,
		slowThreshold: slow,
	}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.Info("gorm", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.Warn("gorm", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.Error("gorm", zap.String("msg", msg), zap.Any("args", args))
	}
}

func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		g.logger.Error("SQL 执行失败",
			zap.Error(err),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	case elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		g.logger.Warn("慢查询",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", g.slowThreshold),
		)
	case g.level >= gormlogger.Info:
		g.logger.Debug("SQL 执行",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	}
}
