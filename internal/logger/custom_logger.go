package logger

import "go.uber.org/zap"

type CustomLogger struct {
	sugaredZapLogger *zap.SugaredLogger
}

func NewCustomLogger(zapLogger *zap.Logger) *CustomLogger {
	return &CustomLogger{
		sugaredZapLogger: zapLogger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

// With returns a child logger, the receiver keeps its own fields.
func (l *CustomLogger) With(args ...interface{}) *CustomLogger {
	return &CustomLogger{sugaredZapLogger: l.sugaredZapLogger.With(args...)}
}

func (l *CustomLogger) Debugf(template string, args ...interface{}) {
	l.sugaredZapLogger.Debugf(template, args...)
}

func (l *CustomLogger) Infof(template string, args ...interface{}) {
	l.sugaredZapLogger.Infof(template, args...)
}

func (l *CustomLogger) Warnf(template string, args ...interface{}) {
	l.sugaredZapLogger.Warnf(template, args...)
}

func (l *CustomLogger) Errorf(template string, args ...interface{}) {
	l.sugaredZapLogger.Errorf(template, args...)
}

func (l *CustomLogger) Sync() error {
	return l.sugaredZapLogger.Sync()
}
