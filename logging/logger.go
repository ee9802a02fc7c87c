// Package logging defines the logger used across the module along with its zap based implementation
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Errorln(args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Debugln(args ...interface{})

	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Warningln(args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Infoln(args ...interface{})

	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Fatalln(args ...interface{})
}

// ZapLogger is a Logger backed by a zap sugared logger
type ZapLogger struct {
	*zap.SugaredLogger
}

// NewZap creates a console logger writing to stderr.
// Debug level messages will only be logged in verbose mode.
func NewZap(verbose bool) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return Wrap(l), nil
}

// Wrap turns a zap logger into a Logger
func Wrap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{SugaredLogger: l.Sugar()}
}

// Nop returns a logger which discards everything
func Nop() *ZapLogger {
	return Wrap(zap.NewNop())
}

func (z *ZapLogger) Warning(args ...interface{}) {
	z.Warn(args...)
}

func (z *ZapLogger) Warningf(format string, args ...interface{}) {
	z.Warnf(format, args...)
}

func (z *ZapLogger) Warningln(args ...interface{}) {
	z.Warnln(args...)
}

// With returns a child logger carrying the key/value pairs on every entry
func (z *ZapLogger) With(args ...interface{}) *ZapLogger {
	return &ZapLogger{SugaredLogger: z.SugaredLogger.With(args...)}
}

// Close flushes the buffered log entries
func (z *ZapLogger) Close() error {
	return z.Sync()
}
