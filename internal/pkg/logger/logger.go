// Package logger provides a global, Sugared Zap logger. It supports
// configuring the log level and output via functional options, emits JSON logs
// and enriches every entry with the trace and span IDs found in the context,
// so tool invocations can be correlated with the wallet operation that
// triggered them. When an OpenTelemetry LoggerProvider is given, entries are
// also bridged to it.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. It discards everything
	// until Init is called.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// instrumentationScope names the bridged OpenTelemetry logger.
const instrumentationScope = "github.com/gabapcia/vitebridge"

// config holds configuration options for the logger.
type config struct {
	level          string              // the minimum log level (debug, info, warn, error, panic, fatal)
	output         zapcore.WriteSyncer // destination of the encoded entries
	loggerProvider log.LoggerProvider  // optional OTEL bridge target
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the encoded log entries. Default: stdout.
func WithOutput(w zapcore.WriteSyncer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithLoggerProvider also forwards entries at or above the configured level
// to lp, typically the provider created by telemetry.Init.
func WithLoggerProvider(lp log.LoggerProvider) Option {
	return func(c *config) {
		c.loggerProvider = lp
	}
}

// Init configures the global logger. By default, it logs JSON to stdout at
// the "info" level. Calling Init multiple times has no effect after the first
// successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: zapcore.AddSync(os.Stdout)}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				cfg.output,
				level,
			),
		}

		if cfg.loggerProvider != nil {
			var bridge zapcore.Core = otelzap.NewCore(instrumentationScope, otelzap.WithLoggerProvider(cfg.loggerProvider))
			if leveled, err := zapcore.NewIncreaseLevelCore(bridge, level); err == nil {
				bridge = leveled
			}
			cores = append(cores, bridge)
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// withTrace appends the trace and span IDs carried by ctx, if any.
func withTrace(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return keysAndValues
	}

	return append(keysAndValues,
		"trace_id", sc.TraceID().String(),
		"span_id", sc.SpanID().String(),
	)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withTrace(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withTrace(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withTrace(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withTrace(ctx, keysAndValues)...)
}
