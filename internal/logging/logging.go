// Package logging configures the process-wide zap logger.
// The demo CLI keeps diagnostics on stderr so scenario and demo output
// on stdout stays clean; only console and json encodings are offered.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"capability-dispatch/internal/errors"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `json:"level"`

	// Format is the output format (json, console)
	Format string `json:"format"`

	// Output is the output destination (stdout, stderr)
	Output string `json:"output"`
}

// DefaultConfig returns the demo defaults: console on stderr at info
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize sets up the global logger
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(errors.TypeConfig, err, "unknown log level %q", cfg.Level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return errors.Newf(errors.TypeConfig, "unknown log format %q", cfg.Format)
	}

	var sink zapcore.WriteSyncer
	switch cfg.Output {
	case "stdout":
		sink = zapcore.AddSync(os.Stdout)
	case "", "stderr":
		sink = zapcore.AddSync(os.Stderr)
	default:
		return errors.Newf(errors.TypeConfig, "unknown log output %q", cfg.Output)
	}

	Logger = zap.New(zapcore.NewCore(encoder, sink, level))
	return nil
}

// Sync flushes the logger
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func init() {
	if err := Initialize(DefaultConfig()); err != nil {
		panic(err)
	}
}
