// Package logger contains functions for a working with application logging.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option is a function that can be used to modify the logger configuration.
type Option func(*options)

type options struct {
	out   io.Writer
	debug bool
}

// WithOutput sets the log writer (os.Stderr by default).
func WithOutput(w io.Writer) Option { return func(o *options) { o.out = w } }

// WithDebug enables the caller annotation and the development mode (panics on DPanic, stack traces on warnings).
func WithDebug(on bool) Option { return func(o *options) { o.debug = on } }

// New creates a new zap logger with the specified level and format.
func New(lvl Level, f Format, opts ...Option) (*zap.Logger, error) {
	var o = options{out: os.Stderr}

	for _, opt := range opts {
		opt(&o)
	}

	var zapLvl zapcore.Level

	switch lvl {
	case DebugLevel:
		zapLvl = zap.DebugLevel
	case InfoLevel:
		zapLvl = zap.InfoLevel
	case WarnLevel:
		zapLvl = zap.WarnLevel
	case ErrorLevel:
		zapLvl = zap.ErrorLevel
	default:
		return nil, fmt.Errorf("unsupported logging level: %s", lvl)
	}

	var encCfg = zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder

	switch f {
	case ConsoleFormat:
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc = zapcore.NewConsoleEncoder(encCfg)
	case JSONFormat:
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		encCfg.EncodeTime = zapcore.EpochTimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unsupported logging format: %s", f)
	}

	var zapOpts = []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}

	if o.debug {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.Development(), zap.AddStacktrace(zap.WarnLevel))
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(o.out), zapLvl), zapOpts...), nil
}
