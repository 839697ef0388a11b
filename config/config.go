// Package config holds the process-wide settings shared by the combinator and
// collection packages.
//
// The algorithms themselves are pure, so there is very little to configure:
// the logger used for debug traces on failure paths, and the default size of
// memoization tables created by fn.Tableize1..3.
//
// Usage:
//
//	config.Configure(
//	    config.WithDevelopmentLogger(),
//	    config.WithMemoTableSize(4096),
//	)
//	defer config.Reset()
package config

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/on-the-ground/collect_ive_go/shared/helper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultMemoTableSize is the per-generation entry limit used by memoization
// tables when no explicit size is given.
const DefaultMemoTableSize uint32 = 1024

// Config is an immutable snapshot of the current settings.
type Config struct {
	Logger        *zap.Logger
	MemoTableSize uint32
}

// Option mutates a Config under construction.
type Option func(*Config)

var current atomic.Pointer[Config]

func init() {
	Reset()
}

// Default returns the settings used before any call to Configure.
func Default() Config {
	return Config{
		Logger:        zap.NewNop(),
		MemoTableSize: DefaultMemoTableSize,
	}
}

// Current returns the active settings.
func Current() Config {
	return *current.Load()
}

// Logger is a shortcut for Current().Logger.
func Logger() *zap.Logger {
	return current.Load().Logger
}

// Configure applies opts on top of the active settings and installs the result.
func Configure(opts ...Option) {
	next := Current()
	for _, opt := range opts {
		opt(&next)
	}
	if next.Logger == nil {
		next.Logger = zap.NewNop()
	}
	if next.MemoTableSize == 0 {
		next.MemoTableSize = DefaultMemoTableSize
	}
	current.Store(&next)
}

// Reset restores Default().
func Reset() {
	def := Default()
	current.Store(&def)
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMemoTableSize sets the default memoization table size.
func WithMemoTableSize(size uint32) Option {
	return func(c *Config) {
		c.MemoTableSize = size
	}
}

// WithDevelopmentLogger installs a console logger writing to stdout at the given
// level (debug when omitted).
func WithDevelopmentLogger(level ...zapcore.Level) Option {
	lvl := zap.DebugLevel
	if len(level) > 0 {
		lvl = level[0]
	}
	return WithLogger(newConsoleLogger(lvl))
}

// WithLogLevel replaces the logger by a console logger at the given level.
func WithLogLevel(level zapcore.Level) Option {
	return WithDevelopmentLogger(level)
}

// FromMap builds options from dotted keys (see keys.go). Unknown keys are ignored.
func FromMap(values map[string]any) ([]Option, error) {
	var opts []Option
	if raw, ok := values[ConfigCollectLogLevel]; ok {
		s, err := helper.GetTypedValueOf[string](func() (any, error) { return raw, nil })
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ConfigCollectLogLevel, err)
		}
		lvl, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ConfigCollectLogLevel, err)
		}
		opts = append(opts, WithLogLevel(lvl))
	}
	if raw, ok := values[ConfigCollectMemoTableSize]; ok {
		size, err := toTableSize(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ConfigCollectMemoTableSize, err)
		}
		opts = append(opts, WithMemoTableSize(size))
	}
	return opts, nil
}

func toTableSize(raw any) (uint32, error) {
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint32:
		n = int64(v)
	case float64:
		n = int64(v)
	default:
		return 0, fmt.Errorf("unexpected type: %T", raw)
	}
	if n <= 0 || n > int64(^uint32(0)) {
		return 0, fmt.Errorf("table size out of range: %d", n)
	}
	return uint32(n), nil
}

func newConsoleLogger(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(consoleCore)
}
