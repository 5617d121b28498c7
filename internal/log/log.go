// SPDX-License-Identifier: MIT

// Package log holds the process-wide zap logger of the intmat CLI.
// The matrix packages never log; only the command layer does.
package log

import (
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Flag names registered by AddFlags.
const (
	FlagPath       = "log-path"
	FlagMaxSize    = "log-max-size"
	FlagMaxAge     = "log-max-age"
	FlagMaxBackups = "log-max-backups"
)

const timeLayout = "2006-01-02 15:04:05.999999"

var logger *zap.Logger

func init() {
	// setup default logger
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logger
}

// AddFlags registers the log file flags on flagSet.
func AddFlags(flagSet *pflag.FlagSet) {
	flagSet.String(FlagPath, "", "path of log file")
	flagSet.Int(FlagMaxSize, 100, "maximum size in megabytes of the log file")
	flagSet.Int(FlagMaxAge, 0, "maximum number of days to retain old log files")
	flagSet.Int(FlagMaxBackups, 0, "maximum number of old log files to retain")
}

// FileOptions configures the rotating file sink.
type FileOptions struct {
	Path       string
	MaxSize    int
	MaxAge     int
	MaxBackups int
}

// SetLogger replaces the logger from flags registered by AddFlags.
// Records go to stderr, so command output on stdout stays machine-readable;
// when --log-path is set they are also written to a rotating file.
func SetLogger(flagSet *pflag.FlagSet, debug bool) {
	var file *FileOptions
	if flagSet.Changed(FlagPath) {
		path, _ := flagSet.GetString(FlagPath)
		maxSize, _ := flagSet.GetInt(FlagMaxSize)
		maxAge, _ := flagSet.GetInt(FlagMaxAge)
		maxBackups, _ := flagSet.GetInt(FlagMaxBackups)
		file = &FileOptions{Path: path, MaxSize: maxSize, MaxAge: maxAge, MaxBackups: maxBackups}
	}
	logger = New(zapcore.AddSync(os.Stderr), file, debug)
}

// New builds a logger writing to console and, if file is non-nil, to a
// lumberjack-rotated file. Debug mode uses the console encoder at debug
// level; otherwise JSON at info level.
func New(console zapcore.WriteSyncer, file *FileOptions, debug bool) *zap.Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.LevelEnabler
	)
	timeEncoder := zapcore.TimeEncoderOfLayout(timeLayout)

	if debug {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = timeEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zap.DebugLevel
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = timeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		level = zap.InfoLevel
	}

	writers := []zapcore.WriteSyncer{console}
	if file != nil && file.Path != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSize,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAge,
			Compress:   false,
		}))
	}

	return zap.New(zapcore.NewCore(encoder, zap.CombineWriteSyncers(writers...), level))
}

// ReplaceLogger swaps the process logger and returns a function restoring
// the previous one. Intended for tests.
func ReplaceLogger(l *zap.Logger) (restore func()) {
	prev := logger
	logger = l

	return func() { logger = prev }
}
