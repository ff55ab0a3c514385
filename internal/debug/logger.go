// Package debug provides the process-wide debug logger. The terminal is owned
// by the UI, so every log line goes to a file instead of stderr.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogger wraps a zap logger writing JSON lines to a log file
type DebugLogger struct {
	logger  *zap.Logger
	logFile *os.File
	path    string
}

// NewDebugLogger opens (or creates) the log file at path and returns a logger
// that writes to it at the given level. If the file cannot be opened the
// logger falls back to discarding output.
func NewDebugLogger(path, level string) *DebugLogger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create log directory: %v\n", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &DebugLogger{logger: zap.NewNop(), path: path}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(logFile),
		lvl,
	)

	d := &DebugLogger{
		logger:  zap.New(core, zap.AddCaller()),
		logFile: logFile,
		path:    path,
	}
	d.logger.Info("debug session started", zap.Int("pid", os.Getpid()))
	return d
}

// Logger returns the underlying zap logger
func (d *DebugLogger) Logger() *zap.Logger {
	if d == nil || d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}

// Path returns the log file location
func (d *DebugLogger) Path() string {
	return d.path
}

// Close flushes and closes the log file
func (d *DebugLogger) Close() {
	if d == nil || d.logger == nil {
		return
	}
	d.logger.Info("debug session ended")
	_ = d.logger.Sync()

	if d.logFile != nil {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

var (
	mu     sync.RWMutex
	global *DebugLogger
)

// Init installs the global debug logger
func Init(path, level string) *DebugLogger {
	d := NewDebugLogger(path, level)
	mu.Lock()
	global = d
	mu.Unlock()
	return d
}

// Log returns the global logger, or a no-op logger before Init
func Log() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global.Logger()
}
