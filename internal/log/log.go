// Package log provides categorised debug logging for kera.
//
// Output goes to a log file only when debug logging is enabled, so log lines never
// interleave with the shop's terminal output.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Category tags a log line with the subsystem that produced it.
type Category string

const (
	CatConfig  Category = "config"
	CatOrder   Category = "order"
	CatBreathe Category = "breathe"
	CatMusic   Category = "music"
	CatDB      Category = "db"
	CatUI      Category = "ui"
)

var (
	mu      sync.RWMutex
	logger  = newLogger(io.Discard, logrus.InfoLevel)
	closeFn = func() error { return nil }
)

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return l
}

// Init opens path for appending and routes all log output there at debug level.
// The returned function closes the file and restores the discard logger.
func Init(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: path comes from the data dir
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)

	mu.Lock()
	closeFn = f.Close
	mu.Unlock()

	return Close, nil
}

// SetOutput routes debug-level output to w. Tests use this with a bytes.Buffer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, logrus.DebugLevel)
}

// Close releases the log file, if any, and silences logging again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeFn()
	closeFn = func() error { return nil }
	logger = newLogger(io.Discard, logrus.InfoLevel)
	return err
}

func current() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// entry builds a log entry tagged with cat and the key/value pairs in args.
// A trailing key without a value is kept under "!BADKEY".
func entry(cat Category, args []any) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		fields[fmt.Sprint(args[i])] = args[i+1]
	}
	if len(args)%2 == 1 {
		fields["!BADKEY"] = args[len(args)-1]
	}
	return current().WithField("cat", string(cat)).WithFields(fields)
}

// Debug logs a debug message with key/value pairs.
func Debug(cat Category, msg string, args ...any) {
	entry(cat, args).Debug(msg)
}

// Info logs an informational message.
func Info(cat Category, msg string, args ...any) {
	entry(cat, args).Info(msg)
}

// Warn logs a warning.
func Warn(cat Category, msg string, args ...any) {
	entry(cat, args).Warn(msg)
}

// ErrorErr logs msg at error level with err attached.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	entry(cat, args).WithError(err).Error(msg)
}
