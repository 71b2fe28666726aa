package docxgen

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	globalLogger      *log.Logger
	globalLoggerMutex sync.RWMutex
	globalLoggerOnce  sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		globalLoggerMutex.Lock()
		if globalLogger == nil {
			globalLogger = NewLogger(os.Stderr, config.LogLevel)
		}
		globalLoggerMutex.Unlock()
	})
}

func parseLogLevel(levelStr string) log.Level {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// NewLogger returns a logger writing to w at the named level. Unknown levels
// fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "docxgen",
		Level:  parseLogLevel(level),
	})
}

// GetLogger returns the package logger
func GetLogger() *log.Logger {
	initGlobalLogger()

	globalLoggerMutex.RLock()
	defer globalLoggerMutex.RUnlock()
	return globalLogger
}

// SetLogger replaces the package logger
func SetLogger(l *log.Logger) {
	globalLoggerOnce.Do(func() {})

	globalLoggerMutex.Lock()
	defer globalLoggerMutex.Unlock()
	if l == nil {
		l = NewLogger(io.Discard, "error")
	}
	globalLogger = l
}

// UpdateLoggerFromConfig applies the global config's log level
func UpdateLoggerFromConfig() {
	config := GetGlobalConfig()
	GetLogger().SetLevel(parseLogLevel(config.LogLevel))
}
