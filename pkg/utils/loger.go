package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	debugMode bool
	logger    = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func SetDebug(enable bool) {
	debugMode = enable
}

// SetLogOutput redirects debug output, mainly for tests.
func SetLogOutput(w io.Writer) {
	logger = newLogger(w)
}

func DebugLog(format string, v ...interface{}) {
	if debugMode {
		logger.Debug(fmt.Sprintf(format, v...))
	}
}
