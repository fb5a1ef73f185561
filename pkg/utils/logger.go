package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// The TUI owns stdout, so all logging goes to a file under /tmp. The logger
// defaults to a no-op until InitLogger enables it.
var (
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// InitLogger sets up the logging system. With verbose enabled, debug-level
// messages are written to /tmp/evento_<date>.log.
func InitLogger(verbose bool) {
	if !verbose {
		return
	}

	name := fmt.Sprintf("/tmp/evento_%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Printf("Error creating log file: %v\n", err)
		return
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Log("verbose logging enabled")
}

// Log writes a debug message in printf style
func Log(text string, args ...any) {
	logger.Debug(fmt.Sprintf(text, args...))
}

// Error writes an error with context
func Error(msg string, err error) {
	logger.Error(msg, slog.Any("err", err))
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
