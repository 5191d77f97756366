package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	OffLevel
)

var (
	defaultLogger *Logger

	debugPrintf = color.New(color.FgCyan).SprintfFunc()
	infoPrintf  = color.New(color.FgGreen).SprintfFunc()
	warnPrintf  = color.New(color.FgYellow).SprintfFunc()
	errorPrintf = color.New(color.FgRed).SprintfFunc()
)

type Logger struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

func init() {
	color.NoColor = false
	defaultLogger = &Logger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  InfoLevel,
	}
}

// ParseLevel maps a config string to a Level; unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "off":
		return OffLevel
	}
	return InfoLevel
}

func SetLevel(level Level) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.level = level
}

func SetOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.logger = log.New(w, "", log.LstdFlags)

	// colors only make sense on a terminal
	if f, ok := w.(*os.File); !ok || (f != os.Stdout && f != os.Stderr) {
		color.NoColor = true
	}
}

func Debug(format string, v ...interface{}) {
	if defaultLogger.level <= DebugLevel {
		defaultLogger.logger.Print(debugPrintf("[DEBUG] "+format, v...))
	}
}

func Info(format string, v ...interface{}) {
	if defaultLogger.level <= InfoLevel {
		defaultLogger.logger.Print(infoPrintf("[INFO] "+format, v...))
	}
}

func Warn(format string, v ...interface{}) {
	if defaultLogger.level <= WarnLevel {
		defaultLogger.logger.Print(warnPrintf("[WARN] "+format, v...))
	}
}

func Error(format string, v ...interface{}) {
	if defaultLogger.level <= ErrorLevel {
		defaultLogger.logger.Print(errorPrintf("[ERROR] "+format, v...))
	}
}
