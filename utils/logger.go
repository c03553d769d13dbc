package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger открывает errors.log и panics.log в logsDir с ротацией по размеру
func InitLogger(logsDir string) error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	ErrorLogger = log.New(rotatingFile(filepath.Join(logsDir, "errors.log")), "", 0)
	PanicLogger = log.New(rotatingFile(filepath.Join(logsDir, "panics.log")), "", 0)

	return nil
}

func rotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
	}
}

func LogError(err error, context string) {
	if ErrorLogger == nil {
		log.Printf("ERROR %s: %v", context, err)
		return
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	ErrorLogger.Printf("[%s] ERROR in %s:%d - %s: %v", timestamp, filepath.Base(file), line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		log.Printf("PANIC %s: %v", context, recovered)
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	PanicLogger.Printf("[%s] PANIC in %s:%d - %s: %v", timestamp, filepath.Base(file), line, context, recovered)
}
