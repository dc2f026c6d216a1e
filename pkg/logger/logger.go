package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Уровни логирования
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelPriority = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Logger логгер с уровнями, пишет одновременно в файл и stdout
type Logger struct {
	std   *log.Logger
	level int
	file  *os.File
}

// New создает логгер с записью в указанный файл
// Директория файла создается при необходимости
func New(filePath string, level string) (*Logger, error) {
	priority, ok := levelPriority[strings.ToLower(level)]
	if !ok {
		return nil, fmt.Errorf("logger: unknown level %q", level)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file: %w", err)
	}

	return &Logger{
		std:   log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags|log.Lmicroseconds),
		level: priority,
		file:  file,
	}, nil
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	return l.file.Close()
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.print(LevelDebug, format, v...)
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.print(LevelInfo, format, v...)
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.print(LevelWarn, format, v...)
}

// Error логирует ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.print(LevelError, format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.print(LevelError, format, v...)
	l.file.Close()
	os.Exit(1)
}

func (l *Logger) print(level string, format string, v ...interface{}) {
	if levelPriority[level] < l.level {
		return
	}
	l.std.Printf("[%s] %s", strings.ToUpper(level), fmt.Sprintf(format, v...))
}
