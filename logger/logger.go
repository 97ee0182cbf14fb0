package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Info logs an informational message
	Info(msg string, fields ...Field)

	// Warn logs a warning message
	Warn(msg string, fields ...Field)

	// Error logs an error message
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message
	Debug(msg string, fields ...Field)

	// WithFields returns a logger with additional fields
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Error creates an error field
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// defaultLogger implements the Logger interface using the standard log package
type defaultLogger struct {
	logger *log.Logger
	fields []Field
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger() Logger {
	return NewLoggerWithOutput(os.Stdout)
}

// NewLoggerWithOutput creates a new logger instance with custom output
func NewLoggerWithOutput(w io.Writer) Logger {
	return &defaultLogger{
		logger: log.New(w, "", 0),
		fields: []Field{},
	}
}

// Info logs an informational message
func (l *defaultLogger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields...)
}

// Warn logs a warning message
func (l *defaultLogger) Warn(msg string, fields ...Field) {
	l.log("WARN", msg, fields...)
}

// Error logs an error message
func (l *defaultLogger) Error(msg string, err error, fields ...Field) {
	allFields := append([]Field{Error(err)}, fields...)
	l.log("ERROR", msg, allFields...)
}

// Debug logs a debug message
func (l *defaultLogger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields...)
}

// WithFields returns a logger with additional fields
func (l *defaultLogger) WithFields(fields ...Field) Logger {
	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &defaultLogger{
		logger: l.logger,
		fields: newFields,
	}
}

// log is the internal logging method
func (l *defaultLogger) log(level, msg string, fields ...Field) {
	// Combine persistent fields with one-time fields
	allFields := append(l.fields, fields...)

	timestamp := time.Now().Format(time.RFC3339)
	logEntry := fmt.Sprintf("[%s] %s: %s", timestamp, level, msg)

	if len(allFields) > 0 {
		logEntry += " {"
		for i, field := range allFields {
			if i > 0 {
				logEntry += ", "
			}
			logEntry += fmt.Sprintf("%s=%v", field.Key, field.Value)
		}
		logEntry += "}"
	}

	l.logger.Println(logEntry)
}
