// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON or text logging with configurable log levels, request-scoped loggers
// carried in a context, and helpers for capturing log output in tests.
package logger
