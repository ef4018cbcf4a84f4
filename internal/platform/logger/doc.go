// Package logger provides structured logging functionality for the application.
//
// It uses the standard library log/slog package to emit JSON logs with a
// configurable level. Logs always go to stdout and can additionally be written
// to a size-rotated file. Request-scoped loggers travel in the context so that
// handlers and services log with the request's trace ID attached.
package logger
