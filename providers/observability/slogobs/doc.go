// Package slogobs implements [observability.Provider] on top of Go's
// standard library log/slog. Log events go to a structured slog.Logger and
// metrics are kept in an in-memory store that reports every update at debug
// level, which makes it a good default for development and CLI use without
// pulling in an external telemetry stack.
package slogobs
