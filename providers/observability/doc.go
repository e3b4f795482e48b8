// Package observability defines the interfaces and semantic conventions used
// for structured logging and metrics collection throughout the structout
// library.
//
// The central entry point is [Provider], which composes [Metrics] and
// [Logger] into a single injectable dependency. Components accept a Provider
// and fall back to [Nop] when none is configured, so instrumentation never
// becomes a hard requirement for callers.
//
// The semconv.go file contains all standard attribute-key, event, and metric
// name constants that should be used when recording observations, ensuring
// consistency across providers and components.
package observability
