// Package utils provides shared low-level helpers used throughout the
// structout internals: JSON serialization for log output, string truncation
// for bounded diagnostics, and a simple elapsed-time timer.
//
// Key entry points: [JSONToString] for safe serialization, [TruncateString]
// for capping raw payloads in logs, and [Timer] for measuring latency.
package utils
