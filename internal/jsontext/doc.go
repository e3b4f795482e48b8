// Package jsontext provides low-level primitives for locating and mending
// JSON payloads inside raw LLM text. Model output rarely arrives as clean
// JSON: it is wrapped in markdown fences, surrounded by prose, cut off
// mid-token by length limits, or peppered with raw control characters that
// encoding/json refuses to accept inside string literals.
//
// All routines share a single character [State] scanner so that string
// boundaries and escape sequences are interpreted identically everywhere.
// The building blocks are [StripFences], [ExtractBalanced], [Sanitize],
// [RepairTruncated] and [SalvageArray]; higher layers compose them into a
// recovery pipeline and this package stays free of any parsing policy.
package jsontext
