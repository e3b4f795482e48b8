// Package records exposes the typed entry points of the library: recovering
// [Feature], [Task], and [TemplateSection] values from raw LLM response
// text. Each entry point runs the recovery pipeline, normalizes the generic
// result against the record's declarative schema, and decodes it into the
// typed struct.
//
// By default a response with no recoverable data yields an empty slice and
// no error, which suits extraction call sites that treat "nothing found" as
// a valid outcome. Call sites that need at least one record back can opt
// into [WithStrict] to receive the underlying [recovery.ErrNoData] instead.
//
// Identity fields and cross-record links (ids, parent references, selection
// flags) are the caller's responsibility after recovery.
package records
