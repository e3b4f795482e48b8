// Package normalize maps the loosely-shaped generic records produced by the
// recovery pipeline onto fixed-schema domain records. A record schema is a
// declarative [Spec]: one [Field] per canonical field with its accepted
// alias names, value [Kind], default, and, for enum fields, the allowed set.
//
// Coercion is deliberately permissive. A bare string where an array is
// expected becomes a one-element array, numeric strings are parsed, enum
// values are matched case-insensitively and clamped to their canonical
// spelling, and anything unusable is replaced by the field default. A
// [Normalizer] therefore never fails: every input, however sparse, yields a
// complete record.
package normalize
