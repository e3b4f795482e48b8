// Package recovery turns unreliable LLM response text into generic records.
// Model output that is supposed to be a single JSON object or array often
// arrives wrapped in markdown fences, surrounded by prose, truncated
// mid-value, or polluted with raw control characters. The pipeline applies
// an ordered list of transform-then-parse strategies, from least invasive to
// most aggressive, stopping at the first one that yields valid data.
//
// The main entry point is [Recover], which returns a [Result] carrying the
// parsed records together with the index of the strategy that produced them.
// When every strategy fails, the returned error is a [*NoDataError] matching
// [ErrNoData] via errors.Is, and it retains the final text each strategy
// attempted for diagnostics.
//
// Wrapper objects such as {"features": [...]} are unwrapped transparently:
// configured keys (see [WithWrapperKeys]) are checked first, then any
// single-key object whose value is an array. The package parses but does not
// interpret field values; see the normalize package for that.
package recovery
