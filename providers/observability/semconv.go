package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Recovery Attributes ---

const (
	// AttrRecoverStrategy is the 1-based index of the strategy that produced data
	AttrRecoverStrategy = "recover.strategy"

	// AttrRecoverStrategyName is the human-readable strategy name
	AttrRecoverStrategyName = "recover.strategy_name"

	// AttrRecoverInputBytes is the size of the raw input in bytes
	AttrRecoverInputBytes = "recover.input_bytes"

	// AttrRecoverRecords is the number of records produced
	AttrRecoverRecords = "recover.records"

	// AttrRecoverWrapperKey is the wrapper key that was unwrapped, if any
	AttrRecoverWrapperKey = "recover.wrapper_key"
)

// --- Record Attributes ---

const (
	// AttrRecordKind is the domain record kind (e.g., "feature", "task")
	AttrRecordKind = "record.kind"

	// AttrRecordField is the canonical field name being normalized
	AttrRecordField = "record.field"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"
)

// --- Event Names ---

const (
	// EventRecoverAttempt marks the start of a recovery pipeline run
	EventRecoverAttempt = "recover.attempt"

	// EventRecoverStrategyOK marks the strategy that yielded parseable data
	EventRecoverStrategyOK = "recover.strategy_ok"

	// EventRecoverFailed marks a pipeline run that exhausted every strategy
	EventRecoverFailed = "recover.failed"

	// EventNormalizeApplied marks a record passing through field normalization
	EventNormalizeApplied = "normalize.applied"
)

// --- Metric Names ---

const (
	// MetricRecoverSuccessCount is the counter for successful recoveries
	MetricRecoverSuccessCount = "structout.recover.success.count"

	// MetricRecoverFailureCount is the counter for exhausted pipelines
	MetricRecoverFailureCount = "structout.recover.failure.count"

	// MetricRecoverDuration is the histogram for pipeline duration in milliseconds
	MetricRecoverDuration = "structout.recover.duration"
)
