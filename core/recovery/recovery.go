package recovery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/draftloop/structout/internal/utils"
	"github.com/draftloop/structout/providers/observability"
)

// Result is the outcome of a successful recovery: the generic records plus
// which strategy produced them. Strategy is the 1-based index in the
// pipeline order and is meant for telemetry and testing, not behavior.
type Result struct {
	Records      []map[string]any
	Strategy     int
	StrategyName string
	// WrapperKey is the object key that was unwrapped to reach the
	// records, empty when the payload was already a bare array or object.
	WrapperKey string
}

// Recover runs the strategy pipeline over raw LLM response text and returns
// the first parseable set of records. A single top-level object becomes a
// one-element record list; wrapper objects are unwrapped; non-object array
// elements are dropped. When no strategy yields data, it returns a
// [*NoDataError] wrapping [ErrNoData].
//
// Recover is a pure in-memory computation and is safe to call concurrently.
func Recover(ctx context.Context, raw string, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts...)
	obs := cfg.observer

	timer := utils.NewTimer()
	obs.Debug(ctx, "Recovery attempt",
		observability.String("event", observability.EventRecoverAttempt),
		observability.Int(observability.AttrRecoverInputBytes, len(raw)),
	)

	var attempts []Attempt
	for i, s := range buildStrategies(raw) {
		if !s.ok {
			continue
		}
		index := i + 1

		records, wrapperKey, err := parseRecords(s.text, cfg.wrapperKeys)
		if err != nil {
			attempts = append(attempts, Attempt{
				Strategy: index,
				Name:     s.name,
				Input:    s.text,
				Err:      err,
			})
			obs.Debug(ctx, "Recovery strategy failed",
				observability.Int(observability.AttrRecoverStrategy, index),
				observability.String(observability.AttrRecoverStrategyName, s.name),
				observability.Error(err),
			)
			continue
		}

		timer.Stop()
		successAttrs := []observability.Attribute{
			observability.String("event", observability.EventRecoverStrategyOK),
			observability.Int(observability.AttrRecoverStrategy, index),
			observability.String(observability.AttrRecoverStrategyName, s.name),
			observability.Int(observability.AttrRecoverRecords, len(records)),
			observability.Duration(observability.AttrDuration, timer.GetDuration()),
		}
		if wrapperKey != "" {
			successAttrs = append(successAttrs,
				observability.String(observability.AttrRecoverWrapperKey, wrapperKey))
		}
		obs.Info(ctx, "Recovery succeeded", successAttrs...)
		obs.Counter(observability.MetricRecoverSuccessCount).Add(ctx, 1,
			observability.String(observability.AttrRecoverStrategyName, s.name))
		obs.Histogram(observability.MetricRecoverDuration).Record(ctx,
			float64(timer.GetDuration().Milliseconds()))

		return &Result{
			Records:      records,
			Strategy:     index,
			StrategyName: s.name,
			WrapperKey:   wrapperKey,
		}, nil
	}

	timer.Stop()
	obs.Warn(ctx, "Recovery exhausted every strategy",
		observability.String("event", observability.EventRecoverFailed),
		observability.Int(observability.AttrRecoverInputBytes, len(raw)),
		observability.String("input", utils.TruncateStringDefault(raw)),
	)
	obs.Counter(observability.MetricRecoverFailureCount).Add(ctx, 1)
	obs.Histogram(observability.MetricRecoverDuration).Record(ctx,
		float64(timer.GetDuration().Milliseconds()))

	return nil, &NoDataError{Attempts: attempts}
}

// parseRecords parses text as JSON and shapes the value into a record list,
// unwrapping wrapper objects along the way. Scalar values are rejected.
func parseRecords(text string, wrapperKeys []string) ([]map[string]any, string, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, "", err
	}

	switch v := value.(type) {
	case []any:
		return objectElements(v), "", nil

	case map[string]any:
		for _, key := range wrapperKeys {
			if arr, ok := v[key].([]any); ok {
				return objectElements(arr), key, nil
			}
		}
		if len(v) == 1 {
			for key, inner := range v {
				if arr, ok := inner.([]any); ok {
					return objectElements(arr), key, nil
				}
			}
		}
		return []map[string]any{v}, "", nil

	default:
		return nil, "", fmt.Errorf("top-level value is %T, expected object or array", value)
	}
}

// objectElements keeps only the object-shaped elements of an array.
func objectElements(arr []any) []map[string]any {
	records := make([]map[string]any, 0, len(arr))
	for _, elem := range arr {
		if m, ok := elem.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return records
}
