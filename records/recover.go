package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/draftloop/structout/core/normalize"
	"github.com/draftloop/structout/core/recovery"
)

// Features recovers a list of features from raw LLM response text.
func Features(ctx context.Context, raw string, opts ...Option) ([]Feature, error) {
	return recoverAs[Feature](ctx, raw, featureSpec, featureWrapperKeys, opts)
}

// Tasks recovers a list of tasks from raw LLM response text.
func Tasks(ctx context.Context, raw string, opts ...Option) ([]Task, error) {
	return recoverAs[Task](ctx, raw, taskSpec, taskWrapperKeys, opts)
}

// Sections recovers a list of template sections from raw LLM response text.
func Sections(ctx context.Context, raw string, opts ...Option) ([]TemplateSection, error) {
	return recoverAs[TemplateSection](ctx, raw, sectionSpec, sectionWrapperKeys, opts)
}

// recoverAs runs the pipeline, normalizes against spec, and decodes the
// result into the typed record. Total recovery failure is translated into
// an empty slice unless the caller opted into strict mode.
func recoverAs[T any](ctx context.Context, raw string, spec normalize.Spec, wrapperKeys []string, opts []Option) ([]T, error) {
	cfg := applyOptions(opts...)

	result, err := recovery.Recover(ctx, raw,
		recovery.WithObserver(cfg.observer),
		recovery.WithWrapperKeys(wrapperKeys...),
	)
	if err != nil {
		if !cfg.strict && errors.Is(err, recovery.ErrNoData) {
			return []T{}, nil
		}
		return nil, err
	}

	normOpts := []normalize.Option{normalize.WithObserver(cfg.observer)}
	if cfg.htmlToMarkdown {
		normOpts = append(normOpts, normalize.WithHTMLToMarkdown())
	}
	normalized := normalize.New(spec, normOpts...).ApplyAll(ctx, result.Records)
	roundNumbers(normalized)

	return decodeAs[T](normalized)
}

// roundNumbers snaps float fields that feed integer struct fields to whole
// values so the JSON decode step cannot fail on a fractional number.
func roundNumbers(records []map[string]any) {
	for _, record := range records {
		if f, ok := record["order"].(float64); ok {
			record["order"] = math.Round(f)
		}
	}
}

// decodeAs converts normalized generic records into typed ones via a JSON
// round-trip, which applies the struct field tags without hand-written
// per-field mapping.
func decodeAs[T any](records []map[string]any) ([]T, error) {
	encoded, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("structout: failed to encode normalized records: %w", err)
	}
	out := make([]T, 0, len(records))
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("structout: failed to decode records: %w", err)
	}
	return out, nil
}
