package recovery

import "github.com/draftloop/structout/providers/observability"

// Option is a functional option for configuring a [Recover] call.
type Option func(*config)

type config struct {
	observer    observability.Provider
	wrapperKeys []string
}

// WithObserver injects an observability provider. Recovery emits debug
// events per strategy, an info event on success, a warn event on total
// failure, and success/failure counters plus a duration histogram. When not
// set, [observability.Nop] is used.
func WithObserver(p observability.Provider) Option {
	return func(c *config) {
		if p != nil {
			c.observer = p
		}
	}
}

// WithWrapperKeys declares object keys that may wrap the expected array,
// like "features" in {"features": [...]}. They are checked in order before
// the generic single-key unwrap rule.
func WithWrapperKeys(keys ...string) Option {
	return func(c *config) {
		c.wrapperKeys = append(c.wrapperKeys, keys...)
	}
}

func applyOptions(opts ...Option) *config {
	cfg := &config{
		observer: observability.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
