package records

import "github.com/draftloop/structout/providers/observability"

// Option is a functional option shared by the record entry points.
type Option func(*config)

type config struct {
	strict         bool
	htmlToMarkdown bool
	observer       observability.Provider
}

// WithStrict makes total recovery failure an error instead of an empty
// slice. Use it at call sites that cannot proceed without at least one
// record and want to trigger an upstream retry.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithHTMLToMarkdown converts HTML fragments found in string fields into
// markdown during normalization.
func WithHTMLToMarkdown() Option {
	return func(c *config) {
		c.htmlToMarkdown = true
	}
}

// WithObserver injects an observability provider into both the recovery
// pipeline and the normalizer. When not set, [observability.Nop] is used.
func WithObserver(p observability.Provider) Option {
	return func(c *config) {
		if p != nil {
			c.observer = p
		}
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
