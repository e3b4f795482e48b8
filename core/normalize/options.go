package normalize

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/draftloop/structout/providers/observability"
)

// Option is a functional option for configuring a [Normalizer].
type Option func(*Normalizer)

// WithObserver injects an observability provider for per-record debug
// events. When not set, [observability.Nop] is used.
func WithObserver(p observability.Provider) Option {
	return func(n *Normalizer) {
		if p != nil {
			n.observer = p
		}
	}
}

// WithHTMLToMarkdown converts HTML markup found in string and string-array
// values into markdown during coercion. Some providers return rich text
// fields as HTML fragments even when asked for plain text.
func WithHTMLToMarkdown() Option {
	return func(n *Normalizer) {
		n.htmlToMD = true
	}
}

// htmlToMarkdown converts an HTML fragment to markdown, returning the input
// unchanged when it contains no markup or the conversion fails.
func htmlToMarkdown(s string) string {
	if !looksLikeHTML(s) {
		return s
	}
	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	return markdown
}

// looksLikeHTML reports whether s contains at least one tag-shaped span.
// Plain prose with a lone '<' does not qualify.
func looksLikeHTML(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		for j := i + 1; j < len(s); j++ {
			c := s[j]
			if c == '>' {
				if j > i+1 {
					return true
				}
				break
			}
			if !isTagChar(c) {
				break
			}
		}
	}
	return false
}

func isTagChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' || c == '/' || c == ' ' || c == '=' ||
		c == '"' || c == '\'' || c == '-' || c == '_'
}
