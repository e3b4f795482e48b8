// Command structout recovers typed records from raw LLM response text.
// It reads the response from a file or stdin and prints the recovered
// records as JSON, exercising the same pipeline libraries use.
//
// Usage:
//
//	structout -kind feature < response.txt
//	structout -kind task -f response.txt -strict
//
// Environment is loaded from a .env file when present (STRUCTOUT_LOG_LEVEL
// controls log verbosity).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/draftloop/structout/core/recovery"
	"github.com/draftloop/structout/internal/utils"
	"github.com/draftloop/structout/providers/observability"
	"github.com/draftloop/structout/providers/observability/slogobs"
	"github.com/draftloop/structout/records"
)

func main() {
	var (
		kind    = flag.String("kind", "feature", "record kind to recover: feature, task, or section")
		file    = flag.String("f", "", "input file (defaults to stdin)")
		strict  = flag.Bool("strict", false, "treat total recovery failure as an error instead of an empty list")
		html    = flag.Bool("html", false, "convert HTML fragments in string fields to markdown")
		indent  = flag.Bool("indent", true, "pretty-print the output")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if err := run(context.Background(), *kind, *file, *strict, *html, *indent, *verbose); err != nil {
		if errors.Is(err, recovery.ErrNoData) {
			fmt.Fprintln(os.Stderr, "structout: no structured data found in input")
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "structout:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, kind, file string, strict, html, indent, verbose bool) error {
	raw, err := readInput(file)
	if err != nil {
		return err
	}

	obsOpts := []slogobs.Option{}
	if verbose {
		obsOpts = append(obsOpts, slogobs.WithLevel(slog.LevelDebug))
	}
	observer := slogobs.New(obsOpts...)

	opts := []records.Option{records.WithObserver(observer)}
	if strict {
		opts = append(opts, records.WithStrict())
	}
	if html {
		opts = append(opts, records.WithHTMLToMarkdown())
	}

	var result any
	switch kind {
	case "feature", "features":
		result, err = records.Features(ctx, raw, opts...)
	case "task", "tasks":
		result, err = records.Tasks(ctx, raw, opts...)
	case "section", "sections":
		result, err = records.Sections(ctx, raw, opts...)
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}
	if err != nil {
		var noData *recovery.NoDataError
		if errors.As(err, &noData) {
			for _, attempt := range noData.Attempts {
				observer.Debug(ctx, "Strategy attempted",
					observability.Int(observability.AttrRecoverStrategy, attempt.Strategy),
					observability.String(observability.AttrRecoverStrategyName, attempt.Name),
					observability.String("input", utils.TruncateStringDefault(attempt.Input)),
				)
			}
		}
		return err
	}

	fmt.Println(utils.JSONToString(result, indent))
	return nil
}

func readInput(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}
