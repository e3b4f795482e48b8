package slogobs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/draftloop/structout/providers/observability"
)

func newTestObserver() (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	obs := New(WithOutput(&buf), WithLevel(slog.LevelDebug))
	return obs, &buf
}

func TestObserverLogging(t *testing.T) {
	tests := []struct {
		name string
		log  func(o *Observer, ctx context.Context)
		want []string
	}{
		{
			name: "info with attributes",
			log: func(o *Observer, ctx context.Context) {
				o.Info(ctx, "recovery done", observability.Int("recover.strategy", 3))
			},
			want: []string{"level=INFO", "recovery done", "recover.strategy=3"},
		},
		{
			name: "warn",
			log: func(o *Observer, ctx context.Context) {
				o.Warn(ctx, "salvaged partial array")
			},
			want: []string{"level=WARN", "salvaged partial array"},
		},
		{
			name: "error attribute helper",
			log: func(o *Observer, ctx context.Context) {
				o.Error(ctx, "recovery failed", observability.String("error", "no data"))
			},
			want: []string{"level=ERROR", "recovery failed", "error=\"no data\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, buf := newTestObserver()
			tt.log(obs, context.Background())
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("log output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestCounterAccumulates(t *testing.T) {
	obs, buf := newTestObserver()
	ctx := context.Background()

	c := obs.Counter("structout.recover.success.count")
	c.Add(ctx, 1)
	c.Add(ctx, 2)

	out := buf.String()
	if !strings.Contains(out, "total=3") {
		t.Errorf("expected cumulative total=3 in output, got %q", out)
	}
}

func TestCounterIdentity(t *testing.T) {
	obs, _ := newTestObserver()
	if obs.Counter("a") != obs.Counter("a") {
		t.Error("expected the same counter instance for the same name")
	}
}

func TestHistogramRecords(t *testing.T) {
	obs, buf := newTestObserver()
	ctx := context.Background()

	h := obs.Histogram("structout.recover.duration")
	h.Record(ctx, 12.5)

	out := buf.String()
	if !strings.Contains(out, "value=12.5") {
		t.Errorf("expected value=12.5 in output, got %q", out)
	}
}

func TestWithLoggerBypassesHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	obs := New(WithLogger(logger))

	obs.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON output from provided logger, got %q", buf.String())
	}
}
