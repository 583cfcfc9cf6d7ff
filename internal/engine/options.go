package engine

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"tiledash/internal/bus"
)

type options struct {
	interval   time.Duration
	rows, cols int
	clock      Clock
	logger     *slog.Logger
	tracer     trace.Tracer
	onEvent    func(bus.Event)
	busOpts    []bus.Option
}

func defaultOptions() options {
	return options{
		interval: DefaultInterval,
		rows:     2,
		cols:     2,
		clock:    time.Now,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   noop.NewTracerProvider().Tracer("tiledash/engine"),
	}
}

// Option configures a Loop.
type Option func(*options)

// WithInterval sets the tick cadence. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithGrid sets the layout to rows × cols cells. Non-positive values are
// ignored.
func WithGrid(rows, cols int) Option {
	return func(o *options) {
		if rows > 0 && cols > 0 {
			o.rows, o.cols = rows, cols
		}
	}
}

// WithClock replaces time.Now for tick scheduling.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger that receives drained bus events and
// lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer sets the tracer used for per-tick spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithEventHandler registers fn to receive every drained bus event, in
// order, after it has been logged.
func WithEventHandler(fn func(bus.Event)) Option {
	return func(o *options) {
		o.onEvent = fn
	}
}

// WithBusOptions configures the loop's notification bus.
func WithBusOptions(opts ...bus.Option) Option {
	return func(o *options) {
		o.busOpts = append(o.busOpts, opts...)
	}
}
