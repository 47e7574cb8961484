// Package telemetry is an optional decorator around any level.Level
// value's arithmetic: Prometheus histograms and error counters, an
// OpenTelemetry span per call, and zerolog debug logging, all wired
// the way the teacher repo wires its own metrics and tracing
// dependencies. Nothing in the core ladder (level, base128, doubler,
// ladder, sign, strfmt) imports this package or knows it exists —
// callers opt in by wrapping their own Level values in Traced[T].
package telemetry

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/jlinton/DoubleInt-t/internal/logging"
	"github.com/jlinton/DoubleInt-t/level"
)

// Sink receives a single observation of one arithmetic call: which
// operation, at what bit width, how long it took, and whether it
// failed.
type Sink interface {
	ObserveOp(op string, width int, dur time.Duration, err error)
}

// PrometheusSink implements Sink with a duration histogram and an
// error counter, both labeled by operation and width.
type PrometheusSink struct {
	hist *prometheus.HistogramVec
	errs *prometheus.CounterVec
}

// NewPrometheusSink builds a PrometheusSink and registers its
// collectors with reg. Passing a nil reg is valid: the collectors are
// still created and usable, just unregistered.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bigint",
		Name:      "op_duration_seconds",
		Help:      "Duration of a single Level arithmetic call.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "width"})
	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigint",
		Name:      "op_errors_total",
		Help:      "Count of Level arithmetic calls that returned an error.",
	}, []string{"op", "width"})
	if reg != nil {
		reg.MustRegister(hist, errs)
	}
	return &PrometheusSink{hist: hist, errs: errs}
}

// ObserveOp records dur against the op+width histogram, and increments
// the error counter when err is non-nil.
func (s *PrometheusSink) ObserveOp(op string, width int, dur time.Duration, err error) {
	widthLabel := strconv.Itoa(width)
	s.hist.WithLabelValues(op, widthLabel).Observe(dur.Seconds())
	if err != nil {
		s.errs.WithLabelValues(op, widthLabel).Inc()
	}
}

// Traced wraps a level.Level[T] type's arithmetic with a tracer, an
// optional Sink, and an optional logger. The zero value is usable:
// a nil Sink or Logger simply means that kind of observation is
// skipped.
type Traced[T level.Level[T]] struct {
	Tracer trace.Tracer
	Sink   Sink
	Logger logging.Logger
}

// NewTraced builds a Traced[T] from its three collaborators.
func NewTraced[T level.Level[T]](tracer trace.Tracer, sink Sink, logger logging.Logger) Traced[T] {
	return Traced[T]{Tracer: tracer, Sink: sink, Logger: logger}
}

func (t Traced[T]) observe(op string, width int, dur time.Duration, err error) {
	if t.Sink != nil {
		t.Sink.ObserveOp(op, width, dur, err)
	}
	if t.Logger == nil {
		return
	}
	if err != nil {
		t.Logger.Error("bigint op failed", err, logging.String("op", op), logging.Int("width", width))
		return
	}
	t.Logger.Debug("bigint op", logging.String("op", op), logging.Int("width", width),
		logging.Float64("duration_ms", float64(dur.Microseconds())/1000))
}

func (t Traced[T]) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if t.Tracer == nil {
		return ctx, nil
	}
	return t.Tracer.Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

// Add wraps a.AddCarry(b, cin) in a "bigint.Add" span.
func (t Traced[T]) Add(ctx context.Context, a, b T, cin uint64) (sum T, cout uint64) {
	_, span := t.startSpan(ctx, "bigint.Add")
	start := time.Now()
	sum, cout = a.AddCarry(b, cin)
	t.observe("Add", a.Size(), time.Since(start), nil)
	endSpan(span, nil)
	return sum, cout
}

// Sub wraps a.SubBorrow(b, bin) in a "bigint.Sub" span.
func (t Traced[T]) Sub(ctx context.Context, a, b T, bin uint64) (diff T, bout uint64) {
	_, span := t.startSpan(ctx, "bigint.Sub")
	start := time.Now()
	diff, bout = a.SubBorrow(b, bin)
	t.observe("Sub", a.Size(), time.Since(start), nil)
	endSpan(span, nil)
	return diff, bout
}

// Mul wraps a.MulWide(b) in a "bigint.Mul" span.
func (t Traced[T]) Mul(ctx context.Context, a, b T) (lo, hi T) {
	_, span := t.startSpan(ctx, "bigint.Mul")
	start := time.Now()
	lo, hi = a.MulWide(b)
	t.observe("Mul", a.Size(), time.Since(start), nil)
	endSpan(span, nil)
	return lo, hi
}

// Div wraps a.DivMod(b) in a "bigint.Div" span, recording the error on
// the span and to the Sink/Logger when division fails.
func (t Traced[T]) Div(ctx context.Context, a, b T) (quo, rem T, err error) {
	_, span := t.startSpan(ctx, "bigint.Div")
	start := time.Now()
	quo, rem, err = a.DivMod(b)
	t.observe("Div", a.Size(), time.Since(start), err)
	endSpan(span, err)
	return quo, rem, err
}
