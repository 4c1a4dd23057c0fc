package ledger

import (
	"errors"
	"time"
)

// ErrNilEventSinkSupplied is returned when WithEventSink is given a nil sink.
var ErrNilEventSinkSupplied = errors.New("nil event sink supplied")

// ErrNilClockSupplied is returned when WithClock is given a nil clock.
var ErrNilClockSupplied = errors.New("nil clock supplied")

// Clock supplies the occurred-at timestamp for emitted events.
type Clock = func() time.Time

// Option defines a functional option for configuring a Ledger.
type Option func(*Ledger) error

// WithEventSink sets the sink that receives the domain event emitted by each
// successful mutation. Without a sink, events are silently discarded; the
// ledger's invariants hold either way.
func WithEventSink(sink EventSink) Option {
	return func(l *Ledger) error {
		if sink == nil {
			return ErrNilEventSinkSupplied
		}

		l.eventSink = sink

		return nil
	}
}

// WithLogger sets the logger for the Ledger.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: per-operation outcomes with ids (development use)
// Warn level: non-critical issues like event sink publish failures
// Error level: none today; mutations fail by returning errors, not by logging.
func WithLogger(logger Logger) Option {
	return func(l *Ledger) error {
		l.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Ledger.
// The contextual logger will receive log messages with context information,
// enabling automatic trace/span correlation when tracing is configured.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(l *Ledger) error {
		l.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Ledger.
// The metrics collector will receive operation counters labeled by
// operation and outcome, plus sink publish failure counters.
func WithMetrics(collector MetricsCollector) Option {
	return func(l *Ledger) error {
		l.metricsCollector = collector
		return nil
	}
}

// WithClock sets the clock used to stamp emitted events, mainly for tests.
func WithClock(clock Clock) Option {
	return func(l *Ledger) error {
		if clock == nil {
			return ErrNilClockSupplied
		}

		l.clock = clock

		return nil
	}
}
