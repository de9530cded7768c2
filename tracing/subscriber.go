package tracing

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidewayslabs/sideways/errors"
)

// Metadata describes a span or event at filter-decision time.
type Metadata struct {
	// Name is the span name or event message.
	Name string
	// Target identifies the module or instrumentation source.
	Target string
	// Level is the record's severity.
	Level zerolog.Level
}

// SpanState is per-sink state carried from SpanStart to SpanEnd.
type SpanState interface{}

// Sink is one layer of the subscriber: a destination plus its own
// admission predicate. Every span and event is offered to every sink;
// a sink only receives what Accepts admits.
type Sink interface {
	Accepts(md Metadata) bool
	SpanStart(ctx context.Context, md Metadata) (context.Context, SpanState)
	SpanEnd(st SpanState, md Metadata, duration time.Duration, err error)
	Event(ctx context.Context, md Metadata, msg string, fields map[string]interface{})
}

// Subscriber dispatches spans and events to an ordered list of sinks.
type Subscriber struct {
	sinks []Sink
}

// NewSubscriber composes sinks into a subscriber. Sinks are evaluated in
// the given order for every span and event.
func NewSubscriber(sinks ...Sink) *Subscriber {
	return &Subscriber{sinks: sinks}
}

// global is the ambient subscriber: written once by an initializer,
// read by every later span or event for the rest of process life.
var global atomic.Pointer[Subscriber]

// install publishes s as the global subscriber. Installing twice in one
// process is an unrecoverable configuration error; the first subscriber
// stays active.
func install(s *Subscriber) error {
	if !global.CompareAndSwap(nil, s) {
		return errors.New(errors.ErrCodeSubscriberInstalled, "a global subscriber is already installed")
	}
	return nil
}

// Installed reports whether a global subscriber has been installed.
func Installed() bool {
	return global.Load() != nil
}

// Span is an in-flight timed unit of work dispatched to admitted sinks.
type Span struct {
	md     Metadata
	start  time.Time
	err    error
	states []spanSinkState
}

type spanSinkState struct {
	sink  Sink
	state SpanState
}

// SpanOption customizes span metadata at start.
type SpanOption func(*Metadata)

// WithTarget sets the span's source-target identifier.
func WithTarget(target string) SpanOption {
	return func(md *Metadata) { md.Target = target }
}

// WithLevel sets the span's severity. Defaults to info.
func WithLevel(level zerolog.Level) SpanOption {
	return func(md *Metadata) { md.Level = level }
}

// Start begins a span on the global subscriber. If no subscriber is
// installed the span is a no-op.
func Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, *Span) {
	md := Metadata{Name: name, Level: zerolog.InfoLevel}
	for _, opt := range opts {
		opt(&md)
	}

	span := &Span{md: md, start: time.Now()}
	sub := global.Load()
	if sub == nil {
		return ctx, span
	}

	for _, sink := range sub.sinks {
		if !sink.Accepts(md) {
			continue
		}
		var st SpanState
		ctx, st = sink.SpanStart(ctx, md)
		span.states = append(span.states, spanSinkState{sink: sink, state: st})
	}
	return ctx, span
}

// RecordError attaches an error to the span, reported to sinks at End.
func (s *Span) RecordError(err error) {
	s.err = err
}

// End completes the span and notifies every sink that admitted it.
func (s *Span) End() {
	duration := time.Since(s.start)
	for _, ss := range s.states {
		ss.sink.SpanEnd(ss.state, s.md, duration, s.err)
	}
	s.states = nil
}

// Event records a point-in-time event on the global subscriber.
func Event(ctx context.Context, level zerolog.Level, target, msg string, fields ...map[string]interface{}) {
	sub := global.Load()
	if sub == nil {
		return
	}

	md := Metadata{Name: msg, Target: target, Level: level}
	var merged map[string]interface{}
	if len(fields) > 0 {
		merged = make(map[string]interface{})
		for _, fm := range fields {
			for k, v := range fm {
				merged[k] = v
			}
		}
	}
	for _, sink := range sub.sinks {
		if sink.Accepts(md) {
			sink.Event(ctx, md, msg, merged)
		}
	}
}
