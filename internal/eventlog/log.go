// Package eventlog records the append-only stream of pipeline events and
// mirrors each one to the structured logger.
package eventlog

import (
	"maps"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Log is an append-only sequence of events.
type Log struct {
	mu     sync.RWMutex
	events []model.Event
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithLogger mirrors events to logger instead of the global zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// New creates an empty event log.
func New(opts ...Option) *Log {
	l := &Log{
		logger: zap.L(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record appends an event. data may be nil.
func (l *Log) Record(agent string, eventType model.EventType, message string, data map[string]any) {
	ev := model.Event{
		Timestamp: l.now(),
		Agent:     agent,
		EventType: eventType,
		Message:   message,
		Data:      cloneData(data),
	}

	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()

	l.mirror(ev)
}

// Events returns a snapshot of every recorded event in order.
func (l *Log) Events() []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Event, len(l.events))
	for i, ev := range l.events {
		ev.Data = cloneData(ev.Data)
		out[i] = ev
	}
	return out
}

func (l *Log) mirror(ev model.Event) {
	fields := make([]zap.Field, 0, len(ev.Data)+2)
	fields = append(fields,
		zap.String("agent", ev.Agent),
		zap.String("event_type", string(ev.EventType)),
	)
	for k, v := range ev.Data {
		fields = append(fields, zap.Any(k, v))
	}

	switch ev.EventType {
	case model.EventError:
		l.logger.Error(ev.Message, fields...)
	case model.EventWarning:
		l.logger.Warn(ev.Message, fields...)
	case model.EventProcessing:
		l.logger.Debug(ev.Message, fields...)
	default:
		l.logger.Info(ev.Message, fields...)
	}
}

// cloneData deep-copies event data so neither the recorder nor a reader of a
// snapshot shares mutable state with the log. A nil map becomes empty.
func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneData(t)
	case map[string]string:
		return maps.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}
