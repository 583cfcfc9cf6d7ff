// Package bus carries panel-originated notifications to the runtime loop.
//
// A bus has many senders and exactly one receiver. Sends never block:
// when the receiver has been closed, or the buffer is full, the event is
// dropped and counted. The receiver drains without blocking, in emission
// order.
package bus

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"tiledash/internal/keys"
)

// DefaultCapacity is the number of undrained events a bus buffers before
// sends start dropping.
const DefaultCapacity = 1024

// Kind tags the variant held by an Event.
type Kind int

const (
	KindNotification Kind = iota // panel status text
	KindKeyObserved              // echo of a dispatched key
)

func (k Kind) String() string {
	switch k {
	case KindNotification:
		return "notification"
	case KindKeyObserved:
		return "key"
	default:
		return "unknown"
	}
}

// Event is a single bus message. Construct with Notification or KeyObserved.
type Event struct {
	Kind   Kind
	Source string     // emitting panel ID, empty for runtime echoes
	Text   string     // KindNotification only
	Key    keys.Event // KindKeyObserved only
	At     time.Time  // stamped by Send when zero
}

// Notification returns a status message from the panel named source.
func Notification(source, text string) Event {
	return Event{Kind: KindNotification, Source: source, Text: text}
}

// KeyObserved returns a diagnostic echo of a dispatched key.
func KeyObserved(k keys.Event) Event {
	return Event{Kind: KindKeyObserved, Key: k}
}

func (e Event) String() string {
	switch e.Kind {
	case KindNotification:
		return e.Text
	case KindKeyObserved:
		return fmt.Sprintf("key %q", e.Key.String())
	default:
		return "unknown event"
	}
}

type options struct {
	capacity int
}

// Option configures New.
type Option func(*options)

// WithCapacity sets the buffer size. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

type queue struct {
	ch      chan Event
	closed  chan struct{}
	once    sync.Once
	dropped atomic.Int64
}

// Sender is the producer side of a bus. One *Sender may be shared by any
// number of panels.
type Sender struct {
	q *queue
}

// Receiver is the single consumer side of a bus.
type Receiver struct {
	q *queue
}

// New creates a bus and returns its two ends.
func New(opts ...Option) (*Sender, *Receiver) {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	q := &queue{
		ch:     make(chan Event, o.capacity),
		closed: make(chan struct{}),
	}
	return &Sender{q: q}, &Receiver{q: q}
}

// Send enqueues ev without blocking. It reports false when the event was
// dropped because the receiver is closed or the buffer is full. A nil
// Sender drops everything.
func (s *Sender) Send(ev Event) bool {
	if s == nil || s.q == nil {
		return false
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case <-s.q.closed:
		s.q.dropped.Add(1)
		return false
	default:
	}
	select {
	case s.q.ch <- ev:
		return true
	default:
		s.q.dropped.Add(1)
		return false
	}
}

// Drain returns every event queued at the time of the call, oldest first.
// It never blocks and returns nil when the bus is empty.
func (r *Receiver) Drain() []Event {
	var out []Event
	for {
		select {
		case ev := <-r.q.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Len returns the number of events waiting to be drained.
func (r *Receiver) Len() int {
	return len(r.q.ch)
}

// Dropped returns how many sends were discarded so far.
func (r *Receiver) Dropped() int64 {
	return r.q.dropped.Load()
}

// Close tears down the receiver; later sends are dropped. Safe to call
// more than once.
func (r *Receiver) Close() {
	r.q.once.Do(func() { close(r.q.closed) })
}
