package eventlog

import (
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/jasonasher/eosim"
)

// BufferSink is an in-memory eosim.MirrorSink, primarily useful for
// tests and for a process that wants to inspect recent kernel activity
// without standing up an external collector.
type BufferSink struct {
	mu     sync.Mutex
	events []cloudevents.Event
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) Receive(evt cloudevents.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
}

// Events returns a copy of everything received so far, in receipt
// order.
func (b *BufferSink) Events() []cloudevents.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]cloudevents.Event, len(b.events))
	copy(out, b.events)
	return out
}

var _ eosim.MirrorSink = (*BufferSink)(nil)
