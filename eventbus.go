package eosim

import "fmt"

// DeliveryMode selects how a subscriber receives a published event.
type DeliveryMode int

const (
	// Observer handlers run synchronously, inside Publish, in
	// subscription order, before Publish returns.
	Observer DeliveryMode = iota

	// Queued handlers are appended to the immediate-callback queue as
	// a closure capturing the payload at publication time; they run in
	// publish order, interleaved with any other immediates, before the
	// next plan fires.
	Queued
)

func (m DeliveryMode) String() string {
	switch m {
	case Observer:
		return "observer"
	case Queued:
		return "queued"
	default:
		return "unknown"
	}
}

// Handler receives a context and an event payload of type E.
type Handler[E any] func(ctx *Context, payload E)

// EventBusStats is the read-only introspection snapshot for one event
// type's subscriber list.
type EventBusStats struct {
	Observers int
	Queued    int
}

// subscription is the type-erased record the bus keeps per
// subscriber; Subscribe[E] captures a closure that recovers the static
// type on dispatch, so the bus itself never needs reflection.
type subscription struct {
	mode     DeliveryMode
	dispatch func(ctx *Context, payload any)
}

// eventBus is a per-event-type registry of handlers, keyed by a
// caller-supplied tag string; each subscriber's dispatch closure
// recovers its own statically typed payload, so the bus itself never
// handles anything but interface{}.
type eventBus struct {
	subs          map[string][]*subscription
	reentryDepth  map[string]int
	reentryWarned map[string]bool
	logger        Logger
}

func newEventBus(logger Logger) *eventBus {
	return &eventBus{
		subs:          make(map[string][]*subscription),
		reentryDepth:  make(map[string]int),
		reentryWarned: make(map[string]bool),
		logger:        logger,
	}
}

// reentryWarnThreshold is the recursion depth at which a re-entrant
// publish of the same event type logs a diagnostic Warn. It is not an
// enforcement mechanism: publish never refuses to recurse further.
const reentryWarnThreshold = 64

// Subscribe registers handler for event type tag under mode. Tag is a
// caller-chosen string identifying the event type; callers must use
// the same tag consistently for a given payload type E, analogous to
// how data container tags must stay paired with one type.
func Subscribe[E any](ctx *Context, tag string, mode DeliveryMode, handler Handler[E]) {
	sub := &subscription{
		mode: mode,
		dispatch: func(c *Context, payload any) {
			p, ok := payload.(E)
			if !ok {
				panic((&EventError{EventType: tag, Err: ErrDataContainerTypeMismatch}).Error())
			}
			handler(c, p)
		},
	}
	ctx.bus.subs[tag] = append(ctx.bus.subs[tag], sub)
}

// Publish delivers payload to every subscriber of tag, in subscription
// order. Observer subscribers are invoked synchronously before
// Publish returns; Queued subscribers are appended to the immediate
// queue as closures that will see exactly this payload when they run,
// regardless of any state mutation that happens afterward.
func Publish[E any](ctx *Context, tag string, payload E) {
	bus := ctx.bus
	subs := bus.subs[tag]

	bus.reentryDepth[tag]++
	depth := bus.reentryDepth[tag]
	if depth == reentryWarnThreshold && !bus.reentryWarned[tag] {
		bus.reentryWarned[tag] = true
		bus.logger.Warn("re-entrant publish depth threshold crossed", "event_type", tag, "depth", depth)
	}
	defer func() { bus.reentryDepth[tag]-- }()

	for _, sub := range subs {
		switch sub.mode {
		case Observer:
			sub.dispatch(ctx, payload)
		case Queued:
			s := sub
			p := payload
			ctx.immediates.enqueue(func(c *Context) {
				s.dispatch(c, p)
			})
		default:
			panic(fmt.Sprintf("eosim: unknown delivery mode %v", sub.mode))
		}
	}
}

// SubscriberCounts reports, per event-type tag, how many Observer and
// Queued subscribers are registered. Additive introspection accessor.
func (b *eventBus) SubscriberCounts() map[string]EventBusStats {
	out := make(map[string]EventBusStats, len(b.subs))
	for tag, subs := range b.subs {
		var stats EventBusStats
		for _, s := range subs {
			switch s.mode {
			case Observer:
				stats.Observers++
			case Queued:
				stats.Queued++
			}
		}
		out[tag] = stats
	}
	return out
}
