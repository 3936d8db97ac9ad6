// Package eventlog is an Observer-mode subscriber that renders a
// structured log line for each delivery of a given event type and,
// optionally, mirrors the delivery as a CloudEvents envelope onto a
// pluggable sink for out-of-process consumption. It never mutates
// simulation state; it is pure bookkeeping.
package eventlog

import (
	"github.com/jasonasher/eosim"
)

// Recorder attaches an Observer to one event type and forwards every
// delivery to a Logger and, if set, a MirrorSink. One Recorder
// instance handles one event type; attach several for several types.
type Recorder[E any] struct {
	tag    string
	source string
	logger eosim.Logger
	sink   eosim.MirrorSink
}

// NewRecorder builds a Recorder for event type tag. source identifies
// the publishing component in the rendered CloudEvents envelope's
// source field. logger must not be nil; sink may be nil to skip
// mirroring entirely.
func NewRecorder[E any](tag, source string, logger eosim.Logger, sink eosim.MirrorSink) *Recorder[E] {
	return &Recorder[E]{tag: tag, source: source, logger: logger, sink: sink}
}

// Attach subscribes the recorder to its event type as an Observer.
func (r *Recorder[E]) Attach(ctx *eosim.Context) {
	eosim.Subscribe(ctx, r.tag, eosim.Observer, r.onEvent)
}

func (r *Recorder[E]) onEvent(ctx *eosim.Context, payload E) {
	r.logger.Debug("event delivered", "event_type", r.tag, "time", ctx.Now(), "payload", payload)

	if r.sink == nil {
		return
	}
	evt, err := eosim.NewCloudEvent(r.tag, r.source, payload)
	if err != nil {
		r.logger.Error("event mirror render failed", "event_type", r.tag, "error", err)
		return
	}
	r.sink.Receive(evt)
}
