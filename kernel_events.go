package eosim

import (
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Kernel lifecycle event type tags, in reverse-domain notation. These
// are ordinary event tags usable with Subscribe/Publish like any
// caller-defined one; the kernel publishes them itself at well-known
// points in the run loop and the context façade so a component (or
// modules/eventlog) can observe overall progress without
// special-casing the loop.
const (
	EventKernelStarted = "com.eosim.kernel.started"
	EventKernelHalted  = "com.eosim.kernel.halted"
	EventPlanFired     = "com.eosim.plan.fired"
	EventPlanScheduled = "com.eosim.plan.scheduled"
	EventPlanCancelled = "com.eosim.plan.cancelled"
)

// PlanFiredPayload is delivered on EventPlanFired immediately before
// the plan's callback runs.
type PlanFiredPayload struct {
	PlanID PlanID
	Time   Time
}

// PlanScheduledPayload is delivered on EventPlanScheduled immediately
// after Schedule accepts a new plan.
type PlanScheduledPayload struct {
	PlanID PlanID
	Time   Time
}

// PlanCancelledPayload is delivered on EventPlanCancelled when Cancel
// removes a still-live plan. It is not delivered for a no-op cancel
// (unknown id, or an id that already fired or was already cancelled).
type PlanCancelledPayload struct {
	PlanID PlanID
}

// KernelHaltedPayload is delivered on EventKernelHalted once both
// queues are empty and the run loop is about to return.
type KernelHaltedPayload struct {
	Time Time
}

// MirrorSink receives a rendered CloudEvents envelope for every event
// delivery a mirroring observer is attached to. It is the integration
// point modules/eventlog uses to forward kernel activity out of
// process; the kernel itself never requires one.
type MirrorSink interface {
	Receive(evt cloudevents.Event)
}

// NewCloudEvent renders a kernel or domain event as a CloudEvents
// envelope: tag unchanged as the type, the given source, and payload
// as the envelope data. It does no delivery itself; a mirroring
// observer such as modules/eventlog's Recorder calls it during its own
// Observer delivery, which does not change the order of any other
// delivery.
func NewCloudEvent(tag, source string, payload any) (cloudevents.Event, error) {
	evt := cloudevents.NewEvent()
	evt.SetID(uuid.NewString())
	evt.SetType(tag)
	evt.SetSource(source)
	evt.SetTime(time.Now().UTC())
	if err := evt.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return cloudevents.Event{}, err
	}
	return evt, nil
}
