package eosim

import (
	"errors"
	"fmt"
)

// Kernel errors, one per invariant named in the contract between the
// context façade and its callers. These are fatal to the callback that
// triggers them and, by convention, to the simulation: callbacks are
// not expected to recover from kernel contract violations.
var (
	// ErrTimeWentBackward is returned when a caller attempts to schedule
	// a plan at a time strictly earlier than the clock's current time.
	ErrTimeWentBackward = errors.New("eosim: time went backward")

	// ErrDataContainerTypeMismatch marks a tag reused with a value type
	// different from the one it was first initialized with. It is not
	// returned: GetOrInit and Get panic with the message of a
	// ContainerError wrapping it, and a subscriber whose payload type
	// does not match a published payload panics with the message of an
	// EventError wrapping it.
	ErrDataContainerTypeMismatch = errors.New("eosim: data container type mismatch")
)

// PlanError wraps a kernel error with the plan id and scheduled time
// that triggered it, so a diagnostic can point at the offending call
// site. errors.Is/errors.As continue to work through Unwrap.
type PlanError struct {
	PlanID PlanID
	Time   Time
	Err    error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("eosim: plan %s at t=%v: %v", e.PlanID, e.Time, e.Err)
}

func (e *PlanError) Unwrap() error { return e.Err }

// ContainerError wraps a kernel error with the tag name that triggered
// it.
type ContainerError struct {
	Tag string
	Err error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("eosim: container %q: %v", e.Tag, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// EventError wraps a kernel error with the event type tag that
// triggered it.
type EventError struct {
	EventType string
	Err       error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("eosim: event %q: %v", e.EventType, e.Err)
}

func (e *EventError) Unwrap() error { return e.Err }
