package booking

import (
	"fmt"

	"chefly/models"
)

// ValidationError indicates malformed or constraint-violating input. The
// request is never partially applied.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NotFoundError indicates a referenced entity is absent.
type NotFoundError struct {
	Kind string // "chef", "service", "client", "booking"
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

// InvalidTransitionError indicates the event is not legal from the booking's
// current status. The entity is left unchanged.
type InvalidTransitionError struct {
	From  models.BookingStatus
	Event models.BookingEvent
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from status %q", e.Event, e.From)
}

// ForbiddenError indicates the actor role is not permitted for the event.
type ForbiddenError struct {
	Event models.BookingEvent
	Actor models.ActorRole
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("role %q may not perform %q", e.Actor, e.Event)
}

// ConflictError indicates a concurrent modification was detected on a status
// update; the caller should re-read and retry if appropriate.
type ConflictError struct {
	BookingID string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("booking %s was modified concurrently", e.BookingID)
}
