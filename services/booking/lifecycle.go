package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "chefly/database/repository/booking"
	"chefly/models"
	"chefly/services/tasks"
	"chefly/utils"

	"go.uber.org/zap"
)

// transitionRule captures one legal (status, event) edge: where it leads and
// which roles may trigger it.
type transitionRule struct {
	to     models.BookingStatus
	actors []models.ActorRole
}

var (
	chefOnly   = []models.ActorRole{models.RoleChef}
	eitherSide = []models.ActorRole{models.RoleChef, models.RoleClient}
)

// transitionTable is the complete booking workflow. Anything absent here is
// an invalid transition; terminal statuses have no entries at all.
var transitionTable = map[models.BookingStatus]map[models.BookingEvent]transitionRule{
	models.StatusPending: {
		models.EventAccept:  {to: models.StatusChefAccepted, actors: chefOnly},
		models.EventDecline: {to: models.StatusChefDeclined, actors: chefOnly},
		models.EventCancel:  {to: models.StatusCancelled, actors: eitherSide},
	},
	models.StatusChefAccepted: {
		models.EventConfirm: {to: models.StatusConfirmed, actors: eitherSide},
		models.EventCancel:  {to: models.StatusCancelled, actors: eitherSide},
	},
	models.StatusConfirmed: {
		models.EventStart:  {to: models.StatusInProgress, actors: chefOnly},
		models.EventCancel: {to: models.StatusCancelled, actors: eitherSide},
	},
	models.StatusInProgress: {
		models.EventFinish: {to: models.StatusCompleted, actors: chefOnly},
	},
}

func roleAllowed(actors []models.ActorRole, actor models.ActorRole) bool {
	for _, a := range actors {
		if a == actor {
			return true
		}
	}
	return false
}

// Transition applies the event to the booking on behalf of the actor.
// Concurrent transitions on the same booking are serialized; a lost race at
// the store surfaces as a ConflictError. Entry into the completed status
// recomputes the chef's earnings and stats before returning.
func (s *DefaultBookingService) Transition(bookingID string, event models.BookingEvent, actor models.ActorRole) (*models.Booking, error) {
	mu := s.lockFor(bookingID)
	mu.Lock()
	defer mu.Unlock()

	current, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	rules, ok := transitionTable[current.Status]
	if !ok {
		return nil, InvalidTransitionError{From: current.Status, Event: event}
	}
	rule, ok := rules[event]
	if !ok {
		return nil, InvalidTransitionError{From: current.Status, Event: event}
	}
	if !roleAllowed(rule.actors, actor) {
		return nil, ForbiddenError{Event: event, Actor: actor}
	}

	updated, err := s.BookingRepo.UpdateStatus(bookingID, current.Status, rule.to, current.Version, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStaleWrite):
			return nil, ConflictError{BookingID: bookingID}
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, NotFoundError{Kind: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to persist transition: %w", err)
	}

	logger := utils.GetLogger()
	logger.Info("booking transitioned",
		zap.String("bookingId", bookingID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(rule.to)),
		zap.String("actor", string(actor)))

	// The earnings view must reflect a completing transition before the call
	// returns; there is no eventual-consistency window here.
	if rule.to == models.StatusCompleted || current.Status == models.StatusCompleted {
		if err := s.refreshChefAggregates(updated.ChefID); err != nil {
			return nil, fmt.Errorf("transition applied but aggregate refresh failed: %w", err)
		}
	}

	if rule.to == models.StatusConfirmed {
		s.scheduleReminder(updated)
	}

	return updated, nil
}

// scheduleReminder enqueues a reminder task ahead of the slot. Best effort:
// a queue failure never fails the transition.
func (s *DefaultBookingService) scheduleReminder(booking *models.Booking) {
	if s.TaskQueue == nil {
		return
	}
	logger := utils.GetLogger()

	scheduled, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		logger.Warn("cannot schedule reminder, bad booking date",
			zap.String("bookingId", booking.ID), zap.String("date", booking.Date))
		return
	}
	slotTime := scheduled.Add(time.Duration(booking.Start) * time.Minute)

	lead := s.ReminderLeadMinutes
	if lead <= 0 {
		lead = 120
	}
	fireAt := slotTime.Add(-time.Duration(lead) * time.Minute)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		ChefID:    booking.ChefID,
		ClientID:  booking.ClientID,
		Title:     "Upcoming booking",
		Body:      fmt.Sprintf("Your %s booking is coming up.", booking.ServiceName),
		Date:      booking.Date,
		Start:     booking.Start,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.TaskQueue.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
