package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	chefRepo "chefly/database/repository/chef"
	"chefly/models"
	"chefly/utils"

	"go.uber.org/zap"
)

// GetEarnings recomputes the chef's earnings snapshot from the booking
// history. The store is authoritative; the snapshot is derived on every call.
func (s *DefaultBookingService) GetEarnings(chefID string) (*models.Earnings, error) {
	if _, err := s.ChefRepo.GetByID(chefID); err != nil {
		if errors.Is(err, chefRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "chef", ID: chefID}
		}
		return nil, fmt.Errorf("failed to load chef: %w", err)
	}
	bookings, err := s.BookingRepo.GetByChefID(chefID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for chef %s: %w", chefID, err)
	}
	earnings := ComputeEarnings(chefID, bookings, time.Now())
	s.cacheEarnings(&earnings)
	return &earnings, nil
}

// refreshChefAggregates recomputes earnings after a completing transition and
// writes the chef's derived rating and completed-booking count back.
func (s *DefaultBookingService) refreshChefAggregates(chefID string) error {
	chef, err := s.ChefRepo.GetByID(chefID)
	if err != nil {
		return fmt.Errorf("failed to load chef %s: %w", chefID, err)
	}
	bookings, err := s.BookingRepo.GetByChefID(chefID)
	if err != nil {
		return fmt.Errorf("failed to load bookings for chef %s: %w", chefID, err)
	}

	earnings := ComputeEarnings(chefID, bookings, time.Now())

	rating := chef.Rating
	if earnings.AverageRating > 0 {
		rating = earnings.AverageRating
	}
	if err := s.ChefRepo.UpdateStats(chefID, rating, earnings.CompletedBookings); err != nil {
		return fmt.Errorf("failed to update chef stats: %w", err)
	}

	s.cacheEarnings(&earnings)
	return nil
}

// cacheEarnings stores the snapshot for dashboard reads. Cache failures are
// logged and ignored; the snapshot is always recomputable.
func (s *DefaultBookingService) cacheEarnings(earnings *models.Earnings) {
	if s.CacheClient == nil {
		return
	}
	data, err := json.Marshal(earnings)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.CacheClient.Set(ctx, "earnings:"+earnings.ChefID, data, 24*time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache earnings snapshot",
			zap.String("chefId", earnings.ChefID), zap.Error(err))
	}
}

// ComputeEarnings derives the earnings snapshot from the chef's bookings.
// It is pure and idempotent: the same booking set and clock always produce
// the same snapshot, and nothing is mutated.
func ComputeEarnings(chefID string, bookings []models.Booking, now time.Time) models.Earnings {
	earnings := models.Earnings{ChefID: chefID, ComputedAt: now}

	nowYear, nowWeek := now.ISOWeek()

	type serviceTally struct {
		count int
		total float64
	}
	perService := make(map[string]serviceTally)

	var ratingSum float64
	var ratingCount int

	for _, b := range bookings {
		switch b.Status {
		case models.StatusChefAccepted, models.StatusConfirmed, models.StatusInProgress:
			earnings.PendingPayouts += b.TotalPrice
			continue
		case models.StatusCompleted:
		default:
			continue
		}

		earnings.CompletedBookings++
		earnings.TotalEarnings += b.TotalPrice

		if scheduled, err := time.Parse("2006-01-02", b.Date); err == nil {
			if scheduled.Year() == now.Year() && scheduled.Month() == now.Month() {
				earnings.ThisMonth += b.TotalPrice
			}
			if y, w := scheduled.ISOWeek(); y == nowYear && w == nowWeek {
				earnings.ThisWeek += b.TotalPrice
			}
		}

		tally := perService[b.ServiceName]
		tally.count++
		tally.total += b.TotalPrice
		perService[b.ServiceName] = tally

		if b.Review != nil {
			ratingSum += b.Review.Rating
			ratingCount++
		}
	}

	if ratingCount > 0 {
		earnings.AverageRating = ratingSum / float64(ratingCount)
	}

	// Top service: highest completed count, ties broken by total price
	// generated, then alphabetically for determinism.
	var topName string
	var top serviceTally
	for name, tally := range perService {
		switch {
		case tally.count > top.count:
		case tally.count == top.count && tally.total > top.total:
		case tally.count == top.count && tally.total == top.total && (topName == "" || name < topName):
		default:
			continue
		}
		topName, top = name, tally
	}
	earnings.TopService = topName

	return earnings
}
