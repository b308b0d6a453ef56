package booking

import (
	"testing"
	"time"

	"chefly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// earningsClock is a fixed Wednesday so week and month windows are stable.
var earningsClock = time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)

func completedBooking(id, serviceName, date string, price float64) models.Booking {
	return models.Booking{
		ID:          id,
		ChefID:      "chef-1",
		ServiceName: serviceName,
		Date:        date,
		TotalPrice:  price,
		Status:      models.StatusCompleted,
	}
}

func TestComputeEarningsEmptyHistory(t *testing.T) {
	got := ComputeEarnings("chef-1", nil, earningsClock)
	assert.Equal(t, "chef-1", got.ChefID)
	assert.Zero(t, got.TotalEarnings)
	assert.Zero(t, got.CompletedBookings)
	assert.Zero(t, got.PendingPayouts)
	assert.Empty(t, got.TopService)
}

func TestComputeEarningsWindows(t *testing.T) {
	bookings := []models.Booking{
		completedBooking("b1", "Dinner Party", "2026-03-16", 100), // this ISO week
		completedBooking("b2", "Dinner Party", "2026-03-02", 80),  // this month, prior week
		completedBooking("b3", "Dinner Party", "2026-01-10", 60),  // this year only
		completedBooking("b4", "Dinner Party", "2025-12-29", 40),  // prior year
	}

	got := ComputeEarnings("chef-1", bookings, earningsClock)
	assert.Equal(t, 4, got.CompletedBookings)
	assert.Equal(t, 280.0, got.TotalEarnings)
	assert.Equal(t, 180.0, got.ThisMonth)
	assert.Equal(t, 100.0, got.ThisWeek)
}

func TestComputeEarningsPendingPayouts(t *testing.T) {
	mk := func(id string, status models.BookingStatus, price float64) models.Booking {
		return models.Booking{ID: id, ChefID: "chef-1", ServiceName: "x", Date: "2026-03-16", Status: status, TotalPrice: price}
	}
	bookings := []models.Booking{
		mk("b1", models.StatusPending, 10),
		mk("b2", models.StatusChefAccepted, 20),
		mk("b3", models.StatusConfirmed, 30),
		mk("b4", models.StatusInProgress, 40),
		mk("b5", models.StatusCompleted, 50),
		mk("b6", models.StatusCancelled, 60),
		mk("b7", models.StatusChefDeclined, 70),
	}

	got := ComputeEarnings("chef-1", bookings, earningsClock)
	// Only work the chef has committed to counts toward pending payouts;
	// unanswered requests and dead bookings contribute nothing.
	assert.Equal(t, 90.0, got.PendingPayouts)
	assert.Equal(t, 50.0, got.TotalEarnings)
	assert.Equal(t, 1, got.CompletedBookings)
}

func TestComputeEarningsTopService(t *testing.T) {
	t.Run("highest count wins", func(t *testing.T) {
		bookings := []models.Booking{
			completedBooking("b1", "Meal Prep", "2026-03-16", 10),
			completedBooking("b2", "Meal Prep", "2026-03-16", 10),
			completedBooking("b3", "Dinner Party", "2026-03-16", 500),
		}
		got := ComputeEarnings("chef-1", bookings, earningsClock)
		assert.Equal(t, "Meal Prep", got.TopService)
	})

	t.Run("count tie broken by revenue", func(t *testing.T) {
		bookings := []models.Booking{
			completedBooking("b1", "Meal Prep", "2026-03-16", 10),
			completedBooking("b2", "Dinner Party", "2026-03-16", 500),
		}
		got := ComputeEarnings("chef-1", bookings, earningsClock)
		assert.Equal(t, "Dinner Party", got.TopService)
	})

	t.Run("full tie broken alphabetically", func(t *testing.T) {
		bookings := []models.Booking{
			completedBooking("b1", "Zesty Tasting", "2026-03-16", 100),
			completedBooking("b2", "Apple Workshop", "2026-03-16", 100),
		}
		got := ComputeEarnings("chef-1", bookings, earningsClock)
		assert.Equal(t, "Apple Workshop", got.TopService)
	})
}

func TestComputeEarningsAverageRating(t *testing.T) {
	rated := func(id string, rating float64) models.Booking {
		b := completedBooking(id, "Dinner Party", "2026-03-16", 100)
		b.Review = &models.Review{Rating: rating}
		return b
	}
	bookings := []models.Booking{
		rated("b1", 5),
		rated("b2", 4),
		completedBooking("b3", "Dinner Party", "2026-03-16", 100), // unreviewed
	}

	got := ComputeEarnings("chef-1", bookings, earningsClock)
	assert.Equal(t, 4.5, got.AverageRating)
}

func TestComputeEarningsIsIdempotent(t *testing.T) {
	bookings := []models.Booking{
		completedBooking("b1", "Dinner Party", "2026-03-16", 100),
		completedBooking("b2", "Meal Prep", "2026-03-02", 80),
		{ID: "b3", ChefID: "chef-1", ServiceName: "x", Date: "2026-03-16", Status: models.StatusConfirmed, TotalPrice: 30},
	}

	first := ComputeEarnings("chef-1", bookings, earningsClock)
	second := ComputeEarnings("chef-1", bookings, earningsClock)
	assert.Equal(t, first, second)
}

func TestGetEarningsUnknownChef(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.GetEarnings("ghost")
	assert.IsType(t, NotFoundError{}, err)
}

func TestGetEarningsMatchesStoredHistory(t *testing.T) {
	svc, chef, _ := newTestService(t)
	seedBookingAt(t, svc, "e1", models.StatusCompleted)
	seedBookingAt(t, svc, "e2", models.StatusConfirmed)

	got, err := svc.GetEarnings(chef.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedBookings)
	assert.Equal(t, 120.0, got.TotalEarnings)
	assert.Equal(t, 120.0, got.PendingPayouts)
	assert.Equal(t, "Dinner Party", got.TopService)
}
