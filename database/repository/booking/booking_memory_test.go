package bookingRepo

import (
	"testing"
	"time"

	"chefly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, repo *MemoryBookingRepo, id string) *models.Booking {
	t.Helper()
	b := &models.Booking{
		ID:       id,
		ChefID:   "chef-1",
		ClientID: "client-1",
		Status:   models.StatusPending,
		Version:  1,
	}
	require.NoError(t, repo.Create(b))
	return b
}

func TestUpdateStatusBumpsVersion(t *testing.T) {
	repo := NewMemoryBookingRepo()
	seedBooking(t, repo, "b1")

	updated, err := repo.UpdateStatus("b1", models.StatusPending, models.StatusChefAccepted, 1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.StatusChefAccepted, updated.Status)
	assert.Equal(t, int64(2), updated.Version)
}

func TestUpdateStatusStaleVersion(t *testing.T) {
	repo := NewMemoryBookingRepo()
	seedBooking(t, repo, "b1")

	_, err := repo.UpdateStatus("b1", models.StatusPending, models.StatusChefAccepted, 1, time.Now())
	require.NoError(t, err)

	// A second writer still holding version 1 must lose.
	_, err = repo.UpdateStatus("b1", models.StatusPending, models.StatusChefDeclined, 1, time.Now())
	assert.ErrorIs(t, err, ErrStaleWrite)

	stored, err := repo.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusChefAccepted, stored.Status)
}

func TestUpdateStatusStaleStatus(t *testing.T) {
	repo := NewMemoryBookingRepo()
	seedBooking(t, repo, "b1")

	_, err := repo.UpdateStatus("b1", models.StatusConfirmed, models.StatusInProgress, 1, time.Now())
	assert.ErrorIs(t, err, ErrStaleWrite)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	repo := NewMemoryBookingRepo()
	_, err := repo.UpdateStatus("ghost", models.StatusPending, models.StatusChefAccepted, 1, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListingsSplitByParty(t *testing.T) {
	repo := NewMemoryBookingRepo()
	seedBooking(t, repo, "b1")
	require.NoError(t, repo.Create(&models.Booking{
		ID: "b2", ChefID: "chef-2", ClientID: "client-1",
		Status: models.StatusPending, Version: 1,
	}))

	byChef, err := repo.GetByChefID("chef-1")
	require.NoError(t, err)
	require.Len(t, byChef, 1)
	assert.Equal(t, "b1", byChef[0].ID)

	byClient, err := repo.GetByClientID("client-1")
	require.NoError(t, err)
	assert.Len(t, byClient, 2)
}

func TestNotesAndReview(t *testing.T) {
	repo := NewMemoryBookingRepo()
	seedBooking(t, repo, "b1")

	require.NoError(t, repo.AppendNote("b1", "bring extra plates", time.Now()))
	require.NoError(t, repo.AppendNote("b1", "gate code 4412", time.Now()))
	require.NoError(t, repo.SetReview("b1", models.Review{Rating: 5, Comment: "superb"}, time.Now()))
	assert.ErrorIs(t, repo.AppendNote("ghost", "x", time.Now()), ErrNotFound)

	stored, err := repo.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bring extra plates", "gate code 4412"}, stored.Notes)
	require.NotNil(t, stored.Review)
	assert.Equal(t, 5.0, stored.Review.Rating)
}
