package models

import "time"

// ExperienceLevel classifies how a chef learned the trade.
type ExperienceLevel string

const (
	ExperienceHomeCook        ExperienceLevel = "home-cook"
	ExperienceProfessional    ExperienceLevel = "professional"
	ExperienceCulinaryTrained ExperienceLevel = "culinary-trained"
)

// ValidExperienceLevel reports whether the literal is one of the known levels.
func ValidExperienceLevel(s string) bool {
	switch ExperienceLevel(s) {
	case ExperienceHomeCook, ExperienceProfessional, ExperienceCulinaryTrained:
		return true
	}
	return false
}

// AvailabilityWindow is a weekly recurring window during which a chef takes
// bookings. Start and End are minutes from midnight.
type AvailabilityWindow struct {
	Day   string `bson:"day" json:"day"` // e.g. "monday"
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`
}

type Chef struct {
	ID            string               `bson:"id" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Bio           string               `bson:"bio" json:"bio,omitempty"`
	Specialties   []string             `bson:"specialties" json:"specialties,omitempty"`
	CuisineTypes  []string             `bson:"cuisineTypes" json:"cuisineTypes,omitempty"`
	Experience    ExperienceLevel      `bson:"experience" json:"experience"`
	Rating        float64              `bson:"rating" json:"rating"`               // 0..5
	TotalBookings int                  `bson:"totalBookings" json:"totalBookings"` // count of completed bookings
	Verified      bool                 `bson:"verified" json:"verified"`
	HourlyRate    float64              `bson:"hourlyRate" json:"hourlyRate"`
	Location      string               `bson:"location" json:"location"`
	Availability  []AvailabilityWindow `bson:"availability" json:"availability,omitempty"`
	Services      []Service            `bson:"services" json:"services,omitempty"`
	Portfolio     []string             `bson:"portfolio" json:"portfolio,omitempty"` // image URLs
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ServiceByID returns the owned service with the given ID, if any.
func (c *Chef) ServiceByID(serviceID string) *Service {
	for i := range c.Services {
		if c.Services[i].ID == serviceID {
			return &c.Services[i]
		}
	}
	return nil
}
