package models

import "time"

// Earnings is a derived snapshot over a chef's booking history. It is
// recomputed, never edited directly.
type Earnings struct {
	ChefID            string    `bson:"chefId" json:"chefId"`
	TotalEarnings     float64   `bson:"totalEarnings" json:"totalEarnings"`
	ThisMonth         float64   `bson:"thisMonth" json:"thisMonth"`
	ThisWeek          float64   `bson:"thisWeek" json:"thisWeek"`
	CompletedBookings int       `bson:"completedBookings" json:"completedBookings"`
	PendingPayouts    float64   `bson:"pendingPayouts" json:"pendingPayouts"`
	AverageRating     float64   `bson:"averageRating" json:"averageRating"`
	TopService        string    `bson:"topService" json:"topService,omitempty"`
	ComputedAt        time.Time `bson:"computedAt" json:"computedAt"`
}
