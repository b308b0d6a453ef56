package models

import "time"

// BookingStatus tracks a booking through its workflow. There is a single
// status set shared by requests and confirmed bookings.
type BookingStatus string

const (
	StatusPending      BookingStatus = "pending"
	StatusChefAccepted BookingStatus = "chef-accepted"
	StatusChefDeclined BookingStatus = "chef-declined"
	StatusConfirmed    BookingStatus = "confirmed"
	StatusInProgress   BookingStatus = "in-progress"
	StatusCompleted    BookingStatus = "completed"
	StatusCancelled    BookingStatus = "cancelled"
)

// Terminal reports whether the status accepts no further transitions.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusChefDeclined, StatusCancelled:
		return true
	}
	return false
}

// BookingEvent is a requested transition on a booking.
type BookingEvent string

const (
	EventAccept  BookingEvent = "accept"
	EventDecline BookingEvent = "decline"
	EventConfirm BookingEvent = "confirm"
	EventStart   BookingEvent = "start"
	EventFinish  BookingEvent = "finish"
	EventCancel  BookingEvent = "cancel"
)

// ActorRole identifies which side of a booking is acting.
type ActorRole string

const (
	RoleChef   ActorRole = "chef"
	RoleClient ActorRole = "client"
)

// GroceryMode states who sources the ingredients.
const (
	GroceryChefProvides   = "chef-provides"
	GroceryClientProvides = "client-provides"
)

// Review is a client's rating of a completed booking.
type Review struct {
	Rating  float64 `bson:"rating" json:"rating"` // 1..5
	Comment string  `bson:"comment" json:"comment,omitempty"`
}

// Booking is the transactional record between a client and a chef's service.
// Once completed or cancelled it is immutable except for append-only notes.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	ChefID      string        `bson:"chefId" json:"chefId"`
	ClientID    string        `bson:"clientId" json:"clientId"`
	ServiceID   string        `bson:"serviceId" json:"serviceId"`
	ServiceName string        `bson:"serviceName" json:"serviceName"` // denormalized at creation
	EventType   string        `bson:"eventType" json:"eventType,omitempty"`
	Date        string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start       int           `bson:"start" json:"start"`
	Duration    int           `bson:"duration" json:"duration"` // minutes
	Guests      int           `bson:"guests" json:"guests"`
	Recipes     []string      `bson:"recipes,omitempty" json:"recipes,omitempty"`
	GroceryMode string        `bson:"groceryMode" json:"groceryMode,omitempty"`
	TotalPrice  float64       `bson:"totalPrice" json:"totalPrice"`
	Status      BookingStatus `bson:"status" json:"status"`
	Notes       []string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Review      *Review       `bson:"review,omitempty" json:"review,omitempty"`
	Version     int64         `bson:"version" json:"-"` // optimistic concurrency stamp
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
