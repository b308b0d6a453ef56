package models

// ReminderPayload is queued when a booking is confirmed and fired shortly
// before the scheduled slot.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	ChefID    string `json:"chefId"`
	ClientID  string `json:"clientId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Date      string `json:"date"`
	Start     int    `json:"start"`
}
