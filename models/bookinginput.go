package models

// BookingRequestInput holds the client's booking request details.
type BookingRequestInput struct {
	ChefID      string   `json:"chefId"`
	ClientID    string   `json:"clientId"`
	ServiceID   string   `json:"serviceId"`
	EventType   string   `json:"eventType"`
	Date        string   `json:"date"`  // "YYYY-MM-DD"
	Start       int      `json:"start"` // minutes from midnight
	Duration    int      `json:"duration"`
	Guests      int      `json:"guests"`
	Recipes     []string `json:"recipes"`
	GroceryMode string   `json:"groceryMode"`
}
