package models

// ServiceCategory is the kind of engagement a chef offers.
type ServiceCategory string

const (
	CategoryMealPrep     ServiceCategory = "meal-prep"
	CategoryCookingClass ServiceCategory = "cooking-class"
	CategoryConsultation ServiceCategory = "consultation"
	CategoryPrivateChef  ServiceCategory = "private-chef"
)

// ValidServiceCategory reports whether the literal is one of the known categories.
func ValidServiceCategory(s string) bool {
	switch ServiceCategory(s) {
	case CategoryMealPrep, CategoryCookingClass, CategoryConsultation, CategoryPrivateChef:
		return true
	}
	return false
}

// Service is a priced, timed offering owned by exactly one chef. Services are
// embedded in their owning chef document, so deleting a chef removes them.
type Service struct {
	ID                string          `bson:"id" json:"id"`
	ChefID            string          `bson:"chefId" json:"chefId"`
	Name              string          `bson:"name" json:"name"`
	Category          ServiceCategory `bson:"category" json:"category"`
	Description       string          `bson:"description" json:"description,omitempty"`
	Duration          int             `bson:"duration" json:"duration"` // minutes
	Price             float64         `bson:"price" json:"price"`
	MaxGuests         int             `bson:"maxGuests,omitempty" json:"maxGuests,omitempty"` // 0 = no cap
	GroceriesIncluded bool            `bson:"groceriesIncluded" json:"groceriesIncluded"`
	Customizable      bool            `bson:"customizable" json:"customizable"`
}
