package models

// Price range buckets over a chef's hourly rate. Boundaries are half-open:
// exactly 50 is mid-range, exactly 80 is premium.
const (
	PriceRangeAll      = "all"
	PriceRangeBudget   = "budget"    // rate < 50
	PriceRangeMidRange = "mid-range" // 50 <= rate < 80
	PriceRangePremium  = "premium"   // rate >= 80
)

// CriteriaAll is the wildcard literal for category, location and price range.
const CriteriaAll = "all"

// SearchCriteria narrows the chef collection. Every active criterion must
// match (conjunctive filter); criteria at their defaults are inactive.
type SearchCriteria struct {
	TextQuery       string `json:"textQuery"`
	ServiceCategory string `json:"serviceCategory"`
	Location        string `json:"location"`
	PriceRange      string `json:"priceRange"`
}

// DefaultSearchCriteria returns the no-filter identity criteria.
func DefaultSearchCriteria() SearchCriteria {
	return SearchCriteria{
		TextQuery:       "",
		ServiceCategory: CriteriaAll,
		Location:        CriteriaAll,
		PriceRange:      CriteriaAll,
	}
}
