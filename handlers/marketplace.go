package handlers

import (
	"net/http"

	"chefly/models"
	bookingSvc "chefly/services/booking"

	"github.com/gin-gonic/gin"
)

// MarketplaceHandler exposes chef search.
type MarketplaceHandler struct {
	Matching bookingSvc.MatchingService
}

func NewMarketplaceHandler(matching bookingSvc.MatchingService) *MarketplaceHandler {
	return &MarketplaceHandler{Matching: matching}
}

// SearchChefs filters the chef collection by the query parameters. Omitted
// parameters default to the no-filter wildcard.
func (h *MarketplaceHandler) SearchChefs(c *gin.Context) {
	criteria := models.SearchCriteria{
		TextQuery:       c.Query("textQuery"),
		ServiceCategory: c.DefaultQuery("serviceCategory", models.CriteriaAll),
		Location:        c.DefaultQuery("location", models.CriteriaAll),
		PriceRange:      c.DefaultQuery("priceRange", models.CriteriaAll),
	}

	chefs, err := h.Matching.SearchChefs(criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed", "details": err.Error()})
		return
	}
	if c.Query("sort") == "top-rated" {
		chefs = bookingSvc.TopRated(chefs)
	}
	c.JSON(http.StatusOK, gin.H{"chefs": chefs})
}
