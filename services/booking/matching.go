package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"chefly/database/repository"
	"chefly/models"
	"chefly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MatchingService defines methods to match chefs against search criteria.
type MatchingService interface {
	SearchChefs(criteria models.SearchCriteria) ([]models.Chef, error)
}

// DefaultMatchingService implements MatchingService over the chef store,
// with an optional Redis cache in front of the computed result.
type DefaultMatchingService struct {
	ChefRepo    repository.ChefRepository
	CacheClient *redis.Client // nil disables caching
}

// chefSearchVersionKey holds the cache generation counter. Bumping it on
// chef mutations orphans every cached result at once.
const chefSearchVersionKey = "chefsearch:ver"

// searchCacheKey derives the cache key for the criteria under the given
// cache generation.
func searchCacheKey(version int64, criteria models.SearchCriteria) (string, error) {
	criteriaBytes, err := json.Marshal(criteria)
	if err != nil {
		return "", fmt.Errorf("failed to marshal search criteria: %w", err)
	}
	return fmt.Sprintf("chefsearch:%d:%x", version, criteriaBytes), nil
}

// BumpChefSearchVersion invalidates all cached search results by rotating
// the key prefix. Chef mutations call this so new or changed chefs become
// visible to searches immediately.
func BumpChefSearchVersion(client *redis.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Incr(ctx, chefSearchVersionKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to rotate chef search cache", zap.Error(err))
	}
}

// SearchChefs retrieves the chefs matching the given criteria. It reads a
// snapshot of the chef collection, so it never blocks on booking transitions.
func (s *DefaultMatchingService) SearchChefs(criteria models.SearchCriteria) ([]models.Chef, error) {
	ctx := context.Background()

	var cacheKey string
	if s.CacheClient != nil {
		version, _ := s.CacheClient.Get(ctx, chefSearchVersionKey).Int64()
		key, err := searchCacheKey(version, criteria)
		if err != nil {
			return nil, err
		}
		cacheKey = key
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var chefs []models.Chef
			if err := json.Unmarshal([]byte(cached), &chefs); err == nil {
				return chefs, nil
			}
			// If unmarshal fails, fall through to re-computation.
		}
	}

	all, err := s.ChefRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chefs: %w", err)
	}

	matched := MatchChefs(all, criteria)

	if s.CacheClient != nil {
		if matchedBytes, err := json.Marshal(matched); err == nil {
			s.CacheClient.Set(ctx, cacheKey, matchedBytes, 5*time.Minute)
		}
	}
	return matched, nil
}

// MatchChefs returns the subsequence of chefs satisfying every active
// criterion, preserving the input order. It is total: unknown literals are
// simply non-matches, never errors.
func MatchChefs(chefs []models.Chef, criteria models.SearchCriteria) []models.Chef {
	matched := make([]models.Chef, 0, len(chefs))
	for _, chef := range chefs {
		if matchesCriteria(chef, criteria) {
			matched = append(matched, chef)
		}
	}
	return matched
}

func matchesCriteria(chef models.Chef, c models.SearchCriteria) bool {
	return matchesText(chef, c.TextQuery) &&
		matchesCategory(chef, c.ServiceCategory) &&
		matchesLocation(chef, c.Location) &&
		matchesPriceRange(chef, c.PriceRange)
}

// matchesText is a case-insensitive substring match against the chef's name,
// specialties and cuisine types.
func matchesText(chef models.Chef, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(chef.Name), q) {
		return true
	}
	for _, sp := range chef.Specialties {
		if strings.Contains(strings.ToLower(sp), q) {
			return true
		}
	}
	for _, ct := range chef.CuisineTypes {
		if strings.Contains(strings.ToLower(ct), q) {
			return true
		}
	}
	return false
}

func matchesCategory(chef models.Chef, category string) bool {
	if category == "" || category == models.CriteriaAll {
		return true
	}
	for _, svc := range chef.Services {
		if svc.Category == models.ServiceCategory(category) {
			return true
		}
	}
	return false
}

func matchesLocation(chef models.Chef, location string) bool {
	if location == "" || location == models.CriteriaAll {
		return true
	}
	return chef.Location == location
}

// matchesPriceRange buckets on the hourly rate. Boundaries are half-open:
// exactly 50 is mid-range, exactly 80 is premium.
func matchesPriceRange(chef models.Chef, priceRange string) bool {
	switch priceRange {
	case "", models.PriceRangeAll:
		return true
	case models.PriceRangeBudget:
		return chef.HourlyRate < 50
	case models.PriceRangeMidRange:
		return chef.HourlyRate >= 50 && chef.HourlyRate < 80
	case models.PriceRangePremium:
		return chef.HourlyRate >= 80
	}
	return false
}

// TopRated returns a copy of the chefs ordered by rating descending, ties
// broken by total bookings descending, then by input position.
func TopRated(chefs []models.Chef) []models.Chef {
	ranked := make([]models.Chef, len(chefs))
	copy(ranked, chefs)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].TotalBookings > ranked[j].TotalBookings
	})
	return ranked
}
