package booking

import (
	"testing"

	"chefly/database/repository"
	"chefly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chefFixture(name, location string, rate float64, categories ...models.ServiceCategory) models.Chef {
	chef := models.Chef{
		ID:         name,
		Name:       name,
		Location:   location,
		HourlyRate: rate,
		Experience: models.ExperienceProfessional,
	}
	for i, cat := range categories {
		chef.Services = append(chef.Services, models.Service{
			ID:       name + "-svc-" + string(rune('a'+i)),
			ChefID:   chef.ID,
			Name:     name + " " + string(cat),
			Category: cat,
		})
	}
	return chef
}

func TestMatchChefsDefaultCriteriaIsIdentity(t *testing.T) {
	chefs := []models.Chef{
		chefFixture("Alice", "austin", 45, models.CategoryMealPrep),
		chefFixture("Bruno", "boston", 65, models.CategoryCookingClass),
		chefFixture("Carla", "austin", 95, models.CategoryPrivateChef),
	}

	got := MatchChefs(chefs, models.DefaultSearchCriteria())

	require.Len(t, got, 3)
	for i := range chefs {
		assert.Equal(t, chefs[i].ID, got[i].ID, "input order must be preserved")
	}
}

func TestMatchChefsTextQuery(t *testing.T) {
	chefs := []models.Chef{
		{ID: "1", Name: "Alice Kim"},
		{ID: "2", Name: "Bruno", Specialties: []string{"Sushi Rolls"}},
		{ID: "3", Name: "Carla", CuisineTypes: []string{"italian"}},
		{ID: "4", Name: "Dmitri"},
	}

	byName := MatchChefs(chefs, models.SearchCriteria{TextQuery: "alice"})
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	bySpecialty := MatchChefs(chefs, models.SearchCriteria{TextQuery: "SUSHI"})
	require.Len(t, bySpecialty, 1)
	assert.Equal(t, "2", bySpecialty[0].ID)

	byCuisine := MatchChefs(chefs, models.SearchCriteria{TextQuery: "Ital"})
	require.Len(t, byCuisine, 1)
	assert.Equal(t, "3", byCuisine[0].ID)

	assert.Empty(t, MatchChefs(chefs, models.SearchCriteria{TextQuery: "thai"}))
}

func TestMatchChefsConjunctive(t *testing.T) {
	chefs := []models.Chef{
		chefFixture("target", "austin", 60, models.CategoryMealPrep),
		chefFixture("target-far", "boston", 60, models.CategoryMealPrep),
		chefFixture("target-posh", "austin", 90, models.CategoryMealPrep),
		chefFixture("target-class", "austin", 60, models.CategoryCookingClass),
	}

	got := MatchChefs(chefs, models.SearchCriteria{
		TextQuery:       "target",
		ServiceCategory: string(models.CategoryMealPrep),
		Location:        "austin",
		PriceRange:      models.PriceRangeMidRange,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "target", got[0].ID)
}

func TestMatchChefsPriceBucketBoundaries(t *testing.T) {
	at50 := []models.Chef{chefFixture("fifty", "x", 50)}
	assert.Empty(t, MatchChefs(at50, models.SearchCriteria{PriceRange: models.PriceRangeBudget}))
	assert.Len(t, MatchChefs(at50, models.SearchCriteria{PriceRange: models.PriceRangeMidRange}), 1)

	at80 := []models.Chef{chefFixture("eighty", "x", 80)}
	assert.Empty(t, MatchChefs(at80, models.SearchCriteria{PriceRange: models.PriceRangeMidRange}))
	assert.Len(t, MatchChefs(at80, models.SearchCriteria{PriceRange: models.PriceRangePremium}), 1)
}

func TestMatchChefsUnknownLiteralsAreNonMatches(t *testing.T) {
	chefs := []models.Chef{chefFixture("Alice", "austin", 45, models.CategoryMealPrep)}

	assert.Empty(t, MatchChefs(chefs, models.SearchCriteria{ServiceCategory: "baking"}))
	assert.Empty(t, MatchChefs(chefs, models.SearchCriteria{Location: "atlantis"}))
	assert.Empty(t, MatchChefs(chefs, models.SearchCriteria{PriceRange: "luxury"}))
}

func TestTopRatedOrdering(t *testing.T) {
	chefs := []models.Chef{
		{ID: "a", Rating: 4.5, TotalBookings: 10},
		{ID: "b", Rating: 5.0, TotalBookings: 2},
		{ID: "c", Rating: 4.5, TotalBookings: 30},
		{ID: "d", Rating: 4.5, TotalBookings: 10}, // full tie with "a": input order wins
	}

	ranked := TopRated(chefs)

	require.Len(t, ranked, 4)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "c", ranked[1].ID)
	assert.Equal(t, "a", ranked[2].ID)
	assert.Equal(t, "d", ranked[3].ID)

	// The input slice is untouched.
	assert.Equal(t, "a", chefs[0].ID)
}

func TestSearchCacheKeyRotatesWithGeneration(t *testing.T) {
	criteria := models.DefaultSearchCriteria()

	gen0, err := searchCacheKey(0, criteria)
	require.NoError(t, err)
	gen1, err := searchCacheKey(1, criteria)
	require.NoError(t, err)
	assert.NotEqual(t, gen0, gen1, "bumping the generation must orphan old entries")

	other, err := searchCacheKey(0, models.SearchCriteria{Location: "austin"})
	require.NoError(t, err)
	assert.NotEqual(t, gen0, other, "distinct criteria must not share an entry")

	same, err := searchCacheKey(0, criteria)
	require.NoError(t, err)
	assert.Equal(t, gen0, same)
}

func TestBumpChefSearchVersionWithoutCache(t *testing.T) {
	assert.NotPanics(t, func() { BumpChefSearchVersion(nil) })
}

func TestSearchChefsSeesNewlyCreatedChef(t *testing.T) {
	chefRepo := repository.NewMemoryChefRepo()
	svc := &DefaultMatchingService{ChefRepo: chefRepo}

	before, err := svc.SearchChefs(models.DefaultSearchCriteria())
	require.NoError(t, err)
	assert.Empty(t, before)

	alice := chefFixture("Alice", "austin", 45, models.CategoryMealPrep)
	require.NoError(t, chefRepo.Create(&alice))

	after, err := svc.SearchChefs(models.DefaultSearchCriteria())
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, alice.ID, after[0].ID)
}

func TestSearchChefsViaStore(t *testing.T) {
	chefRepo := repository.NewMemoryChefRepo()
	alice := chefFixture("Alice", "austin", 45, models.CategoryMealPrep)
	bruno := chefFixture("Bruno", "boston", 95, models.CategoryPrivateChef)
	require.NoError(t, chefRepo.Create(&alice))
	require.NoError(t, chefRepo.Create(&bruno))

	svc := &DefaultMatchingService{ChefRepo: chefRepo}

	all, err := svc.SearchChefs(models.DefaultSearchCriteria())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, alice.ID, all[0].ID)

	premium, err := svc.SearchChefs(models.SearchCriteria{PriceRange: models.PriceRangePremium})
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, bruno.ID, premium[0].ID)
}
