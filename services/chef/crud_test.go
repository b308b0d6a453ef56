package chef

import (
	"encoding/json"
	"testing"

	"chefly/database/repository"
	"chefly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChefService() *DefaultChefService {
	return &DefaultChefService{Repo: repository.NewMemoryChefRepo()}
}

func chefInput() models.Chef {
	return models.Chef{
		Name:       "Chef Mateo",
		Experience: models.ExperienceCulinaryTrained,
		HourlyRate: 75,
		Location:   "lisbon",
		Rating:     5,   // must be ignored
		Services: []models.Service{{
			Name:     "Pasta Class",
			Category: models.CategoryCookingClass,
			Duration: 90,
			Price:    45,
		}},
	}
}

func TestCreateChef(t *testing.T) {
	svc := newChefService()

	created, err := svc.CreateChef(chefInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Rating, "rating is derived, never client supplied")
	assert.Zero(t, created.TotalBookings)
	require.Len(t, created.Services, 1)
	assert.NotEmpty(t, created.Services[0].ID)
	assert.Equal(t, created.ID, created.Services[0].ChefID)

	stored, err := svc.GetChefByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, stored.Name)
}

func TestCreateChefValidation(t *testing.T) {
	svc := newChefService()

	unnamed := chefInput()
	unnamed.Name = ""
	_, err := svc.CreateChef(unnamed)
	assert.Error(t, err)

	amateur := chefInput()
	amateur.Experience = "enthusiast"
	_, err = svc.CreateChef(amateur)
	assert.Error(t, err)

	badCategory := chefInput()
	badCategory.Services[0].Category = "catering"
	_, err = svc.CreateChef(badCategory)
	assert.Error(t, err)

	chefs, err := svc.ListChefs()
	require.NoError(t, err)
	assert.Empty(t, chefs)
}

func TestListChefsPreservesInsertionOrder(t *testing.T) {
	svc := newChefService()
	names := []string{"Chef A", "Chef B", "Chef C"}
	for _, name := range names {
		in := chefInput()
		in.Name = name
		_, err := svc.CreateChef(in)
		require.NoError(t, err)
	}

	chefs, err := svc.ListChefs()
	require.NoError(t, err)
	require.Len(t, chefs, 3)
	for i, name := range names {
		assert.Equal(t, name, chefs[i].Name)
	}
}

func TestUpdateChefPatchesAllowedFields(t *testing.T) {
	svc := newChefService()
	created, err := svc.CreateChef(chefInput())
	require.NoError(t, err)

	updated, err := svc.UpdateChef(created.ID, map[string]interface{}{
		"bio":        "twenty years of pasta",
		"hourlyRate": 90.0,
		"experience": "professional",
		"rating":     5.0, // derived, must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "twenty years of pasta", updated.Bio)
	assert.Equal(t, 90.0, updated.HourlyRate)
	assert.Equal(t, models.ExperienceProfessional, updated.Experience)
	assert.Zero(t, updated.Rating)

	_, err = svc.UpdateChef(created.ID, map[string]interface{}{"experience": "enthusiast"})
	assert.Error(t, err)
}

func TestUpdateChefSlicePatchesFromDecodedJSON(t *testing.T) {
	svc := newChefService()
	created, err := svc.CreateChef(chefInput())
	require.NoError(t, err)

	// Decoding a request body into a map yields []interface{}, not []string;
	// slice patches must still apply.
	var updates map[string]interface{}
	body := `{
		"specialties": ["pasta", "seafood"],
		"cuisineTypes": ["italian"],
		"portfolio": ["http://img/1.jpg"]
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &updates))

	updated, err := svc.UpdateChef(created.ID, updates)
	require.NoError(t, err)
	assert.Equal(t, []string{"pasta", "seafood"}, updated.Specialties)
	assert.Equal(t, []string{"italian"}, updated.CuisineTypes)
	assert.Equal(t, []string{"http://img/1.jpg"}, updated.Portfolio)

	// Mixed-type arrays are rejected as a whole, never half-applied.
	_, err = svc.UpdateChef(created.ID, map[string]interface{}{
		"specialties": []interface{}{"pasta", 7},
	})
	require.NoError(t, err)
	stored, err := svc.GetChefByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"pasta", "seafood"}, stored.Specialties)
}

func TestAddAndRemoveService(t *testing.T) {
	svc := newChefService()
	created, err := svc.CreateChef(chefInput())
	require.NoError(t, err)

	updated, err := svc.AddService(created.ID, models.Service{
		Name:     "Tasting Menu",
		Category: models.CategoryPrivateChef,
		Duration: 180,
		Price:    200,
	})
	require.NoError(t, err)
	require.Len(t, updated.Services, 2)
	added := updated.Services[1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, created.ID, added.ChefID)

	_, err = svc.AddService(created.ID, models.Service{Name: "", Category: models.CategoryMealPrep})
	assert.Error(t, err)

	updated, err = svc.RemoveService(created.ID, added.ID)
	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, "Pasta Class", updated.Services[0].Name)

	_, err = svc.RemoveService(created.ID, "ghost")
	assert.Error(t, err)
}

func TestDeleteChefRemovesEmbeddedServices(t *testing.T) {
	svc := newChefService()
	created, err := svc.CreateChef(chefInput())
	require.NoError(t, err)
	serviceID := created.Services[0].ID

	require.NoError(t, svc.DeleteChef(created.ID))

	_, err = svc.GetChefByID(created.ID)
	assert.Error(t, err)
	_, err = svc.Repo.GetServiceByID(serviceID)
	assert.Error(t, err)
}
