package contracttests

import (
	"encoding/json"
	"net/http"

	"github.com/ashim-08/Nepali-Thali/services/catalog"
)

// FakeRecipesAPI serves a fixed set of recipes in the layout of the public recipe api
type FakeRecipesAPI struct {
	Recipes []catalog.Product
}

func NewFakeRecipesAPI(recipes ...catalog.Product) *FakeRecipesAPI {
	return &FakeRecipesAPI{
		Recipes: recipes,
	}
}

func (a *FakeRecipesAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/recipes" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"recipes": a.Recipes,
		"total":   len(a.Recipes),
		"skip":    0,
		"limit":   len(a.Recipes),
	})
}
