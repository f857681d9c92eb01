package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Product is a recipe as served by the recipe api
type Product struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Image              string   `json:"image"`
	Description        string   `json:"description,omitempty"`
	Cuisine            string   `json:"cuisine"`
	Difficulty         string   `json:"difficulty"`
	MealType           []string `json:"mealType"`
	Tags               []string `json:"tags"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
}

// UID is the product id as used by the cart
func (p Product) UID() string {
	return strconv.Itoa(p.ID)
}

// UnitPrice in rupees: the storefront prices a dish at its calories per serving
func (p Product) UnitPrice() decimal.Decimal {
	return decimal.NewFromInt(int64(p.CaloriesPerServing))
}

type recipesResponse struct {
	Recipes []Product `json:"recipes"`
	Total   int       `json:"total"`
	Skip    int       `json:"skip"`
	Limit   int       `json:"limit"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ProductsResponse struct {
	Category string    `json:"category"`
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}
