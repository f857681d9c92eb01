package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromCuisine(t *testing.T) {
	assert.Equal(t, "Italian", CategoryFromCuisine("italian"))
	assert.Equal(t, "Middle Eastern", CategoryFromCuisine("Middle Eastern"))
	assert.Equal(t, "Nepalese", CategoryFromCuisine("nepalese"))
	assert.Equal(t, "Traditional", CategoryFromCuisine(""))
}

func TestAllCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "American", "Asian", "Italian", "Nepalese"}, AllCategories(allProducts))
	assert.Equal(t, []string{"All"}, AllCategories(nil))
}

func TestFilterByCategory(t *testing.T) {
	testCases := []struct {
		category string
		expected []string
	}{
		{category: "All", expected: namesOf(allProducts)},
		{category: "", expected: namesOf(allProducts)},
		{category: "Dinner", expected: []string{"Classic Margherita Pizza"}},
		{category: "italian", expected: []string{"Classic Margherita Pizza"}},
		{category: "Snacks", expected: []string{"Chocolate Chip Cookies"}},
		{category: "Dessert", expected: []string{"Chocolate Chip Cookies", "Mango Lassi"}},
		{category: "Beverages", expected: []string{"Mango Lassi"}},
		{category: "Vegetarian", expected: []string{"Vegetarian Stir-Fry"}},
		{category: "Spicy", expected: []string{"Chicken Momo"}},
		{category: "Traditional", expected: []string{"Chicken Momo"}},
		{category: "Brunch", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.expected, namesOf(FilterByCategory(allProducts, tc.category)))
		})
	}
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query", query: "  ", expected: namesOf(allProducts)},
		{name: "by name", query: "MOMO", expected: []string{"Chicken Momo"}},
		{name: "by first instruction", query: "wok", expected: []string{"Vegetarian Stir-Fry"}},
		{name: "by meal type", query: "lunch", expected: []string{"Vegetarian Stir-Fry"}},
		{name: "by tag without meal type", query: "dumpling", expected: []string{"Chicken Momo"}},
		{name: "tags ignored with meal type", query: "baking", expected: []string{}},
		{name: "by ingredient", query: "yogurt", expected: []string{"Mango Lassi"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, namesOf(Search(allProducts, tc.query)))
		})
	}
}
