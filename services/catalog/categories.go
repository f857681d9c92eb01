package catalog

import (
	"sort"
	"strings"
)

const (
	CategoryAll         = "All"
	categoryTraditional = "Traditional"
)

var cuisineCategories = map[string]string{
	"italian":        "Italian",
	"american":       "American",
	"asian":          "Asian",
	"mexican":        "Mexican",
	"mediterranean":  "Mediterranean",
	"indian":         "Indian",
	"thai":           "Thai",
	"japanese":       "Japanese",
	"chinese":        "Chinese",
	"french":         "French",
	"greek":          "Greek",
	"middle eastern": "Middle Eastern",
	"korean":         "Korean",
	"lebanese":       "Lebanese",
	"moroccan":       "Moroccan",
	"turkish":        "Turkish",
	"pakistani":      "Pakistani",
}

// keywords that widen the special categories beyond a plain mealType or tag match
var (
	mealTypeKeywords = map[string][]string{
		"breakfast": {"breakfast"},
		"lunch":     {"lunch"},
		"dinner":    {"dinner"},
		"snacks":    {"snack"},
		"dessert":   {"dessert"},
		"beverages": {"beverage"},
	}
	tagKeywords = map[string][]string{
		"snacks":      {"snack"},
		"dessert":     {"dessert", "sweet"},
		"beverages":   {"drink", "beverage"},
		"vegetarian":  {"vegetarian", "veg"},
		"spicy":       {"spicy", "hot"},
		"traditional": {"traditional", "authentic", "nepali"},
	}
)

func CategoryFromCuisine(cuisine string) string {
	if cuisine == "" {
		return categoryTraditional
	}
	if category, found := cuisineCategories[strings.ToLower(cuisine)]; found {
		return category
	}
	return strings.ToUpper(cuisine[:1]) + cuisine[1:]
}

func AllCategories(products []Product) []string {
	unique := map[string]bool{CategoryAll: true}
	for _, p := range products {
		if p.Cuisine != "" {
			unique[CategoryFromCuisine(p.Cuisine)] = true
		}
	}

	categories := make([]string, 0, len(unique))
	for category := range unique {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categories
}

func FilterByCategory(products []Product, category string) []Product {
	if category == "" || category == CategoryAll {
		return products
	}

	result := []Product{}
	for _, p := range products {
		if inCategory(p, category) {
			result = append(result, p)
		}
	}
	return result
}

func inCategory(p Product, category string) bool {
	category = strings.ToLower(category)

	if anyContains(p.MealType, category) || anyContains(p.Tags, category) {
		return true
	}
	for _, keyword := range mealTypeKeywords[category] {
		if anyContains(p.MealType, keyword) {
			return true
		}
	}
	for _, keyword := range tagKeywords[category] {
		if anyContains(p.Tags, keyword) {
			return true
		}
	}
	return false
}

// Search matches the query against name, description, meal types and ingredients
func Search(products []Product, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	result := []Product{}
	for _, p := range products {
		if matches(p, query) {
			result = append(result, p)
		}
	}
	return result
}

func matches(p Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}

	description := p.Description
	if description == "" && len(p.Instructions) > 0 {
		description = p.Instructions[0]
	}
	if strings.Contains(strings.ToLower(description), query) {
		return true
	}

	kinds := p.MealType
	if len(kinds) == 0 {
		kinds = p.Tags
	}
	return anyContains(kinds, query) || anyContains(p.Ingredients, query)
}

func anyContains(values []string, keyword string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), keyword) {
			return true
		}
	}
	return false
}
