package catalog

var (
	margherita = Product{
		ID:                 1,
		Name:               "Classic Margherita Pizza",
		Image:              "https://cdn.dummyjson.com/recipe-images/1.webp",
		Cuisine:            "Italian",
		MealType:           []string{"Dinner"},
		Tags:               []string{"Pizza", "Italian"},
		Ingredients:        []string{"Pizza dough", "Tomato sauce", "Fresh mozzarella cheese"},
		Instructions:       []string{"Preheat the oven to 475°F (245°C)."},
		CaloriesPerServing: 300,
		Rating:             4.6,
	}
	stirFry = Product{
		ID:                 2,
		Name:               "Vegetarian Stir-Fry",
		Cuisine:            "Asian",
		MealType:           []string{"Lunch"},
		Tags:               []string{"Vegetarian", "Stir-fry", "Asian"},
		Ingredients:        []string{"Tofu, cubed", "Broccoli florets", "Soy sauce"},
		Instructions:       []string{"In a wok, heat sesame oil over medium-high heat."},
		CaloriesPerServing: 250,
		Rating:             4.7,
	}
	cookies = Product{
		ID:                 3,
		Name:               "Chocolate Chip Cookies",
		Cuisine:            "American",
		MealType:           []string{"Snack", "Dessert"},
		Tags:               []string{"Cookies", "Baking"},
		Ingredients:        []string{"All-purpose flour", "Chocolate chips"},
		Instructions:       []string{"Preheat the oven to 350°F (175°C)."},
		CaloriesPerServing: 150,
	}
	momo = Product{
		ID:                 4,
		Name:               "Chicken Momo",
		Cuisine:            "nepalese",
		Tags:               []string{"Dumplings", "Nepali", "Spicy"},
		Ingredients:        []string{"Minced chicken", "Timur"},
		CaloriesPerServing: 180,
	}
	lassi = Product{
		ID:                 5,
		Name:               "Mango Lassi",
		Tags:               []string{"Drink", "Sweet"},
		Ingredients:        []string{"Mango", "Yogurt"},
		CaloriesPerServing: 120,
	}

	allProducts = []Product{margherita, stirFry, cookies, momo, lassi}
)

func namesOf(products []Product) []string {
	names := []string{}
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}
