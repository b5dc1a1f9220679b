package service

import "github.com/guttosm/pizza-service/internal/domain/model"

// Default catalog reference data. Loaded once at startup; the catalog is
// immutable afterwards.
var (
	// DefaultSizes defines the standard size options.
	DefaultSizes = []model.Size{
		{ID: "small", Name: "Small", PriceMultiplier: 0.8, CalorieMultiplier: 0.8},
		{ID: "medium", Name: "Medium", PriceMultiplier: 1, CalorieMultiplier: 1},
		{ID: "large", Name: "Large", PriceMultiplier: 1.3, CalorieMultiplier: 1.2},
	}

	// DefaultCrusts defines the standard crust options.
	DefaultCrusts = []model.Crust{
		{ID: "ragi", Name: "Ragi Thin Crust", Price: 50, Calories: 120, Description: "Made with nutritious ragi (finger millet) flour"},
		{ID: "wheat", Name: "Whole Wheat", Price: 40, Calories: 150, Description: "Wholesome crust made with 100% whole wheat flour"},
		{ID: "beetroot", Name: "Beetroot Crust", Price: 60, Calories: 140, Description: "Colorful and nutritious with real beetroot"},
		{ID: "multigrain", Name: "Multigrain", Price: 55, Calories: 160, Description: "Blend of seven healthy grains"},
	}

	// DefaultSauces defines the standard sauce options.
	DefaultSauces = []model.Sauce{
		{ID: "tomato", Name: "Fresh Tomato", Price: 20, Calories: 30},
		{ID: "pesto", Name: "Basil Pesto", Price: 40, Calories: 70},
		{ID: "hummus", Name: "Hummus Base", Price: 45, Calories: 90},
		{ID: "yogurt", Name: "Mint Yogurt", Price: 35, Calories: 50},
	}

	// DefaultToppings defines the standard topping options.
	// Calorie figures are per 10-gram portion.
	DefaultToppings = []model.Topping{
		{ID: "cheese", Name: "Low-Fat Mozzarella", PricePerGram: 0.8, CaloriesPer10g: 90, Vegan: false},
		{ID: "vegan-cheese", Name: "Vegan Cheese", PricePerGram: 1.0, CaloriesPer10g: 80, Vegan: true},
		{ID: "mushrooms", Name: "Mushrooms", PricePerGram: 0.6, CaloriesPer10g: 20, Vegan: true},
		{ID: "spinach", Name: "Fresh Spinach", PricePerGram: 0.4, CaloriesPer10g: 10, Vegan: true},
		{ID: "tomatoes", Name: "Cherry Tomatoes", PricePerGram: 0.5, CaloriesPer10g: 15, Vegan: true},
		{ID: "bell-peppers", Name: "Bell Peppers", PricePerGram: 0.5, CaloriesPer10g: 12, Vegan: true},
		{ID: "onions", Name: "Red Onions", PricePerGram: 0.3, CaloriesPer10g: 18, Vegan: true},
		{ID: "olives", Name: "Black Olives", PricePerGram: 0.7, CaloriesPer10g: 30, Vegan: true},
		{ID: "corn", Name: "Sweet Corn", PricePerGram: 0.4, CaloriesPer10g: 25, Vegan: true},
		{ID: "broccoli", Name: "Broccoli", PricePerGram: 0.5, CaloriesPer10g: 15, Vegan: true},
		{ID: "paneer", Name: "Paneer Cubes", PricePerGram: 0.9, CaloriesPer10g: 75, Vegan: false},
		{ID: "tofu", Name: "Tofu", PricePerGram: 0.7, CaloriesPer10g: 40, Vegan: true},
		{ID: "chicken", Name: "Grilled Chicken", PricePerGram: 1.0, CaloriesPer10g: 85, Vegan: false},
		{ID: "avocado", Name: "Avocado Slices", PricePerGram: 1.1, CaloriesPer10g: 65, Vegan: true},
		{ID: "arugula", Name: "Arugula", PricePerGram: 0.5, CaloriesPer10g: 8, Vegan: true},
	}

	// DefaultPresets defines the pre-made pizza menu.
	DefaultPresets = []model.Pizza{
		{
			ID:           "veggie-delight",
			Name:         "Veggie Delight",
			Description:  "A colorful mix of bell peppers, mushrooms, spinach, and cherry tomatoes on our signature whole wheat crust.",
			Image:        "https://images.pexels.com/photos/1146760/pexels-photo-1146760.jpeg",
			BasePrice:    250,
			BaseCalories: 180,
			Toppings: []model.ToppingSelection{
				{ToppingID: "cheese", QuantityGrams: 30},
				{ToppingID: "mushrooms", QuantityGrams: 20},
				{ToppingID: "spinach", QuantityGrams: 15},
				{ToppingID: "tomatoes", QuantityGrams: 20},
				{ToppingID: "bell-peppers", QuantityGrams: 20},
			},
			CrustID: "wheat", SauceID: "tomato", SizeID: "medium",
			Vegan: false, Featured: true,
		},
		{
			ID:           "protein-powerhouse",
			Name:         "Protein Powerhouse",
			Description:  "For fitness enthusiasts! Loaded with grilled chicken, tofu, and paneer on a multigrain crust for that protein boost.",
			Image:        "https://images.pexels.com/photos/905847/pexels-photo-905847.jpeg",
			BasePrice:    320,
			BaseCalories: 220,
			Toppings: []model.ToppingSelection{
				{ToppingID: "cheese", QuantityGrams: 30},
				{ToppingID: "chicken", QuantityGrams: 40},
				{ToppingID: "tofu", QuantityGrams: 30},
				{ToppingID: "paneer", QuantityGrams: 30},
				{ToppingID: "bell-peppers", QuantityGrams: 15},
			},
			CrustID: "multigrain", SauceID: "tomato", SizeID: "medium",
			Vegan: false, Featured: false,
		},
		{
			ID:           "ragi-special",
			Name:         "Ragi Special",
			Description:  "Our signature ragi crust topped with mushrooms, corn, and bell peppers. A calcium-rich, healthy option.",
			Image:        "https://images.pexels.com/photos/7813549/pexels-photo-7813549.jpeg",
			BasePrice:    280,
			BaseCalories: 200,
			Toppings: []model.ToppingSelection{
				{ToppingID: "cheese", QuantityGrams: 25},
				{ToppingID: "mushrooms", QuantityGrams: 25},
				{ToppingID: "corn", QuantityGrams: 20},
				{ToppingID: "bell-peppers", QuantityGrams: 20},
			},
			CrustID: "ragi", SauceID: "tomato", SizeID: "medium",
			Vegan: false, Featured: true,
		},
		{
			ID:           "vegan-supreme",
			Name:         "Vegan Supreme",
			Description:  "A plant-based delight with vegan cheese, avocado, and a medley of fresh vegetables on our beetroot crust.",
			Image:        "https://images.pexels.com/photos/845802/pexels-photo-845802.jpeg",
			BasePrice:    300,
			BaseCalories: 190,
			Toppings: []model.ToppingSelection{
				{ToppingID: "vegan-cheese", QuantityGrams: 30},
				{ToppingID: "avocado", QuantityGrams: 25},
				{ToppingID: "mushrooms", QuantityGrams: 20},
				{ToppingID: "spinach", QuantityGrams: 15},
				{ToppingID: "bell-peppers", QuantityGrams: 15},
				{ToppingID: "olives", QuantityGrams: 15},
			},
			CrustID: "beetroot", SauceID: "pesto", SizeID: "medium",
			Vegan: true, Featured: true,
		},
		{
			ID:           "mediterranean",
			Name:         "Mediterranean",
			Description:  "A taste of the Mediterranean with olives, cherry tomatoes, and feta on a hummus base with our whole wheat crust.",
			Image:        "https://images.pexels.com/photos/1146760/pexels-photo-1146760.jpeg",
			BasePrice:    290,
			BaseCalories: 210,
			Toppings: []model.ToppingSelection{
				{ToppingID: "cheese", QuantityGrams: 25},
				{ToppingID: "olives", QuantityGrams: 20},
				{ToppingID: "tomatoes", QuantityGrams: 25},
				{ToppingID: "onions", QuantityGrams: 15},
			},
			CrustID: "wheat", SauceID: "hummus", SizeID: "medium",
			Vegan: false, Featured: false,
		},
		{
			ID:           "green-garden",
			Name:         "Green Garden",
			Description:  "A garden-fresh experience with broccoli, spinach, avocado, and arugula on our multigrain crust with pesto sauce.",
			Image:        "https://images.pexels.com/photos/5792329/pexels-photo-5792329.jpeg",
			BasePrice:    270,
			BaseCalories: 180,
			Toppings: []model.ToppingSelection{
				{ToppingID: "cheese", QuantityGrams: 20},
				{ToppingID: "broccoli", QuantityGrams: 20},
				{ToppingID: "spinach", QuantityGrams: 20},
				{ToppingID: "avocado", QuantityGrams: 20},
				{ToppingID: "arugula", QuantityGrams: 15},
			},
			CrustID: "multigrain", SauceID: "pesto", SizeID: "medium",
			Vegan: false, Featured: false,
		},
		{
			ID:           "beetroot-bliss",
			Name:         "Beetroot Bliss",
			Description:  "Our vibrant beetroot crust topped with cherry tomatoes, corn, and bell peppers for a colorful, antioxidant-rich pizza.",
			Image:        "https://images.pexels.com/photos/2233348/pexels-photo-2233348.jpeg",
			BasePrice:    280,
			BaseCalories: 200,
			Toppings: []model.ToppingSelection{
				{ToppingID: "vegan-cheese", QuantityGrams: 25},
				{ToppingID: "tomatoes", QuantityGrams: 25},
				{ToppingID: "corn", QuantityGrams: 20},
				{ToppingID: "bell-peppers", QuantityGrams: 20},
			},
			CrustID: "beetroot", SauceID: "tomato", SizeID: "medium",
			Vegan: true, Featured: false,
		},
		{
			ID:           "paneer-tikka",
			Name:         "Paneer Tikka",
			Description:  "A fusion pizza with spiced paneer cubes, bell peppers, and onions on our whole wheat crust with yogurt sauce.",
			Image:        "https://images.pexels.com/photos/1166120/pexels-photo-1166120.jpeg",
			BasePrice:    310,
			BaseCalories: 230,
			Toppings: []model.ToppingSelection{
				{ToppingID: "cheese", QuantityGrams: 25},
				{ToppingID: "paneer", QuantityGrams: 40},
				{ToppingID: "bell-peppers", QuantityGrams: 20},
				{ToppingID: "onions", QuantityGrams: 15},
			},
			CrustID: "wheat", SauceID: "yogurt", SizeID: "medium",
			Vegan: false, Featured: false,
		},
	}
)

// DefaultCatalog builds the catalog from the default reference data.
func DefaultCatalog() *model.Catalog {
	return model.NewCatalog(DefaultSizes, DefaultCrusts, DefaultSauces, DefaultToppings, DefaultPresets)
}
