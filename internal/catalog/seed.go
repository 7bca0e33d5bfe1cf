package catalog

import "quickbite/internal/domain"

// Seed returns the built-in restaurant catalog. The storefront ships with
// hardcoded content; SetRestaurants can replace it wholesale later.
func Seed() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:            "1",
			Name:          "Pizza Palace",
			Description:   "Authentic Italian pizzas with fresh ingredients",
			ImageURL:      "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400",
			CoverImageURL: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=800",
			Rating:        4.5,
			ReviewCount:   1250,
			DeliveryTime:  "25-35 min",
			DeliveryFee:   2.99,
			MinOrder:      15,
			Cuisine:       []string{"Italian", "Pizza", "Fast Food"},
			IsOpen:        true,
			Distance:      1.2,
			Offers: []string{
				"20% off on orders above $30",
				"Free delivery on first order",
			},
			Menu: []domain.FoodItem{
				{
					ID:              "1",
					Name:            "Margherita Pizza",
					Description:     "Classic pizza with tomato sauce, mozzarella, and fresh basil",
					Price:           12.99,
					OriginalPrice:   15.99,
					ImageURL:        "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=400",
					Category:        "Pizza",
					IsVeg:           true,
					Rating:          4.6,
					PreparationTime: 20,
					IsAvailable:     true,
					Customizations:  []string{"Extra Cheese", "Thin Crust", "Stuffed Crust"},
				},
				{
					ID:              "2",
					Name:            "Pepperoni Pizza",
					Description:     "Delicious pizza topped with pepperoni and cheese",
					Price:           15.99,
					ImageURL:        "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400",
					Category:        "Pizza",
					IsVeg:           false,
					Rating:          4.7,
					PreparationTime: 22,
					IsAvailable:     true,
					Customizations:  []string{"Extra Cheese", "Thin Crust"},
				},
			},
		},
		{
			ID:            "2",
			Name:          "Burger Junction",
			Description:   "Gourmet burgers made with premium ingredients",
			ImageURL:      "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400",
			CoverImageURL: "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=800",
			Rating:        4.3,
			ReviewCount:   890,
			DeliveryTime:  "20-30 min",
			DeliveryFee:   1.99,
			MinOrder:      12,
			Cuisine:       []string{"American", "Burgers", "Fast Food"},
			IsOpen:        true,
			Distance:      0.8,
			Offers:        []string{"Buy 1 Get 1 Free on burgers"},
			Menu: []domain.FoodItem{
				{
					ID:              "3",
					Name:            "Classic Cheeseburger",
					Description:     "Juicy beef patty with cheese, lettuce, tomato, and special sauce",
					Price:           9.99,
					ImageURL:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
					Category:        "Burgers",
					IsVeg:           false,
					Rating:          4.4,
					PreparationTime: 15,
					IsAvailable:     true,
					Customizations:  []string{"Extra Patty", "No Onion"},
				},
				{
					ID:              "4",
					Name:            "Veggie Burger",
					Description:     "Plant-based patty with fresh vegetables and vegan mayo",
					Price:           8.99,
					OriginalPrice:   10.99,
					ImageURL:        "https://images.unsplash.com/photo-1525059696034-4967a729002e?w=400",
					Category:        "Burgers",
					IsVeg:           true,
					Rating:          4.2,
					PreparationTime: 12,
					IsAvailable:     true,
				},
			},
		},
		{
			ID:            "3",
			Name:          "Sushi Zen",
			Description:   "Fresh sushi and Japanese cuisine",
			ImageURL:      "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400",
			CoverImageURL: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=800",
			Rating:        4.8,
			ReviewCount:   567,
			DeliveryTime:  "30-45 min",
			DeliveryFee:   3.99,
			MinOrder:      20,
			Cuisine:       []string{"Japanese", "Sushi", "Asian"},
			IsOpen:        true,
			Distance:      2.1,
			Offers:        []string{"15% off on orders above $40"},
			Menu: []domain.FoodItem{
				{
					ID:              "5",
					Name:            "Salmon Roll",
					Description:     "Fresh salmon with avocado and cucumber",
					Price:           13.99,
					ImageURL:        "https://images.unsplash.com/photo-1553621042-f6e147245754?w=400",
					Category:        "Sushi",
					IsVeg:           false,
					Rating:          4.9,
					PreparationTime: 25,
					IsAvailable:     true,
				},
			},
		},
	}
}
