package model

import "time"

type FoodCategory struct {
	ID               int       `json:"foodCategoryId"`
	RestaurantID     int       `json:"restaurantId"`
	FoodCategoryName string    `json:"foodCategoryName"`
	CreatedAt        time.Time `json:"createdAt"`
}

type FoodItem struct {
	ID           int       `json:"foodItemId"`
	RestaurantID int       `json:"restaurantId"`
	CategoryID   int       `json:"categoryId"`
	FoodItemName string    `json:"foodItemName"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	IsAvailable  bool      `json:"isAvailable"`
	Image        []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
