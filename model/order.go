// file: model/order.go

package model

import "time"

// CartItem is one line of a user's cart. A cart only ever holds items from
// a single restaurant.
type CartItem struct {
	ID           int     `json:"cartId"`
	UserID       int     `json:"userId"`
	RestaurantID int     `json:"restaurantId"`
	FoodItemID   int     `json:"foodItemId"`
	FoodItemName string  `json:"foodItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type OrderStatus string

const OrderStatusPlaced OrderStatus = "PLACED"

type Order struct {
	ID           int         `json:"orderId"`
	UserID       int         `json:"userId"`
	RestaurantID int         `json:"restaurantId"`
	AddressID    int         `json:"addressId"`
	TotalPrice   float64     `json:"totalPrice"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"orderId"`
	FoodItemID int     `json:"foodItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}
