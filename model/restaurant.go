package model

import "time"

type Restaurant struct {
	ID                int       `json:"restaurantId"`
	OwnerID           int       `json:"ownerId"`
	RestaurantName    string    `json:"restaurantName"`
	RestaurantAddress string    `json:"restaurantAddress"`
	ContactNumber     string    `json:"contactNumber"`
	Description       string    `json:"description"`
	Image             []byte    `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
}
