package model

import "time"

type Address struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	PinCode   string    `json:"pinCode"`
	CreatedAt time.Time `json:"createdAt"`
}
