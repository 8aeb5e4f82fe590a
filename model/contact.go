package model

import "time"

type ContactMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
