// file: model/user.go

package model

import "time"

// Role is the kind of account a user registered as.
type Role string

const (
	RoleUser            Role = "USER"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
)

type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	PhoneNo   string    `json:"phoneNo"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
