// file: model/request.go

package model

import "food-storefront/validation"

// RegisterRequest defines the payload for creating a new user.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	PhoneNo   string `json:"phoneNo"`
	Role      Role   `json:"role"`
}

func (r RegisterRequest) Kind() validation.Kind { return validation.KindRegistration }

func (r RegisterRequest) Record() validation.Record {
	return validation.Record{
		"firstName": r.FirstName,
		"lastName":  r.LastName,
		"email":     r.Email,
		"password":  r.Password,
		"phoneNo":   r.PhoneNo,
		"role":      string(r.Role),
	}
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Kind() validation.Kind { return validation.KindLogin }

func (r LoginRequest) Record() validation.Record {
	return validation.Record{"email": r.Email, "password": r.Password}
}

// RefreshRequest carries a refresh token to exchange for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RestaurantForm is assembled from a multipart upload.
type RestaurantForm struct {
	RestaurantName    string
	RestaurantAddress string
	ContactNumber     string
	Description       string
	Image             []byte
}

func (f RestaurantForm) Kind() validation.Kind { return validation.KindRestaurant }

func (f RestaurantForm) Record() validation.Record {
	return validation.Record{
		"restaurantName":    f.RestaurantName,
		"restaurantAddress": f.RestaurantAddress,
		"contactNumber":     f.ContactNumber,
		"description":       f.Description,
		"restaurantImage":   f.Image,
	}
}

type FoodCategoryRequest struct {
	FoodCategoryName string `json:"foodCategoryName"`
}

func (r FoodCategoryRequest) Kind() validation.Kind { return validation.KindFoodCategory }

func (r FoodCategoryRequest) Record() validation.Record {
	return validation.Record{"foodCategoryName": r.FoodCategoryName}
}

// FoodItemForm is assembled from a multipart upload. On update an empty
// Image keeps the stored one.
type FoodItemForm struct {
	FoodItemName string
	Description  string
	Price        string
	IsAvailable  bool
	Image        []byte
	Update       bool
}

func (f FoodItemForm) Kind() validation.Kind {
	if f.Update {
		return validation.KindFoodItemUpdate
	}
	return validation.KindFoodItem
}

func (f FoodItemForm) Record() validation.Record {
	return validation.Record{
		"foodItemName":  f.FoodItemName,
		"description":   f.Description,
		"price":         f.Price,
		"foodItemImage": f.Image,
	}
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
}

func (r AddressRequest) Kind() validation.Kind { return validation.KindAddress }

func (r AddressRequest) Record() validation.Record {
	return validation.Record{
		"street":  r.Street,
		"city":    r.City,
		"state":   r.State,
		"country": r.Country,
		"pinCode": r.PinCode,
	}
}

type ContactRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactRequest) Kind() validation.Kind { return validation.KindContactMessage }

func (r ContactRequest) Record() validation.Record {
	return validation.Record{"subject": r.Subject, "message": r.Message}
}

// AddToCartRequest adds quantity units of a food item to the caller's cart.
type AddToCartRequest struct {
	FoodItemID int `json:"foodItemId" validate:"required,gt=0"`
	Quantity   int `json:"quantity" validate:"required,gt=0,lte=50"`
}

// PlaceOrderRequest turns the caller's cart into an order delivered to AddressID.
type PlaceOrderRequest struct {
	AddressID int `json:"addressId" validate:"required,gt=0"`
}
