package service

import "errors"

var (
	ErrPermissionDenied       = errors.New("you do not have permission to modify this resource")
	ErrEmailTaken             = errors.New("an account with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidRefreshToken    = errors.New("refresh token is invalid or expired")
	ErrUserNotFound           = errors.New("user not found")
	ErrRestaurantNotFound     = errors.New("restaurant not found")
	ErrCategoryNotFound       = errors.New("food category not found")
	ErrCategoryExists         = errors.New("a category with this name already exists for the restaurant")
	ErrFoodItemNotFound       = errors.New("food item not found")
	ErrFoodItemUnavailable    = errors.New("food item is currently unavailable")
	ErrCartRestaurantMismatch = errors.New("your cart contains items from another restaurant")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrAddressNotFound        = errors.New("address not found")
)
