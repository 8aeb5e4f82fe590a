package router

import (
	_ "food-storefront/docs"
	"food-storefront/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Restaurant *handler.RestaurantHandler
	Menu       *handler.MenuHandler
	Address    *handler.AddressHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	Contact    *handler.ContactHandler
	// Readiness checks reported by GET /ready.
	Readiness map[string]handler.Check
}

func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	e := handler.ErrorHandlingMiddleware
	// authed requires a valid access token.
	authed := func(fn http.HandlerFunc) http.Handler {
		return handler.AuthMiddleware(fn)
	}
	// owner additionally requires the RESTAURANT_OWNER role.
	owner := func(fn http.HandlerFunc) http.Handler {
		return handler.AuthMiddleware(handler.OwnerMiddleware(fn))
	}

	// --- Public Routes ---
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /ready", handler.ReadinessCheck(h.Readiness))
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /users/register", e(h.Auth.Register))
	mux.Handle("POST /users/login", e(h.Auth.Login))
	mux.Handle("POST /api/token/refresh", e(h.Auth.Refresh))

	mux.Handle("GET /restaurants", e(h.Restaurant.ListRestaurants))
	mux.Handle("GET /restaurants/{id}", e(h.Restaurant.GetRestaurant))
	mux.Handle("GET /restaurants/{id}/image", e(h.Restaurant.GetRestaurantImage))
	mux.Handle("GET /restaurants/{id}/categories", e(h.Menu.ListCategories))
	mux.Handle("GET /restaurants/{id}/food-items", e(h.Menu.ListFoodItems))
	mux.Handle("GET /categories/{id}/food-items", e(h.Menu.ListFoodItemsByCategory))
	mux.Handle("GET /food-items/{id}/image", e(h.Menu.GetFoodItemImage))

	// --- Protected Routes ---
	mux.Handle("POST /api/logout", authed(e(h.Auth.Logout)))
	mux.Handle("GET /api/users/profile", authed(e(h.Auth.Profile)))

	mux.Handle("POST /api/addresses", authed(e(h.Address.AddAddress)))
	mux.Handle("GET /api/addresses", authed(e(h.Address.ListAddresses)))

	mux.Handle("POST /api/cart", authed(e(h.Cart.AddToCart)))
	mux.Handle("GET /api/cart", authed(e(h.Cart.GetCart)))
	mux.Handle("PUT /api/cart/{cartId}", authed(e(h.Cart.ChangeQuantity)))

	mux.Handle("POST /api/orders", authed(e(h.Order.PlaceOrder)))
	mux.Handle("GET /api/orders", authed(e(h.Order.ListOrders)))

	mux.Handle("POST /api/contact", authed(e(h.Contact.Submit)))

	// --- Restaurant Owner Routes ---
	mux.Handle("POST /api/restaurants", owner(e(h.Restaurant.CreateRestaurant)))
	mux.Handle("GET /api/owner/restaurants", owner(e(h.Restaurant.ListOwnerRestaurants)))
	mux.Handle("POST /api/restaurants/{id}/categories", owner(e(h.Menu.CreateCategory)))
	mux.Handle("PUT /api/categories/{id}", owner(e(h.Menu.UpdateCategory)))
	mux.Handle("POST /api/categories/{id}/food-items", owner(e(h.Menu.CreateFoodItem)))
	mux.Handle("PUT /api/food-items/{id}", owner(e(h.Menu.UpdateFoodItem)))

	return handler.RequestLogger(mux)
}
