// Package docs holds the OpenAPI document served at /swagger/. Each path
// mirrors the swag annotations on its handler; docs_test.go fails when a
// route is annotated but missing here, or the other way round.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {"name": "API Support", "email": "support@example.com"},
		"license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"produces": ["application/json"],
	"paths": {
		"/api/addresses": {
			"post": {"summary": "Add a delivery address", "tags": ["addresses"], "consumes": ["application/json"], "security": [{"BearerAuth": []}], "parameters": [{"name": "address", "in": "body", "required": true, "description": "Address", "schema": {"type": "object"}}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation failed"}}},
			"get": {"summary": "List the caller's addresses", "tags": ["addresses"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
		},
		"/users/register": {
			"post": {"summary": "Register a new user", "tags": ["auth"], "consumes": ["application/json"], "parameters": [{"name": "user", "in": "body", "required": true, "description": "Registration details", "schema": {"type": "object"}}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation failed"}, "409": {"description": "Email already registered"}}}
		},
		"/users/login": {
			"post": {"summary": "Log in", "tags": ["auth"], "consumes": ["application/json"], "parameters": [{"name": "credentials", "in": "body", "required": true, "description": "Login credentials", "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "401": {"description": "Invalid email or password"}}}
		},
		"/api/token/refresh": {
			"post": {"summary": "Refresh tokens", "tags": ["auth"], "consumes": ["application/json"], "parameters": [{"name": "token", "in": "body", "required": true, "description": "Refresh token", "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Error"}, "401": {"description": "Refresh token is invalid or expired"}}}
		},
		"/api/logout": {
			"post": {"summary": "Log out", "tags": ["auth"], "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "401": {"description": "Error"}}}
		},
		"/api/users/profile": {
			"get": {"summary": "Current user", "tags": ["auth"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Error"}, "404": {"description": "Error"}}}
		},
		"/api/cart": {
			"post": {"summary": "Add a food item to the cart", "tags": ["cart"], "consumes": ["application/json"], "security": [{"BearerAuth": []}], "parameters": [{"name": "item", "in": "body", "required": true, "description": "Item and quantity", "schema": {"type": "object"}}], "responses": {"201": {"description": "OK"}, "400": {"description": "Error"}, "404": {"description": "Food item not found"}, "409": {"description": "Cart holds items from another restaurant"}}},
			"get": {"summary": "The caller's cart", "tags": ["cart"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
		},
		"/api/cart/{cartId}": {
			"put": {"summary": "Change the quantity of a cart line", "tags": ["cart"], "security": [{"BearerAuth": []}], "parameters": [{"name": "cartId", "in": "path", "required": true, "description": "Cart line ID", "type": "integer"}, {"name": "quantityChange", "in": "query", "required": true, "description": "Signed change", "type": "integer"}], "responses": {"200": {"description": "OK"}, "204": {"description": "OK"}, "400": {"description": "Error"}, "403": {"description": "Error"}, "404": {"description": "Error"}}}
		},
		"/api/contact": {
			"post": {"summary": "Contact us", "tags": ["contact"], "consumes": ["application/json"], "security": [{"BearerAuth": []}], "parameters": [{"name": "message", "in": "body", "required": true, "description": "Subject and message", "schema": {"type": "object"}}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation failed"}}}
		},
		"/health": {
			"get": {"summary": "Show the status of server", "tags": ["health"], "consumes": ["application/json"], "responses": {"200": {"description": "OK"}}}
		},
		"/ready": {
			"get": {"summary": "Show whether dependencies are reachable", "tags": ["health"], "responses": {"200": {"description": "OK"}, "503": {"description": "Error"}}}
		},
		"/api/restaurants/{id}/categories": {
			"post": {"summary": "Add a food category", "tags": ["menu"], "consumes": ["application/json"], "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Restaurant ID", "type": "integer"}, {"name": "category", "in": "body", "required": true, "description": "Category", "schema": {"type": "object"}}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation failed"}, "403": {"description": "Caller does not own the restaurant"}, "409": {"description": "Category already exists"}}}
		},
		"/api/categories/{id}": {
			"put": {"summary": "Rename a food category", "tags": ["menu"], "consumes": ["application/json"], "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Category ID", "type": "integer"}, {"name": "category", "in": "body", "required": true, "description": "Category", "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "403": {"description": "Error"}, "404": {"description": "Error"}, "409": {"description": "Category already exists"}}}
		},
		"/restaurants/{id}/categories": {
			"get": {"summary": "List a restaurant's categories", "tags": ["menu"], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Restaurant ID", "type": "integer"}], "responses": {"200": {"description": "OK"}}}
		},
		"/api/categories/{id}/food-items": {
			"post": {"summary": "Add a food item", "tags": ["menu"], "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Category ID", "type": "integer"}, {"name": "foodItemName", "in": "formData", "required": true, "description": "Name", "type": "string"}, {"name": "description", "in": "formData", "required": true, "description": "Description", "type": "string"}, {"name": "price", "in": "formData", "required": true, "description": "Price", "type": "string"}, {"name": "isAvailable", "in": "formData", "required": false, "description": "Available, defaults to true", "type": "string"}, {"name": "foodItemImage", "in": "formData", "required": true, "description": "Image", "type": "file"}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation failed"}, "403": {"description": "Error"}, "404": {"description": "Error"}}}
		},
		"/api/food-items/{id}": {
			"put": {"summary": "Update a food item", "tags": ["menu"], "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Food item ID", "type": "integer"}, {"name": "foodItemName", "in": "formData", "required": true, "description": "Name", "type": "string"}, {"name": "description", "in": "formData", "required": true, "description": "Description", "type": "string"}, {"name": "price", "in": "formData", "required": true, "description": "Price", "type": "string"}, {"name": "isAvailable", "in": "formData", "required": false, "description": "Available, defaults to true", "type": "string"}, {"name": "foodItemImage", "in": "formData", "required": false, "description": "Image", "type": "file"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "403": {"description": "Error"}, "404": {"description": "Error"}}}
		},
		"/restaurants/{id}/food-items": {
			"get": {"summary": "List a restaurant's food items", "tags": ["menu"], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Restaurant ID", "type": "integer"}], "responses": {"200": {"description": "OK"}}}
		},
		"/categories/{id}/food-items": {
			"get": {"summary": "List a category's food items", "tags": ["menu"], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Category ID", "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Error"}}}
		},
		"/food-items/{id}/image": {
			"get": {"summary": "Food item image", "tags": ["menu"], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Food item ID", "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Error"}}}
		},
		"/api/orders": {
			"post": {"summary": "Place an order", "tags": ["orders"], "consumes": ["application/json"], "security": [{"BearerAuth": []}], "parameters": [{"name": "order", "in": "body", "required": true, "description": "Delivery address", "schema": {"type": "object"}}], "responses": {"201": {"description": "OK"}, "400": {"description": "Bad Request (e.g., empty cart)"}, "401": {"description": "Unauthorized: Invalid or missing token"}, "403": {"description": "Forbidden: Address belongs to another user"}, "404": {"description": "Address not found"}, "500": {"description": "Internal server error while placing the order"}}},
			"get": {"summary": "Order history", "tags": ["orders"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Error"}, "500": {"description": "Error"}}}
		},
		"/api/restaurants": {
			"post": {"summary": "Create a restaurant", "tags": ["restaurants"], "consumes": ["multipart/form-data"], "security": [{"BearerAuth": []}], "parameters": [{"name": "restaurantName", "in": "formData", "required": true, "description": "Name", "type": "string"}, {"name": "restaurantAddress", "in": "formData", "required": true, "description": "Address", "type": "string"}, {"name": "contactNumber", "in": "formData", "required": true, "description": "Contact number", "type": "string"}, {"name": "description", "in": "formData", "required": true, "description": "Description", "type": "string"}, {"name": "restaurantImage", "in": "formData", "required": true, "description": "Image", "type": "file"}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation failed"}, "403": {"description": "Restaurant owner privileges required"}}}
		},
		"/restaurants": {
			"get": {"summary": "List restaurants", "tags": ["restaurants"], "responses": {"200": {"description": "OK"}, "500": {"description": "Error"}}}
		},
		"/api/owner/restaurants": {
			"get": {"summary": "List the caller's restaurants", "tags": ["restaurants"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Error"}}}
		},
		"/restaurants/{id}": {
			"get": {"summary": "Get a restaurant", "tags": ["restaurants"], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Restaurant ID", "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Error"}}}
		},
		"/restaurants/{id}/image": {
			"get": {"summary": "Restaurant image", "tags": ["restaurants"], "parameters": [{"name": "id", "in": "path", "required": true, "description": "Restaurant ID", "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Error"}}}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Food Storefront API",
	Description:      "Restaurant listings, menus, carts and orders for the food storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
