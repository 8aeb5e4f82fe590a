// cmd/main.go
package main

import (
	"food-storefront/app"
)

// @title           Food Storefront API
// @version         1.0
// @description     Restaurant listings, menus, carts and orders for the food storefront.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
