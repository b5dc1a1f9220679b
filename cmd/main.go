// Package main is the entry point for the pizza-service application.
//
// @title           Pizza Service API
// @version         1.0.0
// @description     API for a pizza storefront: menu, live price and nutrition quotes, cart, pizza customizer, and checkout.
//
//	Customers are identified by the X-Session-ID header; the admin order dashboard sits behind JWT auth.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pizza-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Menu
// @tag.description Menu, catalog, and quote operations
//
// @tag.name        Cart
// @tag.description Session cart operations
//
// @tag.name        Customizer
// @tag.description Build-your-own pizza draft operations
//
// @tag.name        Orders
// @tag.description Checkout and order management
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/pizza-service/docs" // swagger docs

	"github.com/guttosm/pizza-service/config"
	"github.com/guttosm/pizza-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
