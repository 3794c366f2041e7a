// Package main is the entry point for the bakery-service application.
//
// By default it runs the interactive storefront on the terminal. With
// --serve it starts the HTTP API instead.
//
// @title           Bakery Service API
// @version         1.0.0
// @description     API for browsing the bakery catalog, filling carts and checking out.
//
//	Customers pick baked goods by name, configure cakes with frosting, filling
//	and layers, and receive an itemized receipt at checkout.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/bakery-service
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
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Staff JWT for catalog administration, sent as "Bearer {token}".
//
// @tag.name        Catalog
// @tag.description Catalog browsing operations
//
// @tag.name        Carts
// @tag.description Cart and checkout operations
//
// @tag.name        Catalog Admin
// @tag.description Stored catalog administration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"flag"
	"os"

	_ "github.com/guttosm/bakery-service/docs" // swagger docs

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API instead of the interactive storefront")
	flag.Parse()

	cfg := config.Load()

	if !*serve {
		if err := app.RunStorefront(cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Storefront session error")
		}
		return
	}

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
