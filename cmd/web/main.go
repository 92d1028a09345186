package main

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/wichananm65/storefront/internal/config"
	"github.com/wichananm65/storefront/internal/landing"
	"github.com/wichananm65/storefront/internal/server"
)

// main serves the landing page data, read from the catalog API.
func main() {
	cfg := config.Load()

	app := server.New("storefront-web")

	client := landing.NewClient(cfg.APIBaseURL, cfg.FetchTimeout)
	landing.NewHandler(client).RegisterPublicRoutes(app)

	log.Infof("starting web on %s, catalog API at %s", cfg.WebAddr, cfg.APIBaseURL)
	if err := app.Listen(cfg.WebAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
