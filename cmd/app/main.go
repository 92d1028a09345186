package main

import (
	"github.com/gofiber/fiber/v2/log"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/wichananm65/storefront/internal/banner"
	"github.com/wichananm65/storefront/internal/category"
	"github.com/wichananm65/storefront/internal/config"
	"github.com/wichananm65/storefront/internal/database"
	"github.com/wichananm65/storefront/internal/product"
	"github.com/wichananm65/storefront/internal/server"
)

// main wires the catalog API: Postgres repositories, services and handlers.
func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db, cfg.PromotedCategories); err != nil {
		log.Fatalf("database: %v", err)
	}

	app := server.New("storefront-api")

	bannerHandler := banner.NewHandler(banner.NewService(banner.NewPostgresRepository(db)))
	bannerHandler.RegisterPublicRoutes(app)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	productHandler.RegisterPublicRoutes(app)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	categoryHandler.RegisterPublicRoutes(app)

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, protected routes are disabled")
	} else {
		app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))
		bannerHandler.RegisterProtectedRoutes(app)
	}

	log.Infof("starting catalog API on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
