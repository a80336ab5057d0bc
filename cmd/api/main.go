package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"leadhub/internal/config"
	"leadhub/internal/database"
	"leadhub/internal/domain"
	"leadhub/internal/middleware"
	"leadhub/internal/modules/auth"
	"leadhub/internal/modules/conversion"
	"leadhub/internal/modules/events"
	"leadhub/internal/modules/lead"
	jwtsvc "leadhub/internal/pkg/jwt"
	"leadhub/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store := repository.NewStore(db)
	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authService := auth.NewService(store.Users, j)
	authHandler := auth.NewHandler(authService)

	leadService := lead.NewService(store.Leads)
	leadHandler := lead.NewHandler(leadService)

	hub := events.NewHub()
	eventsHandler := events.NewHandler(hub)

	conversionService := conversion.NewService(store)
	conversionHandler := conversion.NewHandler(conversionService, hub)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		leadHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			leadHandler.RegisterProtectedRoutes(protected)
			conversionHandler.RegisterRoutes(protected)

			// The live feed drives manager dashboards.
			feed := protected.Group("/")
			feed.Use(middleware.RequireRole(string(domain.RoleManager), string(domain.RoleAdmin)))
			eventsHandler.RegisterRoutes(feed)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
