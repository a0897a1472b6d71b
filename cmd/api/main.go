package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"sportrent/internal/config"
	"sportrent/internal/database"
	"sportrent/internal/middleware"
	"sportrent/internal/modules/auth"
	"sportrent/internal/modules/catalog"
	"sportrent/internal/modules/notify"
	"sportrent/internal/modules/reservation"
	jwtsvc "sportrent/internal/pkg/jwt"
	"sportrent/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(itemRepo, categoryRepo, reservationRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, itemRepo, userRepo, notify.NewSender(hub))
	reservationHandler := reservation.NewHandler(reservationService)

	notifyHandler := notify.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterAdminRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			notifyHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
