package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/kaudaouda/Anac-backend/internal/app"
	"github.com/kaudaouda/Anac-backend/internal/config"
	"github.com/kaudaouda/Anac-backend/internal/controllers"
	"github.com/kaudaouda/Anac-backend/internal/middleware"
	"github.com/kaudaouda/Anac-backend/internal/repositories"
	"github.com/kaudaouda/Anac-backend/internal/seeding"
	"github.com/kaudaouda/Anac-backend/internal/services"
	"github.com/kaudaouda/Anac-backend/internal/utils"
)

const serviceName = "anac-backend"

func main() {
	utils.InitLogger(serviceName)
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("failed to initialize application")
	}
	defer application.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(application.DB)
	blacklistRepo := repositories.NewBlacklistRepository(application.DB)
	resetRepo := repositories.NewPasswordResetRepository(application.DB)
	droneRepo := repositories.NewDroneRepository(application.DB)
	carouselRepo := repositories.NewCarouselRepository(application.DB)
	geodataRepo := repositories.NewGeodataRepository(application.DB)

	// Services
	jwtService := services.NewJWTService(cfg.JWTSecretKey, cfg.JWTIssuer,
		cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry, blacklistRepo)
	authService := services.NewAuthService(userRepo, resetRepo, jwtService)
	droneService := services.NewDroneService(droneRepo)
	carouselService := services.NewCarouselService(carouselRepo)
	zoneService := services.NewZoneService(geodataRepo)
	cleanupService := services.NewCleanupService(blacklistRepo, resetRepo)

	if cfg.SeedGeodata {
		if err := seeding.Run(ctx, geodataRepo); err != nil {
			utils.Logger.WithError(err).Fatal("geodata seeding failed")
		}
	}

	// Controllers
	secureCookie := !cfg.DevMode
	authMw := middleware.NewAuthMiddleware(jwtService, authService)
	authController := controllers.NewAuthController(authService, jwtService, secureCookie)
	droneController := controllers.NewDroneController(droneService)
	carouselController := controllers.NewCarouselController(carouselService)
	geodataController := controllers.NewGeodataController(geodataRepo, zoneService)
	healthController := controllers.NewHealthController(serviceName)

	router := buildRouter(authMw, authController, droneController, carouselController,
		geodataController, healthController)

	// Nightly purge of dead blacklist rows and stale reset tokens.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		cleanupService.Run(context.Background())
	}); err != nil {
		utils.Logger.WithError(err).Fatal("failed to schedule cleanup job")
	}
	scheduler.Start()
	defer scheduler.Stop()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Infof("listening on :%s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	utils.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("graceful shutdown failed")
	}
}

func buildRouter(
	authMw *middleware.AuthMiddleware,
	auth *controllers.AuthController,
	drones *controllers.DroneController,
	carousel *controllers.CarouselController,
	geodata *controllers.GeodataController,
	health *controllers.HealthController,
) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	// Session lifecycle
	authRouter := api.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", auth.Register).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", auth.Login).Methods(http.MethodPost)
	authRouter.HandleFunc("/logout", auth.Logout).Methods(http.MethodPost)
	authRouter.HandleFunc("/refresh-token", auth.RefreshToken).Methods(http.MethodPost)
	authRouter.Handle("/check-auth", authMw.Optional(http.HandlerFunc(auth.CheckAuth))).Methods(http.MethodGet)
	authRouter.HandleFunc("/password-reset", auth.RequestPasswordReset).Methods(http.MethodPost)
	authRouter.HandleFunc("/password-reset/confirm", auth.ConfirmPasswordReset).Methods(http.MethodPost)

	// Account management (authenticated)
	authRouter.Handle("/profile", authMw.Require(http.HandlerFunc(auth.Profile))).Methods(http.MethodGet)
	authRouter.Handle("/profile", authMw.Require(http.HandlerFunc(auth.UpdateProfile))).Methods(http.MethodPut)
	authRouter.Handle("/change-password", authMw.Require(http.HandlerFunc(auth.ChangePassword))).Methods(http.MethodPost)

	// Drone registry (authenticated)
	droneRouter := api.PathPrefix("/drones").Subrouter()
	droneRouter.Use(authMw.Require)
	droneRouter.HandleFunc("", drones.List).Methods(http.MethodGet)
	droneRouter.HandleFunc("", drones.Create).Methods(http.MethodPost)
	droneRouter.HandleFunc("/{id}", drones.Get).Methods(http.MethodGet)
	droneRouter.HandleFunc("/{id}", drones.Update).Methods(http.MethodPut)
	droneRouter.HandleFunc("/{id}", drones.Delete).Methods(http.MethodDelete)
	droneRouter.HandleFunc("/{id}/flights", drones.ListFlights).Methods(http.MethodGet)
	droneRouter.HandleFunc("/{id}/flights", drones.LogFlight).Methods(http.MethodPost)

	// Public reference data
	api.HandleFunc("/carousel", carousel.ListPublic).Methods(http.MethodGet)
	api.HandleFunc("/geodata/airports", geodata.ListAirports).Methods(http.MethodGet)
	api.HandleFunc("/geodata/protected-areas", geodata.ListProtectedAreas).Methods(http.MethodGet)
	api.HandleFunc("/zones/check", geodata.CheckZone).Methods(http.MethodGet)

	// Staff surfaces
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(authMw.Require, authMw.RequireStaff)
	adminRouter.HandleFunc("/carousel", carousel.ListAll).Methods(http.MethodGet)
	adminRouter.HandleFunc("/carousel", carousel.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/carousel/{id}", carousel.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/carousel/{id}", carousel.Delete).Methods(http.MethodDelete)

	return router
}
