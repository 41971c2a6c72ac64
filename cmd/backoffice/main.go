package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/api"
	"github.com/voyago/backoffice/internal/auth"
	"github.com/voyago/backoffice/internal/bookings"
	"github.com/voyago/backoffice/internal/config"
	"github.com/voyago/backoffice/internal/customers"
	"github.com/voyago/backoffice/internal/dashboard"
	"github.com/voyago/backoffice/internal/database"
	"github.com/voyago/backoffice/internal/destinations"
	"github.com/voyago/backoffice/internal/i18n"
	"github.com/voyago/backoffice/internal/notifications"
	"github.com/voyago/backoffice/internal/packages"
	"github.com/voyago/backoffice/internal/payments"
	"github.com/voyago/backoffice/internal/uploads"
	"github.com/voyago/backoffice/internal/users"
	"github.com/voyago/backoffice/pkg/logger"
	"github.com/voyago/backoffice/pkg/validation"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	sanitizer := validation.NewSanitizer()
	translator := i18n.NewTranslator()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpirationHours)

	usersRepo := users.NewRepository(db)
	customersRepo := customers.NewRepository(db)
	destinationsRepo := destinations.NewRepository(db)
	packagesRepo := packages.NewRepository(db)
	bookingsRepo := bookings.NewRepository(db)
	paymentsRepo := payments.NewRepository(db)
	notificationsRepo := notifications.NewRepository(db)

	uploadsSvc, err := uploads.NewService(log, cfg.Uploads.Dir, cfg.Uploads.URLPrefix, cfg.Uploads.MaxSizeMB)
	if err != nil {
		log.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	svc := api.Services{
		Auth:          auth.NewService(log, usersRepo, tokens, cfg.Auth.BcryptCost),
		Users:         users.NewService(log, usersRepo, cfg.Auth.BcryptCost),
		Customers:     customers.NewService(log, customersRepo, usersRepo),
		Destinations:  destinations.NewService(log, destinationsRepo, sanitizer),
		Packages:      packages.NewService(log, packagesRepo, destinationsRepo, sanitizer),
		Bookings:      bookings.NewService(log, bookingsRepo, customersRepo, packagesRepo),
		Payments:      payments.NewService(log, paymentsRepo, bookingsRepo, sanitizer),
		Notifications: notifications.NewService(log, notificationsRepo, usersRepo, sanitizer),
		Dashboard:     dashboard.NewService(log, db, bookingsRepo, paymentsRepo),
		Uploads:       uploadsSvc,
	}

	server := api.NewServer(log, translator, tokens, svc)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting API server", zap.String("addr", cfg.Server.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
