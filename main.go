package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/auth"
	"github.com/junaidrashid-git/plantas-api/backup"
	"github.com/junaidrashid-git/plantas-api/config"
	checkoutControllers "github.com/junaidrashid-git/plantas-api/controllers/checkout"
	leadControllers "github.com/junaidrashid-git/plantas-api/controllers/lead"
	"github.com/junaidrashid-git/plantas-api/logger"
	"github.com/junaidrashid-git/plantas-api/middleware"
	"github.com/junaidrashid-git/plantas-api/payment"
	"github.com/junaidrashid-git/plantas-api/routes"
	"github.com/junaidrashid-git/plantas-api/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting application", zap.String("env", cfg.AppEnv))

	// Init DB (migrates every table)
	db, err := store.Open(cfg.DSN(), cfg.IsDevelopment())
	if err != nil {
		log.Fatal("database setup failed", zap.Error(err))
	}

	checkout := checkoutControllers.NewService(checkoutControllers.Config{
		Catalog:          store.NewProjects(db, log),
		Processor:        payment.NewStripe(cfg.StripeSecretKey, log),
		Currency:         cfg.CheckoutCurrency,
		DefaultReturnURL: cfg.PublicSiteURL,
		StrictProducts:   cfg.CheckoutStrictProducts,
		Logger:           log,
	})

	// Google login stays disabled (503) until Firebase is configured.
	var verifier auth.IDTokenVerifier
	if cfg.FirebaseEnabled() {
		fv, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsJSON, cfg.FirebaseProjectID)
		if err != nil {
			log.Fatal("firebase setup failed", zap.Error(err))
		}
		verifier = fv
	} else {
		log.Warn("firebase not configured, google login disabled")
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatal("create uploads dir", zap.String("dir", cfg.UploadsDir), zap.Error(err))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.GinLogger(log), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigin, routes.PublicPreflightPaths...))

	// Project covers and galleries can be large
	r.MaxMultipartMemory = 64 << 20

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, routes.Deps{
		DB:                db,
		Log:               log,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		JWTSecret:         cfg.JWTSecret,
		AdminAPIKey:       cfg.AdminAPIKey,
		SuperAdminEmail:   cfg.SuperAdminEmail,
		UploadsDir:        cfg.UploadsDir,
		Checkout:          checkout,
		WebhookVerifier:   payment.StripeWebhookVerifier(cfg.StripeWebhookSecret),
		Leads:             store.NewLeads(db),
		LeadFeed:          leadControllers.NewHub(log),
		Accounts:          store.NewAccounts(db),
		IDVerifier:        verifier,
		Tokens:            auth.NewTokenIssuer(cfg.JWTSecret),
	})

	if cfg.BackupDir != "" {
		retention := time.Duration(cfg.BackupRetentionDays) * 24 * time.Hour
		go backup.NewScheduler(cfg.UploadsDir, cfg.BackupDir, retention, cfg.BackupHour, log).Run(ctx)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
