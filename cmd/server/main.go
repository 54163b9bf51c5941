package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"toolshare-backend/internal/api/httpapi"
	"toolshare-backend/internal/config"
	"toolshare-backend/internal/logger"
	"toolshare-backend/internal/repository"
	"toolshare-backend/internal/repository/docstore"
	"toolshare-backend/internal/repository/postgres"
	"toolshare-backend/internal/security"
	"toolshare-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Toolshare Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize document store
	var reviewStore repository.ReviewStore
	if cfg.Firestore.ProjectID != "" {
		fsStore, closeStore, err := docstore.NewFirestoreStore(context.Background(), cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			logger.Error("Failed to connect to firestore", "error", err)
			log.Fatalf("Failed to connect to firestore: %v", err)
		}
		defer closeStore()
		reviewStore = fsStore
		logger.Info("Firestore document store connected", "project_id", cfg.Firestore.ProjectID)
	} else {
		logger.Info("Using in-memory document store")
		reviewStore = docstore.NewMemoryStore()
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.AdminLogRepository)
	toolSvc := service.NewToolService(store.ToolRepository, store.CategoryRepository, store.AdminLogRepository)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	chatSvc := service.NewChatService(store.ChatRepository, store.MessageRepository, store.ToolRepository, store.UserRepository)
	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.ChatRepository,
		store.MessageRepository,
		store.ToolRepository,
		store.UserRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		emailSvc,
	)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ToolRepository)
	ratingSvc := service.NewRatingService(store.RatingRepository, store.ToolRepository)
	reviewSvc := service.NewReviewService(reviewStore, store.ToolRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	adminSvc := service.NewAdminService(store.ToolRepository, store.UserRepository, store.RentalRepository, store.AdminLogRepository)
	backupSvc := service.NewBackupService(cfg.Backup.Dir, store.UserRepository, store.ToolRepository, store.BackupConfigRepository, store.AdminLogRepository)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Users:         userSvc,
		Tools:         toolSvc,
		Categories:    categorySvc,
		Chats:         chatSvc,
		Requests:      requestSvc,
		Rentals:       rentalSvc,
		Ratings:       ratingSvc,
		Reviews:       reviewSvc,
		Notifications: noteSvc,
		Admin:         adminSvc,
		Backups:       backupSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
