package main

import (
	"log"
	"os"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/application/service"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/config"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/infrastructure/database"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/infrastructure/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/infrastructure/storage"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/handler"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/routes"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/email"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/oauth"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)
	estimateItemRepo := repository.NewEstimateItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceItemRepo := repository.NewInvoiceItemRepository(db)
	contractRepo := repository.NewContractRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize blob storage for rendered documents
	var blobStorage storage.BlobStorage
	if cfg.Storage.S3Enabled {
		blobStorage, err = storage.NewS3Storage(cfg.Storage.S3Region, cfg.Storage.S3Bucket)
		if err != nil {
			log.Printf("Warning: Failed to initialize S3 storage: %v", err)
			blobStorage = storage.NewNullStorage()
		}
	} else {
		blobStorage = storage.NewNullStorage()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, contractorRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	customerService := service.NewCustomerService(customerRepo)
	estimateService := service.NewEstimateService(estimateRepo, estimateItemRepo, customerRepo, notificationRepo, emailService)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceItemRepo, estimateRepo, customerRepo, notificationRepo, emailService)
	contractService := service.NewContractService(contractRepo, estimateRepo, customerRepo, notificationRepo)
	documentService := service.NewDocumentService(estimateRepo, invoiceRepo, contractRepo, contractorRepo, blobStorage)
	notificationService := service.NewNotificationService(notificationRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	reportService := service.NewReportService(estimateRepo, invoiceRepo, contractRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Customer:     handler.NewCustomerHandler(customerService),
		Estimate:     handler.NewEstimateHandler(estimateService),
		Invoice:      handler.NewInvoiceHandler(invoiceService),
		Contract:     handler.NewContractHandler(contractService),
		Document:     handler.NewDocumentHandler(documentService, jwtManager),
		Notification: handler.NewNotificationHandler(notificationService),
		Dashboard:    handler.NewDashboardHandler(dashboardService, invoiceService),
		Settings:     handler.NewSettingsHandler(settingsService),
		User:         handler.NewUserHandler(userService),
		Report:       handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
