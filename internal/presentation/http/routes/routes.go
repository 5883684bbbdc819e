package routes

import (
	"strings"
	"time"

	"github.com/Zitro-Services-LLC/zforms-sub001/internal/config"
	domainRepo "github.com/Zitro-Services-LLC/zforms-sub001/internal/domain/repository"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/handler"
	"github.com/Zitro-Services-LLC/zforms-sub001/internal/presentation/http/middleware"
	"github.com/Zitro-Services-LLC/zforms-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Customer     *handler.CustomerHandler
	Estimate     *handler.EstimateHandler
	Invoice      *handler.InvoiceHandler
	Contract     *handler.ContractHandler
	Document     *handler.DocumentHandler
	Notification *handler.NotificationHandler
	Dashboard    *handler.DashboardHandler
	Settings     *handler.SettingsHandler
	User         *handler.UserHandler
	Report       *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware. CORS must run globally so preflight requests
	// reach it; the document endpoints use their own wildcard policy.
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())

	corsHandler := middleware.CORSMiddleware(&deps.Cfg.CORS)
	documentCORS := middleware.DocumentCORS()
	router.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/v1/documents/") {
			documentCORS(c)
			return
		}
		corsHandler(c)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// The PDF endpoint performs its own bearer check so it stays
		// reachable for clients that predate the response envelope
		v1.GET("/documents/pdf", h.Document.RenderPDF)
		v1.POST("/documents/pdf", h.Document.RenderPDF)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-contractor rate limiter
		rateLimiter := middleware.NewContractorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google/url", h.Auth.GoogleAuthURL)
		auth.POST("/google", h.Auth.GoogleLogin)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Notifications
	registerNotificationRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Estimates
	registerEstimateRoutes(protected, h, deps)

	// Invoices
	registerInvoiceRoutes(protected, h, deps)

	// Contracts
	registerContractRoutes(protected, h, deps)

	// Reports
	registerReportRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)
}

func registerNotificationRoutes(protected *gin.RouterGroup, h *Handlers) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.POST("/read-all", h.Notification.MarkAllRead)
		notifications.POST("/:id/read", h.Notification.MarkRead)
		notifications.DELETE("/:id", h.Notification.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerEstimateRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	estimates := protected.Group("/estimates")
	estimates.Use(middleware.RequirePermission("manage-estimates"))
	{
		estimates.GET("", h.Estimate.List)
		// Creation honors idempotency keys to prevent duplicate documents
		estimates.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Estimate.Create)
		estimates.GET("/:id", h.Estimate.Get)
		estimates.PUT("/:id", h.Estimate.Update)
		estimates.DELETE("/:id", h.Estimate.Delete)
		estimates.POST("/:id/submit", h.Estimate.Submit)
		estimates.POST("/:id/approve", h.Estimate.Approve)
		estimates.POST("/:id/decline", h.Estimate.Decline)
		estimates.POST("/:id/request-changes", h.Estimate.RequestChanges)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission("manage-invoices"))
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.POST("/from-estimate", h.Invoice.CreateFromEstimate)
		invoices.POST("/mark-overdue", h.Invoice.MarkOverdue)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/:id/submit", h.Invoice.Submit)
		invoices.POST("/:id/pay", h.Invoice.MarkPaid)
		invoices.POST("/:id/cancel", h.Invoice.Cancel)
	}
}

func registerContractRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	contracts := protected.Group("/contracts")
	contracts.Use(middleware.RequirePermission("manage-contracts"))
	{
		contracts.GET("", h.Contract.List)
		contracts.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Contract.Create)
		contracts.POST("/from-estimate", h.Contract.CreateFromEstimate)
		contracts.GET("/:id", h.Contract.Get)
		contracts.PUT("/:id", h.Contract.Update)
		contracts.DELETE("/:id", h.Contract.Delete)
		contracts.POST("/:id/send", h.Contract.Send)
		contracts.POST("/:id/sign", h.Contract.Sign)
		contracts.POST("/:id/decline", h.Contract.Decline)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/estimates", h.Report.ExportEstimates)
		reports.GET("/invoices", h.Report.ExportInvoices)
		reports.GET("/contracts", h.Report.ExportContracts)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
