package routes

import (
	"fmt"

	"garage-backend/internal/api/handlers"
	"garage-backend/internal/api/middleware"
	"garage-backend/internal/auth"
	"garage-backend/internal/config"
	"garage-backend/internal/database/models"
	"garage-backend/internal/ratelimit"
	"garage-backend/internal/realtime"
	"garage-backend/internal/repository"
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. rdb may be nil,
// in which case rate limiting is disabled. The returned hub must be closed on shutdown.
func SetupRoutes(db *gorm.DB, cfg *config.Config, rdb *redis.Client) (*gin.Engine, *realtime.Hub, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestContext())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.NewHTTPMetrics(registry).Handler())
	}

	var limiter middleware.Limiter
	if rdb != nil {
		limiter = ratelimit.NewRedisLimiter(rdb)
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	membershipRequestRepo := repository.NewMembershipRequestRepository(db)
	cardRepo := repository.NewCardRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	workItemRepo := repository.NewWorkItemRepository(db)
	stockRepo := repository.NewStockRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	preferenceRepo := repository.NewNotificationPreferenceRepository(db)
	activityLogRepo := repository.NewActivityLogRepository(db)
	webhookRepo := repository.NewWebhookRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Audit trail and event delivery are shared by the domain services
	activityLogService := service.NewActivityLogService(activityLogRepo, validator)
	webhookService := service.NewWebhookService(webhookRepo, validator, cfg.WebhookTimeout)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo, activityLogService, validator)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	hub := realtime.NewHub(authService, cfg.AllowedOrigins, registry)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo, preferenceRepo, hub, validator)
	cardService := service.NewCardService(cardRepo, stockRepo, validator, activityLogService, webhookService)
	quoteService := service.NewQuoteService(quoteRepo, stockRepo, validator, activityLogService, webhookService)
	workItemService := service.NewWorkItemService(workItemRepo, cardRepo, quoteRepo, stockRepo, validator)
	stockService := service.NewStockService(stockRepo, validator, activityLogService)
	suggestionService := service.NewSuggestionService(suggestionRepo, notificationService, validator)
	accountService := service.NewAccountService(userRepo, membershipRequestRepo, notificationService, validator)
	backupService := service.NewBackupService(cardRepo, quoteRepo, stockRepo, backupRepo)
	archiveService := service.NewArchiveService(cardRepo, activityLogService)
	contactService := service.NewContactService(notificationService, validator, cfg.AdminTenantID, cfg.AdminUsername)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, rdb)
	authHandler := auth.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService)
	cardHandler := handlers.NewCardHandler(cardService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	workItemHandler := handlers.NewWorkItemHandler(workItemService)
	stockHandler := handlers.NewStockHandler(stockService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	activityLogHandler := handlers.NewActivityLogHandler(activityLogService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	backupHandler := handlers.NewBackupHandler(backupService)
	archiveHandler := handlers.NewArchiveHandler(archiveService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Live notifications; the token travels as a query parameter
	router.GET("/ws", hub.ServeWS)

	requireAuth := authMiddleware.RequireAuth()
	authLimit := middleware.RateLimit(limiter, "auth", cfg.RateLimitAuth, cfg.RateLimitWindow)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiter, "global", cfg.RateLimitGlobal, cfg.RateLimitWindow))
	{
		// Auth routes: registration and login are public
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("", authLimit, authHandler.Register)
			authGroup.POST("/control", authLimit, authHandler.Login)
			authGroup.POST("/admin/control", authLimit, authHandler.AdminLogin)
			authGroup.GET("/refresh", authHandler.Refresh)

			authGroup.PUT("/change-password", requireAuth, authHandler.ChangePassword)
			authGroup.POST("/logout", requireAuth, authHandler.Logout)
			authGroup.GET("/profile", requireAuth, accountHandler.GetProfile)
			authGroup.PUT("/profile", requireAuth, accountHandler.UpdateProfile)
			authGroup.GET("/membership", requireAuth, accountHandler.Membership)
			authGroup.POST("/select-membership-plan", requireAuth, accountHandler.SelectPlan)
		}

		v1.POST("/contact", contactHandler.SendMessage)

		protected := v1.Group("")
		protected.Use(requireAuth)
		{
			suggestions := protected.Group("/oneri")
			{
				suggestions.POST("", suggestionHandler.CreateSuggestion)
				suggestions.GET("", suggestionHandler.ListSuggestions)
				suggestions.GET("/:id", suggestionHandler.GetSuggestion)
				suggestions.PATCH("/:id", suggestionHandler.UpdateSuggestion)
				suggestions.DELETE("/:id", suggestionHandler.DeleteSuggestion)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
				notifications.PATCH("/:id/read", notificationHandler.MarkRead)
				notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			}

			preferences := protected.Group("/notification-preferences")
			{
				preferences.GET("", notificationHandler.GetPreferences)
				preferences.PATCH("", notificationHandler.UpdatePreferences)
			}

			logs := protected.Group("/log")
			{
				logs.GET("/son-hareketler", activityLogHandler.RecentActivity)
				logs.POST("/create", activityLogHandler.CreateEntry)
			}

			webhooks := protected.Group("/webhook")
			{
				webhooks.POST("/register", webhookHandler.RegisterWebhook)
				webhooks.GET("", webhookHandler.ListWebhooks)
				webhooks.GET("/:id", webhookHandler.GetWebhook)
				webhooks.PATCH("/:id", webhookHandler.UpdateWebhook)
				webhooks.DELETE("/:id", webhookHandler.DeleteWebhook)
				webhooks.POST("/trigger/:event", webhookHandler.TriggerWebhook)
			}
		}

		// Tenant data routes need a paid membership when enforcement is on
		tenantData := v1.Group("")
		tenantData.Use(requireAuth)
		if cfg.MembershipEnforced {
			tenantData.Use(authMiddleware.RequireActiveMembership(accountService))
		}
		{
			cards := tenantData.Group("/card")
			{
				cards.POST("", cardHandler.CreateCard)
				cards.GET("", cardHandler.ListCards)
				cards.DELETE("/delAll", cardHandler.DeleteAllCards)
				cards.POST("/update-card/:id", cardHandler.ReplaceWorkItems)
				cards.GET("/:id", cardHandler.GetCard)
				cards.GET("/:id/yapilanlar", cardHandler.GetCard)
				cards.PATCH("/:id", cardHandler.UpdateCard)
				cards.PATCH("/:id/yapilanlar", cardHandler.ReplaceWorkItems)
				cards.DELETE("/:id", cardHandler.DeleteCard)
			}

			quotes := tenantData.Group("/teklif")
			{
				quotes.POST("", quoteHandler.CreateQuote)
				quotes.GET("", quoteHandler.ListQuotes)
				quotes.DELETE("/delAll", quoteHandler.DeleteAllQuotes)
				quotes.GET("/:id", quoteHandler.GetQuote)
				quotes.GET("/:id/yapilanlar", quoteHandler.GetQuote)
				quotes.PATCH("/:id", quoteHandler.UpdateQuote)
				quotes.PATCH("/:id/yapilanlar", quoteHandler.ReplaceWorkItems)
				quotes.POST("/:id/convert", quoteHandler.ConvertToCard)
				quotes.DELETE("/:id", quoteHandler.DeleteQuote)
			}

			workItems := tenantData.Group("/yapilanlar")
			{
				workItems.POST("", workItemHandler.CreateWorkItem)
				workItems.GET("", workItemHandler.ListWorkItems)
				workItems.GET("/:id", workItemHandler.GetWorkItem)
				workItems.PATCH("/:id", workItemHandler.UpdateWorkItem)
				workItems.DELETE("/:id", workItemHandler.DeleteWorkItem)
			}

			stock := tenantData.Group("/stok")
			{
				stock.POST("", stockHandler.CreateStock)
				stock.GET("", stockHandler.ListStock)
				stock.DELETE("/delAll", stockHandler.DeleteAllStock)
				stock.GET("/:id", stockHandler.GetStock)
				stock.PATCH("/:id", stockHandler.UpdateStock)
				stock.PATCH("/:id/adet/:operation", stockHandler.AdjustQuantity)
				stock.DELETE("/:id", stockHandler.DeleteStock)
			}

			backups := tenantData.Group("/backup")
			{
				backups.POST("/create", backupHandler.CreateBackup)
				backups.POST("/restore", backupHandler.RestoreBackup)
				backups.GET("/list", backupHandler.ListBackups)
			}

			archive := tenantData.Group("/archive")
			{
				archive.POST("/cards/:daysOld", archiveHandler.ArchiveCards)
				archive.POST("/logs/:daysOld", archiveHandler.ArchiveLogs)
			}
		}

		admin := v1.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			admin.GET("/users", accountHandler.ListUsers)
			admin.PUT("/users/:id/toggle-active", accountHandler.SetActive)
			admin.DELETE("/users/:id", accountHandler.DeleteUser)
			admin.POST("/users/:id/add-membership", accountHandler.AddMembership)

			admin.GET("/membership-requests", accountHandler.ListMembershipRequests)
			admin.POST("/membership-requests/:id/approve", accountHandler.ApproveMembershipRequest)
			admin.POST("/membership-requests/:id/reject", accountHandler.RejectMembershipRequest)

			admin.GET("/oneriler", suggestionHandler.ListForReview)
			admin.PATCH("/oneriler/:id/approve", suggestionHandler.ApproveSuggestion)
			admin.PATCH("/oneriler/:id/reject", suggestionHandler.RejectSuggestion)
		}
	}

	return router, hub, nil
}
