package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	billingapp "github.com/agency/backend/internal/application/billing"
	clientapp "github.com/agency/backend/internal/application/client"
	directoryapp "github.com/agency/backend/internal/application/directory"
	importapp "github.com/agency/backend/internal/application/import"
	messagingapp "github.com/agency/backend/internal/application/messaging"
	notificationapp "github.com/agency/backend/internal/application/notification"
	planningapp "github.com/agency/backend/internal/application/planning"
	publicationapp "github.com/agency/backend/internal/application/publication"
	taskapp "github.com/agency/backend/internal/application/task"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/calendar"
	"github.com/agency/backend/internal/infrastructure/config"
	"github.com/agency/backend/internal/infrastructure/extraction"
	"github.com/agency/backend/internal/infrastructure/logger"
	"github.com/agency/backend/internal/infrastructure/notify"
	"github.com/agency/backend/internal/infrastructure/persistence"
	"github.com/agency/backend/internal/infrastructure/scheduler"
	"github.com/agency/backend/internal/interfaces/http/handler"
	"github.com/agency/backend/internal/interfaces/http/middleware"
	"github.com/agency/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Agency Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Redis is used only for notification broadcast; a missing broker
	// degrades to store-only notifications.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable, notifications will not be broadcast", zap.Error(err))
		_ = redisClient.Close()
		redisClient = nil
	} else {
		defer func() {
			_ = redisClient.Close()
		}()
	}
	cancelPing()

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	publicationRepo := persistence.NewGormPublicationRepository(db.DB)
	noteRepo := persistence.NewGormNoteRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	planningRepo := persistence.NewGormPlanningRepository(db.DB)
	templateRepo := persistence.NewGormTemplateRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	priceRepo := persistence.NewGormPackagePriceRepository(db.DB)
	designerRepo := persistence.NewGormDesignerRepository(db.DB)
	linkRepo := persistence.NewGormClientLinkRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Shared infrastructure
	guard := shared.NewOperationGuard()
	dispatcher := notify.NewDispatcher(notificationRepo, redisClient, log)

	// Calendar sync is optional; without a base URL publications are kept
	// local only.
	var calendarClient publicationapp.CalendarClient
	if cfg.Calendar.BaseURL != "" {
		calendarClient = calendar.NewClient(&cfg.Calendar)
		log.Info("Calendar sync enabled", zap.String("calendar_id", cfg.Calendar.CalendarID))
	}

	// The extractor is nil without an API key, which disables the AI
	// import endpoints with a clear error instead of failing at startup.
	var extractor importapp.Extractor
	if e := extraction.NewOpenAIExtractor(&cfg.OpenAI); e != nil {
		extractor = e
		log.Info("AI extraction enabled", zap.String("model", cfg.OpenAI.Model))
	}

	// Application services
	clientService := clientapp.NewClientService(clientRepo, guard, dispatcher)
	publicationService := publicationapp.NewPublicationService(
		publicationRepo, noteRepo, calendarClient, cfg.Calendar.CalendarID, guard, dispatcher)
	taskService := taskapp.NewTaskService(taskRepo, dispatcher)
	planningService := planningapp.NewPlanningService(planningRepo)
	messagingService := messagingapp.NewMessagingService(templateRepo, clientRepo, cfg.Messaging.DefaultCountryCode)
	billingService := billingapp.NewBillingService(invoiceRepo, priceRepo)
	directoryService := directoryapp.NewDirectoryService(designerRepo, linkRepo)
	notificationService := notificationapp.NewNotificationService(notificationRepo)
	importService := importapp.NewPublicationImportService(extractor, clientRepo, publicationRepo)

	// Reminder scheduler
	if cfg.Scheduler.Enabled {
		reminderScheduler := scheduler.NewReminderScheduler(scheduler.ReminderSchedulerConfig{
			PollInterval: cfg.Scheduler.ReminderPollInterval,
		}, taskService, log)
		if err := reminderScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start reminder scheduler", zap.Error(err))
		}
		defer func() {
			if err := reminderScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping reminder scheduler", zap.Error(err))
			}
		}()
		log.Info("Reminder scheduler started",
			zap.Duration("poll_interval", cfg.Scheduler.ReminderPollInterval))
	}

	// HTTP handlers
	clientHandler := handler.NewClientHandler(clientService)
	publicationHandler := handler.NewPublicationHandler(publicationService)
	taskHandler := handler.NewTaskHandler(taskService)
	planningHandler := handler.NewPlanningHandler(planningService)
	messagingHandler := handler.NewMessagingHandler(messagingService)
	billingHandler := handler.NewBillingHandler(billingService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	importHandler := handler.NewImportHandler(importService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint outside API versioning
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	clientRoutes := router.NewDomainGroup("/clients")
	clientRoutes.POST("", clientHandler.Create)
	clientRoutes.GET("", clientHandler.List)
	clientRoutes.GET("/:id", clientHandler.Get)
	clientRoutes.PATCH("/:id", clientHandler.UpdateBasicInfo)
	clientRoutes.PATCH("/:id/info", clientHandler.UpdateInfo)
	clientRoutes.DELETE("/:id", clientHandler.Delete)
	clientRoutes.POST("/:id/packages", clientHandler.AddPackage)
	clientRoutes.PATCH("/:id/packages/:packageId", clientHandler.EditPackage)
	clientRoutes.DELETE("/:id/packages/:packageId", clientHandler.DeletePackage)
	clientRoutes.POST("/:id/packages/:packageId/toggle-paid", clientHandler.TogglePackagePaid)
	clientRoutes.POST("/:id/packages/:packageId/increment", clientHandler.IncrementPackage)
	clientRoutes.POST("/:id/packages/:packageId/decrement", clientHandler.DecrementPackage)

	publicationRoutes := router.NewDomainGroup("/publications")
	publicationRoutes.POST("", publicationHandler.Create)
	publicationRoutes.GET("", publicationHandler.List)
	publicationRoutes.GET("/calendar", publicationHandler.Calendar)
	publicationRoutes.GET("/trash", publicationHandler.ListTrash)
	publicationRoutes.POST("/trash/:id/restore", publicationHandler.Restore)
	publicationRoutes.PATCH("/notes/:noteId", publicationHandler.UpdateNote)
	publicationRoutes.DELETE("/notes/:noteId", publicationHandler.DeleteNote)
	publicationRoutes.GET("/:id", publicationHandler.Get)
	publicationRoutes.PATCH("/:id", publicationHandler.Update)
	publicationRoutes.PUT("/:id/status", publicationHandler.SetStatus)
	publicationRoutes.DELETE("/:id", publicationHandler.Delete)
	publicationRoutes.POST("/:id/notes", publicationHandler.AddNote)
	publicationRoutes.GET("/:id/notes", publicationHandler.ListNotes)

	taskRoutes := router.NewDomainGroup("/tasks")
	taskRoutes.POST("", taskHandler.Create)
	taskRoutes.GET("", taskHandler.List)
	taskRoutes.GET("/:id", taskHandler.Get)
	taskRoutes.PATCH("/:id", taskHandler.Update)
	taskRoutes.POST("/:id/toggle", taskHandler.ToggleCompleted)
	taskRoutes.DELETE("/:id", taskHandler.Delete)

	planningRoutes := router.NewDomainGroup("/planning")
	planningRoutes.GET("", planningHandler.Grid)
	planningRoutes.GET("/clients/:id", planningHandler.History)
	planningRoutes.DELETE("/clients/:id", planningHandler.Clear)
	planningRoutes.PUT("/status", planningHandler.SetStatus)
	planningRoutes.POST("/cycle", planningHandler.CycleStatus)
	planningRoutes.PUT("/description", planningHandler.SetDescription)

	messagingRoutes := router.NewDomainGroup("/messaging")
	messagingRoutes.POST("/templates", messagingHandler.CreateTemplate)
	messagingRoutes.GET("/templates", messagingHandler.ListTemplates)
	messagingRoutes.PUT("/templates/:id", messagingHandler.UpdateTemplate)
	messagingRoutes.DELETE("/templates/:id", messagingHandler.DeleteTemplate)
	messagingRoutes.POST("/preview", messagingHandler.Preview)
	messagingRoutes.POST("/bulk-send", messagingHandler.BulkSend)

	billingRoutes := router.NewDomainGroup("/billing")
	billingRoutes.POST("/invoices", billingHandler.CreateInvoice)
	billingRoutes.GET("/invoices", billingHandler.ListInvoices)
	billingRoutes.GET("/invoices/:id", billingHandler.GetInvoice)
	billingRoutes.POST("/invoices/:id/paid", billingHandler.MarkInvoicePaid)
	billingRoutes.POST("/invoices/:id/reopen", billingHandler.ReopenInvoice)
	billingRoutes.DELETE("/invoices/:id", billingHandler.DeleteInvoice)
	billingRoutes.POST("/prices", billingHandler.CreatePrice)
	billingRoutes.GET("/prices", billingHandler.ListPrices)
	billingRoutes.PUT("/prices/:id", billingHandler.UpdatePrice)
	billingRoutes.DELETE("/prices/:id", billingHandler.DeletePrice)

	directoryRoutes := router.NewDomainGroup("/directory")
	directoryRoutes.POST("/designers", directoryHandler.CreateDesigner)
	directoryRoutes.GET("/designers", directoryHandler.ListDesigners)
	directoryRoutes.PUT("/designers/:id", directoryHandler.UpdateDesigner)
	directoryRoutes.DELETE("/designers/:id", directoryHandler.DeleteDesigner)
	directoryRoutes.POST("/clients/:id/links", directoryHandler.AddClientLink)
	directoryRoutes.GET("/clients/:id/links", directoryHandler.ListClientLinks)
	directoryRoutes.PUT("/links/:linkId", directoryHandler.UpdateClientLink)
	directoryRoutes.DELETE("/links/:linkId", directoryHandler.DeleteClientLink)

	notificationRoutes := router.NewDomainGroup("/notifications")
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.POST("/read-all", notificationHandler.MarkAllRead)
	notificationRoutes.POST("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.DELETE("/:id", notificationHandler.Delete)

	importRoutes := router.NewDomainGroup("/import")
	importRoutes.POST("/extract", importHandler.Extract)
	importRoutes.POST("/commit", importHandler.Commit)

	systemRoutes := router.NewDomainGroup("/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(clientRoutes).
		Register(publicationRoutes).
		Register(taskRoutes).
		Register(planningRoutes).
		Register(messagingRoutes).
		Register(billingRoutes).
		Register(directoryRoutes).
		Register(notificationRoutes).
		Register(importRoutes).
		Register(systemRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for the root health check endpoint
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
