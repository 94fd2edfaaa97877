package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/dovepeak/backend/internal/application/billing"
	identityapp "github.com/dovepeak/backend/internal/application/identity"
	maintenanceapp "github.com/dovepeak/backend/internal/application/maintenance"
	notificationapp "github.com/dovepeak/backend/internal/application/notification"
	propertyapp "github.com/dovepeak/backend/internal/application/property"
	reportapp "github.com/dovepeak/backend/internal/application/report"
	tenancyapp "github.com/dovepeak/backend/internal/application/tenancy"
	"github.com/dovepeak/backend/internal/infrastructure/auth"
	"github.com/dovepeak/backend/internal/infrastructure/config"
	"github.com/dovepeak/backend/internal/infrastructure/logger"
	"github.com/dovepeak/backend/internal/infrastructure/notifier"
	"github.com/dovepeak/backend/internal/infrastructure/persistence"
	"github.com/dovepeak/backend/internal/interfaces/http/handler"
	"github.com/dovepeak/backend/internal/interfaces/http/middleware"
	"github.com/dovepeak/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// overdueSweepInterval controls how often pending payments are checked
// against their due dates.
const overdueSweepInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting Dovepeak Property Management backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Record store
	store, err := persistence.NewStore(cfg.Storage.DataDir, log)
	if err != nil {
		log.Fatal("Failed to initialize record store", zap.Error(err))
	}
	if !store.Available() {
		log.Warn("Record store unavailable; running with empty collections and no persistence")
	}

	// Repositories
	apartmentRepo := persistence.NewStoreApartmentRepository(store)
	unitRepo := persistence.NewStoreUnitRepository(store)
	tenantRepo := persistence.NewStoreTenantRepository(store)
	paymentRepo := persistence.NewStorePaymentRepository(store)
	requestRepo := persistence.NewStoreMaintenanceRepository(store)
	notificationRepo := persistence.NewStoreNotificationRepository(store)
	adminRepo := persistence.NewStoreAdminRepository(store)
	managerRepo := persistence.NewStoreManagerRepository(store)
	accountRepo := persistence.NewStoreTenantAccountRepository(store)
	auditRepo := persistence.NewStoreAuditLogRepository(store)
	settingsRepo := persistence.NewStoreSettingsRepository(store)

	// Outbound notification channel
	sender, err := notifier.New(context.Background(), cfg.Notifier, log)
	if err != nil {
		log.Fatal("Failed to initialize notifier", zap.Error(err))
	}
	log.Info("Notifier ready", zap.String("driver", cfg.Notifier.Driver))

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(adminRepo, managerRepo, accountRepo, auditRepo, jwtService, log)
	adminService := identityapp.NewAdminService(managerRepo, accountRepo, tenantRepo, settingsRepo, auditRepo)
	apartmentService := propertyapp.NewApartmentService(apartmentRepo, unitRepo)
	unitService := propertyapp.NewUnitService(apartmentRepo, unitRepo, tenantRepo)
	tenantService := tenancyapp.NewTenantService(tenantRepo, unitRepo)
	paymentService := billingapp.NewPaymentService(paymentRepo, tenantRepo, log)
	requestService := maintenanceapp.NewRequestService(requestRepo, tenantRepo)
	notificationService := notificationapp.NewService(notificationRepo, tenantRepo, sender, log)
	reportService := reportapp.NewService(apartmentRepo, unitRepo, tenantRepo, paymentRepo, requestRepo, notificationRepo)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	apartmentHandler := handler.NewApartmentHandler(apartmentService)
	unitHandler := handler.NewUnitHandler(unitService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	maintenanceHandler := handler.NewMaintenanceHandler(requestService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	reportHandler := handler.NewReportHandler(reportService)
	portalHandler := handler.NewPortalHandler(adminService, tenantService, reportService, paymentService, requestService, notificationService)
	systemHandler := handler.NewSystemHandler(store)

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

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, metrics
	httpMetrics := middleware.NewHTTPMetrics(cfg.App.Name)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.RequestLogger(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(httpMetrics.Middleware())

	// Unversioned operational endpoints
	engine.GET("/health", systemHandler.Health)
	engine.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/admin/login",
			"/api/v1/auth/manager/login",
			"/api/v1/auth/tenant/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication (login endpoints skip JWT validation)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/admin/login", authHandler.LoginAdmin)
	authRoutes.POST("/manager/login", authHandler.LoginManager)
	authRoutes.POST("/tenant/login", authHandler.LoginTenant)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.POST("/change-password", authHandler.ChangePassword)
	r.Register(authRoutes)

	// Property management, restricted to staff realms
	staffOnly := middleware.RequireRealm(auth.RealmAdmin, auth.RealmManager)

	apartmentRoutes := router.NewDomainGroup("apartments", "/apartments")
	apartmentRoutes.Use(staffOnly)
	apartmentRoutes.POST("", apartmentHandler.Create)
	apartmentRoutes.GET("", apartmentHandler.List)
	apartmentRoutes.GET("/:id", apartmentHandler.GetByID)
	apartmentRoutes.PUT("/:id", apartmentHandler.Update)
	apartmentRoutes.DELETE("/:id", apartmentHandler.Delete)
	r.Register(apartmentRoutes)

	unitRoutes := router.NewDomainGroup("units", "/units")
	unitRoutes.Use(staffOnly)
	unitRoutes.POST("", unitHandler.Create)
	unitRoutes.GET("", unitHandler.List)
	unitRoutes.GET("/:id", unitHandler.GetByID)
	unitRoutes.PUT("/:id", unitHandler.Update)
	unitRoutes.DELETE("/:id", unitHandler.Delete)
	r.Register(unitRoutes)

	tenantRoutes := router.NewDomainGroup("tenants", "/tenants")
	tenantRoutes.Use(staffOnly)
	tenantRoutes.POST("", tenantHandler.Create)
	tenantRoutes.GET("", tenantHandler.List)
	tenantRoutes.GET("/:id", tenantHandler.GetByID)
	tenantRoutes.PUT("/:id", tenantHandler.Update)
	tenantRoutes.DELETE("/:id", tenantHandler.Delete)
	r.Register(tenantRoutes)

	paymentRoutes := router.NewDomainGroup("payments", "/payments")
	paymentRoutes.Use(staffOnly)
	paymentRoutes.POST("", paymentHandler.Create)
	paymentRoutes.GET("", paymentHandler.List)
	paymentRoutes.POST("/refresh-overdue", paymentHandler.RefreshOverdue)
	paymentRoutes.GET("/:id", paymentHandler.GetByID)
	paymentRoutes.POST("/:id/record", paymentHandler.Record)
	paymentRoutes.PUT("/:id/penalty", paymentHandler.SetPenalty)
	paymentRoutes.DELETE("/:id", paymentHandler.Delete)
	r.Register(paymentRoutes)

	maintenanceRoutes := router.NewDomainGroup("maintenance", "/maintenance")
	maintenanceRoutes.Use(staffOnly)
	maintenanceRoutes.POST("", maintenanceHandler.Create)
	maintenanceRoutes.GET("", maintenanceHandler.List)
	maintenanceRoutes.GET("/:id", maintenanceHandler.GetByID)
	maintenanceRoutes.PUT("/:id", maintenanceHandler.Update)
	maintenanceRoutes.POST("/:id/assign", maintenanceHandler.Assign)
	maintenanceRoutes.POST("/:id/start", maintenanceHandler.Start)
	maintenanceRoutes.POST("/:id/complete", maintenanceHandler.Complete)
	maintenanceRoutes.POST("/:id/cancel", maintenanceHandler.Cancel)
	maintenanceRoutes.DELETE("/:id", maintenanceHandler.Delete)
	r.Register(maintenanceRoutes)

	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.Use(staffOnly)
	notificationRoutes.POST("", notificationHandler.Create)
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.GET("/:id", notificationHandler.GetByID)
	notificationRoutes.POST("/:id/send", notificationHandler.Send)
	notificationRoutes.DELETE("/:id", notificationHandler.Delete)
	r.Register(notificationRoutes)

	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.Use(staffOnly)
	reportRoutes.GET("/dashboard", reportHandler.Dashboard)
	reportRoutes.GET("/financial", reportHandler.Financial)
	reportRoutes.GET("/occupancy", reportHandler.Occupancy)
	r.Register(reportRoutes)

	// Administration, admin realm only
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(middleware.RequireRealm(auth.RealmAdmin))
	adminRoutes.POST("/managers", adminHandler.CreateManager)
	adminRoutes.GET("/managers", adminHandler.ListManagers)
	adminRoutes.GET("/managers/:id", adminHandler.GetManager)
	adminRoutes.PUT("/managers/:id", adminHandler.UpdateManager)
	adminRoutes.DELETE("/managers/:id", adminHandler.DeleteManager)
	adminRoutes.POST("/tenant-accounts", adminHandler.CreateTenantAccount)
	adminRoutes.GET("/tenant-accounts", adminHandler.ListTenantAccounts)
	adminRoutes.DELETE("/tenant-accounts/:id", adminHandler.DeleteTenantAccount)
	adminRoutes.GET("/settings", adminHandler.GetSettings)
	adminRoutes.PUT("/settings", adminHandler.UpdateSettings)
	adminRoutes.GET("/audit-logs", adminHandler.ListAuditLogs)
	r.Register(adminRoutes)

	// Tenant self-service portal
	portalRoutes := router.NewDomainGroup("portal", "/portal")
	portalRoutes.Use(middleware.RequireRealm(auth.RealmTenant))
	portalRoutes.GET("/dashboard", portalHandler.Dashboard)
	portalRoutes.GET("/lease", portalHandler.Lease)
	portalRoutes.GET("/payments", portalHandler.ListPayments)
	portalRoutes.POST("/maintenance", portalHandler.CreateMaintenanceRequest)
	portalRoutes.GET("/maintenance", portalHandler.ListMaintenanceRequests)
	portalRoutes.GET("/notifications", portalHandler.ListNotifications)
	r.Register(portalRoutes)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	r.Register(systemRoutes)

	r.Setup()

	// Periodic overdue sweep
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go func() {
		ticker := time.NewTicker(overdueSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if updated, err := paymentService.RefreshOverdue(sweepCtx, time.Now()); err != nil {
					log.Error("Overdue sweep failed", zap.Error(err))
				} else if updated > 0 {
					log.Info("Overdue sweep complete", zap.Int("updated", updated))
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	cancelSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
