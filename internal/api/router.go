package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gracepoint/church-admin-api/docs"
	"github.com/gracepoint/church-admin-api/internal/api/handler"
	"github.com/gracepoint/church-admin-api/internal/api/middleware"
	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/service"
	mongorepo "github.com/gracepoint/church-admin-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/gracepoint/church-admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit queue is constructed by the caller so its worker lifecycle is
// owned by main, not the router.
func NewRouter(db *mongo.Database, rdb *goredis.Client, auditQueue service.EventEnqueuer, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("church_admin"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	pageRepo := mongorepo.NewPageRepository(db)
	donationRepo := mongorepo.NewDonationRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)
	gatewayRepo := mongorepo.NewGatewayRepository(db)
	galleryRepo := mongorepo.NewGalleryRepository(db)

	pageCache := redisinfra.NewPageCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 0)
	userService := service.NewUserService(userRepo, log)
	pageService := service.NewPageService(pageRepo, pageCache, log)
	donationService := service.NewDonationService(donationRepo, auditRepo, auditQueue, log)
	gatewayService := service.NewGatewayService(gatewayRepo, log)
	galleryService := service.NewGalleryService(galleryRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	pageHandler := handler.NewPageHandler(pageService)
	donationHandler := handler.NewDonationHandler(donationService)
	gatewayHandler := handler.NewGatewayHandler(gatewayService)
	galleryHandler := handler.NewGalleryHandler(galleryService)

	authMW := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrFinance := middleware.RBAC(domain.RoleAdmin, domain.RoleFinance)
	loginThrottle := middleware.RateLimit(middleware.LoginLimit)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register, loginThrottle)
	e.POST("/auth/login", authHandler.Login, loginThrottle)
	e.GET("/auth/profile", authHandler.Profile, authMW)
	e.PUT("/auth/profile", authHandler.UpdateProfile, authMW)

	// --- Public site ---
	e.GET("/pages/:slug", pageHandler.GetPublished)
	e.GET("/gallery", galleryHandler.ListPublic)

	// --- Admin surface ---
	admin := e.Group("/admin", authMW)

	users := admin.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	pages := admin.Group("/pages", adminOnly)
	pages.GET("", pageHandler.List)
	pages.POST("", pageHandler.Create)
	pages.GET("/:id", pageHandler.Get)
	pages.PUT("/:id", pageHandler.Update)
	pages.DELETE("/:id", pageHandler.Delete)

	donations := admin.Group("/donations")
	donations.GET("", donationHandler.List, adminOrFinance)
	donations.GET("/:id", donationHandler.Get, adminOrFinance)
	donations.GET("/:id/history", donationHandler.History, adminOrFinance)
	donations.PATCH("/:id/status", donationHandler.UpdateStatus, adminOrFinance)
	donations.POST("", donationHandler.Create, adminOnly)
	donations.DELETE("/:id", donationHandler.Delete, adminOnly)

	gateways := admin.Group("/gateways")
	gateways.GET("", gatewayHandler.List, adminOrFinance)
	gateways.GET("/:id", gatewayHandler.Get, adminOrFinance)
	gateways.POST("", gatewayHandler.Create, adminOnly)
	gateways.PUT("/:id", gatewayHandler.Update, adminOnly)
	gateways.DELETE("/:id", gatewayHandler.Delete, adminOnly)

	gallery := admin.Group("/gallery", adminOnly)
	gallery.POST("", galleryHandler.Create)
	gallery.PUT("/:id", galleryHandler.Update)
	gallery.DELETE("/:id", galleryHandler.Delete)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
