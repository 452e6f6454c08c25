package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/bookstore-api/internal/api/handler"
	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/service"
	"github.com/bookhaven/bookstore-api/internal/core/token"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/config"
	bookmongo "github.com/bookhaven/bookstore-api/internal/infrastructure/db/mongo"
	bookredis "github.com/bookhaven/bookstore-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit(cfg.BodyLimit))
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	userRepo := bookmongo.NewUserRepository(db)
	bookRepo := bookmongo.NewBookRepository(db)
	categoryRepo := bookmongo.NewCategoryRepository(db)
	orderRepo := bookmongo.NewOrderRepository(db)
	replayStore := bookredis.NewOrderReplayStore(rdb)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, bookRepo, orderRepo, codec)
	userService := service.NewUserService(userRepo, log)
	bookService := service.NewBookService(bookRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, bookRepo, replayStore, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	orderHandler := handler.NewOrderHandler(orderService)

	authRequired := middleware.Auth(codec)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.PUT("/profile", authHandler.UpdateProfile, authRequired)
	auth.POST("/register", authHandler.Register, authRequired, adminOnly)
	auth.GET("/admin/check", authHandler.AdminCheck, authRequired, adminOnly)
	auth.GET("/admin/stats", authHandler.AdminStats, authRequired, adminOnly)

	// --- User management (admin only) ---
	users := e.Group("/api/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Catalog: public reads, admin writes ---
	books := e.Group("/api/books")
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.Get)
	books.POST("", bookHandler.Create, authRequired, adminOnly)
	books.PUT("/:id", bookHandler.Update, authRequired, adminOnly)
	books.DELETE("/:id", bookHandler.Delete, authRequired, adminOnly)

	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authRequired, adminOnly)
	categories.PATCH("/:id", categoryHandler.Update, authRequired, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authRequired, adminOnly)

	// --- Orders (bearer required on every route) ---
	orders := e.Group("/api/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/email/:email", orderHandler.ListByEmail)
	orders.PUT("/:id", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
