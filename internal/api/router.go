package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/simplesdental/product-api/internal/api/handler"
	"github.com/simplesdental/product-api/internal/api/middleware"
	"github.com/simplesdental/product-api/internal/auth"
	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
	"github.com/simplesdental/product-api/internal/core/service"
	mongodb "github.com/simplesdental/product-api/internal/infrastructure/db/mongo"
	redisdb "github.com/simplesdental/product-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every request passes the authentication gate before reaching a handler;
// admin route groups carry an additional role check.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("product_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	contextCache := redisdb.NewContextCache(rdb)

	codec := auth.NewTokenCodec(jwtSecret)
	resolver := auth.NewIdentityResolver(codec, userRepo, log)
	e.Use(middleware.Gate(auth.DefaultPolicy(), resolver))

	authService := service.NewAuthService(userRepo, codec, contextCache, audit, log)
	userService := service.NewUserService(userRepo, contextCache, audit, log)
	productService := service.NewProductService(productRepo, categoryRepo, audit, log)
	categoryService := service.NewCategoryService(categoryRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	productV2Handler := handler.NewProductV2Handler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/register", authHandler.Register, adminOnly)
	authGroup.PUT("/password", authHandler.UpdatePassword)
	authGroup.POST("/password", authHandler.UpdatePassword)
	authGroup.GET("/context", authHandler.Context)

	// --- User management (admin only) ---
	users := e.Group("/api/users", adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Products v1 ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Products v2 ---
	productsV2 := e.Group("/api/v2/products")
	productsV2.GET("", productV2Handler.List)
	productsV2.GET("/:id", productV2Handler.Get)
	productsV2.POST("", productV2Handler.Create, adminOnly)
	productsV2.PUT("/:id", productV2Handler.Update, adminOnly)
	productsV2.DELETE("/:id", productV2Handler.Delete, adminOnly)

	// --- Categories ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
