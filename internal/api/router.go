package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/api/handler"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/api/middleware"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/service"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/infrastructure/config"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/infrastructure/db/jsonfile"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := jsonfile.NewUserRepository(cfg.Store.UserPath)
	productRepo := jsonfile.NewProductRepository(cfg.Store.ProductPath)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World!")
	})
	e.POST("/login", authHandler.Login)
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(userRepo, productRepo).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Catalog ---
	e.GET("/products", productHandler.List, auth, middleware.Authorize(domain.ActionProductView))
	e.GET("/products/:id", productHandler.Get, auth, middleware.Authorize(domain.ActionProductView))
	e.POST("/addproduct", productHandler.Create, auth, middleware.Authorize(domain.ActionProductEdit))
	e.PUT("/updateproduct/:id", productHandler.Update, auth, middleware.Authorize(domain.ActionProductEdit))
	e.DELETE("/deleteproduct/:id", productHandler.Delete, auth, middleware.Authorize(domain.ActionProductEdit))

	// --- Account management ---
	// The full dump is admin-only; manager:manage is held by admin alone.
	e.GET("/users", userHandler.Users, auth, middleware.Authorize(domain.ActionManagerManage))
	e.GET("/managers", userHandler.Managers, auth, middleware.Authorize(domain.ActionManagerManage))
	e.POST("/addmanager", userHandler.AddManager, auth, middleware.Authorize(domain.ActionManagerManage))
	e.DELETE("/deletemanager/:id", userHandler.DeleteManager, auth, middleware.Authorize(domain.ActionManagerManage))
	e.GET("/sellers", userHandler.Sellers, auth, middleware.Authorize(domain.ActionSellerManage))
	e.POST("/addseller", userHandler.AddSeller, auth, middleware.Authorize(domain.ActionSellerManage))
	e.DELETE("/deleteseller/:id", userHandler.DeleteSeller, auth, middleware.Authorize(domain.ActionSellerManage))

	// --- Session ---
	e.GET("/permissions", userHandler.Permissions, auth)

	return e
}
