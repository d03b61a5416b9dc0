package http

import (
	"github.com/gin-gonic/gin"
	httpH "github.com/sumitk238/shopping-cart/internal/http/handlers"
	httpMW "github.com/sumitk238/shopping-cart/internal/http/middleware"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware
	CartHandler    *httpH.CartHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health (public)
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	cart := r.Group("/cart")
	{
		if cfg.AuthMiddleware != nil {
			cart.Use(cfg.AuthMiddleware.RequireBasicAuth())
		}

		if cfg.CartHandler != nil {
			cart.GET("/:userId", cfg.CartHandler.GetCartDetailsForUser)
			cart.GET("/:userId/:productId", cfg.CartHandler.GetCountOfItemInCart)
			cart.POST("/:userId/:productId", cfg.CartHandler.AddItemToCart)
			cart.PUT("/:userId/:productId", cfg.CartHandler.UpdateItemInCart)
			cart.DELETE("/:userId/:productId", cfg.CartHandler.DeleteItemFromCart)
		}
	}

	return r
}
