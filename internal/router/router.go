package router

import (
	"fmt"
	"strings"

	"github.com/Karthikeyanbk4067/FitX/internal/cache"
	"github.com/Karthikeyanbk4067/FitX/internal/config"
	publichandlers "github.com/Karthikeyanbk4067/FitX/internal/http/handlers/public"
	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fitx"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "登录尝试过于频繁，请 %d 秒后重试",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 商品图片等静态资源
	r.Static("/assets", "./assets")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/trending", publicHandler.GetTrendingProducts)
			public.GET("/search", publicHandler.SearchProducts)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.UserLogin)
		}

		// 客服助手（匿名可用，登录用户附带订单上下文）
		apiV1.POST("/assistant/chat",
			OptionalUserJWTMiddleware(cfg.UserJWT.SecretKey, c.UserRepo),
			publicHandler.Chat,
		)

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)
			user.POST("/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.GET("/wishlist", publicHandler.GetWishlist)
			user.POST("/wishlist/items", publicHandler.AddWishlistItem)
			user.DELETE("/wishlist/items/:product_id", publicHandler.DeleteWishlistItem)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
