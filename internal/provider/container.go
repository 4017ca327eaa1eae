package provider

import (
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/assistant/gemini"
	"github.com/Karthikeyanbk4067/FitX/internal/cache"
	"github.com/Karthikeyanbk4067/FitX/internal/config"
	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/queue"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"
	"github.com/Karthikeyanbk4067/FitX/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	WishlistRepo repository.WishlistRepository

	// Services
	UserAuthService  *service.UserAuthService
	CatalogService   *service.CatalogService
	CartService      *service.CartService
	OrderService     *service.OrderService
	WishlistService  *service.WishlistService
	AssistantService *service.AssistantService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.UserAuthService = service.NewUserAuthService(cfg, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.QueueClient, cfg.Order.ShipDelaySeconds)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)

	var generator service.TextGenerator
	if cfg.Assistant.Enabled {
		generator = gemini.NewClient(gemini.Options{
			APIKey:  cfg.Assistant.APIKey,
			Model:   cfg.Assistant.Model,
			BaseURL: cfg.Assistant.BaseURL,
			Timeout: time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second,
		})
	}
	c.AssistantService = service.NewAssistantService(generator, c.ProductRepo, c.OrderRepo)
}
