package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/cache"
	"github.com/Karthikeyanbk4067/FitX/internal/constants"
	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"
)

const (
	trendingLimit    = 3
	trendingCacheKey = "catalog:trending"
	trendingCacheTTL = 5 * time.Minute
)

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// CatalogListInput 商品列表查询输入
type CatalogListInput struct {
	Categories []string
	PriceRange string // "min-max" 形式，解析失败时忽略
	Search     string
	Page       int
	PageSize   int
}

// List 商品列表（分类集合 + 价格区间 + 名称搜索）
func (s *CatalogService) List(input CatalogListInput) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		Categories: normalizeCategories(input.Categories),
		Search:     strings.TrimSpace(input.Search),
	}
	if minPrice, maxPrice, ok := parsePriceRange(input.PriceRange); ok {
		filter.PriceMin = &minPrice
		filter.PriceMax = &maxPrice
	}
	return s.productRepo.List(filter)
}

// GetByID 商品详情
func (s *CatalogService) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Trending 首页精选（Bestseller 角标，固定 3 个），带短时缓存
func (s *CatalogService) Trending(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if hit, err := cache.GetJSON(ctx, trendingCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	products, err := s.productRepo.ListByBadges([]string{constants.ProductBadgeBestseller}, trendingLimit)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, trendingCacheKey, products, trendingCacheTTL); err != nil {
		logger.Warnw("catalog_trending_cache_set_failed", "error", err)
	}
	return products, nil
}

func normalizeCategories(categories []string) []string {
	result := make([]string, 0, len(categories))
	for _, category := range categories {
		trimmed := strings.TrimSpace(category)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}

// parsePriceRange 解析 "min-max" 形式的价格区间
func parsePriceRange(raw string) (float64, float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.Contains(trimmed, "-") {
		return 0, 0, false
	}
	parts := strings.SplitN(trimmed, "-", 2)
	minPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return minPrice, maxPrice, true
}
