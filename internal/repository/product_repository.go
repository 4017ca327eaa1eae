package repository

import (
	"errors"
	"strings"

	"github.com/Karthikeyanbk4067/FitX/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	ListByBadges(badges []string, limit int) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表
// 分类集合与价格区间为 AND 关系，与原有筛选页行为一致。
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if filter.PriceMin != nil && filter.PriceMax != nil {
		query = query.Where("price BETWEEN ? AND ?", *filter.PriceMin, *filter.PriceMax)
	}
	if badge := strings.TrimSpace(filter.Badge); badge != "" {
		query = query.Where("badge = ?", badge)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		// sqlite 的 LIKE 本身不区分大小写，postgres 需要显式 LOWER。
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取商品
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByBadges 按角标获取商品（用于首页精选）
func (r *GormProductRepository) ListByBadges(badges []string, limit int) ([]models.Product, error) {
	if len(badges) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	query := r.db.Where("badge IN ?", badges).Order("id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}
