package repository

import (
	"errors"

	"github.com/Karthikeyanbk4067/FitX/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository 心愿单数据访问接口
type WishlistRepository interface {
	ListByUser(userID uint) ([]models.WishlistItem, error)
	Exists(userID, productID uint) (bool, error)
	Create(item *models.WishlistItem) error
	DeleteByUserAndProduct(userID, productID uint) error
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByUser 获取用户心愿单（含商品）
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Exists 判断商品是否已在心愿单
func (r *GormWishlistRepository) Exists(userID, productID uint) (bool, error) {
	var item models.WishlistItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create 添加心愿单项
func (r *GormWishlistRepository) Create(item *models.WishlistItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// DeleteByUserAndProduct 移除心愿单项
func (r *GormWishlistRepository) DeleteByUserAndProduct(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{}).Error
}
