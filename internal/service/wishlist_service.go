package service

import (
	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"
)

// WishlistService 心愿单服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// List 用户心愿单
func (s *WishlistService) List(userID uint) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(userID)
}

// Add 加入心愿单（幂等，重复添加直接返回成功）
func (s *WishlistService) Add(userID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	exists, err := s.wishlistRepo.Exists(userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.wishlistRepo.Create(&models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
}

// Remove 移出心愿单（不存在时同样视为成功）
func (s *WishlistService) Remove(userID, productID uint) error {
	return s.wishlistRepo.DeleteByUserAndProduct(userID, productID)
}
