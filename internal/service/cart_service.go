package service

import (
	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSnapshot 购物车快照（用于响应与结算）
type CartSnapshot struct {
	Items      []models.CartItem `json:"items"`
	TotalPrice models.Money      `json:"total_price"`
	ItemCount  int               `json:"item_count"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Size      string
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem 加入购物车
// 同 (商品, 尺码) 已存在时数量 +1，否则以商品快照新建数量为 1 的条目。
// 商品不存在时静默忽略，保持历史行为。
func (s *CartService) AddItem(input AddCartItemInput) error {
	if input.UserID == 0 || input.ProductID == 0 {
		return ErrInvalidCartItem
	}

	existing, err := s.cartRepo.GetByUserProductSize(input.UserID, input.ProductID, input.Size)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+1)
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		logger.Debugw("cart_add_skip_product_missing", "user_id", input.UserID, "product_id", input.ProductID)
		return nil
	}

	item := &models.CartItem{
		UserID:       input.UserID,
		ProductID:    product.ID,
		Size:         input.Size,
		Quantity:     1,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		Image:        product.ImageMain,
	}
	return s.cartRepo.Create(item)
}

// SetQuantity 更新购物车数量
// 仅按商品匹配第一条（不区分尺码），数量 <= 0 时删除该条目。保持历史行为。
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidCartItem
	}
	item, err := s.cartRepo.FirstByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteByID(item.ID)
	}
	return s.cartRepo.UpdateQuantity(item.ID, quantity)
}

// RemoveItem 移除商品
// 删除该商品的所有尺码条目。保持历史行为。
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Snapshot 获取购物车快照
func (s *CartService) Snapshot(userID uint) (*CartSnapshot, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.ProductPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return &CartSnapshot{
		Items:      items,
		TotalPrice: models.NewMoneyFromDecimal(total),
		ItemCount:  len(items),
	}, nil
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearByUser(userID)
}
