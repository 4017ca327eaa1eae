package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/logger"
	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/queue"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// allowedTransitions 订单状态流转白名单
var allowedTransitions = map[string]map[string]bool{
	models.OrderStatusPacked: {
		models.OrderStatusShipped: true,
	},
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	UserID          uint
	CustomerName    string
	ShippingAddress string
	City            string
	PostalCode      string
	PaymentMethod   string
}

// OrderDetail 订单详情（历史订单缺失金额/状态时回退展示）
type OrderDetail struct {
	Order       models.Order `json:"order"`
	TotalAmount models.Money `json:"total_amount"`
	Status      string       `json:"status"`
	Legacy      bool         `json:"legacy"`
}

// OrderService 订单服务
type OrderService struct {
	orderRepo        repository.OrderRepository
	cartRepo         repository.CartRepository
	queueClient      *queue.Client
	shipDelaySeconds int
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client, shipDelaySeconds int) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		queueClient:      queueClient,
		shipDelaySeconds: shipDelaySeconds,
	}
}

// Checkout 结算下单
// 订单、订单项与清空购物车在同一事务内完成；任何一步失败整体回滚，购物车保持不变。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidShippingInfo
	}
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.ShippingAddress) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.PostalCode) == "" {
		return nil, ErrInvalidShippingInfo
	}

	cartItems, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		total = total.Add(cartItem.ProductPrice.Decimal.Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
		items = append(items, models.OrderItem{
			ProductID:    cartItem.ProductID,
			ProductName:  cartItem.ProductName,
			ProductPrice: cartItem.ProductPrice,
			Quantity:     cartItem.Quantity,
			Size:         cartItem.Size,
			Image:        cartItem.Image,
		})
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		OrderDate:       now,
		TotalAmount:     models.NewMoneyFromDecimal(total),
		Status:          models.OrderStatusPacked,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		City:            strings.TrimSpace(input.City),
		PostalCode:      strings.TrimSpace(input.PostalCode),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		logger.Errorw("order_checkout_tx_failed",
			"user_id", input.UserID,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}

	s.enqueueShip(order)

	full, err := s.orderRepo.GetByID(order.ID)
	if err == nil && full != nil {
		return full, nil
	}
	return order, nil
}

// enqueueShip 提交延迟发货任务
// 入队失败只记录日志，订单保持 Packed 状态。
func (s *OrderService) enqueueShip(order *models.Order) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		logger.Debugw("order_ship_enqueue_skip_queue_disabled", "order_id", order.ID)
		return
	}
	delay := time.Duration(s.shipDelaySeconds) * time.Second
	if err := s.queueClient.EnqueueOrderShip(queue.OrderShipPayload{OrderID: order.ID}, delay); err != nil {
		logger.Errorw("order_ship_enqueue_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
	}
}

// MarkShipped 将订单置为已发货
// 仅允许 Packed -> Shipped；其他状态直接跳过，不视为错误。
func (s *OrderService) MarkShipped(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		logger.Debugw("order_mark_shipped_skip_not_found", "order_id", orderID)
		return nil
	}
	if !canTransition(order.Status, models.OrderStatusShipped) {
		logger.Debugw("order_mark_shipped_skip_status",
			"order_id", orderID,
			"status", order.Status,
		)
		return nil
	}
	return s.orderRepo.UpdateStatus(orderID, models.OrderStatusShipped)
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]OrderDetail, int64, error) {
	orders, total, err := s.orderRepo.ListByUser(filter)
	if err != nil {
		return nil, 0, err
	}
	details := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		details = append(details, buildOrderDetail(order))
	}
	return details, total, nil
}

// GetByUser 用户订单详情
func (s *OrderService) GetByUser(orderID, userID uint) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	detail := buildOrderDetail(*order)
	return &detail, nil
}

// buildOrderDetail 构建订单详情
// 历史订单行缺失状态时按订单项重算金额，状态回退为 Unknown。
func buildOrderDetail(order models.Order) OrderDetail {
	status := strings.TrimSpace(order.Status)
	if status != "" {
		return OrderDetail{
			Order:       order,
			TotalAmount: order.TotalAmount,
			Status:      status,
		}
	}

	recalculated := decimal.Zero
	for _, item := range order.Items {
		recalculated = recalculated.Add(item.ProductPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	logger.Warnw("order_legacy_row_fallback",
		"order_id", order.ID,
		"recalculated_total", recalculated.StringFixed(2),
	)
	return OrderDetail{
		Order:       order,
		TotalAmount: models.NewMoneyFromDecimal(recalculated),
		Status:      models.OrderStatusUnknown,
		Legacy:      true,
	}
}

func canTransition(current, target string) bool {
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("FX%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
