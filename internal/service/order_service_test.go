package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cartRepo := repository.NewCartRepository(db)
	orderSvc := NewOrderService(repository.NewOrderRepository(db), cartRepo, nil, 0)
	cartSvc := NewCartService(cartRepo, repository.NewProductRepository(db))
	return orderSvc, cartSvc, db
}

func seedCheckoutCart(t *testing.T, cartSvc *CartService, db *gorm.DB) {
	t.Helper()
	seedCartProduct(t, db, 1, "Velocity Boost Runner", "3999.00")
	seedCartProduct(t, db, 2, "AirFlex Motion", "2799.00")
	if err := cartSvc.AddItem(AddCartItemInput{UserID: 10, ProductID: 1, Size: "9"}); err != nil {
		t.Fatalf("add first product failed: %v", err)
	}
	if err := cartSvc.AddItem(AddCartItemInput{UserID: 10, ProductID: 1, Size: "9"}); err != nil {
		t.Fatalf("merge first product failed: %v", err)
	}
	if err := cartSvc.AddItem(AddCartItemInput{UserID: 10, ProductID: 2, Size: "8"}); err != nil {
		t.Fatalf("add second product failed: %v", err)
	}
}

func validCheckoutInput(userID uint) CheckoutInput {
	return CheckoutInput{
		UserID:          userID,
		CustomerName:    "Arjun Mehta",
		ShippingAddress: "221B MG Road",
		City:            "Bengaluru",
		PostalCode:      "560001",
		PaymentMethod:   "cod",
	}
}

func TestOrderServiceCheckout(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	order, err := orderSvc.Checkout(validCheckoutInput(10))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order == nil || order.ID == 0 {
		t.Fatalf("invalid order result: %+v", order)
	}
	if order.Status != models.OrderStatusPacked {
		t.Fatalf("expected status Packed, got: %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "FX") {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}
	// 3999*2 + 2799 = 10797
	if order.TotalAmount.StringFixed(2) != "10797.00" {
		t.Fatalf("expected total 10797.00, got: %s", order.TotalAmount.StringFixed(2))
	}

	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if itemCount != 2 {
		t.Fatalf("expected 2 order items, got: %d", itemCount)
	}

	snapshot, err := cartSvc.Snapshot(10)
	if err != nil {
		t.Fatalf("snapshot after checkout failed: %v", err)
	}
	if snapshot.ItemCount != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", snapshot.ItemCount)
	}
}

func TestOrderServiceCheckoutEmptyCart(t *testing.T) {
	orderSvc, _, _ := setupOrderServiceTest(t)
	_, err := orderSvc.Checkout(validCheckoutInput(10))
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got: %v", err)
	}
}

func TestOrderServiceCheckoutInvalidShipping(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	input := validCheckoutInput(10)
	input.City = "   "
	_, err := orderSvc.Checkout(input)
	if !errors.Is(err, ErrInvalidShippingInfo) {
		t.Fatalf("expected ErrInvalidShippingInfo, got: %v", err)
	}

	snapshot, err := cartSvc.Snapshot(10)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snapshot.ItemCount == 0 {
		t.Fatalf("cart should stay untouched when checkout is rejected")
	}
}

func TestOrderServiceCheckoutRollsBackOnItemFailure(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	// 订单项表缺失时写入失败，整体事务必须回滚
	if err := db.Migrator().DropTable(&models.OrderItem{}); err != nil {
		t.Fatalf("drop order items table failed: %v", err)
	}

	_, err := orderSvc.Checkout(validCheckoutInput(10))
	if !errors.Is(err, ErrOrderCreateFailed) {
		t.Fatalf("expected ErrOrderCreateFailed, got: %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders after rollback, got: %d", orderCount)
	}

	snapshot, err := cartSvc.Snapshot(10)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snapshot.ItemCount != 2 {
		t.Fatalf("cart must survive a failed checkout, got %d lines", snapshot.ItemCount)
	}
}

func TestOrderServicePriceSnapshotImmune(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	order, err := orderSvc.Checkout(validCheckoutInput(10))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", 1).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(9999))).Error; err != nil {
		t.Fatalf("update product price failed: %v", err)
	}

	detail, err := orderSvc.GetByUser(order.ID, 10)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if detail.TotalAmount.StringFixed(2) != "10797.00" {
		t.Fatalf("order total must keep the priced snapshot, got: %s", detail.TotalAmount.StringFixed(2))
	}
	for _, item := range detail.Order.Items {
		if item.ProductID == 1 && item.ProductPrice.StringFixed(2) != "3999.00" {
			t.Fatalf("line item snapshot changed: %s", item.ProductPrice.StringFixed(2))
		}
	}
}

func TestOrderServiceMarkShipped(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	order, err := orderSvc.Checkout(validCheckoutInput(10))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := orderSvc.MarkShipped(order.ID); err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	var updated models.Order
	if err := db.First(&updated, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if updated.Status != models.OrderStatusShipped {
		t.Fatalf("expected status Shipped, got: %s", updated.Status)
	}

	// 再次触发不报错也不改状态
	if err := orderSvc.MarkShipped(order.ID); err != nil {
		t.Fatalf("second mark shipped should be a no-op, got: %v", err)
	}
	if err := db.First(&updated, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if updated.Status != models.OrderStatusShipped {
		t.Fatalf("status should stay Shipped, got: %s", updated.Status)
	}
}

func TestOrderServiceMarkShippedMissingOrder(t *testing.T) {
	orderSvc, _, _ := setupOrderServiceTest(t)
	if err := orderSvc.MarkShipped(12345); err != nil {
		t.Fatalf("missing order should be skipped, got: %v", err)
	}
}

func TestOrderServiceLegacyRowFallback(t *testing.T) {
	orderSvc, _, db := setupOrderServiceTest(t)

	order := models.Order{
		OrderNo:   "FX20240101000000000001",
		UserID:    10,
		OrderDate: time.Now(),
		Status:    "",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create legacy order failed: %v", err)
	}
	items := []models.OrderItem{
		{
			OrderID:      order.ID,
			ProductID:    1,
			ProductName:  "Velocity Boost Runner",
			ProductPrice: models.NewMoneyFromDecimal(decimal.RequireFromString("3999.00")),
			Quantity:     2,
			Size:         "9",
		},
		{
			OrderID:      order.ID,
			ProductID:    2,
			ProductName:  "AirFlex Motion",
			ProductPrice: models.NewMoneyFromDecimal(decimal.RequireFromString("2799.00")),
			Quantity:     1,
			Size:         "8",
		},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create legacy order items failed: %v", err)
	}

	detail, err := orderSvc.GetByUser(order.ID, 10)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if !detail.Legacy {
		t.Fatalf("expected legacy flag set for empty-status row")
	}
	if detail.Status != models.OrderStatusUnknown {
		t.Fatalf("expected status Unknown, got: %s", detail.Status)
	}
	if detail.TotalAmount.StringFixed(2) != "10797.00" {
		t.Fatalf("expected recalculated total 10797.00, got: %s", detail.TotalAmount.StringFixed(2))
	}
}

func TestOrderServiceGetByUserIsolation(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	order, err := orderSvc.Checkout(validCheckoutInput(10))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orderSvc.GetByUser(order.ID, 99); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for other user, got: %v", err)
	}

	detail, err := orderSvc.GetByUser(order.ID, 10)
	if err != nil {
		t.Fatalf("get own order failed: %v", err)
	}
	if detail.Legacy {
		t.Fatalf("fresh order should not be flagged legacy")
	}
	if detail.Status != models.OrderStatusPacked {
		t.Fatalf("expected status Packed, got: %s", detail.Status)
	}
}

func TestOrderServiceListByUser(t *testing.T) {
	orderSvc, cartSvc, db := setupOrderServiceTest(t)
	seedCheckoutCart(t, cartSvc, db)

	if _, err := orderSvc.Checkout(validCheckoutInput(10)); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	details, total, err := orderSvc.ListByUser(repository.OrderListFilter{UserID: 10, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 1 || len(details) != 1 {
		t.Fatalf("expected 1 order, got total=%d len=%d", total, len(details))
	}

	details, total, err = orderSvc.ListByUser(repository.OrderListFilter{UserID: 99, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list other user orders failed: %v", err)
	}
	if total != 0 || len(details) != 0 {
		t.Fatalf("expected empty list for other user, got total=%d len=%d", total, len(details))
	}
}

func TestOrderServiceListByUserSameDateKeepsInsertionOrder(t *testing.T) {
	orderSvc, _, db := setupOrderServiceTest(t)

	placedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, orderNo := range []string{"FX20260301AAAA", "FX20260301BBBB"} {
		order := models.Order{
			UserID:      10,
			OrderNo:     orderNo,
			OrderDate:   placedAt,
			Status:      models.OrderStatusPacked,
			TotalAmount: money(t, "3999.00"),
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("seed order %s failed: %v", orderNo, err)
		}
	}

	details, total, err := orderSvc.ListByUser(repository.OrderListFilter{UserID: 10, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 2 || len(details) != 2 {
		t.Fatalf("expected 2 orders, got total=%d len=%d", total, len(details))
	}
	if details[0].Order.ID >= details[1].Order.ID {
		t.Fatalf("same-date orders should keep insertion order, got id %d before id %d",
			details[0].Order.ID, details[1].Order.ID)
	}
}
