package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartItem{}); err != nil {
		t.Fatalf("migrate cart items failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartLine(t *testing.T, repo *GormCartRepository, userID, productID uint, size string, quantity int) *models.CartItem {
	t.Helper()
	item := &models.CartItem{
		UserID:       userID,
		ProductID:    productID,
		Size:         size,
		Quantity:     quantity,
		ProductName:  fmt.Sprintf("product-%d", productID),
		ProductPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
	}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	return item
}

func TestCartRepositoryGetByUserProductSize(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	created := createCartLine(t, repo, 10, 1, "9", 2)

	found, err := repo.GetByUserProductSize(10, 1, "9")
	if err != nil {
		t.Fatalf("get cart item failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected matching cart line, got: %+v", found)
	}

	missing, err := repo.GetByUserProductSize(10, 1, "11")
	if err != nil {
		t.Fatalf("lookup with other size failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("other size should not match, got: %+v", missing)
	}
}

func TestCartRepositoryFirstByUserAndProduct(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	first := createCartLine(t, repo, 10, 1, "8", 1)
	createCartLine(t, repo, 10, 1, "10", 1)

	found, err := repo.FirstByUserAndProduct(10, 1)
	if err != nil {
		t.Fatalf("first by user and product failed: %v", err)
	}
	if found == nil || found.ID != first.ID {
		t.Fatalf("expected lowest-id line, got: %+v", found)
	}
}

func TestCartRepositoryDeleteByUserAndProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	createCartLine(t, repo, 10, 1, "8", 1)
	createCartLine(t, repo, 10, 1, "10", 1)
	createCartLine(t, repo, 10, 2, "9", 1)
	createCartLine(t, repo, 20, 1, "9", 1)

	if err := repo.DeleteByUserAndProduct(10, 1); err != nil {
		t.Fatalf("delete by user and product failed: %v", err)
	}

	var remaining []models.CartItem
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("list remaining failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining lines, got: %d", len(remaining))
	}
	for _, item := range remaining {
		if item.UserID == 10 && item.ProductID == 1 {
			t.Fatalf("line should have been deleted: %+v", item)
		}
	}
}

func TestCartRepositoryClearByUser(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	createCartLine(t, repo, 10, 1, "9", 1)
	createCartLine(t, repo, 10, 2, "9", 1)
	createCartLine(t, repo, 20, 1, "9", 1)

	if err := repo.ClearByUser(10); err != nil {
		t.Fatalf("clear by user failed: %v", err)
	}

	items, err := repo.ListByUser(10)
	if err != nil {
		t.Fatalf("list after clear failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}

	others, err := repo.ListByUser(20)
	if err != nil {
		t.Fatalf("list other user failed: %v", err)
	}
	if len(others) != 1 {
		t.Fatalf("other user's cart should be untouched, got %d lines", len(others))
	}
}
