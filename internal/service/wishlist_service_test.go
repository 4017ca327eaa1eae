package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupWishlistServiceTest(t *testing.T) (*WishlistService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:wishlist_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewWishlistService(repository.NewWishlistRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestWishlistServiceAddIdempotent(t *testing.T) {
	svc, db := setupWishlistServiceTest(t)
	seedCartProduct(t, db, 1, "Velocity Boost Runner", "3999.00")

	for i := 0; i < 3; i++ {
		if err := svc.Add(10, 1); err != nil {
			t.Fatalf("add round %d failed: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&models.WishlistItem{}).Where("user_id = ?", 10).Count(&count).Error; err != nil {
		t.Fatalf("count wishlist items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 wishlist row after repeated adds, got: %d", count)
	}
}

func TestWishlistServiceAddUnknownProduct(t *testing.T) {
	svc, _ := setupWishlistServiceTest(t)
	if err := svc.Add(10, 999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestWishlistServiceRemoveAbsent(t *testing.T) {
	svc, _ := setupWishlistServiceTest(t)
	if err := svc.Remove(10, 999); err != nil {
		t.Fatalf("removing an absent item should succeed, got: %v", err)
	}
}

func TestWishlistServiceListWithProduct(t *testing.T) {
	svc, db := setupWishlistServiceTest(t)
	seedCartProduct(t, db, 1, "Velocity Boost Runner", "3999.00")
	seedCartProduct(t, db, 2, "AirFlex Motion", "2799.00")

	if err := svc.Add(10, 2); err != nil {
		t.Fatalf("add product 2 failed: %v", err)
	}
	if err := svc.Add(10, 1); err != nil {
		t.Fatalf("add product 1 failed: %v", err)
	}

	items, err := svc.List(10)
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 wishlist items, got: %d", len(items))
	}
	for _, item := range items {
		if item.Product == nil {
			t.Fatalf("expected product preloaded for item %d", item.ID)
		}
	}
	if items[0].ProductID != 2 {
		t.Fatalf("expected insertion order, first product_id=2, got: %d", items[0].ProductID)
	}
}
