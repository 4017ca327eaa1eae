package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/models"
	"github.com/Karthikeyanbk4067/FitX/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCatalogService(repository.NewProductRepository(db))
	return svc, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{ID: 1, Name: "Velocity Boost Runner", Category: "Men", Price: money(t, "3999"), Badge: "Bestseller"},
		{ID: 2, Name: "AirFlex Motion", Category: "Men", Price: money(t, "2799"), Badge: "New Arrival"},
		{ID: 3, Name: "Luna Glide Sneaker", Category: "Women", Price: money(t, "3299"), Badge: "Bestseller"},
		{ID: 4, Name: "Metro Street Flex", Category: "Unisex", Price: money(t, "1999")},
		{ID: 5, Name: "Trail Grip Xtreme", Category: "Men", Price: money(t, "4599"), Badge: "Bestseller"},
		{ID: 6, Name: "Coast Walk Canvas", Category: "Women", Price: money(t, "1499"), Badge: "Bestseller"},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product %d failed: %v", products[i].ID, err)
		}
	}
}

func money(t *testing.T, amount string) models.Money {
	t.Helper()
	return models.NewMoneyFromDecimal(decimal.RequireFromString(amount))
}

func TestCatalogServiceListByCategoryAndPrice(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	products, total, err := svc.List(CatalogListInput{
		Categories: []string{"Men", "Women"},
		PriceRange: "2500-4000",
		Page:       1,
		PageSize:   20,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3, got: %d", total)
	}
	for _, p := range products {
		if p.Category != "Men" && p.Category != "Women" {
			t.Fatalf("unexpected category in result: %s", p.Category)
		}
	}
}

func TestCatalogServiceListIgnoresBadPriceRange(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	_, total, err := svc.List(CatalogListInput{PriceRange: "cheap", Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 6 {
		t.Fatalf("malformed price range should be ignored, expected total=6, got: %d", total)
	}
}

func TestCatalogServiceSearch(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	products, total, err := svc.List(CatalogListInput{Search: "Flex", Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matches for Flex, got: %d", total)
	}
	for _, p := range products {
		if p.Name != "AirFlex Motion" && p.Name != "Metro Street Flex" {
			t.Fatalf("unexpected search result: %s", p.Name)
		}
	}
}

func TestCatalogServiceGetByID(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	product, err := svc.GetByID(3)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Name != "Luna Glide Sneaker" {
		t.Fatalf("unexpected product: %s", product.Name)
	}

	if _, err := svc.GetByID(999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
	if _, err := svc.GetByID(0); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for id=0, got: %v", err)
	}
}

func TestCatalogServiceTrending(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	products, err := svc.Trending(context.Background())
	if err != nil {
		t.Fatalf("trending failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 trending products, got: %d", len(products))
	}
	for _, p := range products {
		if p.Badge != "Bestseller" {
			t.Fatalf("trending should only contain Bestseller, got: %s", p.Badge)
		}
	}
}

func TestParsePriceRange(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		min  float64
		max  float64
		ok   bool
	}{
		{name: "normal", raw: "1000-2000", min: 1000, max: 2000, ok: true},
		{name: "spaces", raw: " 500 - 1500 ", min: 500, max: 1500, ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "no_dash", raw: "1000", ok: false},
		{name: "bad_min", raw: "abc-2000", ok: false},
		{name: "bad_max", raw: "1000-xyz", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			minPrice, maxPrice, ok := parsePriceRange(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if ok && (minPrice != tc.min || maxPrice != tc.max) {
				t.Fatalf("range want [%v,%v] got [%v,%v]", tc.min, tc.max, minPrice, maxPrice)
			}
		})
	}
}
