package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/common"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
	"gorm.io/gorm"
)

// Mock FoodProvider
type mockFoodProvider struct {
	getProductFunc   func(ctx context.Context, barcode string) (*gormModels.Product, error)
	searchByNameFunc func(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error)
	getCalls         int
	searchCalls      int
}

func (m *mockFoodProvider) GetProduct(ctx context.Context, barcode string) (*gormModels.Product, error) {
	m.getCalls++
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, barcode)
	}
	return nil, apperrors.NotFound("product %s not found", barcode)
}

func (m *mockFoodProvider) SearchByName(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error) {
	m.searchCalls++
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, query, pageSize)
	}
	return nil, nil
}

func remoteProduct(barcode, name string) *gormModels.Product {
	return &gormModels.Product{
		ProductName:    name,
		Barcode:        strPtr(barcode),
		EnergyKcal100g: floatPtr(100),
		Source:         "openfoodfacts",
	}
}

func newFoodService(t *testing.T, provider *mockFoodProvider) (*FoodService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	cache := common.NewCacheService(60, 60)
	t.Cleanup(func() { cache.Close() })
	return NewFoodService(repositories.NewMacroRepository(db), provider, cache), db
}

func TestFoodService_BarcodeFetchesAndStores(t *testing.T) {
	provider := &mockFoodProvider{
		getProductFunc: func(ctx context.Context, barcode string) (*gormModels.Product, error) {
			return remoteProduct(barcode, "Tortilla de patatas"), nil
		},
	}
	svc, db := newFoodService(t, provider)
	ctx := context.Background()

	resp, err := svc.GetOrFetchProductByBarcode(ctx, " 8410000000017 ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.ProductName != "Tortilla de patatas" {
		t.Errorf("Expected provider product, got %s", resp.ProductName)
	}
	if provider.getCalls != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.getCalls)
	}

	var count int64
	db.Model(&gormModels.Product{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected product persisted to catalog, got %d rows", count)
	}
}

func TestFoodService_BarcodeCacheSkipsProvider(t *testing.T) {
	provider := &mockFoodProvider{
		getProductFunc: func(ctx context.Context, barcode string) (*gormModels.Product, error) {
			return remoteProduct(barcode, "Gazpacho"), nil
		},
	}
	svc, _ := newFoodService(t, provider)
	ctx := context.Background()

	if _, err := svc.GetOrFetchProductByBarcode(ctx, "8410000000024"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetOrFetchProductByBarcode(ctx, "8410000000024"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.getCalls != 1 {
		t.Errorf("Expected second lookup served from cache, provider called %d times", provider.getCalls)
	}
}

func TestFoodService_BarcodeLocalCatalogBeforeProvider(t *testing.T) {
	provider := &mockFoodProvider{}
	svc, db := newFoodService(t, provider)
	ctx := context.Background()

	local := remoteProduct("8410000000031", "Lentejas cocidas")
	if err := db.Create(local).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	resp, err := svc.GetOrFetchProductByBarcode(ctx, "8410000000031")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.ProductName != "Lentejas cocidas" {
		t.Errorf("Expected local product, got %s", resp.ProductName)
	}
	if provider.getCalls != 0 {
		t.Errorf("Expected no provider call for a catalog hit, got %d", provider.getCalls)
	}
}

func TestFoodService_BarcodeValidation(t *testing.T) {
	svc, _ := newFoodService(t, &mockFoodProvider{})
	if _, err := svc.GetOrFetchProductByBarcode(context.Background(), "   "); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for blank barcode, got %v", err)
	}
}

func TestFoodService_SearchMergesRemoteWhenLocalShort(t *testing.T) {
	provider := &mockFoodProvider{
		searchByNameFunc: func(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error) {
			return []*gormModels.Product{
				remoteProduct("1000", "Yogur natural"),
				remoteProduct("1001", "Yogur griego"),
			}, nil
		},
	}
	svc, db := newFoodService(t, provider)
	ctx := context.Background()

	// One local hit sharing a barcode with a remote result.
	if err := db.Create(remoteProduct("1000", "Yogur natural")).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	resp, err := svc.SearchProducts(ctx, "yogur")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("Expected 2 deduped results, got %d", resp.Total)
	}
	names := map[string]bool{}
	for _, p := range resp.Products {
		names[p.ProductName] = true
	}
	if !names["Yogur natural"] || !names["Yogur griego"] {
		t.Errorf("Expected merged local and remote hits, got %v", names)
	}
}

func TestFoodService_SearchSkipsRemoteWhenLocalSufficient(t *testing.T) {
	provider := &mockFoodProvider{
		searchByNameFunc: func(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error) {
			return []*gormModels.Product{remoteProduct("2099", "Pan remoto")}, nil
		},
	}
	svc, db := newFoodService(t, provider)
	ctx := context.Background()

	for i := 0; i < minLocalSearchHits; i++ {
		p := remoteProduct(fmt.Sprintf("20%02d", i), fmt.Sprintf("Pan integral %d", i))
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("Failed to seed product: %v", err)
		}
	}

	resp, err := svc.SearchProducts(ctx, "pan")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Total != minLocalSearchHits {
		t.Errorf("Expected remote hits ignored with enough local results, got %d", resp.Total)
	}
}

func TestFoodService_SearchToleratesRemoteFailure(t *testing.T) {
	provider := &mockFoodProvider{
		searchByNameFunc: func(ctx context.Context, query string, pageSize int) ([]*gormModels.Product, error) {
			return nil, errors.New("upstream timeout")
		},
	}
	svc, db := newFoodService(t, provider)
	ctx := context.Background()

	if err := db.Create(remoteProduct("3000", "Aceite de oliva")).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	resp, err := svc.SearchProducts(ctx, "aceite")
	if err != nil {
		t.Fatalf("Expected local-only degradation, got %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Expected 1 local result, got %d", resp.Total)
	}

	if _, err := svc.SearchProducts(ctx, ""); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for blank query, got %v", err)
	}
}

func TestFoodService_BarcodeDuplicateInsertResolvesToExisting(t *testing.T) {
	provider := &mockFoodProvider{}
	svc, db := newFoodService(t, provider)
	ctx := context.Background()

	// A concurrent first-time scan inserts the row between our catalog miss
	// and our insert; the unique-index conflict must resolve to a re-read.
	var concurrent *gormModels.Product
	provider.getProductFunc = func(ctx context.Context, barcode string) (*gormModels.Product, error) {
		concurrent = remoteProduct(barcode, "Hummus de garbanzos")
		if err := db.Create(concurrent).Error; err != nil {
			t.Fatalf("Failed to seed concurrent product: %v", err)
		}
		return remoteProduct(barcode, "Hummus de garbanzos"), nil
	}

	resp, err := svc.GetOrFetchProductByBarcode(ctx, "8410000000048")
	if err != nil {
		t.Fatalf("Expected conflict to resolve to the existing row, got %v", err)
	}
	if resp.ID != concurrent.ID {
		t.Errorf("Expected the concurrently inserted row %d, got %d", concurrent.ID, resp.ID)
	}

	var count int64
	db.Model(&gormModels.Product{}).Where("barcode = ?", "8410000000048").Count(&count)
	if count != 1 {
		t.Errorf("Expected a single catalog row, got %d", count)
	}
}
