package services

import (
	"testing"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

func diaryEntry(id uint, day string, productID uint, energy *float64) gormModels.DiaryEntry {
	return gormModels.DiaryEntry{
		ID:         id,
		UserID:     1,
		ProductID:  productID,
		EntryDate:  date(day),
		MealType:   "lunch",
		AmountG:    100,
		EnergyKcal: energy,
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	svc := NewStatsService()

	report := svc.CalculateStats(nil, 30)

	if report.PeriodDays != 30 {
		t.Errorf("Expected period 30, got %d", report.PeriodDays)
	}
	if report.DaysLogged != 0 {
		t.Errorf("Expected 0 days logged, got %d", report.DaysLogged)
	}
	if report.ConsistencyPct != 0 {
		t.Errorf("Expected consistency 0, got %v", report.ConsistencyPct)
	}
	if report.TopProducts == nil || len(report.TopProducts) != 0 {
		t.Errorf("Expected empty top products, got %v", report.TopProducts)
	}
}

func TestCalculateStats_ConsistencyAndAverages(t *testing.T) {
	svc := NewStatsService()

	// Three distinct days over a 30-day window, two entries on the first day.
	entries := []gormModels.DiaryEntry{
		diaryEntry(1, "2024-06-01", 10, floatPtr(400)),
		diaryEntry(2, "2024-06-01", 11, floatPtr(200)),
		diaryEntry(3, "2024-06-02", 10, floatPtr(600)),
		diaryEntry(4, "2024-06-05", 10, nil), // null snapshot counts as zero
	}

	report := svc.CalculateStats(entries, 30)

	if report.DaysLogged != 3 {
		t.Errorf("Expected 3 days logged, got %d", report.DaysLogged)
	}
	if report.ConsistencyPct != 10.0 {
		t.Errorf("Expected consistency 10.0, got %v", report.ConsistencyPct)
	}
	// (400 + 200 + 600 + 0) / 3 days logged = 400
	if report.AvgEnergyKcal != 400.0 {
		t.Errorf("Expected avg energy 400.0, got %v", report.AvgEnergyKcal)
	}
}

func TestCalculateStats_TopProductsRankedByEntryCount(t *testing.T) {
	svc := NewStatsService()

	entries := []gormModels.DiaryEntry{
		diaryEntry(1, "2024-06-01", 10, nil),
		diaryEntry(2, "2024-06-02", 10, nil),
		diaryEntry(3, "2024-06-03", 10, nil),
		diaryEntry(4, "2024-06-01", 20, nil),
	}
	entries[0].Product = gormModels.Product{ID: 10, ProductName: "Oats"}

	report := svc.CalculateStats(entries, 7)

	if len(report.TopProducts) != 2 {
		t.Fatalf("Expected 2 top products, got %d", len(report.TopProducts))
	}
	top := report.TopProducts[0]
	if top.ProductID != 10 || top.EntryCount != 3 {
		t.Errorf("Expected product 10 with 3 entries first, got %d with %d", top.ProductID, top.EntryCount)
	}
	if top.Product == nil || top.Product.ProductName != "Oats" {
		t.Errorf("Expected preloaded product snapshot on top entry, got %v", top.Product)
	}
	if report.TopProducts[1].Product != nil {
		t.Errorf("Expected nil product when never preloaded, got %v", report.TopProducts[1].Product)
	}
}
