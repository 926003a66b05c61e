package services

import (
	"context"
	"testing"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"

	"gorm.io/gorm"
)

func TestScaleNutrient(t *testing.T) {
	cases := []struct {
		name    string
		per100g *float64
		amountG float64
		want    *float64
	}{
		{"nil stays nil", nil, 150, nil},
		{"simple scale", floatPtr(100), 150, floatPtr(150)},
		{"rounds to two decimals", floatPtr(354), 150, floatPtr(531)},
		{"fractional result", floatPtr(3.3), 33, floatPtr(1.09)},
		{"zero amount", floatPtr(50), 0, floatPtr(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScaleNutrient(tc.per100g, tc.amountG)
			if tc.want == nil {
				if got != nil {
					t.Errorf("Expected nil, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected %v, got nil", *tc.want)
			}
			if *got != *tc.want {
				t.Errorf("Expected %v, got %v", *tc.want, *got)
			}
		})
	}
}

func TestProgressPct(t *testing.T) {
	if got := progressPct(1000, 2000); got != 50.0 {
		t.Errorf("Expected 50.0, got %v", got)
	}
	if got := progressPct(500, 0); got != 0.0 {
		t.Errorf("Expected 0.0 for unset goal, got %v", got)
	}
	if got := progressPct(100, 30); got != 333.3 {
		t.Errorf("Expected 333.3, got %v", got)
	}
}

func seedProduct(t *testing.T, db *gorm.DB) *gormModels.Product {
	t.Helper()
	product := &gormModels.Product{
		ProductName:       "Arroz blanco",
		EnergyKcal100g:    floatPtr(354),
		Proteins100g:      floatPtr(7),
		Carbohydrates100g: floatPtr(77),
		Sugars100g:        floatPtr(0.1),
		Fat100g:           floatPtr(0.9),
		SaturatedFat100g:  floatPtr(0.2),
		Salt100g:          floatPtr(0.01),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

func TestDiaryService_CreateEntry_SnapshotsScaledNutrients(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary@test.com", "diary")
	product := seedProduct(t, db)

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())

	entry, err := svc.CreateEntry(context.Background(), user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: product.ID,
		EntryDate: "2024-06-10",
		MealType:  "lunch",
		AmountG:   150,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.EnergyKcal == nil || *entry.EnergyKcal != 531 {
		t.Errorf("Expected energy snapshot 531, got %v", entry.EnergyKcal)
	}
	if entry.ProteinsG == nil || *entry.ProteinsG != 10.5 {
		t.Errorf("Expected proteins snapshot 10.5, got %v", entry.ProteinsG)
	}
	if entry.FiberG != nil {
		t.Errorf("Expected nil fiber snapshot for untracked nutrient, got %v", *entry.FiberG)
	}
	if entry.Product == nil || entry.Product.ProductName != "Arroz blanco" {
		t.Errorf("Expected product attached to response, got %v", entry.Product)
	}
}

func TestDiaryService_CreateEntry_Validation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary2@test.com", "diary2")
	product := seedProduct(t, db)

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: product.ID, EntryDate: "2024-06-10", MealType: "lunch", AmountG: 0,
	})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for zero amount, got %v", err)
	}

	_, err = svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: product.ID, EntryDate: "2024-06-10", MealType: "brunch", AmountG: 100,
	})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for unknown meal type, got %v", err)
	}

	_, err = svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: 9999, EntryDate: "2024-06-10", MealType: "lunch", AmountG: 100,
	})
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found error for missing product, got %v", err)
	}
}

func TestDiaryService_UpdateEntry_AmountChangeRescales(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary3@test.com", "diary3")
	product := seedProduct(t, db)

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	ctx := context.Background()

	created, err := svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: product.ID, EntryDate: "2024-06-10", MealType: "dinner", AmountG: 100,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newAmount := 200.0
	updated, err := svc.UpdateEntry(ctx, user.ID, created.ID, dtos.UpdateDiaryEntryRequest{AmountG: &newAmount})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.EnergyKcal == nil || *updated.EnergyKcal != 708 {
		t.Errorf("Expected rescaled energy 708, got %v", updated.EnergyKcal)
	}
}

func TestDiaryService_DailySummary_GroupsByMealInOrder(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary4@test.com", "diary4")
	product := seedProduct(t, db)

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	ctx := context.Background()

	for _, meal := range []string{"dinner", "breakfast"} {
		if _, err := svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
			ProductID: product.ID, EntryDate: "2024-06-10", MealType: meal, AmountG: 100,
		}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	summary, err := svc.GetDailySummary(ctx, user.ID, "2024-06-10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(summary.Meals) != 2 {
		t.Fatalf("Expected 2 meal groups, got %d", len(summary.Meals))
	}
	if summary.Meals[0].MealType != "breakfast" || summary.Meals[1].MealType != "dinner" {
		t.Errorf("Expected canonical meal order, got %s then %s", summary.Meals[0].MealType, summary.Meals[1].MealType)
	}
	if summary.TotalEnergyKcal != 708 {
		t.Errorf("Expected total energy 708, got %v", summary.TotalEnergyKcal)
	}
	if summary.TotalSugarsG != 0.2 {
		t.Errorf("Expected total sugars 0.2, got %v", summary.TotalSugarsG)
	}
	if summary.TotalSaturatedFatG != 0.4 {
		t.Errorf("Expected total saturated fat 0.4, got %v", summary.TotalSaturatedFatG)
	}
	if summary.TotalSaltG != 0.02 {
		t.Errorf("Expected total salt 0.02, got %v", summary.TotalSaltG)
	}
	if summary.Goal == nil {
		t.Fatal("Expected default goal to be created")
	}
	if summary.Progress.EnergyPct == 0 {
		t.Error("Expected non-zero energy progress against the default goal")
	}
}

func TestDiaryService_UpsertGoal(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary5@test.com", "diary5")

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	ctx := context.Background()

	energy := 1800.0
	goal, err := svc.UpsertGoal(ctx, user.ID, dtos.UpsertGoalRequest{EnergyKcal: &energy})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if goal.EnergyKcal != 1800 {
		t.Errorf("Expected energy goal 1800, got %v", goal.EnergyKcal)
	}

	fetched, err := svc.GetGoal(ctx, user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fetched.EnergyKcal != 1800 {
		t.Errorf("Expected persisted energy goal 1800, got %v", fetched.EnergyKcal)
	}
}

func TestDiaryService_UpdateEntry_NotesOnly(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary6@test.com", "diary6")
	product := seedProduct(t, db)

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	ctx := context.Background()

	entry, err := svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: product.ID, EntryDate: "2024-06-10", MealType: "lunch", AmountG: 150,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.UpdateEntry(ctx, user.ID, entry.ID, dtos.UpdateDiaryEntryRequest{Notes: strPtr("con verduras")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Notes == nil || *updated.Notes != "con verduras" {
		t.Errorf("Expected notes updated, got %v", updated.Notes)
	}
	if updated.EnergyKcal == nil || *updated.EnergyKcal != 531 {
		t.Errorf("Expected snapshot untouched by a notes change, got %v", updated.EnergyKcal)
	}
}

func TestDiaryService_Stats_IncludesWindowBoundaryDay(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary7@test.com", "diary7")
	product := seedProduct(t, db)

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	svc.nowFn = func() time.Time {
		return time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	}
	ctx := context.Background()

	// Dated on the first calendar day of a 7-day window ending today. Entries
	// land at midnight, so the window start must not carry a time-of-day.
	if _, err := svc.CreateEntry(ctx, user.ID, dtos.CreateDiaryEntryRequest{
		ProductID: product.ID, EntryDate: "2026-08-23", MealType: "lunch", AmountG: 100,
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	stats, err := svc.GetStats(ctx, user.ID, 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.DaysLogged != 1 {
		t.Errorf("Expected boundary-day entry counted, got days_logged %d", stats.DaysLogged)
	}
}

func TestDiaryService_Stats_RejectsOutOfRangeDays(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "diary8@test.com", "diary8")

	svc := NewDiaryService(repositories.NewMacroRepository(db), NewStatsService())
	ctx := context.Background()

	for _, days := range []int{6, 366, 0, -1} {
		if _, err := svc.GetStats(ctx, user.ID, days); !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("Expected validation error for days=%d, got %v", days, err)
		}
	}
}
