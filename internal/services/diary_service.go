package services

import (
	"context"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

const (
	minStatsDays = 7
	maxStatsDays = 365
)

// DiaryService manages diary entries, goals and the derived reports. Nutrient
// snapshots are scaled from the product's per-100g values at write time and
// recalculated on amount changes, never derived lazily.
type DiaryService struct {
	repo  *repositories.MacroRepository
	stats *StatsService
	nowFn func() time.Time
}

func NewDiaryService(repo *repositories.MacroRepository, stats *StatsService) *DiaryService {
	return &DiaryService{repo: repo, stats: stats, nowFn: time.Now}
}

// ScaleNutrient converts a per-100g value to the logged amount. Nil stays
// nil: absence of data must propagate, never silently become zero.
func ScaleNutrient(per100g *float64, amountG float64) *float64 {
	if per100g == nil {
		return nil
	}
	v := round2(*per100g * amountG / 100)
	return &v
}

func validMealType(raw string) (gormModels.MealType, bool) {
	mt := gormModels.MealType(raw)
	for _, known := range gormModels.MealOrder {
		if mt == known {
			return mt, true
		}
	}
	return "", false
}

// CreateEntry logs a product into the diary, snapshotting scaled nutrients.
func (s *DiaryService) CreateEntry(ctx context.Context, userID uint, req dtos.CreateDiaryEntryRequest) (*dtos.DiaryEntryResponse, error) {
	if req.AmountG <= 0 {
		return nil, apperrors.Validation("amount_g must be positive")
	}
	mealType, ok := validMealType(req.MealType)
	if !ok {
		return nil, apperrors.Validation("unknown meal_type %q", req.MealType)
	}
	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, apperrors.Validation("entry_date must be YYYY-MM-DD")
	}

	product, err := s.repo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	entry := &gormModels.DiaryEntry{
		UserID:    userID,
		ProductID: product.ID,
		EntryDate: entryDate,
		MealType:  mealType,
		AmountG:   req.AmountG,
		Notes:     req.Notes,
	}
	applyNutrientSnapshot(entry, product)

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	entry.Product = *product
	return dtos.NewDiaryEntryResponse(entry), nil
}

func (s *DiaryService) GetEntry(ctx context.Context, userID, entryID uint) (*dtos.DiaryEntryResponse, error) {
	entry, err := s.repo.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	return dtos.NewDiaryEntryResponse(entry), nil
}

func (s *DiaryService) ListEntries(ctx context.Context, userID uint, start, end *time.Time, mealType *string, limit int) ([]*dtos.DiaryEntryResponse, error) {
	var mt *gormModels.MealType
	if mealType != nil {
		parsed, ok := validMealType(*mealType)
		if !ok {
			return nil, apperrors.Validation("unknown meal_type %q", *mealType)
		}
		mt = &parsed
	}

	entries, err := s.repo.ListEntries(ctx, userID, start, end, mt, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.DiaryEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, dtos.NewDiaryEntryResponse(&entries[i]))
	}
	return result, nil
}

// UpdateEntry patches an entry. A new amount re-scales the snapshot from the
// product's current per-100g values.
func (s *DiaryService) UpdateEntry(ctx context.Context, userID, entryID uint, req dtos.UpdateDiaryEntryRequest) (*dtos.DiaryEntryResponse, error) {
	entry, err := s.repo.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.MealType != nil {
		mealType, ok := validMealType(*req.MealType)
		if !ok {
			return nil, apperrors.Validation("unknown meal_type %q", *req.MealType)
		}
		entry.MealType = mealType
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}
	if req.AmountG != nil {
		if *req.AmountG <= 0 {
			return nil, apperrors.Validation("amount_g must be positive")
		}
		entry.AmountG = *req.AmountG
		product, err := s.repo.GetProductByID(ctx, entry.ProductID)
		if err != nil {
			return nil, err
		}
		applyNutrientSnapshot(entry, product)
	}

	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return dtos.NewDiaryEntryResponse(entry), nil
}

func (s *DiaryService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	return s.repo.DeleteEntry(ctx, userID, entryID)
}

// GetDailySummary groups a day's entries by meal in canonical order and
// reports totals against the user's goal.
func (s *DiaryService) GetDailySummary(ctx context.Context, userID uint, date string) (*dtos.DailySummaryResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}

	entries, err := s.repo.ListEntriesRange(ctx, userID, day, day)
	if err != nil {
		return nil, err
	}
	goal, err := s.repo.GetOrCreateGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	byMeal := make(map[gormModels.MealType][]*gormModels.DiaryEntry)
	for i := range entries {
		e := &entries[i]
		byMeal[e.MealType] = append(byMeal[e.MealType], e)
	}

	resp := &dtos.DailySummaryResponse{
		Date:  date,
		Meals: make([]dtos.MealSummary, 0, len(gormModels.MealOrder)),
		Goal:  dtos.NewGoalResponse(goal),
	}
	for _, mealType := range gormModels.MealOrder {
		mealEntries := byMeal[mealType]
		if len(mealEntries) == 0 {
			continue
		}
		meal := dtos.MealSummary{
			MealType: string(mealType),
			Entries:  make([]*dtos.DiaryEntryResponse, 0, len(mealEntries)),
		}
		for _, e := range mealEntries {
			meal.Entries = append(meal.Entries, dtos.NewDiaryEntryResponse(e))
			meal.EnergyKcal += deref(e.EnergyKcal)
			meal.ProteinsG += deref(e.ProteinsG)
			meal.CarbohydratesG += deref(e.CarbohydratesG)
			meal.SugarsG += deref(e.SugarsG)
			meal.FatG += deref(e.FatG)
			meal.SaturatedFatG += deref(e.SaturatedFatG)
			meal.FiberG += deref(e.FiberG)
			meal.SaltG += deref(e.SaltG)
		}
		meal.EnergyKcal = round2(meal.EnergyKcal)
		meal.ProteinsG = round2(meal.ProteinsG)
		meal.CarbohydratesG = round2(meal.CarbohydratesG)
		meal.SugarsG = round2(meal.SugarsG)
		meal.FatG = round2(meal.FatG)
		meal.SaturatedFatG = round2(meal.SaturatedFatG)
		meal.FiberG = round2(meal.FiberG)
		meal.SaltG = round2(meal.SaltG)

		resp.TotalEnergyKcal += meal.EnergyKcal
		resp.TotalProteinsG += meal.ProteinsG
		resp.TotalCarbohydratesG += meal.CarbohydratesG
		resp.TotalSugarsG += meal.SugarsG
		resp.TotalFatG += meal.FatG
		resp.TotalSaturatedFatG += meal.SaturatedFatG
		resp.TotalFiberG += meal.FiberG
		resp.TotalSaltG += meal.SaltG
		resp.Meals = append(resp.Meals, meal)
	}
	resp.TotalEnergyKcal = round2(resp.TotalEnergyKcal)
	resp.TotalProteinsG = round2(resp.TotalProteinsG)
	resp.TotalCarbohydratesG = round2(resp.TotalCarbohydratesG)
	resp.TotalSugarsG = round2(resp.TotalSugarsG)
	resp.TotalFatG = round2(resp.TotalFatG)
	resp.TotalSaturatedFatG = round2(resp.TotalSaturatedFatG)
	resp.TotalFiberG = round2(resp.TotalFiberG)
	resp.TotalSaltG = round2(resp.TotalSaltG)

	goalFiber := 0.0
	if goal.FiberG != nil {
		goalFiber = *goal.FiberG
	}
	resp.Progress = dtos.GoalProgress{
		EnergyPct:   progressPct(resp.TotalEnergyKcal, goal.EnergyKcal),
		ProteinsPct: progressPct(resp.TotalProteinsG, goal.ProteinsG),
		CarbsPct:    progressPct(resp.TotalCarbohydratesG, goal.CarbohydratesG),
		FatPct:      progressPct(resp.TotalFatG, goal.FatG),
		FiberPct:    progressPct(resp.TotalFiberG, goalFiber),
	}
	return resp, nil
}

// GetStats aggregates the trailing period ending today.
func (s *DiaryService) GetStats(ctx context.Context, userID uint, days int) (*dtos.StatsResponse, error) {
	if days < minStatsDays || days > maxStatsDays {
		return nil, apperrors.Validation("days must be between %d and %d", minStatsDays, maxStatsDays)
	}

	// Entries are stored at midnight, so the window start has to be the
	// start of its calendar day or the first day's entries fall outside it.
	end := s.nowFn()
	y, m, d := end.AddDate(0, 0, -(days - 1)).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, end.Location())
	entries, err := s.repo.ListEntriesRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return s.stats.CalculateStats(entries, days), nil
}

func (s *DiaryService) GetGoal(ctx context.Context, userID uint) (*dtos.GoalResponse, error) {
	goal, err := s.repo.GetOrCreateGoal(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dtos.NewGoalResponse(goal), nil
}

// UpsertGoal patches the user's targets, lazily creating the default row.
func (s *DiaryService) UpsertGoal(ctx context.Context, userID uint, req dtos.UpsertGoalRequest) (*dtos.GoalResponse, error) {
	goal, err := s.repo.GetOrCreateGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.EnergyKcal != nil {
		goal.EnergyKcal = *req.EnergyKcal
	}
	if req.ProteinsG != nil {
		goal.ProteinsG = *req.ProteinsG
	}
	if req.CarbohydratesG != nil {
		goal.CarbohydratesG = *req.CarbohydratesG
	}
	if req.FatG != nil {
		goal.FatG = *req.FatG
	}
	if req.FiberG != nil {
		goal.FiberG = req.FiberG
	}

	if err := s.repo.SaveGoal(ctx, goal); err != nil {
		return nil, err
	}
	return dtos.NewGoalResponse(goal), nil
}

// applyNutrientSnapshot scales all eight nutrients from the product onto the
// entry for its current amount.
func applyNutrientSnapshot(entry *gormModels.DiaryEntry, product *gormModels.Product) {
	entry.EnergyKcal = ScaleNutrient(product.EnergyKcal100g, entry.AmountG)
	entry.ProteinsG = ScaleNutrient(product.Proteins100g, entry.AmountG)
	entry.CarbohydratesG = ScaleNutrient(product.Carbohydrates100g, entry.AmountG)
	entry.SugarsG = ScaleNutrient(product.Sugars100g, entry.AmountG)
	entry.FatG = ScaleNutrient(product.Fat100g, entry.AmountG)
	entry.SaturatedFatG = ScaleNutrient(product.SaturatedFat100g, entry.AmountG)
	entry.FiberG = ScaleNutrient(product.Fiber100g, entry.AmountG)
	entry.SaltG = ScaleNutrient(product.Salt100g, entry.AmountG)
}

// progressPct is round(total/goal*100, 1), with 0.0 for an unset goal.
func progressPct(total, goal float64) float64 {
	if goal == 0 {
		return 0.0
	}
	return round1(total / goal * 100)
}
