package dtos

import (
	"time"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// ProductResponse is the API shape of a catalog product.
type ProductResponse struct {
	ID               uint     `json:"id"`
	Barcode          *string  `json:"barcode"`
	ProductName      string   `json:"product_name"`
	Brand            *string  `json:"brand"`
	ServingSizeText  *string  `json:"serving_size_text"`
	ServingQuantityG *float64 `json:"serving_quantity_g"`
	Nutriscore       *string  `json:"nutriscore"`
	ImageURL         *string  `json:"image_url"`
	Categories       *string  `json:"categories"`
	Allergens        *string  `json:"allergens"`

	EnergyKcal100g    *float64 `json:"energy_kcal_100g"`
	Proteins100g      *float64 `json:"proteins_100g"`
	Carbohydrates100g *float64 `json:"carbohydrates_100g"`
	Sugars100g        *float64 `json:"sugars_100g"`
	Fat100g           *float64 `json:"fat_100g"`
	SaturatedFat100g  *float64 `json:"saturated_fat_100g"`
	Fiber100g         *float64 `json:"fiber_100g"`
	Salt100g          *float64 `json:"salt_100g"`

	Source string `json:"source"`
}

// NewProductResponse maps a Product row to its API shape.
func NewProductResponse(p *gormModels.Product) *ProductResponse {
	return &ProductResponse{
		ID:               p.ID,
		Barcode:          p.Barcode,
		ProductName:      p.ProductName,
		Brand:            p.Brand,
		ServingSizeText:  p.ServingSizeText,
		ServingQuantityG: p.ServingQuantityG,
		Nutriscore:       p.Nutriscore,
		ImageURL:         p.ImageURL,
		Categories:       p.Categories,
		Allergens:        p.Allergens,

		EnergyKcal100g:    p.EnergyKcal100g,
		Proteins100g:      p.Proteins100g,
		Carbohydrates100g: p.Carbohydrates100g,
		Sugars100g:        p.Sugars100g,
		Fat100g:           p.Fat100g,
		SaturatedFat100g:  p.SaturatedFat100g,
		Fiber100g:         p.Fiber100g,
		Salt100g:          p.Salt100g,

		Source: p.Source,
	}
}

// ProductSearchResponse merges local catalog hits with remote lookups.
type ProductSearchResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int                `json:"total"`
}

// CreateDiaryEntryRequest logs a product into the diary.
type CreateDiaryEntryRequest struct {
	ProductID uint    `json:"product_id"`
	EntryDate string  `json:"entry_date"`
	MealType  string  `json:"meal_type"`
	AmountG   float64 `json:"amount_g"`
	Notes     *string `json:"notes"`
}

// UpdateDiaryEntryRequest patches an entry; a new amount re-scales the
// nutrient snapshot.
type UpdateDiaryEntryRequest struct {
	AmountG  *float64 `json:"amount_g"`
	MealType *string  `json:"meal_type"`
	Notes    *string  `json:"notes"`
}

// UpdateDiaryAmountRequest changes only the logged amount.
type UpdateDiaryAmountRequest struct {
	AmountG float64 `json:"amount_g"`
}

// UpdateDiaryNotesRequest changes only the entry notes.
type UpdateDiaryNotesRequest struct {
	Notes *string `json:"notes"`
}

// DiaryEntryResponse is the API shape of a diary entry.
type DiaryEntryResponse struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	EntryDate string  `json:"entry_date"`
	MealType  string  `json:"meal_type"`
	AmountG   float64 `json:"amount_g"`

	EnergyKcal     *float64 `json:"energy_kcal"`
	ProteinsG      *float64 `json:"proteins_g"`
	CarbohydratesG *float64 `json:"carbohydrates_g"`
	SugarsG        *float64 `json:"sugars_g"`
	FatG           *float64 `json:"fat_g"`
	SaturatedFatG  *float64 `json:"saturated_fat_g"`
	FiberG         *float64 `json:"fiber_g"`
	SaltG          *float64 `json:"salt_g"`

	Notes     *string          `json:"notes"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewDiaryEntryResponse maps a DiaryEntry row to its API shape. The product
// snapshot is attached only when the association was preloaded.
func NewDiaryEntryResponse(e *gormModels.DiaryEntry) *DiaryEntryResponse {
	resp := &DiaryEntryResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		EntryDate: e.EntryDate.Format(dateLayout),
		MealType:  string(e.MealType),
		AmountG:   e.AmountG,

		EnergyKcal:     e.EnergyKcal,
		ProteinsG:      e.ProteinsG,
		CarbohydratesG: e.CarbohydratesG,
		SugarsG:        e.SugarsG,
		FatG:           e.FatG,
		SaturatedFatG:  e.SaturatedFatG,
		FiberG:         e.FiberG,
		SaltG:          e.SaltG,

		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
	if e.Product.ID != 0 {
		resp.Product = NewProductResponse(&e.Product)
	}
	return resp
}

// MealSummary is one meal slot's totals within a daily summary.
type MealSummary struct {
	MealType       string                `json:"meal_type"`
	Entries        []*DiaryEntryResponse `json:"entries"`
	EnergyKcal     float64               `json:"energy_kcal"`
	ProteinsG      float64               `json:"proteins_g"`
	CarbohydratesG float64               `json:"carbohydrates_g"`
	SugarsG        float64               `json:"sugars_g"`
	FatG           float64               `json:"fat_g"`
	SaturatedFatG  float64               `json:"saturated_fat_g"`
	FiberG         float64               `json:"fiber_g"`
	SaltG          float64               `json:"salt_g"`
}

// GoalProgress reports day totals against the user's targets.
type GoalProgress struct {
	EnergyPct   float64 `json:"energy_pct"`
	ProteinsPct float64 `json:"proteins_pct"`
	CarbsPct    float64 `json:"carbs_pct"`
	FatPct      float64 `json:"fat_pct"`
	FiberPct    float64 `json:"fiber_pct"`
}

// DailySummaryResponse groups a day's diary by meal in canonical order.
type DailySummaryResponse struct {
	Date                string        `json:"date"`
	Meals               []MealSummary `json:"meals"`
	TotalEnergyKcal     float64       `json:"total_energy_kcal"`
	TotalProteinsG      float64       `json:"total_proteins_g"`
	TotalCarbohydratesG float64       `json:"total_carbohydrates_g"`
	TotalSugarsG        float64       `json:"total_sugars_g"`
	TotalFatG           float64       `json:"total_fat_g"`
	TotalSaturatedFatG  float64       `json:"total_saturated_fat_g"`
	TotalFiberG         float64       `json:"total_fiber_g"`
	TotalSaltG          float64       `json:"total_salt_g"`
	Goal                *GoalResponse `json:"goal"`
	Progress            GoalProgress  `json:"progress"`
}

// TopProduct is one ranked product in the stats report.
type TopProduct struct {
	ProductID  uint             `json:"product_id"`
	EntryCount int              `json:"entry_count"`
	Product    *ProductResponse `json:"product"`
}

// StatsResponse is the macro diary aggregate over a trailing period.
type StatsResponse struct {
	PeriodDays     int     `json:"period_days"`
	DaysLogged     int     `json:"days_logged"`
	ConsistencyPct float64 `json:"consistency_pct"`

	AvgEnergyKcal     float64 `json:"avg_energy_kcal"`
	AvgProteinsG      float64 `json:"avg_proteins_g"`
	AvgCarbohydratesG float64 `json:"avg_carbohydrates_g"`
	AvgSugarsG        float64 `json:"avg_sugars_g"`
	AvgFatG           float64 `json:"avg_fat_g"`
	AvgSaturatedFatG  float64 `json:"avg_saturated_fat_g"`
	AvgFiberG         float64 `json:"avg_fiber_g"`
	AvgSaltG          float64 `json:"avg_salt_g"`

	TopProducts []TopProduct `json:"top_products"`
}

// UpsertGoalRequest sets the user's daily macro targets.
type UpsertGoalRequest struct {
	EnergyKcal     *float64 `json:"energy_kcal"`
	ProteinsG      *float64 `json:"proteins_g"`
	CarbohydratesG *float64 `json:"carbohydrates_g"`
	FatG           *float64 `json:"fat_g"`
	FiberG         *float64 `json:"fiber_g"`
}

// GoalResponse is the API shape of a user's macro targets.
type GoalResponse struct {
	EnergyKcal     float64  `json:"energy_kcal"`
	ProteinsG      float64  `json:"proteins_g"`
	CarbohydratesG float64  `json:"carbohydrates_g"`
	FatG           float64  `json:"fat_g"`
	FiberG         *float64 `json:"fiber_g"`
}

// NewGoalResponse maps a UserGoal row to its API shape.
func NewGoalResponse(g *gormModels.UserGoal) *GoalResponse {
	return &GoalResponse{
		EnergyKcal:     g.EnergyKcal,
		ProteinsG:      g.ProteinsG,
		CarbohydratesG: g.CarbohydratesG,
		FatG:           g.FatG,
		FiberG:         g.FiberG,
	}
}
