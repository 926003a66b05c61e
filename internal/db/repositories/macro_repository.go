package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// MacroRepository handles the shared product catalog, diary entries and
// user goals.
type MacroRepository struct {
	db *gorm.DB
}

func NewMacroRepository(db *gorm.DB) *MacroRepository {
	return &MacroRepository{db: db}
}

// ── Products ──

func (r *MacroRepository) GetProductByID(ctx context.Context, productID uint) (*gormModels.Product, error) {
	var product gormModels.Product
	err := r.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("product %d not found", productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

func (r *MacroRepository) GetProductByBarcode(ctx context.Context, barcode string) (*gormModels.Product, error) {
	var product gormModels.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by barcode: %w", err)
	}
	return &product, nil
}

func (r *MacroRepository) CreateProduct(ctx context.Context, product *gormModels.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// SearchProductsByName does a case-insensitive substring match on the name.
func (r *MacroRepository) SearchProductsByName(ctx context.Context, query string, limit int) ([]gormModels.Product, error) {
	var products []gormModels.Product
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(product_name) LIKE ?", pattern).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// ── Diary entries ──

func (r *MacroRepository) CreateEntry(ctx context.Context, entry *gormModels.DiaryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create diary entry: %w", err)
	}
	return nil
}

func (r *MacroRepository) GetEntry(ctx context.Context, userID, entryID uint) (*gormModels.DiaryEntry, error) {
	var entry gormModels.DiaryEntry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("diary entry %d not found", entryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diary entry: %w", err)
	}
	return &entry, nil
}

// ListEntries filters by optional date range and meal type, newest first.
func (r *MacroRepository) ListEntries(ctx context.Context, userID uint, start, end *time.Time, mealType *gormModels.MealType, limit int) ([]gormModels.DiaryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	query := r.db.WithContext(ctx).Preload("Product").Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("entry_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("entry_date <= ?", *end)
	}
	if mealType != nil {
		query = query.Where("meal_type = ?", *mealType)
	}

	var entries []gormModels.DiaryEntry
	if err := query.Order("entry_date DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	return entries, nil
}

// ListEntriesRange returns all entries in [start, end] ascending, with
// products preloaded for the aggregators.
func (r *MacroRepository) ListEntriesRange(ctx context.Context, userID uint, start, end time.Time) ([]gormModels.DiaryEntry, error) {
	var entries []gormModels.DiaryEntry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, start, end).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	return entries, nil
}

func (r *MacroRepository) SaveEntry(ctx context.Context, entry *gormModels.DiaryEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to save diary entry: %w", err)
	}
	return nil
}

func (r *MacroRepository) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&gormModels.DiaryEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete diary entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("diary entry %d not found", entryID)
	}
	return nil
}

// ── Goals ──

// GetOrCreateGoal returns the user's goal row, creating it with defaults on
// first access.
func (r *MacroRepository) GetOrCreateGoal(ctx context.Context, userID uint) (*gormModels.UserGoal, error) {
	var goal gormModels.UserGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err == nil {
		return &goal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}

	created := gormModels.NewDefaultGoal(userID)
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, fmt.Errorf("failed to create default goal: %w", err)
	}
	return created, nil
}

func (r *MacroRepository) SaveGoal(ctx context.Context, goal *gormModels.UserGoal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}
