package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/constants"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// ExpenseRepository handles expense rows. CRUD goes through GORM; the
// monthly summary is raw SQL over sqlx since GORM grouping gets awkward there.
type ExpenseRepository struct {
	db  *gorm.DB
	sdb *sqlx.DB
}

func NewExpenseRepository(db *gorm.DB, sdb *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db, sdb: sdb}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *gormModels.Expense) error {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, userID, expenseID uint) (*gormModels.Expense, error) {
	var expense gormModels.Expense
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expenseID, userID).
		First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("expense %d not found", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense: %w", err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) List(ctx context.Context, userID uint, limit, offset int) ([]gormModels.Expense, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var expenses []gormModels.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Save(ctx context.Context, expense *gormModels.Expense) error {
	if err := r.db.WithContext(ctx).Save(expense).Error; err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, expenseID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Delete(&gormModels.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("expense %d not found", expenseID)
	}
	return nil
}

// MonthlySummaryRow is one (month, account) bucket of spending.
type MonthlySummaryRow struct {
	Month   string  `db:"month" json:"month"`
	Account string  `db:"account" json:"account"`
	Total   float64 `db:"total" json:"total"`
	Count   int     `db:"count" json:"count"`
}

// MonthlySummary groups the user's expenses per calendar month and account.
func (r *ExpenseRepository) MonthlySummary(ctx context.Context, userID uint) ([]MonthlySummaryRow, error) {
	rows := []MonthlySummaryRow{}
	if err := r.sdb.SelectContext(ctx, &rows, constants.MonthlyExpenseSummary, userID); err != nil {
		return nil, fmt.Errorf("failed to compute expense summary: %w", err)
	}
	return rows, nil
}
