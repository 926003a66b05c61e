package services

import (
	"context"
	"strings"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// validExpenseAccounts is the accepted account vocabulary.
var validExpenseAccounts = map[string]struct{}{
	"cash":    {},
	"card":    {},
	"savings": {},
	"other":   {},
}

// ExpenseService is plain per-user CRUD plus the monthly summary.
type ExpenseService struct {
	repo *repositories.ExpenseRepository
}

func NewExpenseService(repo *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, userID uint, req dtos.CreateExpenseRequest) (*dtos.ExpenseResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	account := strings.ToLower(strings.TrimSpace(req.Account))
	if _, ok := validExpenseAccounts[account]; !ok {
		return nil, apperrors.Validation("unknown account %q", req.Account)
	}

	expense := &gormModels.Expense{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Account:  account,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return dtos.NewExpenseResponse(expense), nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, userID, expenseID uint) (*dtos.ExpenseResponse, error) {
	expense, err := s.repo.GetByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	return dtos.NewExpenseResponse(expense), nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, userID uint, limit, offset int) ([]*dtos.ExpenseResponse, error) {
	expenses, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		result = append(result, dtos.NewExpenseResponse(&expenses[i]))
	}
	return result, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, expenseID uint, req dtos.UpdateExpenseRequest) (*dtos.ExpenseResponse, error) {
	expense, err := s.repo.GetByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Quantity != nil {
		expense.Quantity = *req.Quantity
	}
	if req.Account != nil {
		account := strings.ToLower(strings.TrimSpace(*req.Account))
		if _, ok := validExpenseAccounts[account]; !ok {
			return nil, apperrors.Validation("unknown account %q", *req.Account)
		}
		expense.Account = account
	}

	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return dtos.NewExpenseResponse(expense), nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID uint) error {
	return s.repo.Delete(ctx, userID, expenseID)
}

// MonthlySummary groups the user's spending per month and account.
func (s *ExpenseService) MonthlySummary(ctx context.Context, userID uint) ([]repositories.MonthlySummaryRow, error) {
	return s.repo.MonthlySummary(ctx, userID)
}
