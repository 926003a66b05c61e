package dtos

import (
	"time"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// CreateExpenseRequest records a spending.
type CreateExpenseRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Account  string  `json:"account"`
}

// UpdateExpenseRequest patches an expense.
type UpdateExpenseRequest struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Account  *string  `json:"account"`
}

// ExpenseResponse is the API shape of an expense.
type ExpenseResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Account   string    `json:"account"`
	CreatedAt time.Time `json:"created_at"`
}

// NewExpenseResponse maps an Expense row to its API shape.
func NewExpenseResponse(e *gormModels.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:        e.ID,
		Name:      e.Name,
		Quantity:  e.Quantity,
		Account:   e.Account,
		CreatedAt: e.CreatedAt,
	}
}
