package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
)

func newExpenseService(t *testing.T) (*ExpenseService, uint, uint) {
	t.Helper()
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@test.com", "owner")
	other := createTestUser(t, db, "other@test.com", "other")
	return NewExpenseService(repositories.NewExpenseRepository(db, nil)), owner.ID, other.ID
}

func TestExpenseService_CreateNormalizesAccount(t *testing.T) {
	svc, userID, _ := newExpenseService(t)

	expense, err := svc.CreateExpense(context.Background(), userID, dtos.CreateExpenseRequest{
		Name:     "Mercadona",
		Quantity: 42.50,
		Account:  " Card ",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if expense.Account != "card" {
		t.Errorf("Expected normalized account card, got %s", expense.Account)
	}
	if expense.Quantity != 42.50 {
		t.Errorf("Expected quantity 42.50, got %f", expense.Quantity)
	}
}

func TestExpenseService_CreateValidation(t *testing.T) {
	svc, userID, _ := newExpenseService(t)
	ctx := context.Background()

	_, err := svc.CreateExpense(ctx, userID, dtos.CreateExpenseRequest{Name: "  ", Quantity: 10, Account: "cash"})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for blank name, got %v", err)
	}

	_, err = svc.CreateExpense(ctx, userID, dtos.CreateExpenseRequest{Name: "Cine", Quantity: 10, Account: "bitcoin"})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for unknown account, got %v", err)
	}
}

func TestExpenseService_UpdateAndDelete(t *testing.T) {
	svc, userID, _ := newExpenseService(t)
	ctx := context.Background()

	expense, err := svc.CreateExpense(ctx, userID, dtos.CreateExpenseRequest{Name: "Gasolina", Quantity: 60, Account: "card"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newQuantity := 65.30
	updated, err := svc.UpdateExpense(ctx, userID, expense.ID, dtos.UpdateExpenseRequest{Quantity: &newQuantity})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Quantity != 65.30 {
		t.Errorf("Expected quantity 65.30, got %f", updated.Quantity)
	}
	if updated.Name != "Gasolina" {
		t.Errorf("Expected name untouched, got %s", updated.Name)
	}

	badAccount := "monopoly"
	if _, err := svc.UpdateExpense(ctx, userID, expense.ID, dtos.UpdateExpenseRequest{Account: &badAccount}); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for unknown account, got %v", err)
	}

	if err := svc.DeleteExpense(ctx, userID, expense.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetExpense(ctx, userID, expense.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found after delete, got %v", err)
	}
}

func TestExpenseService_OwnershipIsolation(t *testing.T) {
	svc, userID, otherID := newExpenseService(t)
	ctx := context.Background()

	expense, err := svc.CreateExpense(ctx, userID, dtos.CreateExpenseRequest{Name: "Alquiler", Quantity: 800, Account: "savings"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.GetExpense(ctx, otherID, expense.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found for foreign expense, got %v", err)
	}
}

func TestExpenseService_ListPaginates(t *testing.T) {
	svc, userID, _ := newExpenseService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateExpense(ctx, userID, dtos.CreateExpenseRequest{
			Name:     fmt.Sprintf("Compra %d", i),
			Quantity: float64(i + 1),
			Account:  "cash",
		}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	page, err := svc.ListExpenses(ctx, userID, 2, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(page) != 2 {
		t.Errorf("Expected page of 2, got %d", len(page))
	}
}
