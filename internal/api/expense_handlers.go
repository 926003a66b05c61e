package api

import (
	"net/http"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	"github.com/Jfgm299/centro-control-personal/internal/services"
)

func CreateExpenseHandler(expenseSvc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.CreateExpenseRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		expense, err := expenseSvc.CreateExpense(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, expense)
	}
}

func ListExpensesHandler(expenseSvc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		limit := queryInt(r, "limit", 50)
		offset := queryInt(r, "offset", 0)
		expenses, err := expenseSvc.ListExpenses(r.Context(), userID, limit, offset)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, expenses)
	}
}

func GetExpenseHandler(expenseSvc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		expenseID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		expense, err := expenseSvc.GetExpense(r.Context(), userID, expenseID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, expense)
	}
}

func UpdateExpenseHandler(expenseSvc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		expenseID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateExpenseRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		expense, err := expenseSvc.UpdateExpense(r.Context(), userID, expenseID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, expense)
	}
}

func DeleteExpenseHandler(expenseSvc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		expenseID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := expenseSvc.DeleteExpense(r.Context(), userID, expenseID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func ExpenseSummaryHandler(expenseSvc *services.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		summary, err := expenseSvc.MonthlySummary(r.Context(), userID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}
