package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/metrics"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	"github.com/Jfgm299/centro-control-personal/internal/services"
)

func GetProductByBarcodeHandler(foodSvc *services.FoodService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		barcode := chi.URLParam(r, "barcode")
		product, err := foodSvc.GetOrFetchProductByBarcode(r.Context(), barcode)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, product)
	}
}

func SearchProductsHandler(foodSvc *services.FoodService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		results, err := foodSvc.SearchProducts(r.Context(), query)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, results)
	}
}

func GetProductHandler(foodSvc *services.FoodService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		product, err := foodSvc.GetProduct(r.Context(), productID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, product)
	}
}

func CreateDiaryEntryHandler(diarySvc *services.DiaryService, reg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.CreateDiaryEntryRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		entry, err := diarySvc.CreateEntry(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		reg.DiaryEntriesTotal.Inc()
		respondJSON(w, http.StatusCreated, entry)
	}
}

func ListDiaryEntriesHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())

		var start, end *time.Time
		if raw := r.URL.Query().Get("start"); raw != "" {
			if t, err := time.Parse("2006-01-02", raw); err == nil {
				start = &t
			}
		}
		if raw := r.URL.Query().Get("end"); raw != "" {
			if t, err := time.Parse("2006-01-02", raw); err == nil {
				end = &t
			}
		}
		var mealType *string
		if raw := r.URL.Query().Get("meal_type"); raw != "" {
			mealType = &raw
		}
		limit := queryInt(r, "limit", 100)

		entries, err := diarySvc.ListEntries(r.Context(), userID, start, end, mealType, limit)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

func GetDiaryEntryHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		entryID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		entry, err := diarySvc.GetEntry(r.Context(), userID, entryID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

func UpdateDiaryEntryHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		entryID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateDiaryEntryRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		entry, err := diarySvc.UpdateEntry(r.Context(), userID, entryID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

func UpdateDiaryAmountHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		entryID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateDiaryAmountRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		entry, err := diarySvc.UpdateEntry(r.Context(), userID, entryID, dtos.UpdateDiaryEntryRequest{AmountG: &req.AmountG})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

func UpdateDiaryNotesHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		entryID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateDiaryNotesRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		entry, err := diarySvc.UpdateEntry(r.Context(), userID, entryID, dtos.UpdateDiaryEntryRequest{Notes: req.Notes})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

func DeleteDiaryEntryHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		entryID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := diarySvc.DeleteEntry(r.Context(), userID, entryID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func DailySummaryHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		summary, err := diarySvc.GetDailySummary(r.Context(), userID, date)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

func MacroStatsHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		days := queryInt(r, "days", 30)
		stats, err := diarySvc.GetStats(r.Context(), userID, days)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func GetGoalHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		goal, err := diarySvc.GetGoal(r.Context(), userID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, goal)
	}
}

func UpsertGoalHandler(diarySvc *services.DiaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.UpsertGoalRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		goal, err := diarySvc.UpsertGoal(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, goal)
	}
}
