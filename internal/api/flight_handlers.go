package api

import (
	"net/http"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/metrics"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	"github.com/Jfgm299/centro-control-personal/internal/services"
)

func AddFlightHandler(flightSvc *services.FlightService, reg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.AddFlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		flight, err := flightSvc.AddFlight(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		reg.FlightsAddedTotal.Inc()
		respondJSON(w, http.StatusCreated, flight)
	}
}

func ListFlightsHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		past := queryBoolPtr(r, "past")
		upcoming := queryBoolPtr(r, "upcoming")
		limit := queryInt(r, "limit", 50)
		offset := queryInt(r, "offset", 0)

		flights, err := flightSvc.ListFlights(r.Context(), userID, past, upcoming, limit, offset)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, flights)
	}
}

func GetFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		flightID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		flight, err := flightSvc.GetFlight(r.Context(), userID, flightID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, flight)
	}
}

func UpdateFlightNotesHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		flightID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateFlightNotesRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		flight, err := flightSvc.UpdateNotes(r.Context(), userID, flightID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, flight)
	}
}

func RefreshFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		flightID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		flight, err := flightSvc.RefreshFlight(r.Context(), userID, flightID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, flight)
	}
}

func DeleteFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		flightID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := flightSvc.DeleteFlight(r.Context(), userID, flightID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

// SearchFlightHandler proxies a provider lookup without storing anything.
func SearchFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNumber := r.URL.Query().Get("flight_number")
		date := r.URL.Query().Get("date")
		flight, err := flightSvc.SearchFlight(r.Context(), flightNumber, date)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, flight)
	}
}

func PassportHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		passport, err := flightSvc.Passport(r.Context(), userID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, passport)
	}
}
