package dtos

import (
	"time"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

const dateLayout = "2006-01-02"

// AddFlightRequest is the payload for registering a flight.
type AddFlightRequest struct {
	FlightNumber string `json:"flight_number"`
	FlightDate   string `json:"flight_date"`
}

// UpdateFlightNotesRequest carries the user's notes for a flight.
type UpdateFlightNotesRequest struct {
	Notes *string `json:"notes"`
}

// FlightResponse is the API shape of a flight record.
type FlightResponse struct {
	ID           uint   `json:"id"`
	FlightNumber string `json:"flight_number"`
	FlightDate   string `json:"flight_date"`
	Status       string `json:"status"`

	OriginIATA        string   `json:"origin_iata"`
	OriginICAO        *string  `json:"origin_icao"`
	OriginName        *string  `json:"origin_name"`
	OriginCity        *string  `json:"origin_city"`
	OriginCountryCode *string  `json:"origin_country_code"`
	OriginTimezone    *string  `json:"origin_timezone"`
	OriginLat         *float64 `json:"origin_lat"`
	OriginLon         *float64 `json:"origin_lon"`

	DestinationIATA        string   `json:"destination_iata"`
	DestinationICAO        *string  `json:"destination_icao"`
	DestinationName        *string  `json:"destination_name"`
	DestinationCity        *string  `json:"destination_city"`
	DestinationCountryCode *string  `json:"destination_country_code"`
	DestinationTimezone    *string  `json:"destination_timezone"`
	DestinationLat         *float64 `json:"destination_lat"`
	DestinationLon         *float64 `json:"destination_lon"`

	AirlineIATA *string `json:"airline_iata"`
	AirlineICAO *string `json:"airline_icao"`
	AirlineName *string `json:"airline_name"`

	ScheduledDeparture *time.Time `json:"scheduled_departure"`
	RevisedDeparture   *time.Time `json:"revised_departure"`
	PredictedDeparture *time.Time `json:"predicted_departure"`
	ActualDeparture    *time.Time `json:"actual_departure"`

	ScheduledArrival *time.Time `json:"scheduled_arrival"`
	RevisedArrival   *time.Time `json:"revised_arrival"`
	PredictedArrival *time.Time `json:"predicted_arrival"`
	ActualArrival    *time.Time `json:"actual_arrival"`

	DurationMinutes       *int     `json:"duration_minutes"`
	DelayDepartureMinutes *int     `json:"delay_departure_minutes"`
	DelayArrivalMinutes   *int     `json:"delay_arrival_minutes"`
	DistanceKm            *float64 `json:"distance_km"`

	AircraftModel        *string `json:"aircraft_model"`
	AircraftRegistration *string `json:"aircraft_registration"`

	TerminalOrigin      *string `json:"terminal_origin"`
	GateOrigin          *string `json:"gate_origin"`
	TerminalDestination *string `json:"terminal_destination"`
	BaggageBelt         *string `json:"baggage_belt"`

	IsPast     bool `json:"is_past"`
	IsDiverted bool `json:"is_diverted"`

	Notes           *string    `json:"notes"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewFlightResponse maps a Flight row to its API shape.
func NewFlightResponse(f *gormModels.Flight) *FlightResponse {
	return &FlightResponse{
		ID:           f.ID,
		FlightNumber: f.FlightNumber,
		FlightDate:   f.FlightDate.Format(dateLayout),
		Status:       string(f.Status),

		OriginIATA:        f.OriginIATA,
		OriginICAO:        f.OriginICAO,
		OriginName:        f.OriginName,
		OriginCity:        f.OriginCity,
		OriginCountryCode: f.OriginCountryCode,
		OriginTimezone:    f.OriginTimezone,
		OriginLat:         f.OriginLat,
		OriginLon:         f.OriginLon,

		DestinationIATA:        f.DestinationIATA,
		DestinationICAO:        f.DestinationICAO,
		DestinationName:        f.DestinationName,
		DestinationCity:        f.DestinationCity,
		DestinationCountryCode: f.DestinationCountryCode,
		DestinationTimezone:    f.DestinationTimezone,
		DestinationLat:         f.DestinationLat,
		DestinationLon:         f.DestinationLon,

		AirlineIATA: f.AirlineIATA,
		AirlineICAO: f.AirlineICAO,
		AirlineName: f.AirlineName,

		ScheduledDeparture: f.ScheduledDeparture,
		RevisedDeparture:   f.RevisedDeparture,
		PredictedDeparture: f.PredictedDeparture,
		ActualDeparture:    f.ActualDeparture,

		ScheduledArrival: f.ScheduledArrival,
		RevisedArrival:   f.RevisedArrival,
		PredictedArrival: f.PredictedArrival,
		ActualArrival:    f.ActualArrival,

		DurationMinutes:       f.DurationMinutes,
		DelayDepartureMinutes: f.DelayDepartureMinutes,
		DelayArrivalMinutes:   f.DelayArrivalMinutes,
		DistanceKm:            f.DistanceKm,

		AircraftModel:        f.AircraftModel,
		AircraftRegistration: f.AircraftRegistration,

		TerminalOrigin:      f.TerminalOrigin,
		GateOrigin:          f.GateOrigin,
		TerminalDestination: f.TerminalDestination,
		BaggageBelt:         f.BaggageBelt,

		IsPast:     f.IsPast,
		IsDiverted: f.IsDiverted,

		Notes:           f.Notes,
		LastRefreshedAt: f.LastRefreshedAt,
		CreatedAt:       f.CreatedAt,
	}
}

// FlightListResponse wraps a page of flights.
type FlightListResponse struct {
	Flights []*FlightResponse `json:"flights"`
	Total   int               `json:"total"`
}

// ── Passport shapes ──

// CountryVisit is one country's aggregate in the passport report. A single
// flight can count towards two countries, one per leg endpoint.
type CountryVisit struct {
	CountryCode string   `json:"country_code"`
	VisitCount  int      `json:"visit_count"`
	Cities      []string `json:"cities"`
	FirstVisit  string   `json:"first_visit"`
}

// AirportStat is one airport's aggregate, identified by IATA code.
type AirportStat struct {
	IATA        string  `json:"iata"`
	Name        *string `json:"name"`
	City        *string `json:"city"`
	CountryCode *string `json:"country_code"`
	FlightCount int     `json:"flight_count"`
}

// AirlineStat is one airline's aggregate with its average arrival delay.
type AirlineStat struct {
	IATA            string   `json:"iata"`
	ICAO            *string  `json:"icao"`
	Name            *string  `json:"name"`
	FlightCount     int      `json:"flight_count"`
	AvgDelayMinutes *float64 `json:"avg_delay_minutes"`
}

// AircraftStat is one aircraft model's aggregate.
type AircraftStat struct {
	Model           string   `json:"model"`
	FlightCount     int      `json:"flight_count"`
	Registrations   []string `json:"registrations"`
	TotalDistanceKm float64  `json:"total_distance_km"`
}

// YearStat is one calendar year's rollup. Only positive arrival delays are
// summed; early arrivals never subtract.
type YearStat struct {
	Year               int     `json:"year"`
	FlightCount        int     `json:"flight_count"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	TotalDelayHours    float64 `json:"total_delay_hours"`
}

// DelayReport summarizes arrival punctuality over past flights.
type DelayReport struct {
	TotalHoursLost    float64         `json:"total_hours_lost"`
	WorstDelayMinutes *int            `json:"worst_delay_minutes"`
	WorstDelayFlight  *FlightResponse `json:"worst_delay_flight"`
	OnTimePercentage  float64         `json:"on_time_percentage"`
	PctFlightsDelayed float64         `json:"pct_flights_delayed"`
}

// PassportResponse is the full flight-history aggregate.
type PassportResponse struct {
	TotalFlights           int      `json:"total_flights"`
	TotalDistanceKm        float64  `json:"total_distance_km"`
	TotalDurationHours     float64  `json:"total_duration_hours"`
	AvgFlightDistanceKm    *float64 `json:"avg_flight_distance_km"`
	AvgFlightDurationHours *float64 `json:"avg_flight_duration_hours"`

	UniqueCountriesCount int `json:"unique_countries_count"`
	UniqueAirportsCount  int `json:"unique_airports_count"`
	UniqueAirlinesCount  int `json:"unique_airlines_count"`
	UniqueAircraftCount  int `json:"unique_aircraft_count"`

	CountriesVisited []CountryVisit `json:"countries_visited"`
	AirportsTop      []AirportStat  `json:"airports_top"`
	AirlinesTop      []AirlineStat  `json:"airlines_top"`
	AircraftStats    []AircraftStat `json:"aircraft_stats"`
	FlightsByYear    []YearStat     `json:"flights_by_year"`

	LongestFlight    *FlightResponse `json:"longest_flight"`
	ShortestFlight   *FlightResponse `json:"shortest_flight"`
	MostRecentFlight *FlightResponse `json:"most_recent_flight"`
	FirstFlightDate  *string         `json:"first_flight_date"`

	NextFlight *FlightResponse `json:"next_flight"`

	CurrentStreakDays int `json:"current_streak_days"`

	DelayReport DelayReport `json:"delay_report"`
}
