package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
	"github.com/Jfgm299/centro-control-personal/internal/providers"
)

// refreshCooldown throttles per-flight provider refreshes.
const refreshCooldown = 5 * time.Minute

type FlightService struct {
	repo     *repositories.FlightRepository
	provider providers.FlightProvider
	passport *PassportService
	nowFn    func() time.Time
}

func NewFlightService(
	repo *repositories.FlightRepository,
	provider providers.FlightProvider,
	passport *PassportService,
) *FlightService {
	return &FlightService{
		repo:     repo,
		provider: provider,
		passport: passport,
		nowFn:    time.Now,
	}
}

// AddFlight registers a flight: duplicate check, one provider call, store.
func (s *FlightService) AddFlight(ctx context.Context, userID uint, req dtos.AddFlightRequest) (*dtos.FlightResponse, error) {
	flightNumber := strings.ToUpper(strings.TrimSpace(req.FlightNumber))
	if flightNumber == "" {
		return nil, apperrors.Validation("flight_number is required")
	}
	flightDate, err := time.Parse("2006-01-02", req.FlightDate)
	if err != nil {
		return nil, apperrors.Validation("flight_date must be YYYY-MM-DD")
	}

	existing, err := s.repo.FindByNumberAndDate(ctx, userID, flightNumber, flightDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("flight %s on %s already registered", flightNumber, req.FlightDate)
	}

	data, err := s.provider.GetFlight(ctx, flightNumber, req.FlightDate)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()
	flight := &gormModels.Flight{
		UserID:       userID,
		FlightNumber: flightNumber,
		FlightDate:   flightDate,
	}
	applyFlightData(flight, data)
	flight.IsPast = flightIsPast(flight, now)
	flight.LastRefreshedAt = &now

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}

	logging.Info("flight added",
		"user_id", userID,
		"flight_number", flightNumber,
		"flight_date", req.FlightDate,
	)
	return dtos.NewFlightResponse(flight), nil
}

// ListFlights returns a page of the user's flights, optionally restricted to
// past or upcoming ones.
func (s *FlightService) ListFlights(ctx context.Context, userID uint, past, upcoming *bool, limit, offset int) (*dtos.FlightListResponse, error) {
	flights, err := s.repo.List(ctx, userID, past, upcoming, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dtos.FlightListResponse{Flights: make([]*dtos.FlightResponse, 0, len(flights))}
	for i := range flights {
		resp.Flights = append(resp.Flights, dtos.NewFlightResponse(&flights[i]))
	}
	resp.Total = len(resp.Flights)
	return resp, nil
}

func (s *FlightService) GetFlight(ctx context.Context, userID, flightID uint) (*dtos.FlightResponse, error) {
	flight, err := s.repo.GetByID(ctx, userID, flightID)
	if err != nil {
		return nil, err
	}
	return dtos.NewFlightResponse(flight), nil
}

func (s *FlightService) UpdateNotes(ctx context.Context, userID, flightID uint, req dtos.UpdateFlightNotesRequest) (*dtos.FlightResponse, error) {
	flight, err := s.repo.GetByID(ctx, userID, flightID)
	if err != nil {
		return nil, err
	}
	flight.Notes = req.Notes
	if err := s.repo.Save(ctx, flight); err != nil {
		return nil, err
	}
	return dtos.NewFlightResponse(flight), nil
}

// RefreshFlight re-fetches provider data for a stored flight, at most once
// per cooldown window.
func (s *FlightService) RefreshFlight(ctx context.Context, userID, flightID uint) (*dtos.FlightResponse, error) {
	flight, err := s.repo.GetByID(ctx, userID, flightID)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()
	if flight.LastRefreshedAt != nil && now.Sub(*flight.LastRefreshedAt) < refreshCooldown {
		return nil, apperrors.Throttled(fmt.Sprintf("flight was refreshed less than %d minutes ago", int(refreshCooldown.Minutes())))
	}

	data, err := s.provider.GetFlight(ctx, flight.FlightNumber, flight.FlightDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	applyFlightData(flight, data)
	flight.IsPast = flightIsPast(flight, now)
	flight.LastRefreshedAt = &now

	if err := s.repo.Save(ctx, flight); err != nil {
		return nil, err
	}
	return dtos.NewFlightResponse(flight), nil
}

func (s *FlightService) DeleteFlight(ctx context.Context, userID, flightID uint) error {
	return s.repo.Delete(ctx, userID, flightID)
}

// SearchFlight looks up a flight at the provider without storing anything.
func (s *FlightService) SearchFlight(ctx context.Context, flightNumber, date string) (*dtos.FlightResponse, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return nil, apperrors.Validation("flight_number is required")
	}
	flightDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}

	data, err := s.provider.GetFlight(ctx, flightNumber, date)
	if err != nil {
		return nil, err
	}

	flight := &gormModels.Flight{FlightNumber: flightNumber, FlightDate: flightDate}
	applyFlightData(flight, data)
	flight.IsPast = flightIsPast(flight, s.nowFn())
	return dtos.NewFlightResponse(flight), nil
}

// Passport loads all the user's flights and reduces them to the aggregate
// report. The past/future split is recomputed in memory so a stale stored
// flag cannot skew the numbers.
func (s *FlightService) Passport(ctx context.Context, userID uint) (*dtos.PassportResponse, error) {
	flights, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.nowFn()
	for i := range flights {
		flights[i].IsPast = flightIsPast(&flights[i], now)
	}
	return s.passport.CalculatePassport(flights), nil
}

// flightIsPast reports whether a flight is over: it has actually arrived, or
// its scheduled arrival is more than two hours gone.
func flightIsPast(f *gormModels.Flight, now time.Time) bool {
	if f.ActualArrival != nil {
		return f.ActualArrival.Before(now)
	}
	if f.ScheduledArrival != nil {
		return f.ScheduledArrival.Before(now.Add(-2 * time.Hour))
	}
	return false
}

// applyFlightData copies a normalized provider payload onto a flight row.
// Identity fields (user, number, date) are left untouched.
func applyFlightData(f *gormModels.Flight, data *providers.FlightData) {
	f.Status = data.Status
	f.IsDiverted = data.IsDiverted

	f.OriginIATA = data.OriginIATA
	f.OriginICAO = data.OriginICAO
	f.OriginName = data.OriginName
	f.OriginCity = data.OriginCity
	f.OriginCountryCode = data.OriginCountryCode
	f.OriginTimezone = data.OriginTimezone
	f.OriginLat = data.OriginLat
	f.OriginLon = data.OriginLon

	f.DestinationIATA = data.DestinationIATA
	f.DestinationICAO = data.DestinationICAO
	f.DestinationName = data.DestinationName
	f.DestinationCity = data.DestinationCity
	f.DestinationCountryCode = data.DestinationCountryCode
	f.DestinationTimezone = data.DestinationTimezone
	f.DestinationLat = data.DestinationLat
	f.DestinationLon = data.DestinationLon

	f.AirlineIATA = data.AirlineIATA
	f.AirlineICAO = data.AirlineICAO
	f.AirlineName = data.AirlineName

	f.ScheduledDeparture = data.ScheduledDeparture
	f.RevisedDeparture = data.RevisedDeparture
	f.PredictedDeparture = data.PredictedDeparture
	f.ActualDeparture = data.ActualDeparture

	f.ScheduledArrival = data.ScheduledArrival
	f.RevisedArrival = data.RevisedArrival
	f.PredictedArrival = data.PredictedArrival
	f.ActualArrival = data.ActualArrival

	f.DurationMinutes = data.DurationMinutes
	f.DelayDepartureMinutes = data.DelayDepartureMinutes
	f.DelayArrivalMinutes = data.DelayArrivalMinutes
	f.DistanceKm = data.DistanceKm

	f.AircraftModel = data.AircraftModel
	f.AircraftRegistration = data.AircraftRegistration
	f.AircraftICAO24 = data.AircraftICAO24

	f.TerminalOrigin = data.TerminalOrigin
	f.GateOrigin = data.GateOrigin
	f.TerminalDestination = data.TerminalDestination
	f.BaggageBelt = data.BaggageBelt
	f.RunwayOrigin = data.RunwayOrigin
	f.RunwayDestination = data.RunwayDestination
	f.DataQuality = data.DataQuality
}
