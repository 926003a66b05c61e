package services

import (
	"context"
	"testing"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
	"github.com/Jfgm299/centro-control-personal/internal/providers"
)

// Mock FlightProvider
type mockFlightProvider struct {
	getFlightFunc func(ctx context.Context, flightNumber, date string) (*providers.FlightData, error)
	calls         int
}

func (m *mockFlightProvider) GetFlight(ctx context.Context, flightNumber, date string) (*providers.FlightData, error) {
	m.calls++
	return m.getFlightFunc(ctx, flightNumber, date)
}

func minimalFlightData() *providers.FlightData {
	return &providers.FlightData{
		Status:          gormModels.FlightStatusExpected,
		OriginIATA:      "MAD",
		DestinationIATA: "JFK",
	}
}

func newFlightService(t *testing.T, provider *mockFlightProvider) (*FlightService, uint) {
	t.Helper()
	db := setupTestDB(t)
	user := createTestUser(t, db, "flights@test.com", "flights")
	svc := NewFlightService(repositories.NewFlightRepository(db), provider, NewPassportService())
	return svc, user.ID
}

func TestFlightService_AddFlight_NormalizesAndStores(t *testing.T) {
	provider := &mockFlightProvider{
		getFlightFunc: func(ctx context.Context, flightNumber, date string) (*providers.FlightData, error) {
			if flightNumber != "IB6251" {
				t.Errorf("Expected normalized flight number IB6251, got %s", flightNumber)
			}
			return minimalFlightData(), nil
		},
	}
	svc, userID := newFlightService(t, provider)

	flight, err := svc.AddFlight(context.Background(), userID, dtos.AddFlightRequest{
		FlightNumber: "  ib6251 ",
		FlightDate:   "2030-09-01",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if flight.FlightNumber != "IB6251" {
		t.Errorf("Expected flight number IB6251, got %s", flight.FlightNumber)
	}
	if flight.IsPast {
		t.Error("Expected upcoming flight not to be past")
	}
	if provider.calls != 1 {
		t.Errorf("Expected exactly one provider call, got %d", provider.calls)
	}
}

func TestFlightService_AddFlight_Duplicate(t *testing.T) {
	provider := &mockFlightProvider{
		getFlightFunc: func(ctx context.Context, flightNumber, date string) (*providers.FlightData, error) {
			return minimalFlightData(), nil
		},
	}
	svc, userID := newFlightService(t, provider)
	ctx := context.Background()

	req := dtos.AddFlightRequest{FlightNumber: "IB6251", FlightDate: "2030-09-01"}
	if _, err := svc.AddFlight(ctx, userID, req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := svc.AddFlight(ctx, userID, req)
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("Expected conflict for duplicate flight, got %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("Expected duplicate check before provider call, got %d calls", provider.calls)
	}
}

func TestFlightService_AddFlight_Validation(t *testing.T) {
	svc, userID := newFlightService(t, &mockFlightProvider{})
	ctx := context.Background()

	_, err := svc.AddFlight(ctx, userID, dtos.AddFlightRequest{FlightNumber: "  ", FlightDate: "2030-09-01"})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for empty flight number, got %v", err)
	}

	_, err = svc.AddFlight(ctx, userID, dtos.AddFlightRequest{FlightNumber: "IB1", FlightDate: "01/09/2030"})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for bad date, got %v", err)
	}
}

func TestFlightService_RefreshFlight_Throttled(t *testing.T) {
	provider := &mockFlightProvider{
		getFlightFunc: func(ctx context.Context, flightNumber, date string) (*providers.FlightData, error) {
			return minimalFlightData(), nil
		},
	}
	svc, userID := newFlightService(t, provider)
	ctx := context.Background()

	added, err := svc.AddFlight(ctx, userID, dtos.AddFlightRequest{FlightNumber: "IB6251", FlightDate: "2030-09-01"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = svc.RefreshFlight(ctx, userID, added.ID)
	if !apperrors.IsKind(err, apperrors.KindThrottled) {
		t.Errorf("Expected throttled refresh inside cooldown, got %v", err)
	}

	// Past the cooldown the refresh goes through.
	svc.nowFn = func() time.Time { return time.Now().Add(10 * time.Minute) }
	if _, err := svc.RefreshFlight(ctx, userID, added.ID); err != nil {
		t.Errorf("Expected refresh after cooldown, got %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("Expected 2 provider calls, got %d", provider.calls)
	}
}

func TestFlightService_SearchFlight_DoesNotStore(t *testing.T) {
	provider := &mockFlightProvider{
		getFlightFunc: func(ctx context.Context, flightNumber, date string) (*providers.FlightData, error) {
			return minimalFlightData(), nil
		},
	}
	svc, userID := newFlightService(t, provider)
	ctx := context.Background()

	result, err := svc.SearchFlight(ctx, "ib6251", "2030-09-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.FlightNumber != "IB6251" {
		t.Errorf("Expected IB6251, got %s", result.FlightNumber)
	}

	list, err := svc.ListFlights(ctx, userID, nil, nil, 50, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if list.Total != 0 {
		t.Errorf("Expected no stored flights after search, got %d", list.Total)
	}
}

func TestFlightIsPast(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	arrived := now.Add(-30 * time.Minute)
	f := &gormModels.Flight{ActualArrival: &arrived}
	if !flightIsPast(f, now) {
		t.Error("Expected flight with past actual arrival to be past")
	}

	// Scheduled-only flights get a two-hour grace window.
	sched := now.Add(-90 * time.Minute)
	f = &gormModels.Flight{ScheduledArrival: &sched}
	if flightIsPast(f, now) {
		t.Error("Expected flight inside the grace window not to be past")
	}

	sched = now.Add(-3 * time.Hour)
	f = &gormModels.Flight{ScheduledArrival: &sched}
	if !flightIsPast(f, now) {
		t.Error("Expected flight past the grace window to be past")
	}

	if flightIsPast(&gormModels.Flight{}, now) {
		t.Error("Expected flight with no arrival data not to be past")
	}
}
