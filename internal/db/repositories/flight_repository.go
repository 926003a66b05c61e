package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// FlightRepository handles flight rows. Every query filters by user id so
// cross-user access surfaces as not-found, never as forbidden.
type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// FindByNumberAndDate checks the user+number+date uniqueness before an add.
func (r *FlightRepository) FindByNumberAndDate(ctx context.Context, userID uint, flightNumber string, flightDate time.Time) (*gormModels.Flight, error) {
	var flight gormModels.Flight
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND flight_number = ? AND flight_date = ?", userID, flightNumber, flightDate).
		First(&flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check existing flight: %w", err)
	}
	return &flight, nil
}

func (r *FlightRepository) GetByID(ctx context.Context, userID, flightID uint) (*gormModels.Flight, error) {
	var flight gormModels.Flight
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", flightID, userID).
		First(&flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("flight %d not found", flightID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}
	return &flight, nil
}

// List returns a user's flights. past/upcoming filter on the is_past flag;
// limit is capped at 100.
func (r *FlightRepository) List(ctx context.Context, userID uint, past, upcoming *bool, limit, offset int) ([]gormModels.Flight, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	switch {
	case past != nil && *past:
		query = query.Where("is_past = ?", true).Order("flight_date DESC")
	case upcoming != nil && *upcoming:
		query = query.Where("is_past = ?", false).Order("flight_date ASC")
	default:
		query = query.Order("flight_date DESC")
	}

	var flights []gormModels.Flight
	if err := query.Limit(limit).Offset(offset).Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// ListAll returns every flight a user has; the passport aggregator consumes
// the full list.
func (r *FlightRepository) ListAll(ctx context.Context, userID uint) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("flight_date ASC").
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

func (r *FlightRepository) Save(ctx context.Context, flight *gormModels.Flight) error {
	if err := r.db.WithContext(ctx).Save(flight).Error; err != nil {
		return fmt.Errorf("failed to save flight: %w", err)
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, userID, flightID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", flightID, userID).
		Delete(&gormModels.Flight{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete flight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("flight %d not found", flightID)
	}
	return nil
}
