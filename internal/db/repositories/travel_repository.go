package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// TravelRepository handles trips, albums, photos and activities.
type TravelRepository struct {
	db *gorm.DB
}

func NewTravelRepository(db *gorm.DB) *TravelRepository {
	return &TravelRepository{db: db}
}

// ── Trips ──

func (r *TravelRepository) CreateTrip(ctx context.Context, trip *gormModels.Trip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (r *TravelRepository) GetTrip(ctx context.Context, userID, tripID uint) (*gormModels.Trip, error) {
	var trip gormModels.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("trip %d not found", tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}
	return &trip, nil
}

func (r *TravelRepository) ListTrips(ctx context.Context, userID uint) ([]gormModels.Trip, error) {
	var trips []gormModels.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC NULLS LAST, id DESC").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (r *TravelRepository) SaveTrip(ctx context.Context, trip *gormModels.Trip) error {
	if err := r.db.WithContext(ctx).Save(trip).Error; err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

func (r *TravelRepository) DeleteTrip(ctx context.Context, userID, tripID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Delete(&gormModels.Trip{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("trip %d not found", tripID)
	}
	return nil
}

// ── Albums ──

func (r *TravelRepository) CreateAlbum(ctx context.Context, album *gormModels.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

func (r *TravelRepository) GetAlbum(ctx context.Context, userID, albumID uint) (*gormModels.Album, error) {
	var album gormModels.Album
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", albumID, userID).
		First(&album).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("album %d not found", albumID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch album: %w", err)
	}
	return &album, nil
}

func (r *TravelRepository) ListAlbums(ctx context.Context, userID, tripID uint) ([]gormModels.Album, error) {
	var albums []gormModels.Album
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Order("created_at ASC").
		Find(&albums).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

func (r *TravelRepository) SaveAlbum(ctx context.Context, album *gormModels.Album) error {
	if err := r.db.WithContext(ctx).Save(album).Error; err != nil {
		return fmt.Errorf("failed to save album: %w", err)
	}
	return nil
}

func (r *TravelRepository) DeleteAlbum(ctx context.Context, userID, albumID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", albumID, userID).
		Delete(&gormModels.Album{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete album: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("album %d not found", albumID)
	}
	return nil
}

// ── Photos ──

func (r *TravelRepository) CreatePhoto(ctx context.Context, photo *gormModels.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

func (r *TravelRepository) GetPhoto(ctx context.Context, userID, photoID uint) (*gormModels.Photo, error) {
	var photo gormModels.Photo
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", photoID, userID).
		First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("photo %d not found", photoID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photo: %w", err)
	}
	return &photo, nil
}

// ListAlbumPhotos returns uploaded photos only; pending and deleted rows are
// bookkeeping, not gallery content.
func (r *TravelRepository) ListAlbumPhotos(ctx context.Context, userID, albumID uint) ([]gormModels.Photo, error) {
	var photos []gormModels.Photo
	err := r.db.WithContext(ctx).
		Where("album_id = ? AND user_id = ? AND status = ?", albumID, userID, gormModels.PhotoStatusUploaded).
		Order("position ASC, id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// CountUploadedPhotos counts uploaded photos across the whole trip for the
// per-trip cap check.
func (r *TravelRepository) CountUploadedPhotos(ctx context.Context, tripID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Photo{}).
		Where("trip_id = ? AND status = ?", tripID, gormModels.PhotoStatusUploaded).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return int(count), nil
}

func (r *TravelRepository) SavePhoto(ctx context.Context, photo *gormModels.Photo) error {
	if err := r.db.WithContext(ctx).Save(photo).Error; err != nil {
		return fmt.Errorf("failed to save photo: %w", err)
	}
	return nil
}

func (r *TravelRepository) DeletePhoto(ctx context.Context, photoID uint) error {
	return r.db.WithContext(ctx).Delete(&gormModels.Photo{}, photoID).Error
}

// ── Activities ──

func (r *TravelRepository) CreateActivity(ctx context.Context, activity *gormModels.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

func (r *TravelRepository) GetActivity(ctx context.Context, userID, activityID uint) (*gormModels.Activity, error) {
	var activity gormModels.Activity
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("activity %d not found", activityID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}
	return &activity, nil
}

func (r *TravelRepository) ListActivities(ctx context.Context, userID, tripID uint) ([]gormModels.Activity, error) {
	var activities []gormModels.Activity
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Order("activity_date ASC NULLS LAST, id ASC").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (r *TravelRepository) SaveActivity(ctx context.Context, activity *gormModels.Activity) error {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

func (r *TravelRepository) DeleteActivity(ctx context.Context, userID, activityID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", activityID, userID).
		Delete(&gormModels.Activity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("activity %d not found", activityID)
	}
	return nil
}
