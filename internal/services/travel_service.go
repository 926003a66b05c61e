package services

import (
	"context"
	"strings"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
	"github.com/Jfgm299/centro-control-personal/internal/providers"
)

const (
	maxPhotosPerTrip = 30
	uploadURLExpiry  = 600 * time.Second
)

// allowedPhotoContentTypes is the upload whitelist.
var allowedPhotoContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/heic": {},
	"image/heif": {},
	"image/gif":  {},
}

// TravelService manages trips, albums, activities and the photo upload flow.
// Storage is only touched through the five ObjectStorage operations; deletes
// cascade to storage by key prefix.
type TravelService struct {
	repo    *repositories.TravelRepository
	storage providers.ObjectStorage
}

func NewTravelService(repo *repositories.TravelRepository, storage providers.ObjectStorage) *TravelService {
	return &TravelService{repo: repo, storage: storage}
}

// ── Trips ──

func (s *TravelService) CreateTrip(ctx context.Context, userID uint, req dtos.CreateTripRequest) (*dtos.TripResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return nil, apperrors.Validation("start_date must be YYYY-MM-DD")
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, apperrors.Validation("end_date must be YYYY-MM-DD")
	}

	trip := &gormModels.Trip{
		UserID:      userID,
		Name:        req.Name,
		Destination: req.Destination,
		CountryCode: req.CountryCode,
		Lat:         req.Lat,
		Lon:         req.Lon,
		StartDate:   startDate,
		EndDate:     endDate,
		Notes:       req.Notes,
	}
	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return dtos.NewTripResponse(trip), nil
}

func (s *TravelService) GetTrip(ctx context.Context, userID, tripID uint) (*dtos.TripResponse, error) {
	trip, err := s.repo.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return dtos.NewTripResponse(trip), nil
}

func (s *TravelService) ListTrips(ctx context.Context, userID uint) ([]*dtos.TripResponse, error) {
	trips, err := s.repo.ListTrips(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.TripResponse, 0, len(trips))
	for i := range trips {
		result = append(result, dtos.NewTripResponse(&trips[i]))
	}
	return result, nil
}

func (s *TravelService) UpdateTrip(ctx context.Context, userID, tripID uint, req dtos.UpdateTripRequest) (*dtos.TripResponse, error) {
	trip, err := s.repo.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Destination != nil {
		trip.Destination = req.Destination
	}
	if req.CountryCode != nil {
		trip.CountryCode = req.CountryCode
	}
	if req.Lat != nil {
		trip.Lat = req.Lat
	}
	if req.Lon != nil {
		trip.Lon = req.Lon
	}
	if req.StartDate != nil {
		startDate, err := parseDatePtr(req.StartDate)
		if err != nil {
			return nil, apperrors.Validation("start_date must be YYYY-MM-DD")
		}
		trip.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDatePtr(req.EndDate)
		if err != nil {
			return nil, apperrors.Validation("end_date must be YYYY-MM-DD")
		}
		trip.EndDate = endDate
	}
	if req.Notes != nil {
		trip.Notes = req.Notes
	}

	if err := s.repo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return dtos.NewTripResponse(trip), nil
}

// DeleteTrip removes the trip and purges every stored object under it. A
// storage failure is logged but does not keep the rows alive.
func (s *TravelService) DeleteTrip(ctx context.Context, userID, tripID uint) error {
	trip, err := s.repo.GetTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if err := s.storage.DeleteObjectsByPrefix(ctx, providers.TripPrefix(userID, trip.ID)); err != nil {
		logging.Warn("failed to purge trip storage", "trip_id", trip.ID, "error", err)
	}
	return s.repo.DeleteTrip(ctx, userID, trip.ID)
}

// ── Albums ──

func (s *TravelService) CreateAlbum(ctx context.Context, userID, tripID uint, req dtos.CreateAlbumRequest) (*dtos.AlbumResponse, error) {
	trip, err := s.repo.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}

	album := &gormModels.Album{
		TripID:      trip.ID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateAlbum(ctx, album); err != nil {
		return nil, err
	}
	return dtos.NewAlbumResponse(album), nil
}

func (s *TravelService) ListAlbums(ctx context.Context, userID, tripID uint) ([]*dtos.AlbumResponse, error) {
	if _, err := s.repo.GetTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	albums, err := s.repo.ListAlbums(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.AlbumResponse, 0, len(albums))
	for i := range albums {
		result = append(result, dtos.NewAlbumResponse(&albums[i]))
	}
	return result, nil
}

func (s *TravelService) UpdateAlbum(ctx context.Context, userID, albumID uint, req dtos.UpdateAlbumRequest) (*dtos.AlbumResponse, error) {
	album, err := s.repo.GetAlbum(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		album.Name = *req.Name
	}
	if req.Description != nil {
		album.Description = req.Description
	}
	if err := s.repo.SaveAlbum(ctx, album); err != nil {
		return nil, err
	}
	return dtos.NewAlbumResponse(album), nil
}

func (s *TravelService) DeleteAlbum(ctx context.Context, userID, albumID uint) error {
	album, err := s.repo.GetAlbum(ctx, userID, albumID)
	if err != nil {
		return err
	}
	if err := s.storage.DeleteObjectsByPrefix(ctx, providers.AlbumPrefix(userID, album.TripID, album.ID)); err != nil {
		logging.Warn("failed to purge album storage", "album_id", album.ID, "error", err)
	}
	return s.repo.DeleteAlbum(ctx, userID, album.ID)
}

// ── Photos ──

// RequestPhotoUpload is step one of the upload flow: validate, create a
// pending row, hand back a presigned PUT URL.
func (s *TravelService) RequestPhotoUpload(ctx context.Context, userID, albumID uint, req dtos.RequestUploadRequest) (*dtos.RequestUploadResponse, error) {
	if _, ok := allowedPhotoContentTypes[req.ContentType]; !ok {
		return nil, apperrors.Validation("content type %q is not allowed", req.ContentType)
	}

	album, err := s.repo.GetAlbum(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountUploadedPhotos(ctx, album.TripID)
	if err != nil {
		return nil, err
	}
	if count >= maxPhotosPerTrip {
		return nil, apperrors.Conflict("trip %d already holds %d photos", album.TripID, maxPhotosPerTrip)
	}

	photo := &gormModels.Photo{
		AlbumID:     album.ID,
		TripID:      album.TripID,
		UserID:      userID,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Status:      gormModels.PhotoStatusPending,
		SizeBytes:   req.SizeBytes,
	}
	// Insert first; the storage key needs the generated id.
	if err := s.repo.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}

	key := providers.PhotoKey(userID, album.TripID, album.ID, photo.ID, fileExtension(req.Filename))
	photo.StorageKey = key
	if err := s.repo.SavePhoto(ctx, photo); err != nil {
		return nil, err
	}

	uploadURL, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &dtos.RequestUploadResponse{
		PhotoID:    photo.ID,
		UploadURL:  uploadURL,
		StorageKey: key,
		ExpiresIn:  int(uploadURLExpiry.Seconds()),
	}, nil
}

// ConfirmPhotoUpload is step two: verify the object actually landed in
// storage, then flip the row to uploaded.
func (s *TravelService) ConfirmPhotoUpload(ctx context.Context, userID, photoID uint, req dtos.ConfirmUploadRequest) (*dtos.PhotoResponse, error) {
	photo, err := s.repo.GetPhoto(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}
	if photo.Status == gormModels.PhotoStatusUploaded {
		return nil, apperrors.Conflict("photo %d is already confirmed", photoID)
	}

	exists, err := s.storage.ObjectExists(ctx, photo.StorageKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Validation("photo %d has not been uploaded to storage", photoID)
	}

	publicURL := s.storage.PublicURL(photo.StorageKey)
	photo.Status = gormModels.PhotoStatusUploaded
	photo.PublicURL = &publicURL
	if req.SizeBytes != nil {
		photo.SizeBytes = req.SizeBytes
	}
	photo.Width = req.Width
	photo.Height = req.Height

	if err := s.repo.SavePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return dtos.NewPhotoResponse(photo), nil
}

func (s *TravelService) ListAlbumPhotos(ctx context.Context, userID, albumID uint) ([]*dtos.PhotoResponse, error) {
	if _, err := s.repo.GetAlbum(ctx, userID, albumID); err != nil {
		return nil, err
	}
	photos, err := s.repo.ListAlbumPhotos(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.PhotoResponse, 0, len(photos))
	for i := range photos {
		result = append(result, dtos.NewPhotoResponse(&photos[i]))
	}
	return result, nil
}

func (s *TravelService) UpdatePhoto(ctx context.Context, userID, photoID uint, req dtos.UpdatePhotoRequest) (*dtos.PhotoResponse, error) {
	photo, err := s.repo.GetPhoto(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}
	if req.Caption != nil {
		photo.Caption = req.Caption
	}
	if req.Position != nil {
		photo.Position = *req.Position
	}
	if err := s.repo.SavePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return dtos.NewPhotoResponse(photo), nil
}

// ReorderPhotos applies new positions within an album in one pass.
func (s *TravelService) ReorderPhotos(ctx context.Context, userID, albumID uint, req dtos.ReorderPhotosRequest) ([]*dtos.PhotoResponse, error) {
	if _, err := s.repo.GetAlbum(ctx, userID, albumID); err != nil {
		return nil, err
	}
	for _, item := range req.Order {
		photo, err := s.repo.GetPhoto(ctx, userID, item.PhotoID)
		if err != nil || photo.AlbumID != albumID {
			continue
		}
		photo.Position = item.Position
		if err := s.repo.SavePhoto(ctx, photo); err != nil {
			return nil, err
		}
	}
	return s.ListAlbumPhotos(ctx, userID, albumID)
}

func (s *TravelService) DeletePhoto(ctx context.Context, userID, photoID uint) error {
	photo, err := s.repo.GetPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}
	if photo.StorageKey != "" {
		if err := s.storage.DeleteObject(ctx, photo.StorageKey); err != nil {
			logging.Warn("failed to delete photo object", "photo_id", photo.ID, "error", err)
		}
	}
	return s.repo.DeletePhoto(ctx, photo.ID)
}

// ── Activities ──

func (s *TravelService) CreateActivity(ctx context.Context, userID, tripID uint, req dtos.CreateActivityRequest) (*dtos.ActivityResponse, error) {
	trip, err := s.repo.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	category, ok := validActivityCategory(req.Category)
	if !ok {
		return nil, apperrors.Validation("unknown category %q", req.Category)
	}
	activityDate, err := parseDatePtr(req.ActivityDate)
	if err != nil {
		return nil, apperrors.Validation("activity_date must be YYYY-MM-DD")
	}

	activity := &gormModels.Activity{
		TripID:       trip.ID,
		UserID:       userID,
		Name:         req.Name,
		Category:     category,
		ActivityDate: activityDate,
		Cost:         req.Cost,
		Notes:        req.Notes,
	}
	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return dtos.NewActivityResponse(activity), nil
}

func (s *TravelService) ListActivities(ctx context.Context, userID, tripID uint) ([]*dtos.ActivityResponse, error) {
	if _, err := s.repo.GetTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	activities, err := s.repo.ListActivities(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	result := make([]*dtos.ActivityResponse, 0, len(activities))
	for i := range activities {
		result = append(result, dtos.NewActivityResponse(&activities[i]))
	}
	return result, nil
}

func (s *TravelService) UpdateActivity(ctx context.Context, userID, activityID uint, req dtos.UpdateActivityRequest) (*dtos.ActivityResponse, error) {
	activity, err := s.repo.GetActivity(ctx, userID, activityID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Category != nil {
		category, ok := validActivityCategory(*req.Category)
		if !ok {
			return nil, apperrors.Validation("unknown category %q", *req.Category)
		}
		activity.Category = category
	}
	if req.ActivityDate != nil {
		activityDate, err := parseDatePtr(req.ActivityDate)
		if err != nil {
			return nil, apperrors.Validation("activity_date must be YYYY-MM-DD")
		}
		activity.ActivityDate = activityDate
	}
	if req.Cost != nil {
		activity.Cost = req.Cost
	}
	if req.Notes != nil {
		activity.Notes = req.Notes
	}

	if err := s.repo.SaveActivity(ctx, activity); err != nil {
		return nil, err
	}
	return dtos.NewActivityResponse(activity), nil
}

func (s *TravelService) DeleteActivity(ctx context.Context, userID, activityID uint) error {
	return s.repo.DeleteActivity(ctx, userID, activityID)
}

// ── Helpers ──

func validActivityCategory(raw string) (gormModels.ActivityCategory, bool) {
	switch gormModels.ActivityCategory(raw) {
	case gormModels.ActivitySightseeing,
		gormModels.ActivityFood,
		gormModels.ActivityTransport,
		gormModels.ActivityAccommodation,
		gormModels.ActivityGeneric,
		gormModels.ActivityOther:
		return gormModels.ActivityCategory(raw), true
	}
	return "", false
}

func parseDatePtr(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return strings.ToLower(filename[idx+1:])
	}
	return "jpg"
}
