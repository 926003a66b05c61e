package dtos

import (
	"time"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// CreateTripRequest registers a trip.
type CreateTripRequest struct {
	Name        string   `json:"name"`
	Destination *string  `json:"destination"`
	CountryCode *string  `json:"country_code"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Notes       *string  `json:"notes"`
}

// UpdateTripRequest patches a trip.
type UpdateTripRequest struct {
	Name        *string  `json:"name"`
	Destination *string  `json:"destination"`
	CountryCode *string  `json:"country_code"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Notes       *string  `json:"notes"`
}

// TripResponse is the API shape of a trip.
type TripResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Destination *string  `json:"destination"`
	CountryCode *string  `json:"country_code"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Notes       *string  `json:"notes"`
}

// NewTripResponse maps a Trip row to its API shape.
func NewTripResponse(t *gormModels.Trip) *TripResponse {
	return &TripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		CountryCode: t.CountryCode,
		Lat:         t.Lat,
		Lon:         t.Lon,
		StartDate:   formatDatePtr(t.StartDate),
		EndDate:     formatDatePtr(t.EndDate),
		Notes:       t.Notes,
	}
}

// CreateAlbumRequest adds an album to a trip.
type CreateAlbumRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateAlbumRequest patches an album.
type UpdateAlbumRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AlbumResponse is the API shape of an album.
type AlbumResponse struct {
	ID          uint    `json:"id"`
	TripID      uint    `json:"trip_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// NewAlbumResponse maps an Album row to its API shape.
func NewAlbumResponse(a *gormModels.Album) *AlbumResponse {
	return &AlbumResponse{
		ID:          a.ID,
		TripID:      a.TripID,
		Name:        a.Name,
		Description: a.Description,
	}
}

// RequestUploadRequest opens the presigned photo upload flow.
type RequestUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   *int64 `json:"size_bytes"`
}

// RequestUploadResponse carries the presigned PUT URL for the client.
type RequestUploadResponse struct {
	PhotoID    uint   `json:"photo_id"`
	UploadURL  string `json:"upload_url"`
	StorageKey string `json:"storage_key"`
	ExpiresIn  int    `json:"expires_in"`
}

// ConfirmUploadRequest closes the upload flow with the client's metadata.
type ConfirmUploadRequest struct {
	SizeBytes *int64 `json:"size_bytes"`
	Width     *int   `json:"width"`
	Height    *int   `json:"height"`
}

// PhotoReorderItem assigns one photo its new position.
type PhotoReorderItem struct {
	PhotoID  uint `json:"photo_id"`
	Position int  `json:"position"`
}

// ReorderPhotosRequest repositions photos within an album.
type ReorderPhotosRequest struct {
	Order []PhotoReorderItem `json:"order"`
}

// UpdatePhotoRequest patches a photo's caption or position.
type UpdatePhotoRequest struct {
	Caption  *string `json:"caption"`
	Position *int    `json:"position"`
}

// PhotoResponse is the API shape of a photo.
type PhotoResponse struct {
	ID          uint      `json:"id"`
	AlbumID     uint      `json:"album_id"`
	TripID      uint      `json:"trip_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	PublicURL   *string   `json:"public_url"`
	SizeBytes   *int64    `json:"size_bytes"`
	Width       *int      `json:"width"`
	Height      *int      `json:"height"`
	Position    int       `json:"position"`
	Caption     *string   `json:"caption"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPhotoResponse maps a Photo row to its API shape.
func NewPhotoResponse(p *gormModels.Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:          p.ID,
		AlbumID:     p.AlbumID,
		TripID:      p.TripID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Status:      string(p.Status),
		PublicURL:   p.PublicURL,
		SizeBytes:   p.SizeBytes,
		Width:       p.Width,
		Height:      p.Height,
		Position:    p.Position,
		Caption:     p.Caption,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateActivityRequest logs something done on a trip.
type CreateActivityRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	ActivityDate *string  `json:"activity_date"`
	Cost         *float64 `json:"cost"`
	Notes        *string  `json:"notes"`
}

// UpdateActivityRequest patches an activity.
type UpdateActivityRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	ActivityDate *string  `json:"activity_date"`
	Cost         *float64 `json:"cost"`
	Notes        *string  `json:"notes"`
}

// ActivityResponse is the API shape of an activity.
type ActivityResponse struct {
	ID           uint     `json:"id"`
	TripID       uint     `json:"trip_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	ActivityDate *string  `json:"activity_date"`
	Cost         *float64 `json:"cost"`
	Notes        *string  `json:"notes"`
}

// NewActivityResponse maps an Activity row to its API shape.
func NewActivityResponse(a *gormModels.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:           a.ID,
		TripID:       a.TripID,
		Name:         a.Name,
		Category:     string(a.Category),
		ActivityDate: formatDatePtr(a.ActivityDate),
		Cost:         a.Cost,
		Notes:        a.Notes,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
