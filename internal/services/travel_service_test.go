package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
)

// Mock ObjectStorage
type mockStorage struct {
	generateUploadURLFunc     func(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	objectExistsFunc          func(ctx context.Context, key string) (bool, error)
	deleteObjectFunc          func(ctx context.Context, key string) error
	deleteObjectsByPrefixFunc func(ctx context.Context, prefix string) error
	deletedKeys               []string
	deletedPrefixes           []string
}

func (m *mockStorage) GenerateUploadURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	if m.generateUploadURLFunc != nil {
		return m.generateUploadURLFunc(ctx, key, contentType, expires)
	}
	return "https://storage.test/upload/" + key, nil
}

func (m *mockStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	if m.objectExistsFunc != nil {
		return m.objectExistsFunc(ctx, key)
	}
	return true, nil
}

func (m *mockStorage) DeleteObject(ctx context.Context, key string) error {
	m.deletedKeys = append(m.deletedKeys, key)
	if m.deleteObjectFunc != nil {
		return m.deleteObjectFunc(ctx, key)
	}
	return nil
}

func (m *mockStorage) DeleteObjectsByPrefix(ctx context.Context, prefix string) error {
	m.deletedPrefixes = append(m.deletedPrefixes, prefix)
	if m.deleteObjectsByPrefixFunc != nil {
		return m.deleteObjectsByPrefixFunc(ctx, prefix)
	}
	return nil
}

func (m *mockStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func newTravelService(t *testing.T, storage *mockStorage) (*TravelService, uint) {
	t.Helper()
	db := setupTestDB(t)
	user := createTestUser(t, db, "travel@test.com", "travel")
	return NewTravelService(repositories.NewTravelRepository(db), storage), user.ID
}

func seedAlbum(t *testing.T, svc *TravelService, userID uint) (*dtos.TripResponse, *dtos.AlbumResponse) {
	t.Helper()
	ctx := context.Background()
	trip, err := svc.CreateTrip(ctx, userID, dtos.CreateTripRequest{Name: "Japón 2024"})
	if err != nil {
		t.Fatalf("Failed to create trip: %v", err)
	}
	album, err := svc.CreateAlbum(ctx, userID, trip.ID, dtos.CreateAlbumRequest{Name: "Tokio"})
	if err != nil {
		t.Fatalf("Failed to create album: %v", err)
	}
	return trip, album
}

func TestTravelService_RequestPhotoUpload(t *testing.T) {
	storage := &mockStorage{}
	svc, userID := newTravelService(t, storage)
	_, album := seedAlbum(t, svc, userID)
	ctx := context.Background()

	resp, err := svc.RequestPhotoUpload(ctx, userID, album.ID, dtos.RequestUploadRequest{
		Filename:    "IMG_0042.JPG",
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.PhotoID == 0 {
		t.Error("Expected a photo id")
	}
	if resp.ExpiresIn != 600 {
		t.Errorf("Expected 600s expiry, got %d", resp.ExpiresIn)
	}
	if resp.UploadURL == "" || resp.StorageKey == "" {
		t.Errorf("Expected upload URL and storage key, got %q / %q", resp.UploadURL, resp.StorageKey)
	}

	// Pending photos are invisible in album listings.
	photos, err := svc.ListAlbumPhotos(ctx, userID, album.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("Expected no visible photos before confirm, got %d", len(photos))
	}
}

func TestTravelService_RequestPhotoUpload_RejectsContentType(t *testing.T) {
	svc, userID := newTravelService(t, &mockStorage{})
	_, album := seedAlbum(t, svc, userID)

	_, err := svc.RequestPhotoUpload(context.Background(), userID, album.ID, dtos.RequestUploadRequest{
		Filename:    "document.pdf",
		ContentType: "application/pdf",
	})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for disallowed content type, got %v", err)
	}
}

func TestTravelService_ConfirmPhotoUpload(t *testing.T) {
	storage := &mockStorage{}
	svc, userID := newTravelService(t, storage)
	_, album := seedAlbum(t, svc, userID)
	ctx := context.Background()

	requested, err := svc.RequestPhotoUpload(ctx, userID, album.ID, dtos.RequestUploadRequest{
		Filename:    "IMG_0042.jpg",
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	photo, err := svc.ConfirmPhotoUpload(ctx, userID, requested.PhotoID, dtos.ConfirmUploadRequest{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if photo.Status != "uploaded" {
		t.Errorf("Expected status uploaded, got %s", photo.Status)
	}
	if photo.PublicURL == nil {
		t.Error("Expected a public URL after confirm")
	}

	_, err = svc.ConfirmPhotoUpload(ctx, userID, requested.PhotoID, dtos.ConfirmUploadRequest{})
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("Expected conflict confirming twice, got %v", err)
	}

	photos, err := svc.ListAlbumPhotos(ctx, userID, album.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(photos) != 1 {
		t.Errorf("Expected 1 visible photo after confirm, got %d", len(photos))
	}
}

func TestTravelService_ConfirmPhotoUpload_ObjectMissing(t *testing.T) {
	storage := &mockStorage{
		objectExistsFunc: func(ctx context.Context, key string) (bool, error) { return false, nil },
	}
	svc, userID := newTravelService(t, storage)
	_, album := seedAlbum(t, svc, userID)
	ctx := context.Background()

	requested, err := svc.RequestPhotoUpload(ctx, userID, album.ID, dtos.RequestUploadRequest{
		Filename:    "IMG_0001.jpg",
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = svc.ConfirmPhotoUpload(ctx, userID, requested.PhotoID, dtos.ConfirmUploadRequest{})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error when object never landed, got %v", err)
	}
}

func TestTravelService_PhotoCapPerTrip(t *testing.T) {
	storage := &mockStorage{}
	svc, userID := newTravelService(t, storage)
	_, album := seedAlbum(t, svc, userID)
	ctx := context.Background()

	for i := 0; i < maxPhotosPerTrip; i++ {
		requested, err := svc.RequestPhotoUpload(ctx, userID, album.ID, dtos.RequestUploadRequest{
			Filename:    fmt.Sprintf("IMG_%04d.jpg", i),
			ContentType: "image/jpeg",
		})
		if err != nil {
			t.Fatalf("Expected no error on photo %d, got %v", i, err)
		}
		if _, err := svc.ConfirmPhotoUpload(ctx, userID, requested.PhotoID, dtos.ConfirmUploadRequest{}); err != nil {
			t.Fatalf("Expected no error confirming photo %d, got %v", i, err)
		}
	}

	_, err := svc.RequestPhotoUpload(ctx, userID, album.ID, dtos.RequestUploadRequest{
		Filename:    "overflow.jpg",
		ContentType: "image/jpeg",
	})
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("Expected conflict at the photo cap, got %v", err)
	}
}

func TestTravelService_DeleteTripPurgesStorage(t *testing.T) {
	storage := &mockStorage{}
	svc, userID := newTravelService(t, storage)
	trip, _ := seedAlbum(t, svc, userID)
	ctx := context.Background()

	if err := svc.DeleteTrip(ctx, userID, trip.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(storage.deletedPrefixes) != 1 {
		t.Fatalf("Expected one prefix purge, got %v", storage.deletedPrefixes)
	}

	if _, err := svc.GetTrip(ctx, userID, trip.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("Expected not-found after delete, got %v", err)
	}
}

func TestTravelService_ReorderPhotos(t *testing.T) {
	storage := &mockStorage{}
	svc, userID := newTravelService(t, storage)
	_, album := seedAlbum(t, svc, userID)
	ctx := context.Background()

	ids := make([]uint, 0, 2)
	for i := 0; i < 2; i++ {
		requested, err := svc.RequestPhotoUpload(ctx, userID, album.ID, dtos.RequestUploadRequest{
			Filename:    fmt.Sprintf("IMG_%d.jpg", i),
			ContentType: "image/jpeg",
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, err := svc.ConfirmPhotoUpload(ctx, userID, requested.PhotoID, dtos.ConfirmUploadRequest{}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		ids = append(ids, requested.PhotoID)
	}

	photos, err := svc.ReorderPhotos(ctx, userID, album.ID, dtos.ReorderPhotosRequest{
		Order: []dtos.PhotoReorderItem{
			{PhotoID: ids[0], Position: 2},
			{PhotoID: ids[1], Position: 1},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("Expected 2 photos, got %d", len(photos))
	}
	if photos[0].ID != ids[1] || photos[1].ID != ids[0] {
		t.Errorf("Expected order swapped, got %d then %d", photos[0].ID, photos[1].ID)
	}
}

func TestFileExtension(t *testing.T) {
	if got := fileExtension("IMG_0042.JPG"); got != "jpg" {
		t.Errorf("Expected jpg, got %s", got)
	}
	if got := fileExtension("archive.tar.gz"); got != "gz" {
		t.Errorf("Expected gz, got %s", got)
	}
	if got := fileExtension("noextension"); got != "jpg" {
		t.Errorf("Expected fallback jpg, got %s", got)
	}
}
