package api

import (
	"net/http"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/metrics"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	"github.com/Jfgm299/centro-control-personal/internal/services"
)

func CreateTripHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.CreateTripRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		trip, err := travelSvc.CreateTrip(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, trip)
	}
}

func ListTripsHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		trips, err := travelSvc.ListTrips(r.Context(), userID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, trips)
	}
}

func GetTripHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		trip, err := travelSvc.GetTrip(r.Context(), userID, tripID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, trip)
	}
}

func UpdateTripHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateTripRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		trip, err := travelSvc.UpdateTrip(r.Context(), userID, tripID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, trip)
	}
}

func DeleteTripHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := travelSvc.DeleteTrip(r.Context(), userID, tripID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func CreateAlbumHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.CreateAlbumRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		album, err := travelSvc.CreateAlbum(r.Context(), userID, tripID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, album)
	}
}

func ListAlbumsHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		albums, err := travelSvc.ListAlbums(r.Context(), userID, tripID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, albums)
	}
}

func UpdateAlbumHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		albumID, err := uintParam(r, "albumID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateAlbumRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		album, err := travelSvc.UpdateAlbum(r.Context(), userID, albumID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, album)
	}
}

func DeleteAlbumHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		albumID, err := uintParam(r, "albumID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := travelSvc.DeleteAlbum(r.Context(), userID, albumID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func RequestPhotoUploadHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		albumID, err := uintParam(r, "albumID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.RequestUploadRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		resp, err := travelSvc.RequestPhotoUpload(r.Context(), userID, albumID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, resp)
	}
}

func ConfirmPhotoUploadHandler(travelSvc *services.TravelService, reg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		photoID, err := uintParam(r, "photoID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.ConfirmUploadRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		photo, err := travelSvc.ConfirmPhotoUpload(r.Context(), userID, photoID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		reg.PhotosUploadedTotal.Inc()
		respondJSON(w, http.StatusOK, photo)
	}
}

func ListAlbumPhotosHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		albumID, err := uintParam(r, "albumID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		photos, err := travelSvc.ListAlbumPhotos(r.Context(), userID, albumID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, photos)
	}
}

func UpdatePhotoHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		photoID, err := uintParam(r, "photoID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdatePhotoRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		photo, err := travelSvc.UpdatePhoto(r.Context(), userID, photoID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, photo)
	}
}

func ReorderPhotosHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		albumID, err := uintParam(r, "albumID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.ReorderPhotosRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		photos, err := travelSvc.ReorderPhotos(r.Context(), userID, albumID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, photos)
	}
}

func DeletePhotoHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		photoID, err := uintParam(r, "photoID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := travelSvc.DeletePhoto(r.Context(), userID, photoID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func CreateActivityHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.CreateActivityRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		activity, err := travelSvc.CreateActivity(r.Context(), userID, tripID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, activity)
	}
}

func ListActivitiesHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		tripID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		activities, err := travelSvc.ListActivities(r.Context(), userID, tripID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, activities)
	}
}

func UpdateActivityHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		activityID, err := uintParam(r, "activityID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateActivityRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		activity, err := travelSvc.UpdateActivity(r.Context(), userID, activityID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, activity)
	}
}

func DeleteActivityHandler(travelSvc *services.TravelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		activityID, err := uintParam(r, "activityID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := travelSvc.DeleteActivity(r.Context(), userID, activityID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}
