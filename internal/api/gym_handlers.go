package api

import (
	"net/http"

	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/metrics"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	"github.com/Jfgm299/centro-control-personal/internal/services"
)

func StartWorkoutHandler(gymSvc *services.GymService, reg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.StartWorkoutRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		workout, err := gymSvc.StartWorkout(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		reg.WorkoutsStartedTotal.Inc()
		respondJSON(w, http.StatusCreated, workout)
	}
}

func EndWorkoutHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		workout, err := gymSvc.EndWorkout(r.Context(), userID, workoutID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, workout)
	}
}

func GetWorkoutHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		workout, err := gymSvc.GetWorkout(r.Context(), userID, workoutID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, workout)
	}
}

func ListWorkoutsHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		limit := queryInt(r, "limit", 50)
		offset := queryInt(r, "offset", 0)
		workouts, err := gymSvc.ListWorkouts(r.Context(), userID, limit, offset)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, workouts)
	}
}

func UpdateWorkoutHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateWorkoutRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		workout, err := gymSvc.UpdateWorkout(r.Context(), userID, workoutID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, workout)
	}
}

func DeleteWorkoutHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := gymSvc.DeleteWorkout(r.Context(), userID, workoutID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func AddExerciseHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.CreateExerciseRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		exercise, err := gymSvc.AddExercise(r.Context(), userID, workoutID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, exercise)
	}
}

func ListExercisesHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		exercises, err := gymSvc.ListWorkoutExercises(r.Context(), userID, workoutID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, exercises)
	}
}

func UpdateExerciseHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		exerciseID, err := uintParam(r, "exerciseID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateExerciseRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		exercise, err := gymSvc.UpdateExercise(r.Context(), userID, workoutID, exerciseID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, exercise)
	}
}

func DeleteExerciseHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		exerciseID, err := uintParam(r, "exerciseID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := gymSvc.DeleteExercise(r.Context(), userID, workoutID, exerciseID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func AddSetHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		exerciseID, err := uintParam(r, "exerciseID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.CreateSetRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		set, err := gymSvc.AddSet(r.Context(), userID, workoutID, exerciseID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, set)
	}
}

func UpdateSetHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		exerciseID, err := uintParam(r, "exerciseID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		setID, err := uintParam(r, "setID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateSetRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		set, err := gymSvc.UpdateSet(r.Context(), userID, workoutID, exerciseID, setID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, set)
	}
}

func DeleteSetHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		workoutID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		exerciseID, err := uintParam(r, "exerciseID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		setID, err := uintParam(r, "setID")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := gymSvc.DeleteSet(r.Context(), userID, workoutID, exerciseID, setID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}

func CreateMeasurementHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		var req dtos.CreateMeasurementRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		measurement, err := gymSvc.CreateMeasurement(r.Context(), userID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, measurement)
	}
}

func GetMeasurementHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		measurementID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		measurement, err := gymSvc.GetMeasurement(r.Context(), userID, measurementID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, measurement)
	}
}

func ListMeasurementsHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		limit := queryInt(r, "limit", 100)
		measurements, err := gymSvc.ListMeasurements(r.Context(), userID, limit)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, measurements)
	}
}

func UpdateMeasurementHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		measurementID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		var req dtos.UpdateMeasurementRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		measurement, err := gymSvc.UpdateMeasurement(r.Context(), userID, measurementID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, measurement)
	}
}

func DeleteMeasurementHandler(gymSvc *services.GymService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.GetUserID(r.Context())
		measurementID, err := uintParam(r, "id")
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := gymSvc.DeleteMeasurement(r.Context(), userID, measurementID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	}
}
