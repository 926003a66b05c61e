package routes

import (
	"github.com/Jfgm299/centro-control-personal/internal/api"
	"github.com/Jfgm299/centro-control-personal/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	svcs := deps.Services
	reg := deps.Metrics

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public auth endpoints
		v1.Post("/auth/register", api.RegisterHandler(svcs.User))
		v1.Post("/auth/login", api.LoginHandler(svcs.User))
		v1.Post("/auth/refresh", api.RefreshHandler(svcs.User))

		// Everything else requires a valid access token
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Issuer))

			authed.Get("/auth/me", api.MeHandler(svcs.User))

			authed.Route("/expenses", func(e chi.Router) {
				e.Post("/", api.CreateExpenseHandler(svcs.Expense))
				e.Get("/", api.ListExpensesHandler(svcs.Expense))
				e.Get("/summary", api.ExpenseSummaryHandler(svcs.Expense))
				e.Get("/{id}", api.GetExpenseHandler(svcs.Expense))
				e.Put("/{id}", api.UpdateExpenseHandler(svcs.Expense))
				e.Delete("/{id}", api.DeleteExpenseHandler(svcs.Expense))
			})

			authed.Route("/flights", func(f chi.Router) {
				f.Post("/", api.AddFlightHandler(svcs.Flight, reg))
				f.Get("/", api.ListFlightsHandler(svcs.Flight))
				f.Get("/search", api.SearchFlightHandler(svcs.Flight))
				f.Get("/passport", api.PassportHandler(svcs.Flight))
				f.Get("/{id}", api.GetFlightHandler(svcs.Flight))
				f.Patch("/{id}/notes", api.UpdateFlightNotesHandler(svcs.Flight))
				f.Post("/{id}/refresh", api.RefreshFlightHandler(svcs.Flight))
				f.Delete("/{id}", api.DeleteFlightHandler(svcs.Flight))
			})

			authed.Route("/macros", func(m chi.Router) {
				m.Get("/products/search", api.SearchProductsHandler(svcs.Food))
				m.Get("/products/barcode/{barcode}", api.GetProductByBarcodeHandler(svcs.Food))
				m.Get("/products/{id}", api.GetProductHandler(svcs.Food))

				m.Post("/diary", api.CreateDiaryEntryHandler(svcs.Diary, reg))
				m.Get("/diary", api.ListDiaryEntriesHandler(svcs.Diary))
				m.Get("/diary/summary", api.DailySummaryHandler(svcs.Diary))
				m.Get("/diary/{id}", api.GetDiaryEntryHandler(svcs.Diary))
				m.Put("/diary/{id}", api.UpdateDiaryEntryHandler(svcs.Diary))
				m.Patch("/diary/{id}/amount", api.UpdateDiaryAmountHandler(svcs.Diary))
				m.Patch("/diary/{id}/notes", api.UpdateDiaryNotesHandler(svcs.Diary))
				m.Delete("/diary/{id}", api.DeleteDiaryEntryHandler(svcs.Diary))

				m.Get("/stats", api.MacroStatsHandler(svcs.Diary))

				m.Get("/goals", api.GetGoalHandler(svcs.Diary))
				m.Put("/goals", api.UpsertGoalHandler(svcs.Diary))
			})

			authed.Route("/gym", func(g chi.Router) {
				g.Post("/workouts", api.StartWorkoutHandler(svcs.Gym, reg))
				g.Get("/workouts", api.ListWorkoutsHandler(svcs.Gym))
				g.Get("/workouts/{id}", api.GetWorkoutHandler(svcs.Gym))
				g.Put("/workouts/{id}", api.UpdateWorkoutHandler(svcs.Gym))
				g.Post("/workouts/{id}/end", api.EndWorkoutHandler(svcs.Gym))
				g.Delete("/workouts/{id}", api.DeleteWorkoutHandler(svcs.Gym))

				g.Post("/workouts/{id}/exercises", api.AddExerciseHandler(svcs.Gym))
				g.Get("/workouts/{id}/exercises", api.ListExercisesHandler(svcs.Gym))
				g.Put("/workouts/{id}/exercises/{exerciseID}", api.UpdateExerciseHandler(svcs.Gym))
				g.Delete("/workouts/{id}/exercises/{exerciseID}", api.DeleteExerciseHandler(svcs.Gym))

				g.Post("/workouts/{id}/exercises/{exerciseID}/sets", api.AddSetHandler(svcs.Gym))
				g.Put("/workouts/{id}/exercises/{exerciseID}/sets/{setID}", api.UpdateSetHandler(svcs.Gym))
				g.Delete("/workouts/{id}/exercises/{exerciseID}/sets/{setID}", api.DeleteSetHandler(svcs.Gym))

				g.Post("/measurements", api.CreateMeasurementHandler(svcs.Gym))
				g.Get("/measurements", api.ListMeasurementsHandler(svcs.Gym))
				g.Get("/measurements/{id}", api.GetMeasurementHandler(svcs.Gym))
				g.Put("/measurements/{id}", api.UpdateMeasurementHandler(svcs.Gym))
				g.Delete("/measurements/{id}", api.DeleteMeasurementHandler(svcs.Gym))
			})

			authed.Route("/travels", func(t chi.Router) {
				t.Post("/trips", api.CreateTripHandler(svcs.Travel))
				t.Get("/trips", api.ListTripsHandler(svcs.Travel))
				t.Get("/trips/{id}", api.GetTripHandler(svcs.Travel))
				t.Put("/trips/{id}", api.UpdateTripHandler(svcs.Travel))
				t.Delete("/trips/{id}", api.DeleteTripHandler(svcs.Travel))

				t.Post("/trips/{id}/albums", api.CreateAlbumHandler(svcs.Travel))
				t.Get("/trips/{id}/albums", api.ListAlbumsHandler(svcs.Travel))
				t.Put("/albums/{albumID}", api.UpdateAlbumHandler(svcs.Travel))
				t.Delete("/albums/{albumID}", api.DeleteAlbumHandler(svcs.Travel))

				t.Post("/albums/{albumID}/photos", api.RequestPhotoUploadHandler(svcs.Travel))
				t.Get("/albums/{albumID}/photos", api.ListAlbumPhotosHandler(svcs.Travel))
				t.Put("/albums/{albumID}/photos/reorder", api.ReorderPhotosHandler(svcs.Travel))
				t.Post("/photos/{photoID}/confirm", api.ConfirmPhotoUploadHandler(svcs.Travel, reg))
				t.Put("/photos/{photoID}", api.UpdatePhotoHandler(svcs.Travel))
				t.Delete("/photos/{photoID}", api.DeletePhotoHandler(svcs.Travel))

				t.Post("/trips/{id}/activities", api.CreateActivityHandler(svcs.Travel))
				t.Get("/trips/{id}/activities", api.ListActivitiesHandler(svcs.Travel))
				t.Put("/activities/{activityID}", api.UpdateActivityHandler(svcs.Travel))
				t.Delete("/activities/{activityID}", api.DeleteActivityHandler(svcs.Travel))
			})
		})
	})
}
