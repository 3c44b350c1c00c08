package workout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Update)
	r.Delete("/", h.Delete)

	r.Get("/today", h.Today)
	r.Put("/today", h.SetExercises)

	r.Route("/simple", func(r chi.Router) {
		r.Get("/", h.Simple)
		r.Post("/", h.AddExercise)
		r.Delete("/", h.DeleteExercise)
		r.Delete("/day", h.DeleteSimpleWorkout)
	})

	return r
}
