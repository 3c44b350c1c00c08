package list

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/", h.Create)
	r.Delete("/", h.Delete)
	r.Put("/parent", h.SetParent)

	r.Route("/items", func(r chi.Router) {
		r.Post("/", h.AddItems)
		r.Put("/update", h.UpdateItem)
		r.Delete("/delete", h.DeleteItem)
	})

	return r
}
