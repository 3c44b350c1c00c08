package dates

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/today", h.Today)
	r.Get("/tomorrow", h.Tomorrow)
	r.Get("/week", h.Week)

	return r
}
