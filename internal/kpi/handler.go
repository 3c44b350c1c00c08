package kpi

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/personal-lambda/internal/config"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot(r.Context(), h.now())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Failed to fetch KPIs")
		return
	}
	config.JSON(w, http.StatusOK, snap)
}
