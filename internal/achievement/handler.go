package achievement

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/personal-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.Get(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	config.JSON(w, http.StatusOK, levels)
}

func (h *Handler) Increment(w http.ResponseWriter, r *http.Request) {
	var req IncrementRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Pool == PoolWeeklyWorkout {
		res, err := h.service.CompleteWeeklyWorkout(r.Context(), req.WeekIdentifier)
		if err != nil {
			config.Error(w, http.StatusInternalServerError, "Failed to increment level")
			return
		}
		config.JSON(w, http.StatusOK, res)
		return
	}

	level, err := h.service.Increment(r.Context(), req.Pool)
	if err != nil {
		if errors.Is(err, ErrInvalidPool) {
			config.Error(w, http.StatusBadRequest, "Invalid pool")
			return
		}
		config.Error(w, http.StatusInternalServerError, "Failed to increment level")
		return
	}
	config.JSON(w, http.StatusOK, LevelResponse{Level: level})
}
