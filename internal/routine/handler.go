package routine

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

const noCache = "no-cache, no-store, must-revalidate"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	routines, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch routines")
		return
	}
	config.JSON(w, http.StatusOK, routines)
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", noCache)

	routines, err := h.service.Recent(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch most recent routine")
		return
	}
	config.JSON(w, http.StatusOK, routines)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var routine Routine
	if err := config.DecodeJSON(r, &routine); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), &routine)
	if err != nil {
		writeError(w, err, "Failed to add routine")
		return
	}
	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoutineRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Update(r.Context(), req.ID, req.UpdatedItem)
	if err != nil {
		writeError(w, err, "Unable to update routine")
		return
	}
	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRoutineRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Delete(r.Context(), req.ID)
	if err != nil {
		writeError(w, err, "Unable to delete item")
		return
	}
	config.JSON(w, http.StatusOK, res)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, docstore.ErrInvalidID):
		config.Error(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, docstore.ErrEmptyPatch), errors.Is(err, ErrInvalidRoutine):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, fallback)
	}
}
