package calendar

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch events")
		return
	}
	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var e Event
	if err := config.DecodeJSON(r, &e); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Create(r.Context(), &e)
	if err != nil {
		writeError(w, err, "Unable to add item")
		return
	}
	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Update(r.Context(), req.ID, req.UpdatedItem)
	if err != nil {
		writeError(w, err, "Unable to update item")
		return
	}
	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteEventRequest
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
	case errors.Is(err, docstore.ErrEmptyPatch), errors.Is(err, ErrInvalidEvent):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, fallback)
	}
}
