package backlog

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
	tasks, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch backlog")
		return
	}
	config.JSON(w, http.StatusOK, tasks)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var t Task
	if err := config.DecodeJSON(r, &t); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Create(r.Context(), &t)
	if err != nil {
		writeError(w, err, "Unable to add item")
		return
	}
	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req UpdateTaskRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("Invalid request body")
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
	log := config.WithContext(r.Context())

	var req DeleteTaskRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("Invalid request body")
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
	case errors.Is(err, docstore.ErrEmptyPatch), errors.Is(err, ErrInvalidTask):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, fallback)
	}
}
