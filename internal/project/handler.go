package project

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
	projects, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch projects")
		return
	}
	config.JSON(w, http.StatusOK, projects)
}

func (h *Handler) Milestones(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Milestones(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch milestones")
		return
	}
	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p Project
	if err := config.DecodeJSON(r, &p); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Create(r.Context(), &p)
	if err != nil {
		writeError(w, err, "Unable to add item")
		return
	}
	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProjectRequest
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
	var req DeleteProjectRequest
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
	case errors.Is(err, docstore.ErrEmptyPatch), errors.Is(err, ErrInvalidProject):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, fallback)
	}
}
