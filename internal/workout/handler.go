package workout

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
	containers, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch workouts")
		return
	}
	config.JSON(w, http.StatusOK, containers)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Container
	if err := config.DecodeJSON(r, &c); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Create(r.Context(), &c)
	if err != nil {
		writeError(w, err, "Unable to add item")
		return
	}
	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateContainerRequest
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
	var req DeleteContainerRequest
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

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.service.Today(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Unable to fetch today's workouts")
		return
	}
	config.JSON(w, http.StatusOK, workouts)
}

func (h *Handler) SetExercises(w http.ResponseWriter, r *http.Request) {
	var req SetExercisesRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Exercises == nil {
		config.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if _, err := h.service.SetExercises(r.Context(), req.Date, *req.Exercises); err != nil {
		writeError(w, err, "Unable to update workout")
		return
	}
	config.JSON(w, http.StatusOK, MessageResponse{Message: "Workout updated successfully"})
}

// Simple answers with every simple workout, or with the one of ?date=
// (null when there is none).
func (h *Handler) Simple(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		workout, err := h.service.SimpleByDate(r.Context(), date)
		if err != nil {
			config.Error(w, http.StatusInternalServerError, "Failed to fetch workouts")
			return
		}
		config.JSON(w, http.StatusOK, workout)
		return
	}

	workouts, err := h.service.Simple(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}
	config.JSON(w, http.StatusOK, workouts)
}

func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	var req AddExerciseRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Exercise == nil {
		config.Error(w, http.StatusBadRequest, "Date and exercise are required")
		return
	}

	res, err := h.service.AddExercise(r.Context(), req.Date, *req.Exercise)
	if err != nil {
		writeError(w, err, "Failed to add exercise")
		return
	}
	config.JSON(w, http.StatusCreated, WriteResponse{Success: true, Result: res})
}

func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	var req DeleteExerciseRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.ExerciseID == "" {
		config.Error(w, http.StatusBadRequest, "Date and exerciseId are required")
		return
	}

	res, err := h.service.DeleteExercise(r.Context(), req.Date, req.ExerciseID)
	if err != nil {
		writeError(w, err, "Failed to delete exercise")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func (h *Handler) DeleteSimpleWorkout(w http.ResponseWriter, r *http.Request) {
	var req DeleteDayRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.DeleteSimpleWorkout(r.Context(), req.Date)
	if err != nil {
		writeError(w, err, "Failed to delete workout")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, docstore.ErrInvalidID):
		config.Error(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, docstore.ErrEmptyPatch), errors.Is(err, ErrInvalidWorkout), errors.Is(err, ErrDateRequired):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, fallback)
	}
}
