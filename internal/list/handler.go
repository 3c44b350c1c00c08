package list

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/personal-lambda/internal/config"
)

const actionAddItems = "addItems"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Get answers with every list, or with {list: items} when ?name= is given.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		lists, err := h.service.All(r.Context())
		if err != nil {
			config.Error(w, http.StatusInternalServerError, "Failed to fetch lists")
			return
		}
		config.JSON(w, http.StatusOK, lists)
		return
	}

	l, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		writeError(w, err, "Failed to fetch list")
		return
	}
	config.JSON(w, http.StatusOK, ItemsResponse{List: l.Items})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Action == actionAddItems {
		res, err := h.service.AddItems(r.Context(), req.ListName, req.Items)
		if err != nil {
			writeError(w, err, "Failed to add items")
			return
		}
		config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
		return
	}

	res, err := h.service.Create(r.Context(), req.Name, req.List, req.Parent)
	if err != nil {
		writeError(w, err, "Failed to create list")
		return
	}
	config.JSON(w, http.StatusCreated, WriteResponse{Success: true, Result: res})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteListRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Delete(r.Context(), req.Name)
	if err != nil {
		writeError(w, err, "Failed to delete list")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func (h *Handler) SetParent(w http.ResponseWriter, r *http.Request) {
	var req SetParentRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.SetParent(r.Context(), req.Name, req.Parent)
	if err != nil {
		writeError(w, err, "Failed to update list parent")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func (h *Handler) AddItems(w http.ResponseWriter, r *http.Request) {
	var req AddItemsRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := req.Items
	if req.Item != nil {
		items = append([]Item{*req.Item}, items...)
	}

	res, err := h.service.AddItems(r.Context(), req.ListName, items)
	if err != nil {
		writeError(w, err, "Failed to add item")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Updates == nil {
		config.Error(w, http.StatusBadRequest, "List name, item name, and updates are required")
		return
	}

	res, err := h.service.UpdateItem(r.Context(), req.ListName, req.Ref(), *req.Updates)
	if err != nil {
		writeError(w, err, "Failed to update item")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	var req DeleteItemRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.DeleteItem(r.Context(), req.ListName, req.Ref())
	if err != nil {
		writeError(w, err, "Failed to delete item")
		return
	}
	config.JSON(w, http.StatusOK, WriteResponse{Success: true, Result: res})
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrItemNameRequired), errors.Is(err, ErrItemRefRequired), errors.Is(err, ErrUpdatesRequired):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrListNotFound), errors.Is(err, ErrItemNotFound), errors.Is(err, ErrListOrItemNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrListExists):
		config.Error(w, http.StatusConflict, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, fallback)
	}
}
