package handlers

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler serves the items REST resource.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler creates the items handler
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// ItemDTO is the wire form of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// itemRequest is accepted by create and update; an id in the body is ignored.
type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toDTO(it *model.Item) ItemDTO {
	return ItemDTO{ID: it.ID, Name: it.Name, Description: it.Description}
}

// List returns all items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, toDTO(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create stores a new item and returns it with the assigned id.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	it, err := h.ItemService.Create(r.Context(), service.ItemInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.Logger.Errorw("Create: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(it))
}

// Update replaces the item addressed by the path id.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	it, err := h.ItemService.Update(r.Context(), id, service.ItemInput{Name: req.Name, Description: req.Description})
	if errors.Is(err, service.ErrItemNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Errorw("Update: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Delete removes the item addressed by the path id.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	err := h.ItemService.Delete(r.Context(), id)
	if errors.Is(err, service.ErrItemNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.Logger.Warnw("invalid item id", "id", raw)
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
