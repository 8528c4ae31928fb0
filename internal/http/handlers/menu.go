package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/models/dto"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// MenuHandler owns the menu endpoints: public listing, admin-gated mutation.
type MenuHandler struct {
	store storage.MenuStore
	guard *auth.Guard
	log   zerolog.Logger
}

// NewMenuHandler constructs the handler.
func NewMenuHandler(store storage.MenuStore, guard *auth.Guard, log zerolog.Logger) *MenuHandler {
	return &MenuHandler{store: store, guard: guard, log: log}
}

// Register attaches menu routes to the mux.
func (h *MenuHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /menu", h.handleList)
	mux.HandleFunc("POST /menu", h.handleCreate)
	mux.HandleFunc("DELETE /menu/{id}", h.handleDelete)
}

func (h *MenuHandler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListMenuItems(r.Context())
	if err != nil {
		storeError(w, h.log, "list menu", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *MenuHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	authed, denial := h.guard.Authenticate(r)
	if denial != nil {
		deny(w, denial)
		return
	}
	if denial := h.guard.RequireRole(r.Context(), authed, models.RoleAdmin); denial != nil {
		deny(w, denial)
		return
	}
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	id, err := h.store.InsertMenuItem(r.Context(), item)
	if err != nil {
		storeError(w, h.log, "insert menu item", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.InsertResult{InsertedID: id})
}

func (h *MenuHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	authed, denial := h.guard.Authenticate(r)
	if denial != nil {
		deny(w, denial)
		return
	}
	if denial := h.guard.RequireRole(r.Context(), authed, models.RoleAdmin); denial != nil {
		deny(w, denial)
		return
	}
	deleted, err := h.store.DeleteMenuItem(r.Context(), r.PathValue("id"))
	if err != nil {
		storeError(w, h.log, "delete menu item", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
