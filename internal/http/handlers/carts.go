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

// CartsHandler owns the cart endpoints. Listing is restricted to the
// authenticated email; add/remove stay open for the pre-login cart flow.
type CartsHandler struct {
	store storage.CartStore
	guard *auth.Guard
	log   zerolog.Logger
}

// NewCartsHandler constructs the handler.
func NewCartsHandler(store storage.CartStore, guard *auth.Guard, log zerolog.Logger) *CartsHandler {
	return &CartsHandler{store: store, guard: guard, log: log}
}

// Register attaches cart routes to the mux.
func (h *CartsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /carts", h.handleList)
	mux.HandleFunc("POST /carts", h.handleCreate)
	mux.HandleFunc("DELETE /carts/{id}", h.handleDelete)
}

func (h *CartsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	authed, denial := h.guard.Authenticate(r)
	if denial != nil {
		deny(w, denial)
		return
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		respond.JSON(w, http.StatusOK, []models.CartItem{})
		return
	}
	if email != authed.Email() {
		respond.Error(w, http.StatusForbidden, "Forbidden access")
		return
	}
	items, err := h.store.ListCartItems(r.Context(), email)
	if err != nil {
		storeError(w, h.log, "list cart items", err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *CartsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	id, err := h.store.InsertCartItem(r.Context(), item)
	if err != nil {
		storeError(w, h.log, "insert cart item", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.InsertResult{InsertedID: id})
}

func (h *CartsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.DeleteCartItem(r.Context(), r.PathValue("id"))
	if err != nil {
		storeError(w, h.log, "delete cart item", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.DeleteResult{DeletedCount: deleted})
}
