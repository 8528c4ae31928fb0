package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/models/dto"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// UsersHandler owns the user collection endpoints.
type UsersHandler struct {
	store storage.UserStore
	guard *auth.Guard
	log   zerolog.Logger
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(store storage.UserStore, guard *auth.Guard, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{store: store, guard: guard, log: log}
}

// Register attaches user routes to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /users", h.handleList)
	mux.HandleFunc("POST /users", h.handleCreate)
	mux.HandleFunc("GET /users/admin/{email}", h.handleAdminStatus)
	mux.HandleFunc("PATCH /users/admin/{id}", h.handlePromote)
}

func (h *UsersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	authed, denial := h.guard.Authenticate(r)
	if denial != nil {
		deny(w, denial)
		return
	}
	if denial := h.guard.RequireRole(r.Context(), authed, models.RoleAdmin); denial != nil {
		deny(w, denial)
		return
	}
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		storeError(w, h.log, "list users", err)
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// handleCreate inserts a user record unless the email is already present.
// Signup happens in the external identity provider, so no credentials are
// stored here.
func (h *UsersHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	_, err := h.store.FindUserByEmail(r.Context(), user.Email)
	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "User already exists"})
		return
	case !errors.Is(err, storage.ErrNotFound):
		storeError(w, h.log, "find user", err)
		return
	}

	id, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "User already exists"})
			return
		}
		storeError(w, h.log, "create user", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.InsertResult{InsertedID: id})
}

// handleAdminStatus is a self-only probe: a caller may only ask about its own
// email, and a mismatch reports non-admin without a store lookup.
func (h *UsersHandler) handleAdminStatus(w http.ResponseWriter, r *http.Request) {
	authed, denial := h.guard.Authenticate(r)
	if denial != nil {
		deny(w, denial)
		return
	}
	admin, err := h.guard.AdminStatus(r.Context(), authed, r.PathValue("email"))
	if err != nil {
		storeError(w, h.log, "admin status", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.AdminStatusResponse{Admin: admin})
}

func (h *UsersHandler) handlePromote(w http.ResponseWriter, r *http.Request) {
	matched, modified, err := h.store.PromoteUserToAdmin(r.Context(), r.PathValue("id"))
	if err != nil {
		storeError(w, h.log, "promote user", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.UpdateResult{MatchedCount: matched, ModifiedCount: modified})
}
