package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/models/dto"
)

// TokenHandler exchanges identity claims for a signed session token. Login
// itself happens with the external identity provider; this endpoint only
// mints the session artifact the guard verifies on later requests.
type TokenHandler struct {
	tokens *auth.TokenManager
	log    zerolog.Logger
}

// NewTokenHandler constructs the handler.
func NewTokenHandler(tokens *auth.TokenManager, log zerolog.Logger) *TokenHandler {
	return &TokenHandler{tokens: tokens, log: log}
}

// Register attaches the token route to the mux.
func (h *TokenHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /jwt", h.handleIssue)
}

func (h *TokenHandler) handleIssue(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	token, err := h.tokens.Issue(email, strings.TrimSpace(req.Name))
	if err != nil {
		h.log.Error().Err(err).Msg("token signing failed")
		respond.Error(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}
