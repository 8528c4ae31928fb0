// Package handlers wires the HTTP surface: each handler runs zero or one
// access-guard gate, performs one store or processor call, and passes the
// result through as the response body.
package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// deny writes a guard denial using the shared failure shape.
func deny(w http.ResponseWriter, d *auth.Denial) {
	respond.Error(w, d.Status, d.Message)
}

// storeError translates store failures at the handler boundary: malformed
// identifiers become 400s, everything else is logged and surfaces as a 500.
func storeError(w http.ResponseWriter, log zerolog.Logger, op string, err error) {
	if errors.Is(err, storage.ErrInvalidID) {
		respond.Error(w, http.StatusBadRequest, "invalid identifier")
		return
	}
	log.Error().Err(err).Str("op", op).Msg("store operation failed")
	respond.Error(w, http.StatusInternalServerError, "internal server error")
}
