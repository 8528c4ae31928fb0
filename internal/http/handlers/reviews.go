package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// ReviewsHandler serves the public review listing.
type ReviewsHandler struct {
	store storage.ReviewStore
	log   zerolog.Logger
}

// NewReviewsHandler constructs the handler.
func NewReviewsHandler(store storage.ReviewStore, log zerolog.Logger) *ReviewsHandler {
	return &ReviewsHandler{store: store, log: log}
}

// Register attaches the review route to the mux.
func (h *ReviewsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /reviews", h.handleList)
}

func (h *ReviewsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ListReviews(r.Context())
	if err != nil {
		storeError(w, h.log, "list reviews", err)
		return
	}
	respond.JSON(w, http.StatusOK, reviews)
}
