package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/models/dto"
	"github.com/bistroboss/bistro-be/internal/processor"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// PaymentsHandler owns intent creation and payment recording.
type PaymentsHandler struct {
	payments storage.PaymentStore
	carts    storage.CartStore
	intents  processor.IntentCreator
	guard    *auth.Guard
	log      zerolog.Logger
}

// NewPaymentsHandler constructs the handler.
func NewPaymentsHandler(payments storage.PaymentStore, carts storage.CartStore, intents processor.IntentCreator, guard *auth.Guard, log zerolog.Logger) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, carts: carts, intents: intents, guard: guard, log: log}
}

// Register attaches payment routes to the mux.
func (h *PaymentsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /create-payment-intent", h.handleCreateIntent)
	mux.HandleFunc("POST /payments", h.handleRecord)
}

func (h *PaymentsHandler) handleCreateIntent(w http.ResponseWriter, r *http.Request) {
	if _, denial := h.guard.Authenticate(r); denial != nil {
		deny(w, denial)
		return
	}
	var req dto.CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	// The processor charges in minor units.
	amount := int64(math.Round(req.Price * 100))
	intent, err := h.intents.CreateIntent(r.Context(), amount, "usd")
	if err != nil {
		h.log.Error().Err(err).Msg("payment intent creation failed")
		respond.Error(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}
	respond.JSON(w, http.StatusOK, dto.CreateIntentResponse{ClientSecret: intent.ClientSecret})
}

// handleRecord stores the payment, then purges the cart items it references.
// The two writes are not atomic: a failed purge leaves the payment recorded
// with the carts intact, and there is no compensating action.
func (h *PaymentsHandler) handleRecord(w http.ResponseWriter, r *http.Request) {
	if _, denial := h.guard.Authenticate(r); denial != nil {
		deny(w, denial)
		return
	}
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	insertedID, err := h.payments.InsertPayment(r.Context(), payment)
	if err != nil {
		storeError(w, h.log, "insert payment", err)
		return
	}
	deleted, err := h.carts.DeleteCartItems(r.Context(), payment.CartItems)
	if err != nil {
		storeError(w, h.log, "purge cart items", err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.PaymentResult{
		InsertResult: dto.InsertResult{InsertedID: insertedID},
		DeleteResult: dto.DeleteResult{DeletedCount: deleted},
	})
}
