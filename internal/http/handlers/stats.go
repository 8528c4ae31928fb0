package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/http/respond"
	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/models/dto"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	users    storage.UserStore
	menu     storage.MenuStore
	payments storage.PaymentStore
	guard    *auth.Guard
	log      zerolog.Logger
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(users storage.UserStore, menu storage.MenuStore, payments storage.PaymentStore, guard *auth.Guard, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{users: users, menu: menu, payments: payments, guard: guard, log: log}
}

// Register attaches stats routes to the mux.
func (h *StatsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin-stats", h.handleAdminStats)
	mux.HandleFunc("GET /order-stats", h.handleOrderStats)
}

func (h *StatsHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	authed, denial := h.guard.Authenticate(r)
	if denial != nil {
		deny(w, denial)
		return false
	}
	if denial := h.guard.RequireRole(r.Context(), authed, models.RoleAdmin); denial != nil {
		deny(w, denial)
		return false
	}
	return true
}

func (h *StatsHandler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	ctx := r.Context()

	users, err := h.users.CountUsers(ctx)
	if err != nil {
		storeError(w, h.log, "count users", err)
		return
	}
	products, err := h.menu.CountMenuItems(ctx)
	if err != nil {
		storeError(w, h.log, "count menu", err)
		return
	}
	orders, err := h.payments.CountPayments(ctx)
	if err != nil {
		storeError(w, h.log, "count payments", err)
		return
	}
	payments, err := h.payments.ListPayments(ctx)
	if err != nil {
		storeError(w, h.log, "list payments", err)
		return
	}
	var revenue float64
	for _, p := range payments {
		revenue += p.Price
	}

	respond.JSON(w, http.StatusOK, dto.AdminStats{
		Users:    users,
		Products: products,
		Orders:   orders,
		Revenue:  revenue,
	})
}

func (h *StatsHandler) handleOrderStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	stats, err := h.payments.CategoryStats(r.Context())
	if err != nil {
		storeError(w, h.log, "order stats", err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}
