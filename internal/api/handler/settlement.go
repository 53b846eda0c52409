package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mpfeif/caddiebook/internal/api/middleware"
	"github.com/mpfeif/caddiebook/internal/api/request"
	"github.com/mpfeif/caddiebook/internal/api/response"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/settlement"
)

// SettlementHandler handles settlement and wallet endpoints
type SettlementHandler struct {
	settlements *settlement.Controller
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlements *settlement.Controller) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// Settle handles POST /api/v1/events/{id}/settle
func (h *SettlementHandler) Settle(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	settlements, err := h.settlements.SettleEvent(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettlementsFromModels(settlements))
}

// ListForEvent handles GET /api/v1/events/{id}/settlements
func (h *SettlementHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	settlements, err := h.settlements.GetEventSettlements(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettlementsFromModels(settlements))
}

// Pay handles POST /api/v1/settlements/{id}/pay
func (h *SettlementHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id := model.SettlementID(mux.Vars(r)["id"])

	var req request.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	s, err := h.settlements.MarkPaid(r.Context(), id, model.PaidMethod(req.Method))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettlementFromModel(s))
}

// Forgive handles POST /api/v1/settlements/{id}/forgive
func (h *SettlementHandler) Forgive(w http.ResponseWriter, r *http.Request) {
	id := model.SettlementID(mux.Vars(r)["id"])

	s, err := h.settlements.Forgive(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettlementFromModel(s))
}

// Pending handles GET /api/v1/settlements/pending
func (h *SettlementHandler) Pending(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.MustGetProfileID(r.Context())

	pending, err := h.settlements.GetPendingSettlements(r.Context(), profileID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PendingSettlementsFromModel(pending))
}

// Wallet handles GET /api/v1/wallet
func (h *SettlementHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.MustGetProfileID(r.Context())

	txs, err := h.settlements.GetWalletTransactions(r.Context(), profileID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.WalletTransaction, len(txs))
	for i, tx := range txs {
		out[i] = response.WalletTransactionFromModel(tx)
	}
	response.JSON(w, http.StatusOK, out)
}
