package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mpfeif/caddiebook/internal/api/response"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/event"
	"github.com/mpfeif/caddiebook/internal/services/payout"
	"github.com/mpfeif/caddiebook/internal/storage"
)

// PayoutHandler computes payout breakdowns on demand. Results are not
// persisted; mid-round requests return provisional standings.
type PayoutHandler struct {
	events  *event.Controller
	payouts *payout.Service
	storage storage.Storage
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(events *event.Controller, payouts *payout.Service, storage storage.Storage) *PayoutHandler {
	return &PayoutHandler{
		events:  events,
		payouts: payouts,
		storage: storage,
	}
}

// Get handles GET /api/v1/events/{id}/payouts
func (h *PayoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	e, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	profiles, err := h.storage.ListProfiles(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	result := h.payouts.CalculateEventPayouts(e, profiles)
	response.JSON(w, http.StatusOK, response.PayoutResultFromModel(result))
}
