package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mpfeif/caddiebook/internal/api/middleware"
	"github.com/mpfeif/caddiebook/internal/api/request"
	"github.com/mpfeif/caddiebook/internal/api/response"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/event"
)

// EventHandler handles event lifecycle endpoints
type EventHandler struct {
	events *event.Controller
}

// NewEventHandler creates a new event handler
func NewEventHandler(events *event.Controller) *EventHandler {
	return &EventHandler{events: events}
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner := middleware.MustGetProfileID(r.Context())

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	e, err := h.events.CreateEvent(r.Context(), req.Name, owner, req.Tee.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EventFromModel(e))
}

// Get handles GET /api/v1/events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	e, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventFromModel(e))
}

// AddGolfer handles POST /api/v1/events/{id}/golfers
func (h *EventHandler) AddGolfer(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	var req request.AddGolferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.events.AddGolfer(r.Context(), id, model.ProfileID(req.ProfileID), req.CustomName, req.HandicapOverride)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GolferFromModel(*g))
}

// RecordScore handles PUT /api/v1/events/{id}/scores
func (h *EventHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])

	var req request.RecordScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.events.RecordScore(r.Context(), id, model.GolferID(req.GolferID), req.Hole, req.Strokes); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddNassau handles POST /api/v1/events/{id}/games/nassau
func (h *EventHandler) AddNassau(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])
	owner := middleware.MustGetProfileID(r.Context())

	var req request.AddNassauRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg, err := h.events.AddNassau(r.Context(), id, owner, req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NassauConfigFromModel(cfg))
}

// AddSkins handles POST /api/v1/events/{id}/games/skins
func (h *EventHandler) AddSkins(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])
	owner := middleware.MustGetProfileID(r.Context())

	var req request.AddSkinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg, err := h.events.AddSkins(r.Context(), id, owner, req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SkinsConfigFromModel(cfg))
}

// AddPinky handles POST /api/v1/events/{id}/games/pinkies
func (h *EventHandler) AddPinky(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])
	owner := middleware.MustGetProfileID(r.Context())

	var req request.AddSideBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg, err := h.events.AddPinky(r.Context(), id, owner, req.ToPinky())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PinkyConfigFromModel(cfg))
}

// AddGreenie handles POST /api/v1/events/{id}/games/greenies
func (h *EventHandler) AddGreenie(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])
	owner := middleware.MustGetProfileID(r.Context())

	var req request.AddSideBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg, err := h.events.AddGreenie(r.Context(), id, owner, req.ToGreenie())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GreenieConfigFromModel(cfg))
}

// RecordCount handles PUT /api/v1/events/{id}/games/{game_id}/counts
func (h *EventHandler) RecordCount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.EventID(vars["id"])
	gameID := model.GameID(vars["game_id"])

	var req request.RecordCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Count < 0 {
		WriteError(w, NewInvalidRequestError("count must not be negative"))
		return
	}

	if err := h.events.RecordSideBetCount(r.Context(), id, gameID, model.GolferID(req.GolferID), req.Count); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Complete handles POST /api/v1/events/{id}/complete
func (h *EventHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := model.EventID(mux.Vars(r)["id"])
	owner := middleware.MustGetProfileID(r.Context())

	e, err := h.events.CompleteEvent(r.Context(), id, owner)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventFromModel(e))
}
