package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mpfeif/caddiebook/internal/api/request"
	"github.com/mpfeif/caddiebook/internal/api/response"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/profile"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profiles *profile.Controller
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *profile.Controller) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Create handles POST /api/v1/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.DisplayName == "" {
		WriteError(w, NewInvalidRequestError("display_name is required"))
		return
	}

	p, err := h.profiles.CreateProfile(r.Context(), req.DisplayName, req.HandicapIndex)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ProfileFromModel(p))
}

// Get handles GET /api/v1/profiles/{id}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.ProfileID(mux.Vars(r)["id"])

	p, err := h.profiles.GetProfile(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}

// List handles GET /api/v1/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.ListProfiles(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Profile, len(profiles))
	for i, p := range profiles {
		out[i] = response.ProfileFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// UpdateHandicap handles PATCH /api/v1/profiles/{id}/handicap
func (h *ProfileHandler) UpdateHandicap(w http.ResponseWriter, r *http.Request) {
	id := model.ProfileID(mux.Vars(r)["id"])

	var req request.UpdateHandicapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.profiles.UpdateHandicapIndex(r.Context(), id, req.HandicapIndex)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(p))
}
