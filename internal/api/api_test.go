package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpfeif/caddiebook/internal/api"
	"github.com/mpfeif/caddiebook/internal/api/middleware"
	"github.com/mpfeif/caddiebook/internal/api/response"
	"github.com/mpfeif/caddiebook/internal/factory"
)

// testServer wires the full router against in-memory storage
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		Storage:              app.Storage,
		ProfileController:    app.ProfileController,
		EventController:      app.EventController,
		PayoutService:        app.PayoutService,
		SettlementController: app.SettlementController,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any, profileID string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if profileID != "" {
		req.Header.Set(middleware.ProfileHeader, profileID)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createProfile(t *testing.T, name string) response.Profile {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/profiles", map[string]string{"display_name": name}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var profile response.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	return profile
}

func (ts *testServer) createEvent(t *testing.T, ownerID, name string) response.Event {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/events", map[string]string{"name": name}, ownerID)
	require.Equal(t, http.StatusCreated, rr.Code)

	var event response.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))
	return event
}

func (ts *testServer) addGolfer(t *testing.T, eventID string, body map[string]any) response.Golfer {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/events/"+eventID+"/golfers", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var golfer response.Golfer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &golfer))
	return golfer
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateAndGetProfile(t *testing.T) {
	ts := newTestServer(t)

	profile := ts.createProfile(t, "Alice")
	assert.Equal(t, "Alice", profile.DisplayName)
	assert.NotEmpty(t, profile.ID)

	rr := ts.request(http.MethodGet, "/api/v1/profiles/"+profile.ID, nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateProfileRequiresDisplayName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/profiles", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestUpdateHandicap(t *testing.T) {
	ts := newTestServer(t)
	profile := ts.createProfile(t, "Alice")

	rr := ts.request(http.MethodPatch, "/api/v1/profiles/"+profile.ID+"/handicap",
		map[string]float64{"handicap_index": 9.1}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.NotNil(t, updated.HandicapIndex)
	assert.Equal(t, 9.1, *updated.HandicapIndex)
}

func TestCreateEventRequiresIdentity(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/events", map[string]string{"name": "Saturday"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")
}

func TestGameConfigRequiresOwner(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createProfile(t, "Owner")
	other := ts.createProfile(t, "Other")
	event := ts.createEvent(t, owner.ID, "Saturday game")

	rr := ts.request(http.MethodPost, "/api/v1/events/"+event.ID+"/games/skins",
		map[string]any{"fee": 1}, other.ID)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_OWNER")
}

func TestEventNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/events/NOPE", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "EVENT_NOT_FOUND")
}

func TestFullOutingOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	owner := ts.createProfile(t, "Owner")
	friend := ts.createProfile(t, "Friend")
	event := ts.createEvent(t, owner.ID, "Saturday game")

	g1 := ts.addGolfer(t, event.ID, map[string]any{"profile_id": owner.ID})
	g2 := ts.addGolfer(t, event.ID, map[string]any{"profile_id": friend.ID})

	// Attach a Nassau
	rr := ts.request(http.MethodPost, "/api/v1/events/"+event.ID+"/games/nassau",
		map[string]any{"fee": 5}, owner.ID)
	require.Equal(t, http.StatusCreated, rr.Code)

	// g1 cards threes, g2 fours
	for hole := 1; hole <= 18; hole++ {
		for golferID, strokes := range map[string]int{g1.ID: 3, g2.ID: 4} {
			rr := ts.request(http.MethodPut, "/api/v1/events/"+event.ID+"/scores",
				map[string]any{"golfer_id": golferID, "hole": hole, "strokes": strokes}, "")
			require.Equal(t, http.StatusNoContent, rr.Code, fmt.Sprintf("hole %d", hole))
		}
	}

	// Payouts: g1 sweeps all three segments
	rr = ts.request(http.MethodGet, "/api/v1/events/"+event.ID+"/payouts", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var payouts response.PayoutResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payouts))
	assert.False(t, payouts.Provisional)
	assert.Equal(t, 15.0, payouts.TotalByGolfer[g1.ID])
	assert.Equal(t, -15.0, payouts.TotalByGolfer[g2.ID])

	// Settling before completion is rejected
	rr = ts.request(http.MethodPost, "/api/v1/events/"+event.ID+"/settle", nil, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "EVENT_NOT_COMPLETED")

	// Complete and settle
	rr = ts.request(http.MethodPost, "/api/v1/events/"+event.ID+"/complete", nil, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/events/"+event.ID+"/settle", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var settlements []response.Settlement
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settlements))
	require.Len(t, settlements, 1)
	assert.Equal(t, g2.ID, settlements[0].FromGolferID)
	assert.Equal(t, g1.ID, settlements[0].ToGolferID)
	assert.Equal(t, 15.0, settlements[0].Amount)
	assert.Equal(t, "pending", settlements[0].Status)

	// The friend sees the debt in their pending list
	rr = ts.request(http.MethodGet, "/api/v1/settlements/pending", nil, friend.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	var pending response.PendingSettlements
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pending))
	require.Len(t, pending.ToPay, 1)
	assert.Empty(t, pending.ToCollect)

	// Pay it and check the wallets
	rr = ts.request(http.MethodPost, "/api/v1/settlements/"+settlements[0].ID+"/pay",
		map[string]string{"method": "venmo"}, friend.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/wallet", nil, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	var wallet []response.WalletTransaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wallet))
	require.Len(t, wallet, 1)
	assert.Equal(t, 15.0, wallet[0].Amount)

	// Paying twice is a conflict
	rr = ts.request(http.MethodPost, "/api/v1/settlements/"+settlements[0].ID+"/pay",
		map[string]string{"method": "cash"}, friend.ID)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "SETTLEMENT_NOT_PENDING")
}

func TestScoresFrozenAfterCompletion(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createProfile(t, "Owner")
	event := ts.createEvent(t, owner.ID, "Saturday game")
	golfer := ts.addGolfer(t, event.ID, map[string]any{"profile_id": owner.ID})

	rr := ts.request(http.MethodPost, "/api/v1/events/"+event.ID+"/complete", nil, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPut, "/api/v1/events/"+event.ID+"/scores",
		map[string]any{"golfer_id": golfer.ID, "hole": 1, "strokes": 4}, "")
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "EVENT_COMPLETED")
}
