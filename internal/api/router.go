package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mpfeif/caddiebook/internal/api/handler"
	"github.com/mpfeif/caddiebook/internal/api/middleware"
	"github.com/mpfeif/caddiebook/internal/services/event"
	"github.com/mpfeif/caddiebook/internal/services/payout"
	"github.com/mpfeif/caddiebook/internal/services/profile"
	"github.com/mpfeif/caddiebook/internal/services/settlement"
	"github.com/mpfeif/caddiebook/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger               *slog.Logger
	Storage              storage.Storage
	ProfileController    *profile.Controller
	EventController      *event.Controller
	PayoutService        *payout.Service
	SettlementController *settlement.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	profileHandler := handler.NewProfileHandler(cfg.ProfileController)
	eventHandler := handler.NewEventHandler(cfg.EventController)
	payoutHandler := handler.NewPayoutHandler(cfg.EventController, cfg.PayoutService, cfg.Storage)
	settlementHandler := handler.NewSettlementHandler(cfg.SettlementController)

	// Create middleware
	identityMiddleware := middleware.Identity()
	requireProfileMiddleware := middleware.RequireProfile()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(identityMiddleware)

	// Profile routes (no caller identity required to register or look up)
	api.HandleFunc("/profiles", profileHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/profiles", profileHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}", profileHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}/handicap", profileHandler.UpdateHandicap).Methods(http.MethodPatch)

	// Event routes; reads are open, writes that assert ownership need a caller
	events := api.PathPrefix("/events").Subrouter()
	events.HandleFunc("/{id}", eventHandler.Get).Methods(http.MethodGet)
	events.HandleFunc("/{id}/golfers", eventHandler.AddGolfer).Methods(http.MethodPost)
	events.HandleFunc("/{id}/scores", eventHandler.RecordScore).Methods(http.MethodPut)
	events.HandleFunc("/{id}/games/{game_id}/counts", eventHandler.RecordCount).Methods(http.MethodPut)
	events.HandleFunc("/{id}/payouts", payoutHandler.Get).Methods(http.MethodGet)
	events.HandleFunc("/{id}/settle", settlementHandler.Settle).Methods(http.MethodPost)
	events.HandleFunc("/{id}/settlements", settlementHandler.ListForEvent).Methods(http.MethodGet)

	owned := api.PathPrefix("/events").Subrouter()
	owned.Use(requireProfileMiddleware)
	owned.HandleFunc("", eventHandler.Create).Methods(http.MethodPost)
	owned.HandleFunc("/{id}/games/nassau", eventHandler.AddNassau).Methods(http.MethodPost)
	owned.HandleFunc("/{id}/games/skins", eventHandler.AddSkins).Methods(http.MethodPost)
	owned.HandleFunc("/{id}/games/pinkies", eventHandler.AddPinky).Methods(http.MethodPost)
	owned.HandleFunc("/{id}/games/greenies", eventHandler.AddGreenie).Methods(http.MethodPost)
	owned.HandleFunc("/{id}/complete", eventHandler.Complete).Methods(http.MethodPost)

	// Settlement lifecycle and wallet routes
	settlements := api.PathPrefix("/settlements").Subrouter()
	settlements.HandleFunc("/{id}/pay", settlementHandler.Pay).Methods(http.MethodPost)
	settlements.HandleFunc("/{id}/forgive", settlementHandler.Forgive).Methods(http.MethodPost)

	mine := api.NewRoute().Subrouter()
	mine.Use(requireProfileMiddleware)
	mine.HandleFunc("/settlements/pending", settlementHandler.Pending).Methods(http.MethodGet)
	mine.HandleFunc("/wallet", settlementHandler.Wallet).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
