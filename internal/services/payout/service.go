package payout

import (
	"log/slog"

	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
	"github.com/mpfeif/caddiebook/internal/services/nassau"
	"github.com/mpfeif/caddiebook/internal/services/sidebet"
	"github.com/mpfeif/caddiebook/internal/services/skins"
)

// Service runs every configured game for an event and merges the
// results into per-golfer totals. It is a pure function over the event
// and profile snapshots: callers re-invoke it on every score or config
// change.
type Service struct {
	handicap *handicap.Service
	nassau   *nassau.Service
	skins    *skins.Service
	sidebet  *sidebet.Service
	logger   *slog.Logger
}

// New creates a payout service
func New(handicapService *handicap.Service, logger *slog.Logger) *Service {
	return &Service{
		handicap: handicapService,
		nassau:   nassau.New(handicapService),
		skins:    skins.New(handicapService),
		sidebet:  sidebet.New(),
		logger:   logger,
	}
}

// CalculateEventPayouts evaluates all game configs for an event. A
// config that cannot be evaluated (for example fewer than two paying
// participants) contributes zero; it never blocks the other games.
// Totals accumulate at full precision; round with model.RoundCurrency
// only at presentation time.
func (s *Service) CalculateEventPayouts(event *model.Event, profiles []*model.Profile) *model.PayoutResult {
	result := &model.PayoutResult{
		EventID:       event.ID,
		TotalByGolfer: map[model.GolferID]float64{},
		BuyInByGolfer: map[model.GolferID]float64{},
	}

	for _, id := range event.GolferIDs() {
		result.TotalByGolfer[id] = 0
		result.BuyInByGolfer[id] = 0
	}

	for i := range event.Nassau {
		r := s.nassau.Evaluate(event, &event.Nassau[i], profiles)
		result.Nassau = append(result.Nassau, r)
		mergeNassau(result, &r)
	}

	for i := range event.Skins {
		r := s.skins.Evaluate(event, &event.Skins[i], profiles)
		result.Skins = append(result.Skins, r)
		if r.Provisional {
			result.Provisional = true
		}
		for id, net := range r.NetByGolfer {
			result.TotalByGolfer[id] += net
		}
		for id, buyIn := range r.BuyInByGolfer {
			result.BuyInByGolfer[id] += buyIn
		}
	}

	for i := range event.Pinkies {
		r := s.sidebet.EvaluatePinky(event, &event.Pinkies[i])
		result.Pinkies = append(result.Pinkies, r)
		for id, net := range r.NetByGolfer {
			result.TotalByGolfer[id] += net
		}
	}

	for i := range event.Greenies {
		r := s.sidebet.EvaluateGreenie(event, &event.Greenies[i])
		result.Greenies = append(result.Greenies, r)
		for id, net := range r.NetByGolfer {
			result.TotalByGolfer[id] += net
		}
	}

	s.logger.Debug("calculated event payouts",
		slog.String("event_id", string(event.ID)),
		slog.Int("golfer_count", len(event.Golfers)),
		slog.Bool("provisional", result.Provisional),
	)

	return result
}

func mergeNassau(result *model.PayoutResult, r *model.NassauResult) {
	for _, seg := range r.Segments {
		if seg.Provisional {
			result.Provisional = true
		}
	}
	for id, net := range r.NetByGolfer {
		result.TotalByGolfer[id] += net
	}
	for id, buyIn := range r.BuyInByGolfer {
		result.BuyInByGolfer[id] += buyIn
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	CalculateEventPayouts(event *model.Event, profiles []*model.Profile) *model.PayoutResult
}

var _ ServiceInterface = (*Service)(nil)
