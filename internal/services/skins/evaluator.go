package skins

import (
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
)

// Service evaluates skins configs: one skin per hole to the strictly
// lowest score, with tied holes either carrying their value forward or
// pushing it depending on the config.
type Service struct {
	handicap *handicap.Service
}

// New creates a skins evaluator
func New(handicap *handicap.Service) *Service {
	return &Service{handicap: handicap}
}

// Evaluate resolves every hole of one skins config in order. A config
// with fewer than two participants contributes nothing. Evaluation
// stops at the first hole where an eligible score is missing: that hole
// and every later hole are reported pending and the result is
// provisional until the scores arrive.
func (s *Service) Evaluate(event *model.Event, cfg *model.SkinsConfig, profiles []*model.Profile) model.SkinsResult {
	result := model.SkinsResult{
		ConfigID:         cfg.ID,
		WinningsByGolfer: map[model.GolferID]float64{},
		BuyInByGolfer:    map[model.GolferID]float64{},
		NetByGolfer:      map[model.GolferID]float64{},
	}

	participants := cfg.Participants.Resolve(event)
	if len(participants) < 2 {
		return result
	}
	result.Played = true

	tee := event.Course()
	holeValue := cfg.Fee * float64(len(participants))
	buyIn := cfg.Fee * float64(tee.HoleCount())

	for _, id := range participants {
		result.BuyInByGolfer[id] = buyIn
		result.NetByGolfer[id] = -buyIn
	}

	carried := 0.0
	for i, hole := range tee.Holes {
		holeResult := model.SkinsHoleResult{
			Hole:  hole.Number,
			Value: holeValue + carried,
		}

		winner, tied, complete := s.resolveHole(event, cfg, profiles, hole.Number, participants)
		if !complete {
			// Missing score: this hole and the rest stay pending
			result.Provisional = true
			holeResult.Pending = true
			holeResult.Value = 0
			result.Holes = append(result.Holes, holeResult)
			for _, rest := range tee.Holes[i+1:] {
				result.Holes = append(result.Holes, model.SkinsHoleResult{Hole: rest.Number, Pending: true})
			}
			return result
		}

		result.TotalPot += holeValue
		if winner != nil {
			holeResult.Winner = winner
			result.WinningsByGolfer[*winner] += holeResult.Value
			result.NetByGolfer[*winner] += holeResult.Value
			carried = 0
		} else {
			holeResult.Tied = tied
			lastHole := i == len(tee.Holes)-1
			if cfg.Carryovers && !lastHole {
				holeResult.Carried = true
				carried = holeResult.Value
			} else {
				// Tied value is pushed: lost, not paid to anyone.
				// A carry reaching the final hole cannot carry further.
				holeResult.Pushed = true
				result.TotalPushed += holeResult.Value
				carried = 0
			}
		}

		result.Holes = append(result.Holes, holeResult)
	}

	return result
}

// resolveHole finds the strict unique minimum score on a hole among the
// participants. Returns the winner when one exists, the tie list when
// not, and complete false when any participant's score is missing.
func (s *Service) resolveHole(
	event *model.Event,
	cfg *model.SkinsConfig,
	profiles []*model.Profile,
	holeNumber int,
	participants []model.GolferID,
) (winner *model.GolferID, tied []model.GolferID, complete bool) {
	best := 0
	var lowest []model.GolferID
	for _, id := range participants {
		score := s.handicap.HoleScore(event, id, holeNumber, cfg.Net, profiles)
		if score == nil {
			return nil, nil, false
		}
		switch {
		case len(lowest) == 0 || *score < best:
			best = *score
			lowest = []model.GolferID{id}
		case *score == best:
			lowest = append(lowest, id)
		}
	}

	if len(lowest) == 1 {
		return &lowest[0], nil, true
	}
	return nil, lowest, true
}
