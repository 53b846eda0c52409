package sidebet

import (
	"github.com/mpfeif/caddiebook/internal/model"
)

// Polarity controls which way money flows for a declared count
type Polarity int

const (
	// Penalty: each count costs the golfer the fee to every other participant
	Penalty Polarity = iota
	// Reward: each count earns the golfer the fee from every other participant
	Reward
)

// Service evaluates declared-count side bets (pinkies and greenies).
// Counts are recorded manually at round end, not derived from scores,
// and no buy-in is collected up front.
type Service struct{}

// New creates a side bet evaluator
func New() *Service {
	return &Service{}
}

// EvaluatePinky resolves one pinky config: a penalty bet where each
// declared pinky costs the golfer the fee to every other participant
func (s *Service) EvaluatePinky(event *model.Event, cfg *model.PinkyConfig) model.SideBetResult {
	return s.evaluate(event, cfg.ID, cfg.Fee, cfg.Participants, cfg.Counts, Penalty)
}

// EvaluateGreenie resolves one greenie config: a reward bet where each
// declared greenie earns the golfer the fee from every other participant
func (s *Service) EvaluateGreenie(event *model.Event, cfg *model.GreenieConfig) model.SideBetResult {
	return s.evaluate(event, cfg.ID, cfg.Fee, cfg.Participants, cfg.Counts, Reward)
}

// evaluate computes net owing/winnings per participant. For golfer G
// with count c among N participants, a penalty bet nets
// -(c*fee*(N-1)) plus fee per count declared by each other participant;
// a reward bet is the same with the signs flipped. Absent counts are 0
// and golfers outside the participant set are not computed at all.
// The nets always sum to zero.
func (s *Service) evaluate(
	event *model.Event,
	configID model.GameID,
	fee float64,
	participants model.Participants,
	counts map[model.GolferID]int,
	polarity Polarity,
) model.SideBetResult {
	result := model.SideBetResult{
		ConfigID:    configID,
		NetByGolfer: map[model.GolferID]float64{},
	}

	ids := participants.Resolve(event)
	if len(ids) < 2 {
		return result
	}
	result.Played = true

	n := float64(len(ids))
	for _, id := range ids {
		own := float64(counts[id])
		others := 0.0
		for _, other := range ids {
			if other != id {
				others += float64(counts[other])
			}
		}

		net := own*fee*(n-1) - others*fee
		if polarity == Penalty {
			net = -net
		}
		result.NetByGolfer[id] = net
	}

	return result
}
