package nassau

import (
	"sort"

	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
)

// Service evaluates Nassau configs: a three-way bet over the front
// nine, the back nine, and the full round, scored individually or as
// team-best-N.
type Service struct {
	handicap *handicap.Service
}

// New creates a Nassau evaluator
func New(handicap *handicap.Service) *Service {
	return &Service{handicap: handicap}
}

// Evaluate resolves winners and pot distribution for one Nassau config.
// A config with fewer than two paying participants contributes nothing:
// the result has Played false and empty maps.
func (s *Service) Evaluate(event *model.Event, cfg *model.NassauConfig, profiles []*model.Profile) model.NassauResult {
	result := model.NassauResult{
		ConfigID:      cfg.ID,
		BuyInByGolfer: map[model.GolferID]float64{},
		NetByGolfer:   map[model.GolferID]float64{},
	}

	participants := cfg.Participants.Resolve(event)
	teams := eligibleTeams(cfg, participants)
	teamMode := len(teams) >= 2

	// In team mode only golfers assigned to a team pay into the pots
	paying := participants
	if teamMode {
		paying = nil
		for _, t := range teams {
			paying = append(paying, t.members...)
		}
		sort.Slice(paying, func(i, j int) bool { return paying[i] < paying[j] })
	}

	if len(paying) < 2 {
		return result
	}
	result.Played = true

	for _, id := range paying {
		result.BuyInByGolfer[id] = cfg.TotalFee()
		result.NetByGolfer[id] = -cfg.TotalFee()
	}

	for _, seg := range []model.Segment{model.SegmentFront, model.SegmentBack, model.SegmentTotal} {
		holes := segmentHoles(event.Course(), seg)
		pot := cfg.FeeForSegment(seg) * float64(len(paying))

		var segResult model.NassauSegmentResult
		if teamMode {
			segResult = s.evaluateTeamSegment(event, cfg, profiles, seg, pot, holes, teams)
		} else {
			segResult = s.evaluateIndividualSegment(event, cfg, profiles, seg, pot, holes, paying)
		}

		for id, amount := range segResult.WinningsByGolfer {
			result.NetByGolfer[id] += amount
		}
		result.Segments = append(result.Segments, segResult)
	}

	return result
}

// segmentHoles returns the holes making up a segment. Front is the
// first half of the course, back the second half, total everything.
func segmentHoles(tee *model.Tee, seg model.Segment) []model.Hole {
	half := tee.HoleCount() / 2
	var holes []model.Hole
	for _, h := range tee.Holes {
		switch seg {
		case model.SegmentFront:
			if h.Number <= half {
				holes = append(holes, h)
			}
		case model.SegmentBack:
			if h.Number > half {
				holes = append(holes, h)
			}
		default:
			holes = append(holes, h)
		}
	}
	return holes
}

// evaluateIndividualSegment totals each participant's scores over the
// segment. A participant with any missing score has an undefined total
// and is excluded from winner determination; the segment is then
// provisional. Tied winners split the pot evenly.
func (s *Service) evaluateIndividualSegment(
	event *model.Event,
	cfg *model.NassauConfig,
	profiles []*model.Profile,
	seg model.Segment,
	pot float64,
	holes []model.Hole,
	participants []model.GolferID,
) model.NassauSegmentResult {
	result := model.NassauSegmentResult{
		Segment:          seg,
		Pot:              pot,
		WinningsByGolfer: map[model.GolferID]float64{},
	}

	totals := map[model.GolferID]int{}
	for _, id := range participants {
		total := 0
		defined := true
		for _, h := range holes {
			score := s.handicap.HoleScore(event, id, h.Number, cfg.Net, profiles)
			if score == nil {
				defined = false
				break
			}
			total += *score
		}
		if defined {
			totals[id] = total
		} else {
			result.Provisional = true
		}
	}

	best, found := 0, false
	for _, id := range participants {
		if total, ok := totals[id]; ok && (!found || total < best) {
			best = total
			found = true
		}
	}
	if !found {
		return result
	}

	for _, id := range participants {
		if total, ok := totals[id]; ok && total == best {
			result.Winners = append(result.Winners, id)
		}
	}

	share := pot / float64(len(result.Winners))
	for _, id := range result.Winners {
		result.WinningsByGolfer[id] = share
	}
	return result
}

// team is an eligible team restricted to the config's participants
type team struct {
	id      string
	members []model.GolferID
}

// eligibleTeams intersects each configured team with the participant
// set and drops teams left empty
func eligibleTeams(cfg *model.NassauConfig, participants []model.GolferID) []team {
	inPlay := map[model.GolferID]bool{}
	for _, id := range participants {
		inPlay[id] = true
	}

	var teams []team
	for _, t := range cfg.Teams {
		var members []model.GolferID
		for _, id := range t.GolferIDs {
			if inPlay[id] {
				members = append(members, id)
			}
		}
		if len(members) > 0 {
			sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
			teams = append(teams, team{id: t.ID, members: members})
		}
	}
	return teams
}

// evaluateTeamSegment totals each team's best-N member scores per hole
// over the segment. A member without a score on a hole contributes
// nothing toward the team; ties within a team are broken by lowest
// golfer id so the pick is deterministic. Tied teams split the pot
// evenly, and each team's share splits evenly among its members.
func (s *Service) evaluateTeamSegment(
	event *model.Event,
	cfg *model.NassauConfig,
	profiles []*model.Profile,
	seg model.Segment,
	pot float64,
	holes []model.Hole,
	teams []team,
) model.NassauSegmentResult {
	result := model.NassauSegmentResult{
		Segment:          seg,
		Pot:              pot,
		WinningsByGolfer: map[model.GolferID]float64{},
	}

	bestCount := cfg.TeamBestCount
	if bestCount < 1 {
		bestCount = 1
	}

	totals := make([]int, len(teams))
	for i, t := range teams {
		for _, h := range holes {
			type memberScore struct {
				golferID model.GolferID
				score    int
			}
			var scores []memberScore
			for _, id := range t.members {
				score := s.handicap.HoleScore(event, id, h.Number, cfg.Net, profiles)
				if score == nil {
					result.Provisional = true
					continue
				}
				scores = append(scores, memberScore{golferID: id, score: *score})
			}
			sort.Slice(scores, func(a, b int) bool {
				if scores[a].score != scores[b].score {
					return scores[a].score < scores[b].score
				}
				return scores[a].golferID < scores[b].golferID
			})
			count := bestCount
			if count > len(scores) {
				count = len(scores)
			}
			for _, ms := range scores[:count] {
				totals[i] += ms.score
			}
		}
	}

	best := totals[0]
	for _, total := range totals {
		if total < best {
			best = total
		}
	}

	var winners []team
	for i, t := range teams {
		if totals[i] == best {
			winners = append(winners, t)
		}
	}

	teamShare := pot / float64(len(winners))
	for _, t := range winners {
		result.WinningTeams = append(result.WinningTeams, t.id)
		result.Winners = append(result.Winners, t.members...)
		memberShare := teamShare / float64(len(t.members))
		for _, id := range t.members {
			result.WinningsByGolfer[id] += memberShare
		}
	}
	return result
}
