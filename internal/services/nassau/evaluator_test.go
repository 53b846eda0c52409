package nassau

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
)

type EvaluatorSuite struct {
	suite.Suite
	service *Service
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) SetupTest() {
	s.service = New(handicap.New(handicap.DefaultPolicy()))
}

// newEvent builds an 18-hole event with the given golfers and all-fours
// scorecards
func newEvent(golferIDs ...model.GolferID) *model.Event {
	event := &model.Event{
		ID:         "event-1",
		Tee:        model.DefaultTee(),
		Scorecards: map[model.GolferID]*model.Scorecard{},
	}
	for _, id := range golferIDs {
		event.Golfers = append(event.Golfers, model.Golfer{ID: id, CustomName: string(id)})
		sc := event.Scorecard(id)
		for hole := 1; hole <= 18; hole++ {
			sc.SetStrokes(hole, 4)
		}
	}
	return event
}

// setScore overwrites one hole score
func setScore(event *model.Event, id model.GolferID, hole, strokes int) {
	event.Scorecard(id).SetStrokes(hole, strokes)
}

func (s *EvaluatorSuite) TestIndividualSegmentsWithTotalTie() {
	// g1 front 38, back 41 (total 79); g2 front 40, back 39 (total 79).
	// g1 takes the front, g2 the back, and the total pot splits.
	event := newEvent("g1", "g2")
	setScore(event, "g1", 1, 6)  // front 38
	setScore(event, "g2", 2, 8)  // front 40
	setScore(event, "g1", 10, 9) // back 41
	setScore(event, "g2", 10, 7) // back 39

	cfg := &model.NassauConfig{ID: "n1", Fee: 5}
	result := s.service.Evaluate(event, cfg, nil)

	s.Require().True(result.Played)
	s.Require().Len(result.Segments, 3)

	front, back, total := result.Segments[0], result.Segments[1], result.Segments[2]

	s.Equal(model.SegmentFront, front.Segment)
	s.Equal(10.0, front.Pot)
	s.Equal([]model.GolferID{"g1"}, front.Winners)
	s.Equal(10.0, front.WinningsByGolfer["g1"])

	s.Equal([]model.GolferID{"g2"}, back.Winners)
	s.Equal(10.0, back.WinningsByGolfer["g2"])

	s.ElementsMatch([]model.GolferID{"g1", "g2"}, total.Winners)
	s.Equal(5.0, total.WinningsByGolfer["g1"])
	s.Equal(5.0, total.WinningsByGolfer["g2"])

	// Each buys in once per segment; the round is a wash overall
	s.Equal(15.0, result.BuyInByGolfer["g1"])
	s.Equal(15.0, result.BuyInByGolfer["g2"])
	s.Equal(0.0, result.NetByGolfer["g1"])
	s.Equal(0.0, result.NetByGolfer["g2"])
}

func (s *EvaluatorSuite) TestNetSumsToZero() {
	event := newEvent("g1", "g2", "g3")
	setScore(event, "g1", 3, 3)
	setScore(event, "g2", 12, 3)
	setScore(event, "g3", 7, 6)

	cfg := &model.NassauConfig{ID: "n1", Fee: 2}
	result := s.service.Evaluate(event, cfg, nil)

	sum := 0.0
	for _, net := range result.NetByGolfer {
		sum += net
	}
	s.InDelta(0, sum, 1e-9)
}

func (s *EvaluatorSuite) TestDistinctSegmentFees() {
	event := newEvent("g1", "g2")
	setScore(event, "g1", 1, 3)

	cfg := &model.NassauConfig{
		ID:          "n1",
		SegmentFees: &model.NassauSegmentFees{Front: 2, Back: 3, Total: 5},
	}
	result := s.service.Evaluate(event, cfg, nil)

	s.Equal(4.0, result.Segments[0].Pot)
	s.Equal(6.0, result.Segments[1].Pot)
	s.Equal(10.0, result.Segments[2].Pot)
	s.Equal(10.0, result.BuyInByGolfer["g1"])
}

func (s *EvaluatorSuite) TestFewerThanTwoParticipantsContributesNothing() {
	event := newEvent("g1")

	cfg := &model.NassauConfig{ID: "n1", Fee: 5}
	result := s.service.Evaluate(event, cfg, nil)

	s.False(result.Played)
	s.Empty(result.Segments)
	s.Empty(result.BuyInByGolfer)
	s.Empty(result.NetByGolfer)
}

func (s *EvaluatorSuite) TestParticipantSubset() {
	event := newEvent("g1", "g2", "g3")
	setScore(event, "g3", 1, 2) // best score, but not participating

	cfg := &model.NassauConfig{
		ID:           "n1",
		Fee:          5,
		Participants: model.SubsetParticipants("g1", "g2"),
	}
	result := s.service.Evaluate(event, cfg, nil)

	s.Require().True(result.Played)
	s.NotContains(result.BuyInByGolfer, model.GolferID("g3"))
	s.NotContains(result.Segments[0].WinningsByGolfer, model.GolferID("g3"))
	s.Equal(10.0, result.Segments[0].Pot)
}

func (s *EvaluatorSuite) TestMissingScoreExcludesGolferAndFlagsProvisional() {
	event := newEvent("g1", "g2")
	event.Scorecards["g1"] = model.NewScorecard("g1", 18) // wipe g1's card

	cfg := &model.NassauConfig{ID: "n1", Fee: 5}
	result := s.service.Evaluate(event, cfg, nil)

	s.Require().True(result.Played)
	front := result.Segments[0]
	s.True(front.Provisional)
	s.Equal([]model.GolferID{"g2"}, front.Winners)
	s.Equal(10.0, front.WinningsByGolfer["g2"])
}

func (s *EvaluatorSuite) TestTeamModeBestOne() {
	// Teams of two, best one score per hole. Team A's best ball is 3 on
	// hole 1 and 4 elsewhere; team B's is 4 everywhere.
	event := newEvent("a1", "a2", "b1", "b2")
	setScore(event, "a1", 1, 3)

	cfg := &model.NassauConfig{
		ID:  "n1",
		Fee: 5,
		Teams: []model.Team{
			{ID: "team-a", GolferIDs: []model.GolferID{"a1", "a2"}},
			{ID: "team-b", GolferIDs: []model.GolferID{"b1", "b2"}},
		},
	}
	result := s.service.Evaluate(event, cfg, nil)

	s.Require().True(result.Played)
	for _, seg := range result.Segments {
		s.Equal(20.0, seg.Pot)
	}

	front := result.Segments[0]
	s.Equal([]string{"team-a"}, front.WinningTeams)
	s.ElementsMatch([]model.GolferID{"a1", "a2"}, front.Winners)
	// Pot splits across the winning team's members
	s.Equal(10.0, front.WinningsByGolfer["a1"])
	s.Equal(10.0, front.WinningsByGolfer["a2"])

	// Back nine is all square: both teams split
	back := result.Segments[1]
	s.ElementsMatch([]string{"team-a", "team-b"}, back.WinningTeams)
	s.Equal(5.0, back.WinningsByGolfer["b1"])
}

func (s *EvaluatorSuite) TestTeamBestTwoCountsBothScores() {
	event := newEvent("a1", "a2", "b1", "b2")
	// Team A: 3 and 5 on hole 1 (best-2 total 8); team B: 4 and 4 (8).
	// With best-1 team A would win on the 3.
	setScore(event, "a1", 1, 3)
	setScore(event, "a2", 1, 5)

	cfg := &model.NassauConfig{
		ID:            "n1",
		Fee:           5,
		TeamBestCount: 2,
		Teams: []model.Team{
			{ID: "team-a", GolferIDs: []model.GolferID{"a1", "a2"}},
			{ID: "team-b", GolferIDs: []model.GolferID{"b1", "b2"}},
		},
	}
	result := s.service.Evaluate(event, cfg, nil)

	front := result.Segments[0]
	s.ElementsMatch([]string{"team-a", "team-b"}, front.WinningTeams)
}

func (s *EvaluatorSuite) TestTeamMemberWithoutScoresContributesNothing() {
	event := newEvent("a1", "b1", "b2")
	event.Golfers = append(event.Golfers, model.Golfer{ID: "a2", CustomName: "a2"})
	event.Scorecards["a2"] = model.NewScorecard("a2", 18)

	cfg := &model.NassauConfig{
		ID:  "n1",
		Fee: 5,
		Teams: []model.Team{
			{ID: "team-a", GolferIDs: []model.GolferID{"a1", "a2"}},
			{ID: "team-b", GolferIDs: []model.GolferID{"b1", "b2"}},
		},
	}
	result := s.service.Evaluate(event, cfg, nil)

	s.Require().True(result.Played)
	front := result.Segments[0]
	s.True(front.Provisional)
	// Both teams' best ball is 4 everywhere despite a2's empty card
	s.ElementsMatch([]string{"team-a", "team-b"}, front.WinningTeams)
}

func (s *EvaluatorSuite) TestSingleNonEmptyTeamFallsBackToIndividual() {
	event := newEvent("g1", "g2")
	setScore(event, "g1", 1, 3)

	cfg := &model.NassauConfig{
		ID:  "n1",
		Fee: 5,
		Teams: []model.Team{
			{ID: "team-a", GolferIDs: []model.GolferID{"g1", "g2"}},
		},
	}
	result := s.service.Evaluate(event, cfg, nil)

	s.Require().True(result.Played)
	front := result.Segments[0]
	s.Empty(front.WinningTeams)
	s.Equal([]model.GolferID{"g1"}, front.Winners)
}
