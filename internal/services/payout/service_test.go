package payout

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/handicap"
	"github.com/mpfeif/caddiebook/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(handicap.New(handicap.DefaultPolicy()), testutil.NopLogger())
}

// newEvent builds an 18-hole event with all-fours scorecards
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

func (s *ServiceSuite) TestGolfersSeededAtZero() {
	event := newEvent("g1", "g2")

	result := s.service.CalculateEventPayouts(event, nil)

	s.Equal(model.EventID("event-1"), result.EventID)
	s.False(result.Provisional)
	s.Equal(0.0, result.TotalByGolfer["g1"])
	s.Equal(0.0, result.TotalByGolfer["g2"])
	s.Equal(0.0, result.BuyInByGolfer["g1"])
}

func (s *ServiceSuite) TestAggregatesAcrossGameKinds() {
	// g1 birdies hole 1; everything else is all square.
	event := newEvent("g1", "g2")
	event.Scorecard("g1").SetStrokes(1, 3)
	event.Nassau = []model.NassauConfig{{ID: "n1", Fee: 5}}
	event.Skins = []model.SkinsConfig{{ID: "s1", Fee: 1}}
	event.Pinkies = []model.PinkyConfig{{ID: "p1", Fee: 1, Counts: map[model.GolferID]int{"g1": 1}}}

	result := s.service.CalculateEventPayouts(event, nil)

	s.Require().Len(result.Nassau, 1)
	s.Require().Len(result.Skins, 1)
	s.Require().Len(result.Pinkies, 1)

	// Nassau: g1 wins front and total, the back splits. Nets +10 / -10.
	// Skins: g1 takes hole 1 for 2; the 17 pushed holes cost both golfers.
	// Pinky: g1 owes g2 a dollar.
	s.InDelta(10-16-1, result.TotalByGolfer["g1"], 1e-9)
	s.InDelta(-10-18+1, result.TotalByGolfer["g2"], 1e-9)

	// Buy-ins: three Nassau segments at 5 plus 18 skins holes at 1
	s.Equal(33.0, result.BuyInByGolfer["g1"])
	s.Equal(33.0, result.BuyInByGolfer["g2"])
}

func (s *ServiceSuite) TestUnplayableConfigContributesZero() {
	event := newEvent("g1", "g2")
	event.Nassau = []model.NassauConfig{{
		ID:           "n1",
		Fee:          5,
		Participants: model.SubsetParticipants("g1"),
	}}

	result := s.service.CalculateEventPayouts(event, nil)

	s.Require().Len(result.Nassau, 1)
	s.False(result.Nassau[0].Played)
	s.Equal(0.0, result.TotalByGolfer["g1"])
	s.Equal(0.0, result.BuyInByGolfer["g1"])
}

func (s *ServiceSuite) TestProvisionalPropagates() {
	event := newEvent("g1", "g2")
	event.Scorecards["g2"] = model.NewScorecard("g2", 18)
	event.Nassau = []model.NassauConfig{{ID: "n1", Fee: 5}}

	result := s.service.CalculateEventPayouts(event, nil)

	s.True(result.Provisional)
}

func (s *ServiceSuite) TestDeterministic() {
	event := newEvent("g1", "g2", "g3")
	event.Scorecard("g1").SetStrokes(4, 3)
	event.Scorecard("g3").SetStrokes(11, 6)
	event.Nassau = []model.NassauConfig{{ID: "n1", Fee: 5}}
	event.Skins = []model.SkinsConfig{{ID: "s1", Fee: 2, Carryovers: true}}
	event.Greenies = []model.GreenieConfig{{ID: "gr1", Fee: 1, Counts: map[model.GolferID]int{"g2": 2}}}

	first := s.service.CalculateEventPayouts(event, nil)
	second := s.service.CalculateEventPayouts(event, nil)

	s.Equal(first, second)
}
