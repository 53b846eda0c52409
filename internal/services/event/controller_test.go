package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mpfeif/caddiebook/internal/dependencies/mocks"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/storage/memory"
	"github.com/mpfeif/caddiebook/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	ctx        context.Context
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())

	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.Profile{ID: "p1", DisplayName: "Owner"}))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.Profile{ID: "p2", DisplayName: "Friend"}))
}

// createEvent makes an owned event with a queued id
func (s *ControllerSuite) createEvent() *model.Event {
	s.random.QueueString("EVENT1")
	event, err := s.controller.CreateEvent(s.ctx, "Saturday game", "p1", nil)
	s.Require().NoError(err)
	return event
}

func (s *ControllerSuite) TestCreateEvent() {
	event := s.createEvent()

	s.Equal(model.EventID("EVENT1"), event.ID)
	s.Equal("Saturday game", event.Name)
	s.Equal(model.ProfileID("p1"), event.OwnerProfileID)
	s.False(event.IsCompleted)
	s.Equal(s.clock.Now(), event.CreatedAt)

	stored, err := s.storage.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal(event.Name, stored.Name)
}

func (s *ControllerSuite) TestCreateEventRequiresExistingOwner() {
	_, err := s.controller.CreateEvent(s.ctx, "Saturday game", "nobody", nil)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ControllerSuite) TestAddRegisteredGolfer() {
	event := s.createEvent()

	s.random.QueueString("GOLFER01")
	golfer, err := s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.Require().NoError(err)

	s.Equal(model.GolferID("GOLFER01"), golfer.ID)
	s.True(golfer.IsRegistered())

	stored, err := s.storage.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Golfers, 1)
	s.Contains(stored.Scorecards, golfer.ID)
}

func (s *ControllerSuite) TestAddGolferRejectsDuplicateProfile() {
	event := s.createEvent()

	s.random.QueueString("GOLFER01", "GOLFER02")
	_, err := s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.Require().NoError(err)

	_, err = s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.ErrorIs(err, model.ErrDuplicateGolfer)
}

func (s *ControllerSuite) TestAddGolferNeedsProfileOrName() {
	event := s.createEvent()

	_, err := s.controller.AddGolfer(s.ctx, event.ID, "", "", nil)
	s.ErrorIs(err, model.ErrInvalidGolfer)
}

func (s *ControllerSuite) TestAddGolferUnknownProfile() {
	event := s.createEvent()

	_, err := s.controller.AddGolfer(s.ctx, event.ID, "nobody", "", nil)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ControllerSuite) TestAddAdHocGolferWithOverride() {
	event := s.createEvent()
	override := 12.3

	s.random.QueueString("GOLFER01")
	golfer, err := s.controller.AddGolfer(s.ctx, event.ID, "", "Walk-on", &override)
	s.Require().NoError(err)

	s.False(golfer.IsRegistered())
	s.Equal("Walk-on", golfer.CustomName)
	s.Require().NotNil(golfer.HandicapOverride)
	s.Equal(12.3, *golfer.HandicapOverride)
}

func (s *ControllerSuite) TestRecordScore() {
	event := s.createEvent()
	s.random.QueueString("GOLFER01")
	golfer, err := s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RecordScore(s.ctx, event.ID, golfer.ID, 3, 5))

	stored, err := s.storage.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	strokes := stored.StrokesFor(golfer.ID, 3)
	s.Require().NotNil(strokes)
	s.Equal(5, *strokes)
}

func (s *ControllerSuite) TestRecordScoreValidation() {
	event := s.createEvent()
	s.random.QueueString("GOLFER01")
	golfer, err := s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.Require().NoError(err)

	s.ErrorIs(s.controller.RecordScore(s.ctx, event.ID, "nobody", 1, 4), model.ErrGolferNotFound)
	s.ErrorIs(s.controller.RecordScore(s.ctx, event.ID, golfer.ID, 1, 0), model.ErrInvalidStrokes)
	s.ErrorIs(s.controller.RecordScore(s.ctx, event.ID, golfer.ID, 19, 4), model.ErrInvalidHole)
}

func (s *ControllerSuite) TestAddNassau() {
	event := s.createEvent()

	s.random.QueueString("GAME0001")
	cfg, err := s.controller.AddNassau(s.ctx, event.ID, "p1", model.NassauConfig{Fee: 5})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME0001"), cfg.ID)

	stored, err := s.storage.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Len(stored.Nassau, 1)
}

func (s *ControllerSuite) TestAddNassauRejectsGolferOnTwoTeams() {
	event := s.createEvent()

	_, err := s.controller.AddNassau(s.ctx, event.ID, "p1", model.NassauConfig{
		Fee: 5,
		Teams: []model.Team{
			{ID: "team-a", GolferIDs: []model.GolferID{"g1", "g2"}},
			{ID: "team-b", GolferIDs: []model.GolferID{"g2", "g3"}},
		},
	})
	s.ErrorIs(err, model.ErrDuplicateGolfer)
}

func (s *ControllerSuite) TestGameConfigsRequireOwner() {
	event := s.createEvent()

	_, err := s.controller.AddNassau(s.ctx, event.ID, "p2", model.NassauConfig{Fee: 5})
	s.ErrorIs(err, model.ErrNotOwner)

	_, err = s.controller.AddSkins(s.ctx, event.ID, "p2", model.SkinsConfig{Fee: 1})
	s.ErrorIs(err, model.ErrNotOwner)
}

func (s *ControllerSuite) TestRecordSideBetCount() {
	event := s.createEvent()
	s.random.QueueString("GOLFER01")
	golfer, err := s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.Require().NoError(err)

	s.random.QueueString("GAME0001")
	cfg, err := s.controller.AddPinky(s.ctx, event.ID, "p1", model.PinkyConfig{Fee: 1})
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RecordSideBetCount(s.ctx, event.ID, cfg.ID, golfer.ID, 2))

	stored, err := s.storage.GetEvent(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal(2, stored.Pinkies[0].Counts[golfer.ID])

	err = s.controller.RecordSideBetCount(s.ctx, event.ID, "missing", golfer.ID, 1)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestCompleteEventFreezesEverything() {
	event := s.createEvent()
	s.random.QueueString("GOLFER01")
	golfer, err := s.controller.AddGolfer(s.ctx, event.ID, "p2", "", nil)
	s.Require().NoError(err)

	s.clock.Advance(4 * time.Hour)
	completed, err := s.controller.CompleteEvent(s.ctx, event.ID, "p1")
	s.Require().NoError(err)
	s.True(completed.IsCompleted)
	s.Require().NotNil(completed.CompletedAt)
	s.Equal(s.clock.Now(), *completed.CompletedAt)

	s.ErrorIs(s.controller.RecordScore(s.ctx, event.ID, golfer.ID, 1, 4), model.ErrEventCompleted)

	_, err = s.controller.AddGolfer(s.ctx, event.ID, "", "Late arrival", nil)
	s.ErrorIs(err, model.ErrEventCompleted)

	_, err = s.controller.AddSkins(s.ctx, event.ID, "p1", model.SkinsConfig{Fee: 1})
	s.ErrorIs(err, model.ErrEventCompleted)

	_, err = s.controller.CompleteEvent(s.ctx, event.ID, "p1")
	s.ErrorIs(err, model.ErrEventCompleted)
}

func (s *ControllerSuite) TestCompleteEventRequiresOwner() {
	event := s.createEvent()

	_, err := s.controller.CompleteEvent(s.ctx, event.ID, "p2")
	s.ErrorIs(err, model.ErrNotOwner)
}
