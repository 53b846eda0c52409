package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mpfeif/caddiebook/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.EventTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func floatPtr(v float64) *float64 { return &v }

// Profile tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	profile := &model.Profile{
		ID:            "p1",
		DisplayName:   "Alice",
		HandicapIndex: floatPtr(8.4),
		CreatedAt:     time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.storage.SaveProfile(s.ctx, profile))

	got, err := s.storage.GetProfile(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(profile.DisplayName, got.DisplayName)
	s.Require().NotNil(got.HandicapIndex)
	s.Equal(8.4, *got.HandicapIndex)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestListProfilesSortedByID() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.Profile{ID: "p2", DisplayName: "Bob"}))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, &model.Profile{ID: "p1", DisplayName: "Alice"}))

	profiles, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(profiles, 2)
	s.Equal(model.ProfileID("p1"), profiles[0].ID)
	s.Equal(model.ProfileID("p2"), profiles[1].ID)
}

// Event tests

func (s *StorageSuite) TestSaveAndGetEvent() {
	event := &model.Event{
		ID:             "e1",
		Name:           "Saturday game",
		OwnerProfileID: "p1",
		Golfers: []model.Golfer{
			{ID: "g1", ProfileID: "p1"},
			{ID: "g2", CustomName: "Walk-on", HandicapOverride: floatPtr(12)},
		},
		Scorecards: map[model.GolferID]*model.Scorecard{},
		Nassau:     []model.NassauConfig{{ID: "n1", Fee: 5}},
	}
	event.Scorecard("g1").SetStrokes(1, 4)

	s.Require().NoError(s.storage.SaveEvent(s.ctx, event))

	got, err := s.storage.GetEvent(s.ctx, "e1")
	s.Require().NoError(err)
	s.Equal(event.Name, got.Name)
	s.Require().Len(got.Golfers, 2)
	s.Equal("Walk-on", got.Golfers[1].CustomName)
	s.Require().Len(got.Nassau, 1)

	strokes := got.StrokesFor("g1", 1)
	s.Require().NotNil(strokes)
	s.Equal(4, *strokes)
}

func (s *StorageSuite) TestUncompletedEventExpires() {
	event := &model.Event{ID: "e1", Name: "Saturday game"}
	s.Require().NoError(s.storage.SaveEvent(s.ctx, event))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetEvent(s.ctx, "e1")
	s.ErrorIs(err, model.ErrEventNotFound)
}

func (s *StorageSuite) TestCompletedEventDoesNotExpire() {
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	event := &model.Event{ID: "e1", Name: "Saturday game", IsCompleted: true, CompletedAt: &now}
	s.Require().NoError(s.storage.SaveEvent(s.ctx, event))

	s.mini.FastForward(2 * time.Hour)

	got, err := s.storage.GetEvent(s.ctx, "e1")
	s.Require().NoError(err)
	s.True(got.IsCompleted)
}

func (s *StorageSuite) TestDeleteEvent() {
	s.Require().NoError(s.storage.SaveEvent(s.ctx, &model.Event{ID: "e1"}))
	s.Require().NoError(s.storage.DeleteEvent(s.ctx, "e1"))

	_, err := s.storage.GetEvent(s.ctx, "e1")
	s.ErrorIs(err, model.ErrEventNotFound)
}

// Settlement tests

func (s *StorageSuite) newSettlement(id model.SettlementID, createdAt time.Time) *model.Settlement {
	return &model.Settlement{
		ID:            id,
		EventID:       "e1",
		FromGolferID:  "g1",
		ToGolferID:    "g2",
		FromProfileID: "p1",
		ToProfileID:   "p2",
		Amount:        5,
		TipFundAmount: 0.5,
		Status:        model.SettlementPending,
		CreatedAt:     createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetSettlement() {
	settlement := s.newSettlement("s1", time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.storage.SaveSettlement(s.ctx, settlement))

	got, err := s.storage.GetSettlement(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(5.0, got.Amount)
	s.Equal(0.5, got.TipFundAmount)
	s.Equal(model.SettlementPending, got.Status)
}

func (s *StorageSuite) TestSettlementIndexes() {
	base := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveSettlement(s.ctx, s.newSettlement("s2", base.Add(time.Minute))))
	s.Require().NoError(s.storage.SaveSettlement(s.ctx, s.newSettlement("s1", base)))

	byEvent, err := s.storage.GetSettlementsForEvent(s.ctx, "e1")
	s.Require().NoError(err)
	s.Require().Len(byEvent, 2)
	// Listings come back in creation order
	s.Equal(model.SettlementID("s1"), byEvent[0].ID)
	s.Equal(model.SettlementID("s2"), byEvent[1].ID)

	byProfile, err := s.storage.GetSettlementsForProfile(s.ctx, "p1")
	s.Require().NoError(err)
	s.Len(byProfile, 2)

	byOther, err := s.storage.GetSettlementsForProfile(s.ctx, "p3")
	s.Require().NoError(err)
	s.Empty(byOther)
}

func (s *StorageSuite) TestTransitionSettlement() {
	settlement := s.newSettlement("s1", time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.storage.SaveSettlement(s.ctx, settlement))

	paidAt := time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC)
	updated, err := s.storage.TransitionSettlement(s.ctx, "s1", model.SettlementPending, func(st *model.Settlement) error {
		st.Status = model.SettlementPaid
		st.PaidMethod = model.PaidMethodCash
		st.PaidAt = &paidAt
		return nil
	})
	s.Require().NoError(err)
	s.Equal(model.SettlementPaid, updated.Status)

	got, err := s.storage.GetSettlement(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(model.SettlementPaid, got.Status)
	s.Equal(model.PaidMethodCash, got.PaidMethod)
}

func (s *StorageSuite) TestTransitionSettlementWrongStatus() {
	settlement := s.newSettlement("s1", time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC))
	settlement.Status = model.SettlementPaid
	s.Require().NoError(s.storage.SaveSettlement(s.ctx, settlement))

	_, err := s.storage.TransitionSettlement(s.ctx, "s1", model.SettlementPending, func(st *model.Settlement) error {
		st.Status = model.SettlementForgiven
		return nil
	})
	s.ErrorIs(err, model.ErrSettlementNotPending)
}

func (s *StorageSuite) TestTransitionSettlementNotFound() {
	_, err := s.storage.TransitionSettlement(s.ctx, "nope", model.SettlementPending, func(st *model.Settlement) error {
		return nil
	})
	s.ErrorIs(err, model.ErrSettlementNotFound)
}

// Wallet tests

func (s *StorageSuite) TestWalletLedgerKeepsAppendOrder() {
	base := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.AppendWalletTransaction(s.ctx, &model.WalletTransaction{
		ID: "t1", ProfileID: "p1", Amount: -5, Date: base, SettlementID: "s1",
	}))
	s.Require().NoError(s.storage.AppendWalletTransaction(s.ctx, &model.WalletTransaction{
		ID: "t2", ProfileID: "p1", Amount: 3, Date: base.Add(time.Hour), SettlementID: "s2",
	}))

	txs, err := s.storage.GetWalletTransactions(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(txs, 2)
	s.Equal("t1", txs[0].ID)
	s.Equal(-5.0, txs[0].Amount)
	s.Equal("t2", txs[1].ID)
	s.Equal(3.0, txs[1].Amount)
}

func (s *StorageSuite) TestEmptyWallet() {
	txs, err := s.storage.GetWalletTransactions(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(txs)
}
