package settlement

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mpfeif/caddiebook/internal/dependencies/clock"
	"github.com/mpfeif/caddiebook/internal/model"
	"github.com/mpfeif/caddiebook/internal/services/payout"
	"github.com/mpfeif/caddiebook/internal/storage"
)

// Config holds the reconciler's tunables
type Config struct {
	// RoundingUnit is the unit payment amounts round down to (e.g. 1 for
	// whole dollars, 5 for fives). The remainder goes to the tip fund.
	// Zero or negative disables rounding.
	RoundingUnit float64
}

// DefaultConfig returns the standard reconciler configuration
func DefaultConfig() Config {
	return Config{RoundingUnit: 1}
}

// Controller turns completed-event payout totals into pairwise
// settlements and manages the settlement lifecycle and wallet ledger.
// These methods are the sole writers of settlement status.
type Controller struct {
	storage storage.Storage
	payouts *payout.Service
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// NewController creates a settlement controller
func NewController(
	storage storage.Storage,
	payouts *payout.Service,
	clock clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.RoundingUnit == 0 {
		cfg = DefaultConfig()
	}
	return &Controller{
		storage: storage,
		payouts: payouts,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// SettleEvent derives the pairwise settlements for a completed event
// and persists them. Calling it again for an event that already has
// settlements returns the existing records unchanged.
func (c *Controller) SettleEvent(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error) {
	event, err := c.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsCompleted {
		return nil, model.ErrEventNotCompleted
	}

	existing, err := c.storage.GetSettlementsForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	profiles, err := c.storage.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	result := c.payouts.CalculateEventPayouts(event, profiles)
	transfers := deriveTransfers(result.TotalByGolfer)

	now := c.clock.Now()
	settlements := make([]*model.Settlement, 0, len(transfers))
	for _, t := range transfers {
		if t.from == t.to {
			return nil, model.ErrSelfSettlement
		}

		rounded, tip := c.roundAmount(t.amount)
		s := &model.Settlement{
			ID:            model.SettlementID(uuid.NewString()),
			EventID:       eventID,
			FromGolferID:  t.from,
			ToGolferID:    t.to,
			FromProfileID: profileFor(event, t.from),
			ToProfileID:   profileFor(event, t.to),
			Amount:        rounded,
			TipFundAmount: tip,
			Status:        model.SettlementPending,
			CreatedAt:     now,
		}
		if err := c.storage.SaveSettlement(ctx, s); err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}

	c.logger.Info("event settled",
		slog.String("event_id", string(eventID)),
		slog.Int("settlement_count", len(settlements)),
	)

	return settlements, nil
}

// transfer is one directed debt before rounding
type transfer struct {
	from   model.GolferID
	to     model.GolferID
	amount float64
}

// deriveTransfers reduces per-golfer net balances to a minimal set of
// pairwise debts: debtors are matched against creditors greedily,
// largest balances first, ties broken by golfer id so the output is
// deterministic. Balances below a cent are treated as settled.
func deriveTransfers(totals map[model.GolferID]float64) []transfer {
	const epsilon = 0.005

	type balance struct {
		id     model.GolferID
		amount float64
	}

	var debtors, creditors []balance
	for id, total := range totals {
		switch {
		case total < -epsilon:
			debtors = append(debtors, balance{id: id, amount: -total})
		case total > epsilon:
			creditors = append(creditors, balance{id: id, amount: total})
		}
	}

	byMagnitude := func(s []balance) {
		sort.Slice(s, func(i, j int) bool {
			if s[i].amount != s[j].amount {
				return s[i].amount > s[j].amount
			}
			return s[i].id < s[j].id
		})
	}
	byMagnitude(debtors)
	byMagnitude(creditors)

	var transfers []transfer
	di, ci := 0, 0
	for di < len(debtors) && ci < len(creditors) {
		owed := debtors[di].amount
		due := creditors[ci].amount
		amount := math.Min(owed, due)

		transfers = append(transfers, transfer{
			from:   debtors[di].id,
			to:     creditors[ci].id,
			amount: amount,
		})

		debtors[di].amount -= amount
		creditors[ci].amount -= amount
		if debtors[di].amount <= epsilon {
			di++
		}
		if creditors[ci].amount <= epsilon {
			ci++
		}
	}
	return transfers
}

// roundAmount splits an exact debt into a payment amount rounded down
// to the configured unit plus the tip-fund remainder, so that
// rounded + tip always equals the exact debt
func (c *Controller) roundAmount(amount float64) (rounded, tip float64) {
	unit := c.cfg.RoundingUnit
	if unit <= 0 {
		return amount, 0
	}
	rounded = math.Floor(amount/unit) * unit
	tip = amount - rounded
	if tip < 0 {
		// Floating point fuzz only; the remainder is never negative
		tip = 0
	}
	return rounded, tip
}

// profileFor resolves a golfer's profile id; empty for ad hoc golfers
func profileFor(event *model.Event, id model.GolferID) model.ProfileID {
	if g, ok := event.Golfer(id); ok {
		return g.ProfileID
	}
	return ""
}

// MarkPaid transitions a pending settlement to paid and appends the
// wallet transactions for both registered parties: negative for the
// payer, positive for the payee. The transition is a check-and-set;
// a settlement already paid or forgiven is rejected with no effect.
func (c *Controller) MarkPaid(ctx context.Context, id model.SettlementID, method model.PaidMethod) (*model.Settlement, error) {
	if !method.Valid() {
		return nil, model.ErrInvalidPaidMethod
	}

	now := c.clock.Now()
	updated, err := c.storage.TransitionSettlement(ctx, id, model.SettlementPending, func(s *model.Settlement) error {
		s.Status = model.SettlementPaid
		s.PaidMethod = method
		s.PaidAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Ledger entries only exist for registered golfers; ad hoc golfers
	// settle outside the wallet
	if updated.FromProfileID != "" {
		if err := c.appendLedger(ctx, updated.FromProfileID, -updated.Amount, updated, now); err != nil {
			return nil, err
		}
	}
	if updated.ToProfileID != "" {
		if err := c.appendLedger(ctx, updated.ToProfileID, updated.Amount, updated, now); err != nil {
			return nil, err
		}
	}

	c.logger.Info("settlement paid",
		slog.String("settlement_id", string(id)),
		slog.String("method", string(method)),
	)

	return updated, nil
}

func (c *Controller) appendLedger(ctx context.Context, profileID model.ProfileID, amount float64, s *model.Settlement, now time.Time) error {
	return c.storage.AppendWalletTransaction(ctx, &model.WalletTransaction{
		ID:           uuid.NewString(),
		ProfileID:    profileID,
		Amount:       amount,
		Date:         now,
		SettlementID: s.ID,
	})
}

// Forgive transitions a pending settlement to forgiven. No wallet
// transaction is appended: the debt is simply written off.
func (c *Controller) Forgive(ctx context.Context, id model.SettlementID) (*model.Settlement, error) {
	updated, err := c.storage.TransitionSettlement(ctx, id, model.SettlementPending, func(s *model.Settlement) error {
		s.Status = model.SettlementForgiven
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("settlement forgiven", slog.String("settlement_id", string(id)))
	return updated, nil
}

// GetPendingSettlements partitions a profile's pending settlements into
// those they should collect and those they must pay
func (c *Controller) GetPendingSettlements(ctx context.Context, profileID model.ProfileID) (*model.PendingSettlements, error) {
	settlements, err := c.storage.GetSettlementsForProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	pending := &model.PendingSettlements{}
	for _, s := range settlements {
		if s.Status != model.SettlementPending {
			continue
		}
		switch profileID {
		case s.ToProfileID:
			pending.ToCollect = append(pending.ToCollect, s)
		case s.FromProfileID:
			pending.ToPay = append(pending.ToPay, s)
		}
	}
	return pending, nil
}

// GetEventSettlements returns every settlement derived from an event
func (c *Controller) GetEventSettlements(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error) {
	return c.storage.GetSettlementsForEvent(ctx, eventID)
}

// GetWalletTransactions returns a profile's ledger in append order
func (c *Controller) GetWalletTransactions(ctx context.Context, profileID model.ProfileID) ([]*model.WalletTransaction, error) {
	return c.storage.GetWalletTransactions(ctx, profileID)
}

// Interface for dependency injection
type ControllerInterface interface {
	SettleEvent(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error)
	MarkPaid(ctx context.Context, id model.SettlementID, method model.PaidMethod) (*model.Settlement, error)
	Forgive(ctx context.Context, id model.SettlementID) (*model.Settlement, error)
	GetPendingSettlements(ctx context.Context, profileID model.ProfileID) (*model.PendingSettlements, error)
	GetEventSettlements(ctx context.Context, eventID model.EventID) ([]*model.Settlement, error)
	GetWalletTransactions(ctx context.Context, profileID model.ProfileID) ([]*model.WalletTransaction, error)
}

var _ ControllerInterface = (*Controller)(nil)
