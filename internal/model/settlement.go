package model

import "time"

// SettlementID uniquely identifies a settlement
type SettlementID string

// SettlementStatus tracks a settlement's lifecycle. Paid and forgiven
// are terminal.
type SettlementStatus string

const (
	SettlementPending  SettlementStatus = "pending"
	SettlementPaid     SettlementStatus = "paid"
	SettlementForgiven SettlementStatus = "forgiven"
)

// PaidMethod records how a settlement was paid
type PaidMethod string

const (
	PaidMethodCash  PaidMethod = "cash"
	PaidMethodVenmo PaidMethod = "venmo"
	PaidMethodZelle PaidMethod = "zelle"
	PaidMethodOther PaidMethod = "other"
)

// Valid reports whether the method is one of the accepted payment methods
func (m PaidMethod) Valid() bool {
	switch m {
	case PaidMethodCash, PaidMethodVenmo, PaidMethodZelle, PaidMethodOther:
		return true
	}
	return false
}

// Settlement is a directed debt between two golfers for one event.
// Amount is the rounded payment amount; TipFundAmount holds the rounding
// remainder so Amount + TipFundAmount equals the exact computed debt.
type Settlement struct {
	ID      SettlementID
	EventID EventID

	FromGolferID GolferID
	ToGolferID   GolferID

	// Profile ids for registered golfers; empty for ad hoc golfers,
	// who settle outside the wallet ledger
	FromProfileID ProfileID
	ToProfileID   ProfileID

	Amount        float64
	TipFundAmount float64

	Status     SettlementStatus
	PaidMethod PaidMethod
	PaidAt     *time.Time

	CreatedAt time.Time
}

// ExactDebt returns the exact computed debt before rounding
func (s *Settlement) ExactDebt() float64 {
	return s.Amount + s.TipFundAmount
}

// PendingSettlements partitions a profile's pending settlements by
// direction
type PendingSettlements struct {
	ToCollect []*Settlement // others owe this profile
	ToPay     []*Settlement // this profile owes others
}

// WalletTransaction is an append-only ledger entry. Amount is signed:
// positive for money received, negative for money paid. Entries are
// never mutated after creation.
type WalletTransaction struct {
	ID           string
	ProfileID    ProfileID
	Amount       float64
	Date         time.Time
	SettlementID SettlementID
}
