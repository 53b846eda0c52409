package model

import "math"

// Segment identifies one of the three Nassau bets
type Segment string

const (
	SegmentFront Segment = "front" // holes 1-9
	SegmentBack  Segment = "back"  // holes 10-18
	SegmentTotal Segment = "total" // all holes
)

// NassauSegmentResult is the outcome of one Nassau segment
type NassauSegmentResult struct {
	Segment     Segment
	Pot         float64
	Provisional bool // some contributing score is missing

	// Winners holds the winning golfers (individual mode) or the members
	// of the winning teams (team mode); ties split the pot evenly
	Winners      []GolferID
	WinningTeams []string // team ids, team mode only

	WinningsByGolfer map[GolferID]float64
}

// NassauResult is the outcome of one Nassau config for an event
type NassauResult struct {
	ConfigID GameID
	Played   bool // false when the config could not be evaluated (< 2 paying participants)

	Segments []NassauSegmentResult

	BuyInByGolfer map[GolferID]float64
	NetByGolfer   map[GolferID]float64 // winnings minus buy-in, signed
}

// SkinsHoleResult is the outcome of one hole in a skins game
type SkinsHoleResult struct {
	Hole  int
	Value float64 // base value plus any carried value

	Winner  *GolferID  // set when a strict unique minimum existed
	Tied    []GolferID // golfers tied for the minimum
	Carried bool       // tied value carried to the next hole
	Pushed  bool       // tied value lost
	Pending bool       // a contributing score is missing
}

// SkinsResult is the outcome of one skins config for an event
type SkinsResult struct {
	ConfigID    GameID
	Played      bool
	Provisional bool

	Holes       []SkinsHoleResult
	TotalPot    float64
	TotalPushed float64

	WinningsByGolfer map[GolferID]float64
	BuyInByGolfer    map[GolferID]float64
	NetByGolfer      map[GolferID]float64
}

// SideBetResult is the outcome of a declared-count game (pinky or
// greenie). These games collect no buy-in; NetByGolfer sums to zero.
type SideBetResult struct {
	ConfigID    GameID
	Played      bool
	NetByGolfer map[GolferID]float64
}

// PayoutResult aggregates every game result for one event into
// per-golfer totals. Totals accumulate at full precision; round to
// currency only at presentation time.
type PayoutResult struct {
	EventID     EventID
	Provisional bool

	Nassau   []NassauResult
	Skins    []SkinsResult
	Pinkies  []SideBetResult
	Greenies []SideBetResult

	TotalByGolfer map[GolferID]float64 // signed winnings minus losses
	BuyInByGolfer map[GolferID]float64 // up-front fees owed (Nassau + Skins)
}

// RoundCurrency rounds a value to two decimal places for presentation
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
