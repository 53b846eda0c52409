package response

import (
	"time"

	"github.com/mpfeif/caddiebook/internal/model"
)

// Profile represents a registered profile in API responses
type Profile struct {
	ID            string    `json:"id"`
	DisplayName   string    `json:"display_name"`
	HandicapIndex *float64  `json:"handicap_index,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProfileFromModel converts a model.Profile to a response Profile
func ProfileFromModel(p *model.Profile) Profile {
	return Profile{
		ID:            string(p.ID),
		DisplayName:   p.DisplayName,
		HandicapIndex: p.HandicapIndex,
		CreatedAt:     p.CreatedAt,
	}
}

// Golfer represents an event participant
type Golfer struct {
	ID               string   `json:"id"`
	ProfileID        string   `json:"profile_id,omitempty"`
	CustomName       string   `json:"custom_name,omitempty"`
	HandicapOverride *float64 `json:"handicap_override,omitempty"`
}

// GolferFromModel converts a model.Golfer
func GolferFromModel(g model.Golfer) Golfer {
	return Golfer{
		ID:               string(g.ID),
		ProfileID:        string(g.ProfileID),
		CustomName:       g.CustomName,
		HandicapOverride: g.HandicapOverride,
	}
}

// HoleScore is one scorecard entry; strokes is null until entered
type HoleScore struct {
	Hole    int  `json:"hole"`
	Strokes *int `json:"strokes"`
}

// Scorecard holds one golfer's scores
type Scorecard struct {
	GolferID string      `json:"golfer_id"`
	Scores   []HoleScore `json:"scores"`
}

// ScorecardFromModel converts a model.Scorecard
func ScorecardFromModel(sc *model.Scorecard) Scorecard {
	scores := make([]HoleScore, len(sc.Scores))
	for i, s := range sc.Scores {
		scores[i] = HoleScore{Hole: s.Hole, Strokes: s.Strokes}
	}
	return Scorecard{GolferID: string(sc.GolferID), Scores: scores}
}

// Team is one Nassau team
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	GolferIDs []string `json:"golfer_ids"`
}

// NassauConfig represents a configured Nassau game
type NassauConfig struct {
	ID            string   `json:"id"`
	Fee           float64  `json:"fee"`
	Net           bool     `json:"net"`
	GolferIDs     []string `json:"golfer_ids,omitempty"`
	Teams         []Team   `json:"teams,omitempty"`
	TeamBestCount int      `json:"team_best_count,omitempty"`
}

// NassauConfigFromModel converts a model.NassauConfig
func NassauConfigFromModel(c *model.NassauConfig) NassauConfig {
	out := NassauConfig{
		ID:            string(c.ID),
		Fee:           c.Fee,
		Net:           c.Net,
		GolferIDs:     golferIDStrings(c.Participants.IDs),
		TeamBestCount: c.TeamBestCount,
	}
	for _, t := range c.Teams {
		out.Teams = append(out.Teams, Team{
			ID:        t.ID,
			Name:      t.Name,
			GolferIDs: golferIDStrings(t.GolferIDs),
		})
	}
	return out
}

// SkinsConfig represents a configured skins game
type SkinsConfig struct {
	ID         string   `json:"id"`
	Fee        float64  `json:"fee"`
	Net        bool     `json:"net"`
	Carryovers bool     `json:"carryovers"`
	GolferIDs  []string `json:"golfer_ids,omitempty"`
}

// SkinsConfigFromModel converts a model.SkinsConfig
func SkinsConfigFromModel(c *model.SkinsConfig) SkinsConfig {
	return SkinsConfig{
		ID:         string(c.ID),
		Fee:        c.Fee,
		Net:        c.Net,
		Carryovers: c.Carryovers,
		GolferIDs:  golferIDStrings(c.Participants.IDs),
	}
}

// SideBetConfig represents a configured pinky or greenie game
type SideBetConfig struct {
	ID        string         `json:"id"`
	Fee       float64        `json:"fee"`
	GolferIDs []string       `json:"golfer_ids,omitempty"`
	Counts    map[string]int `json:"counts,omitempty"`
}

func sideBetConfig(id model.GameID, fee float64, p model.Participants, counts map[model.GolferID]int) SideBetConfig {
	out := SideBetConfig{
		ID:        string(id),
		Fee:       fee,
		GolferIDs: golferIDStrings(p.IDs),
	}
	if len(counts) > 0 {
		out.Counts = make(map[string]int, len(counts))
		for gid, n := range counts {
			out.Counts[string(gid)] = n
		}
	}
	return out
}

// PinkyConfigFromModel converts a model.PinkyConfig
func PinkyConfigFromModel(c *model.PinkyConfig) SideBetConfig {
	return sideBetConfig(c.ID, c.Fee, c.Participants, c.Counts)
}

// GreenieConfigFromModel converts a model.GreenieConfig
func GreenieConfigFromModel(c *model.GreenieConfig) SideBetConfig {
	return sideBetConfig(c.ID, c.Fee, c.Participants, c.Counts)
}

// Event represents an event in API responses
type Event struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	OwnerProfileID string      `json:"owner_profile_id"`
	Golfers        []Golfer    `json:"golfers"`
	Scorecards     []Scorecard `json:"scorecards"`

	Nassau   []NassauConfig  `json:"nassau,omitempty"`
	Skins    []SkinsConfig   `json:"skins,omitempty"`
	Pinkies  []SideBetConfig `json:"pinkies,omitempty"`
	Greenies []SideBetConfig `json:"greenies,omitempty"`

	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EventFromModel converts a model.Event
func EventFromModel(e *model.Event) Event {
	out := Event{
		ID:             string(e.ID),
		Name:           e.Name,
		OwnerProfileID: string(e.OwnerProfileID),
		Golfers:        make([]Golfer, 0, len(e.Golfers)),
		Scorecards:     make([]Scorecard, 0, len(e.Golfers)),
		IsCompleted:    e.IsCompleted,
		CompletedAt:    e.CompletedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	// Scorecards follow golfer joining order for stable output
	for _, g := range e.Golfers {
		out.Golfers = append(out.Golfers, GolferFromModel(g))
		if sc, ok := e.Scorecards[g.ID]; ok {
			out.Scorecards = append(out.Scorecards, ScorecardFromModel(sc))
		}
	}
	for i := range e.Nassau {
		out.Nassau = append(out.Nassau, NassauConfigFromModel(&e.Nassau[i]))
	}
	for i := range e.Skins {
		out.Skins = append(out.Skins, SkinsConfigFromModel(&e.Skins[i]))
	}
	for i := range e.Pinkies {
		out.Pinkies = append(out.Pinkies, PinkyConfigFromModel(&e.Pinkies[i]))
	}
	for i := range e.Greenies {
		out.Greenies = append(out.Greenies, GreenieConfigFromModel(&e.Greenies[i]))
	}
	return out
}

// NassauSegmentResult is the outcome of one Nassau segment
type NassauSegmentResult struct {
	Segment          string             `json:"segment"`
	Pot              float64            `json:"pot"`
	Provisional      bool               `json:"provisional"`
	Winners          []string           `json:"winners,omitempty"`
	WinningTeams     []string           `json:"winning_teams,omitempty"`
	WinningsByGolfer map[string]float64 `json:"winnings_by_golfer,omitempty"`
}

// NassauResult is the outcome of one Nassau game
type NassauResult struct {
	ConfigID      string                `json:"config_id"`
	Played        bool                  `json:"played"`
	Segments      []NassauSegmentResult `json:"segments,omitempty"`
	BuyInByGolfer map[string]float64    `json:"buy_in_by_golfer,omitempty"`
	NetByGolfer   map[string]float64    `json:"net_by_golfer,omitempty"`
}

// NassauResultFromModel converts a model.NassauResult
func NassauResultFromModel(r *model.NassauResult) NassauResult {
	out := NassauResult{
		ConfigID:      string(r.ConfigID),
		Played:        r.Played,
		BuyInByGolfer: moneyMap(r.BuyInByGolfer),
		NetByGolfer:   moneyMap(r.NetByGolfer),
	}
	for _, seg := range r.Segments {
		out.Segments = append(out.Segments, NassauSegmentResult{
			Segment:          string(seg.Segment),
			Pot:              model.RoundCurrency(seg.Pot),
			Provisional:      seg.Provisional,
			Winners:          golferIDStrings(seg.Winners),
			WinningTeams:     seg.WinningTeams,
			WinningsByGolfer: moneyMap(seg.WinningsByGolfer),
		})
	}
	return out
}

// SkinsHoleResult is the outcome of one hole in a skins game
type SkinsHoleResult struct {
	Hole    int      `json:"hole"`
	Value   float64  `json:"value"`
	Winner  *string  `json:"winner,omitempty"`
	Tied    []string `json:"tied,omitempty"`
	Carried bool     `json:"carried,omitempty"`
	Pushed  bool     `json:"pushed,omitempty"`
	Pending bool     `json:"pending,omitempty"`
}

// SkinsResult is the outcome of one skins game
type SkinsResult struct {
	ConfigID         string             `json:"config_id"`
	Played           bool               `json:"played"`
	Provisional      bool               `json:"provisional"`
	Holes            []SkinsHoleResult  `json:"holes,omitempty"`
	TotalPot         float64            `json:"total_pot"`
	TotalPushed      float64            `json:"total_pushed"`
	WinningsByGolfer map[string]float64 `json:"winnings_by_golfer,omitempty"`
	BuyInByGolfer    map[string]float64 `json:"buy_in_by_golfer,omitempty"`
	NetByGolfer      map[string]float64 `json:"net_by_golfer,omitempty"`
}

// SkinsResultFromModel converts a model.SkinsResult
func SkinsResultFromModel(r *model.SkinsResult) SkinsResult {
	out := SkinsResult{
		ConfigID:         string(r.ConfigID),
		Played:           r.Played,
		Provisional:      r.Provisional,
		TotalPot:         model.RoundCurrency(r.TotalPot),
		TotalPushed:      model.RoundCurrency(r.TotalPushed),
		WinningsByGolfer: moneyMap(r.WinningsByGolfer),
		BuyInByGolfer:    moneyMap(r.BuyInByGolfer),
		NetByGolfer:      moneyMap(r.NetByGolfer),
	}
	for _, h := range r.Holes {
		hole := SkinsHoleResult{
			Hole:    h.Hole,
			Value:   model.RoundCurrency(h.Value),
			Tied:    golferIDStrings(h.Tied),
			Carried: h.Carried,
			Pushed:  h.Pushed,
			Pending: h.Pending,
		}
		if h.Winner != nil {
			winner := string(*h.Winner)
			hole.Winner = &winner
		}
		out.Holes = append(out.Holes, hole)
	}
	return out
}

// SideBetResult is the outcome of a pinky or greenie game
type SideBetResult struct {
	ConfigID    string             `json:"config_id"`
	Played      bool               `json:"played"`
	NetByGolfer map[string]float64 `json:"net_by_golfer,omitempty"`
}

// SideBetResultFromModel converts a model.SideBetResult
func SideBetResultFromModel(r *model.SideBetResult) SideBetResult {
	return SideBetResult{
		ConfigID:    string(r.ConfigID),
		Played:      r.Played,
		NetByGolfer: moneyMap(r.NetByGolfer),
	}
}

// PayoutResult aggregates every game result for one event
type PayoutResult struct {
	EventID     string `json:"event_id"`
	Provisional bool   `json:"provisional"`

	Nassau   []NassauResult  `json:"nassau,omitempty"`
	Skins    []SkinsResult   `json:"skins,omitempty"`
	Pinkies  []SideBetResult `json:"pinkies,omitempty"`
	Greenies []SideBetResult `json:"greenies,omitempty"`

	TotalByGolfer map[string]float64 `json:"total_by_golfer"`
	BuyInByGolfer map[string]float64 `json:"buy_in_by_golfer"`
}

// PayoutResultFromModel converts a model.PayoutResult
func PayoutResultFromModel(r *model.PayoutResult) PayoutResult {
	out := PayoutResult{
		EventID:       string(r.EventID),
		Provisional:   r.Provisional,
		TotalByGolfer: moneyMap(r.TotalByGolfer),
		BuyInByGolfer: moneyMap(r.BuyInByGolfer),
	}
	for i := range r.Nassau {
		out.Nassau = append(out.Nassau, NassauResultFromModel(&r.Nassau[i]))
	}
	for i := range r.Skins {
		out.Skins = append(out.Skins, SkinsResultFromModel(&r.Skins[i]))
	}
	for i := range r.Pinkies {
		out.Pinkies = append(out.Pinkies, SideBetResultFromModel(&r.Pinkies[i]))
	}
	for i := range r.Greenies {
		out.Greenies = append(out.Greenies, SideBetResultFromModel(&r.Greenies[i]))
	}
	return out
}

// Settlement is a directed debt between two golfers
type Settlement struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`

	FromGolferID  string `json:"from_golfer_id"`
	ToGolferID    string `json:"to_golfer_id"`
	FromProfileID string `json:"from_profile_id,omitempty"`
	ToProfileID   string `json:"to_profile_id,omitempty"`

	Amount        float64 `json:"amount"`
	TipFundAmount float64 `json:"tip_fund_amount"`

	Status     string     `json:"status"`
	PaidMethod string     `json:"paid_method,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SettlementFromModel converts a model.Settlement
func SettlementFromModel(s *model.Settlement) Settlement {
	return Settlement{
		ID:            string(s.ID),
		EventID:       string(s.EventID),
		FromGolferID:  string(s.FromGolferID),
		ToGolferID:    string(s.ToGolferID),
		FromProfileID: string(s.FromProfileID),
		ToProfileID:   string(s.ToProfileID),
		Amount:        model.RoundCurrency(s.Amount),
		TipFundAmount: model.RoundCurrency(s.TipFundAmount),
		Status:        string(s.Status),
		PaidMethod:    string(s.PaidMethod),
		PaidAt:        s.PaidAt,
		CreatedAt:     s.CreatedAt,
	}
}

// SettlementsFromModels converts a slice of settlements
func SettlementsFromModels(settlements []*model.Settlement) []Settlement {
	out := make([]Settlement, len(settlements))
	for i, s := range settlements {
		out[i] = SettlementFromModel(s)
	}
	return out
}

// PendingSettlements partitions pending settlements by direction
type PendingSettlements struct {
	ToCollect []Settlement `json:"to_collect"`
	ToPay     []Settlement `json:"to_pay"`
}

// PendingSettlementsFromModel converts a model.PendingSettlements
func PendingSettlementsFromModel(p *model.PendingSettlements) PendingSettlements {
	return PendingSettlements{
		ToCollect: SettlementsFromModels(p.ToCollect),
		ToPay:     SettlementsFromModels(p.ToPay),
	}
}

// WalletTransaction is one signed ledger entry
type WalletTransaction struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	SettlementID string    `json:"settlement_id,omitempty"`
}

// WalletTransactionFromModel converts a model.WalletTransaction
func WalletTransactionFromModel(tx *model.WalletTransaction) WalletTransaction {
	return WalletTransaction{
		ID:           tx.ID,
		ProfileID:    string(tx.ProfileID),
		Amount:       model.RoundCurrency(tx.Amount),
		Date:         tx.Date,
		SettlementID: string(tx.SettlementID),
	}
}

func golferIDStrings(ids []model.GolferID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// Money maps round to cents at the presentation boundary
func moneyMap(m map[model.GolferID]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for id, v := range m {
		out[string(id)] = model.RoundCurrency(v)
	}
	return out
}
