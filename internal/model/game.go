package model

import "sort"

// GameID uniquely identifies one game config within an event
type GameID string

// Participants selects which event golfers a game applies to. The zero
// value (All false, no IDs) is treated as All so that configs created
// without an explicit participant list include everyone.
type Participants struct {
	All bool
	IDs []GolferID
}

// AllParticipants selects every golfer in the event
func AllParticipants() Participants {
	return Participants{All: true}
}

// SubsetParticipants selects an explicit set of golfers
func SubsetParticipants(ids ...GolferID) Participants {
	return Participants{IDs: ids}
}

// Resolve returns the participating golfer ids for an event, restricted
// to golfers actually in the event and sorted for deterministic
// evaluation order
func (p Participants) Resolve(e *Event) []GolferID {
	var ids []GolferID
	if p.All || len(p.IDs) == 0 {
		ids = e.GolferIDs()
	} else {
		for _, id := range p.IDs {
			if _, ok := e.Golfer(id); ok {
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Team groups golfers for team-scored Nassau segments. A golfer belongs
// to at most one team within a config.
type Team struct {
	ID        string
	Name      string
	GolferIDs []GolferID
}

// NassauSegmentFees carries distinct fees for the three Nassau segments
type NassauSegmentFees struct {
	Front float64
	Back  float64
	Total float64
}

// NassauConfig configures one Nassau game: a three-way bet over the
// front nine, back nine, and full round. Scoring is individual unless
// at least two non-empty teams are defined.
type NassauConfig struct {
	ID            GameID
	Fee           float64            // per-segment fee when SegmentFees is nil
	SegmentFees   *NassauSegmentFees // optional distinct out/in/total fees
	Net           bool               // handicap-adjusted scoring
	Participants  Participants
	Teams         []Team
	TeamBestCount int // member scores counted per hole in team mode; 0 means 1
}

// FeeForSegment returns the fee for one segment
func (c *NassauConfig) FeeForSegment(seg Segment) float64 {
	if c.SegmentFees == nil {
		return c.Fee
	}
	switch seg {
	case SegmentFront:
		return c.SegmentFees.Front
	case SegmentBack:
		return c.SegmentFees.Back
	default:
		return c.SegmentFees.Total
	}
}

// TotalFee returns the full buy-in for one participant across all segments
func (c *NassauConfig) TotalFee() float64 {
	return c.FeeForSegment(SegmentFront) + c.FeeForSegment(SegmentBack) + c.FeeForSegment(SegmentTotal)
}

// TeamFor returns the team a golfer belongs to, if any
func (c *NassauConfig) TeamFor(id GolferID) (*Team, bool) {
	for i := range c.Teams {
		for _, gid := range c.Teams[i].GolferIDs {
			if gid == id {
				return &c.Teams[i], true
			}
		}
	}
	return nil, false
}

// SkinsConfig configures one skins game: each hole is worth
// fee x participant count, won outright by a strictly lowest score or
// carried/pushed on a tie.
type SkinsConfig struct {
	ID           GameID
	Fee          float64 // per hole, per participant
	Net          bool
	Carryovers   bool
	Participants Participants
}

// PinkyConfig configures a declared-count penalty bet: each pinky a
// golfer declares costs them the fee to every other participant.
// Counts are recorded manually at round end, not derived from scores.
type PinkyConfig struct {
	ID           GameID
	Fee          float64
	Participants Participants
	Counts       map[GolferID]int
}

// GreenieConfig configures a declared-count reward bet: each greenie a
// golfer declares earns them the fee from every other participant.
type GreenieConfig struct {
	ID           GameID
	Fee          float64
	Participants Participants
	Counts       map[GolferID]int
}
