package model

import "time"

// EventID uniquely identifies an event
type EventID string

// HoleScore is one scorecard entry. Strokes is nil until a score has
// been entered for the hole.
type HoleScore struct {
	Hole    int
	Strokes *int
}

// Scorecard holds one golfer's hole-by-hole scores for an event.
// There is exactly one entry per hole number.
type Scorecard struct {
	GolferID GolferID
	Scores   []HoleScore
}

// NewScorecard creates an empty scorecard covering the given number of holes
func NewScorecard(golferID GolferID, holeCount int) *Scorecard {
	scores := make([]HoleScore, holeCount)
	for i := range scores {
		scores[i] = HoleScore{Hole: i + 1}
	}
	return &Scorecard{
		GolferID: golferID,
		Scores:   scores,
	}
}

// Strokes returns the gross strokes for a hole, or nil if not yet entered
func (sc *Scorecard) Strokes(hole int) *int {
	for _, s := range sc.Scores {
		if s.Hole == hole {
			return s.Strokes
		}
	}
	return nil
}

// SetStrokes records gross strokes for a hole
func (sc *Scorecard) SetStrokes(hole int, strokes int) bool {
	for i := range sc.Scores {
		if sc.Scores[i].Hole == hole {
			sc.Scores[i].Strokes = &strokes
			return true
		}
	}
	return false
}

// IsComplete reports whether every hole has a score entered
func (sc *Scorecard) IsComplete() bool {
	for _, s := range sc.Scores {
		if s.Strokes == nil {
			return false
		}
	}
	return true
}

// Event is one outing: the selected tee, the golfers playing, their
// scorecards, and the configured side-bet games. Scorecards and game
// configs are mutable only while IsCompleted is false.
type Event struct {
	ID             EventID
	Name           string
	OwnerProfileID ProfileID
	Tee            *Tee // nil means no course data; Course() applies the fallback

	Golfers    []Golfer
	Scorecards map[GolferID]*Scorecard

	Nassau   []NassauConfig
	Skins    []SkinsConfig
	Pinkies  []PinkyConfig
	Greenies []GreenieConfig

	IsCompleted bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Course returns the tee in play, falling back to the default
// par-4 / stroke-index-by-number layout when no course data was supplied
func (e *Event) Course() *Tee {
	if e.Tee == nil || len(e.Tee.Holes) == 0 {
		return DefaultTee()
	}
	return e.Tee
}

// Golfer returns the event golfer with the given id
func (e *Event) Golfer(id GolferID) (*Golfer, bool) {
	for i := range e.Golfers {
		if e.Golfers[i].ID == id {
			return &e.Golfers[i], true
		}
	}
	return nil, false
}

// GolferIDs returns the ids of all golfers in the event, in joining order
func (e *Event) GolferIDs() []GolferID {
	ids := make([]GolferID, len(e.Golfers))
	for i, g := range e.Golfers {
		ids[i] = g.ID
	}
	return ids
}

// Scorecard returns the scorecard for a golfer, creating an empty one
// in-place if the golfer has not recorded any scores yet
func (e *Event) Scorecard(golferID GolferID) *Scorecard {
	if sc, ok := e.Scorecards[golferID]; ok {
		return sc
	}
	sc := NewScorecard(golferID, e.Course().HoleCount())
	if e.Scorecards == nil {
		e.Scorecards = make(map[GolferID]*Scorecard)
	}
	e.Scorecards[golferID] = sc
	return sc
}

// StrokesFor returns the gross strokes a golfer recorded for a hole
// without mutating the event; nil if no score has been entered
func (e *Event) StrokesFor(golferID GolferID, hole int) *int {
	sc, ok := e.Scorecards[golferID]
	if !ok {
		return nil
	}
	return sc.Strokes(hole)
}
