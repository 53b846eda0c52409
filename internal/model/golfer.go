package model

import "time"

// ProfileID uniquely identifies a registered profile
type ProfileID string

// GolferID uniquely identifies a golfer within an event
type GolferID string

// Profile is a registered user as supplied by the profile store.
// The engine reads handicap indexes from profiles and never mutates them.
type Profile struct {
	ID            ProfileID
	DisplayName   string
	HandicapIndex *float64 // nil when the profile has no established index
	CreatedAt     time.Time
}

// Golfer is an event-scoped participant. A golfer is either backed by a
// registered profile (ProfileID set) or ad hoc (CustomName set); never both
// empty.
type Golfer struct {
	ID               GolferID
	ProfileID        ProfileID // empty for ad hoc golfers
	CustomName       string    // empty for registered golfers
	HandicapOverride *float64  // per-event override, takes precedence over the profile index
}

// IsRegistered reports whether this golfer is backed by a profile
func (g *Golfer) IsRegistered() bool {
	return g.ProfileID != ""
}

// Name returns the golfer's display name, resolving registered golfers
// against the given profiles
func (g *Golfer) Name(profiles []*Profile) string {
	if g.CustomName != "" {
		return g.CustomName
	}
	for _, p := range profiles {
		if p.ID == g.ProfileID {
			return p.DisplayName
		}
	}
	return string(g.ID)
}
