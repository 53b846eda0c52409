package request

import "github.com/mpfeif/caddiebook/internal/model"

// CreateProfileRequest is the request body for registering a profile
type CreateProfileRequest struct {
	DisplayName   string   `json:"display_name"`
	HandicapIndex *float64 `json:"handicap_index,omitempty"`
}

// UpdateHandicapRequest is the request body for replacing a handicap index
type UpdateHandicapRequest struct {
	HandicapIndex *float64 `json:"handicap_index"`
}

// Hole describes one hole of a tee in requests
type Hole struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index"`
}

// Tee describes the course setup an event is played from
type Tee struct {
	Name   string  `json:"name"`
	Slope  float64 `json:"slope,omitempty"`
	Rating float64 `json:"rating,omitempty"`
	Holes  []Hole  `json:"holes"`
}

// ToModel converts a request Tee to the model representation
func (t *Tee) ToModel() *model.Tee {
	if t == nil {
		return nil
	}
	holes := make([]model.Hole, len(t.Holes))
	for i, h := range t.Holes {
		holes[i] = model.Hole{Number: h.Number, Par: h.Par, StrokeIndex: h.StrokeIndex}
	}
	return &model.Tee{Name: t.Name, Slope: t.Slope, Rating: t.Rating, Holes: holes}
}

// CreateEventRequest is the request body for creating an event
type CreateEventRequest struct {
	Name string `json:"name"`
	Tee  *Tee   `json:"tee,omitempty"`
}

// AddGolferRequest is the request body for adding a golfer to an event.
// Either profile_id or custom_name must be set.
type AddGolferRequest struct {
	ProfileID        string   `json:"profile_id,omitempty"`
	CustomName       string   `json:"custom_name,omitempty"`
	HandicapOverride *float64 `json:"handicap_override,omitempty"`
}

// RecordScoreRequest is the request body for entering a gross score
type RecordScoreRequest struct {
	GolferID string `json:"golfer_id"`
	Hole     int    `json:"hole"`
	Strokes  int    `json:"strokes"`
}

// Team is one Nassau team in requests
type Team struct {
	Name      string   `json:"name,omitempty"`
	GolferIDs []string `json:"golfer_ids"`
}

// SegmentFees carries distinct front/back/total Nassau fees
type SegmentFees struct {
	Front float64 `json:"front"`
	Back  float64 `json:"back"`
	Total float64 `json:"total"`
}

// AddNassauRequest is the request body for attaching a Nassau game
type AddNassauRequest struct {
	Fee           float64      `json:"fee"`
	SegmentFees   *SegmentFees `json:"segment_fees,omitempty"`
	Net           bool         `json:"net"`
	GolferIDs     []string     `json:"golfer_ids,omitempty"`
	Teams         []Team       `json:"teams,omitempty"`
	TeamBestCount int          `json:"team_best_count,omitempty"`
}

// ToModel converts an AddNassauRequest to a model config
func (r *AddNassauRequest) ToModel() model.NassauConfig {
	cfg := model.NassauConfig{
		Fee:           r.Fee,
		Net:           r.Net,
		Participants:  participants(r.GolferIDs),
		TeamBestCount: r.TeamBestCount,
	}
	if r.SegmentFees != nil {
		cfg.SegmentFees = &model.NassauSegmentFees{
			Front: r.SegmentFees.Front,
			Back:  r.SegmentFees.Back,
			Total: r.SegmentFees.Total,
		}
	}
	for _, t := range r.Teams {
		cfg.Teams = append(cfg.Teams, model.Team{
			Name:      t.Name,
			GolferIDs: golferIDs(t.GolferIDs),
		})
	}
	return cfg
}

// AddSkinsRequest is the request body for attaching a skins game
type AddSkinsRequest struct {
	Fee        float64  `json:"fee"`
	Net        bool     `json:"net"`
	Carryovers bool     `json:"carryovers"`
	GolferIDs  []string `json:"golfer_ids,omitempty"`
}

// ToModel converts an AddSkinsRequest to a model config
func (r *AddSkinsRequest) ToModel() model.SkinsConfig {
	return model.SkinsConfig{
		Fee:          r.Fee,
		Net:          r.Net,
		Carryovers:   r.Carryovers,
		Participants: participants(r.GolferIDs),
	}
}

// AddSideBetRequest is the request body for attaching a pinky or greenie
type AddSideBetRequest struct {
	Fee       float64  `json:"fee"`
	GolferIDs []string `json:"golfer_ids,omitempty"`
}

// ToPinky converts an AddSideBetRequest to a pinky config
func (r *AddSideBetRequest) ToPinky() model.PinkyConfig {
	return model.PinkyConfig{Fee: r.Fee, Participants: participants(r.GolferIDs)}
}

// ToGreenie converts an AddSideBetRequest to a greenie config
func (r *AddSideBetRequest) ToGreenie() model.GreenieConfig {
	return model.GreenieConfig{Fee: r.Fee, Participants: participants(r.GolferIDs)}
}

// RecordCountRequest is the request body for declaring a side bet count
type RecordCountRequest struct {
	GolferID string `json:"golfer_id"`
	Count    int    `json:"count"`
}

// MarkPaidRequest is the request body for marking a settlement paid
type MarkPaidRequest struct {
	Method string `json:"method"`
}

// An empty golfer list means the game includes every golfer in the event
func participants(ids []string) model.Participants {
	if len(ids) == 0 {
		return model.AllParticipants()
	}
	return model.SubsetParticipants(golferIDs(ids)...)
}

func golferIDs(ids []string) []model.GolferID {
	out := make([]model.GolferID, len(ids))
	for i, id := range ids {
		out[i] = model.GolferID(id)
	}
	return out
}
