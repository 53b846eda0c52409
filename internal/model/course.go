package model

// Hole describes a single hole on a tee.
// StrokeIndex ranks holes by difficulty (1 = hardest) and drives
// handicap stroke allocation.
type Hole struct {
	Number      int
	Par         int
	StrokeIndex int
}

// Tee is the course data for one set of tees: the holes plus the
// slope/rating used for course handicap computation. Slope and Rating
// are zero when the course provider had no data for this tee.
type Tee struct {
	Name   string
	Slope  float64
	Rating float64
	Holes  []Hole
}

// HoleCount returns the number of holes on this tee
func (t *Tee) HoleCount() int {
	return len(t.Holes)
}

// TotalPar returns the sum of par over all holes
func (t *Tee) TotalPar() int {
	total := 0
	for _, h := range t.Holes {
		total += h.Par
	}
	return total
}

// Hole returns the hole with the given number
func (t *Tee) Hole(number int) (Hole, bool) {
	for _, h := range t.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}

// HasRating reports whether slope/rating data is available for this tee
func (t *Tee) HasRating() bool {
	return t.Slope > 0 && t.Rating > 0
}

// DefaultTee returns the fallback tee used when no course data is
// available: 18 par-4 holes with stroke index equal to hole number.
func DefaultTee() *Tee {
	holes := make([]Hole, 18)
	for i := range holes {
		holes[i] = Hole{
			Number:      i + 1,
			Par:         4,
			StrokeIndex: i + 1,
		}
	}
	return &Tee{Name: "default", Holes: holes}
}
