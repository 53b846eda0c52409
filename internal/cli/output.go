package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Profile:
		o.printProfile(v)
	case []Profile:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printProfile(v[i])
		}
	case Golfer:
		o.printGolfer(v)
	case Event:
		o.printEvent(v)
	case PayoutResult:
		o.printPayoutResult(v)
	case []Settlement:
		o.printSettlements(v)
	case Settlement:
		o.printSettlement(v)
	case PendingSettlements:
		o.printPendingSettlements(v)
	case []WalletTransaction:
		o.printWallet(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Profile response type (matches API)
type Profile struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	HandicapIndex *float64 `json:"handicap_index,omitempty"`
}

// Golfer response type
type Golfer struct {
	ID               string   `json:"id"`
	ProfileID        string   `json:"profile_id,omitempty"`
	CustomName       string   `json:"custom_name,omitempty"`
	HandicapOverride *float64 `json:"handicap_override,omitempty"`
}

// HoleScore response type
type HoleScore struct {
	Hole    int  `json:"hole"`
	Strokes *int `json:"strokes"`
}

// Scorecard response type
type Scorecard struct {
	GolferID string      `json:"golfer_id"`
	Scores   []HoleScore `json:"scores"`
}

// Event response type
type Event struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	OwnerProfileID string      `json:"owner_profile_id"`
	Golfers        []Golfer    `json:"golfers"`
	Scorecards     []Scorecard `json:"scorecards"`
	IsCompleted    bool        `json:"is_completed"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// GameConfig is the shared shape of created game configs
type GameConfig struct {
	ID  string  `json:"id"`
	Fee float64 `json:"fee"`
}

// PayoutResult response type
type PayoutResult struct {
	EventID       string             `json:"event_id"`
	Provisional   bool               `json:"provisional"`
	TotalByGolfer map[string]float64 `json:"total_by_golfer"`
	BuyInByGolfer map[string]float64 `json:"buy_in_by_golfer"`
}

// Settlement response type
type Settlement struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	FromGolferID  string  `json:"from_golfer_id"`
	ToGolferID    string  `json:"to_golfer_id"`
	Amount        float64 `json:"amount"`
	TipFundAmount float64 `json:"tip_fund_amount"`
	Status        string  `json:"status"`
	PaidMethod    string  `json:"paid_method,omitempty"`
}

// PendingSettlements response type
type PendingSettlements struct {
	ToCollect []Settlement `json:"to_collect"`
	ToPay     []Settlement `json:"to_pay"`
}

// WalletTransaction response type
type WalletTransaction struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	SettlementID string    `json:"settlement_id,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("Profile: %s (%s)\n", p.DisplayName, p.ID)
	if p.HandicapIndex != nil {
		fmt.Printf("Handicap Index: %.1f\n", *p.HandicapIndex)
	} else {
		fmt.Println("Handicap Index: none")
	}
}

func (o *Output) printGolfer(g Golfer) {
	name := g.CustomName
	if name == "" {
		name = g.ProfileID
	}
	fmt.Printf("Golfer: %s (%s)\n", name, g.ID)
	if g.HandicapOverride != nil {
		fmt.Printf("Handicap Override: %.1f\n", *g.HandicapOverride)
	}
}

func (o *Output) printEvent(e Event) {
	fmt.Printf("Event: %s (%s)\n", e.Name, e.ID)
	fmt.Printf("Owner: %s\n", e.OwnerProfileID)
	status := "in progress"
	if e.IsCompleted {
		status = "completed"
	}
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Golfers (%d):\n", len(e.Golfers))
	for _, g := range e.Golfers {
		name := g.CustomName
		if name == "" {
			name = g.ProfileID
		}
		fmt.Printf("  - %s (%s)\n", name, g.ID)
	}
	for _, sc := range e.Scorecards {
		entered := []string{}
		for _, s := range sc.Scores {
			if s.Strokes != nil {
				entered = append(entered, fmt.Sprintf("%d:%d", s.Hole, *s.Strokes))
			}
		}
		if len(entered) > 0 {
			fmt.Printf("  %s: %s\n", sc.GolferID, strings.Join(entered, " "))
		}
	}
}

func (o *Output) printPayoutResult(p PayoutResult) {
	fmt.Printf("Payouts for event %s\n", p.EventID)
	if p.Provisional {
		fmt.Println("(provisional: some scores are missing)")
	}
	fmt.Println("Net by golfer:")
	for _, id := range sortedKeys(p.TotalByGolfer) {
		fmt.Printf("  %s: %+.2f\n", id, p.TotalByGolfer[id])
	}
	if len(p.BuyInByGolfer) > 0 {
		fmt.Println("Buy-in by golfer:")
		for _, id := range sortedKeys(p.BuyInByGolfer) {
			fmt.Printf("  %s: %.2f\n", id, p.BuyInByGolfer[id])
		}
	}
}

func (o *Output) printSettlement(s Settlement) {
	fmt.Printf("%s -> %s: %.2f", s.FromGolferID, s.ToGolferID, s.Amount)
	if s.TipFundAmount > 0 {
		fmt.Printf(" (+%.2f tip fund)", s.TipFundAmount)
	}
	fmt.Printf(" [%s", s.Status)
	if s.PaidMethod != "" {
		fmt.Printf(", %s", s.PaidMethod)
	}
	fmt.Printf("] (%s)\n", s.ID)
}

func (o *Output) printSettlements(settlements []Settlement) {
	if len(settlements) == 0 {
		fmt.Println("No settlements")
		return
	}
	for _, s := range settlements {
		o.printSettlement(s)
	}
}

func (o *Output) printPendingSettlements(p PendingSettlements) {
	fmt.Printf("To collect (%d):\n", len(p.ToCollect))
	for _, s := range p.ToCollect {
		fmt.Print("  ")
		o.printSettlement(s)
	}
	fmt.Printf("To pay (%d):\n", len(p.ToPay))
	for _, s := range p.ToPay {
		fmt.Print("  ")
		o.printSettlement(s)
	}
}

func (o *Output) printWallet(txs []WalletTransaction) {
	if len(txs) == 0 {
		fmt.Println("No wallet transactions")
		return
	}
	var balance float64
	for _, tx := range txs {
		balance += tx.Amount
		fmt.Printf("%s  %+.2f  (settlement %s)\n", tx.Date.Format("2006-01-02"), tx.Amount, tx.SettlementID)
	}
	fmt.Printf("Balance: %+.2f\n", balance)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
