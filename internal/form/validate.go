package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// Valid reports whether the session is ready for analysis: a project is
// selected, every bidder row has a name and a strictly positive numeric
// amount, the winner selection resolves to an entered bidder, reasoning
// is present, and every BAC member row has both name and designation.
// Amounts are parsed here, at check time; nothing is coerced earlier.
func (s State) Valid() bool {
	return s.InvalidReason() == ""
}

// InvalidReason returns the first failing readiness rule as a short
// user-facing message, or "" when the session is valid. The wizard footer
// shows it next to the disabled Analyze action.
func (s State) InvalidReason() string {
	if s.Project == nil {
		return "select a project first"
	}
	if len(s.Bidders) == 0 {
		return "add at least one bidder"
	}
	for i, b := range s.Bidders {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Sprintf("bidder %d needs a name", i+1)
		}
		amount, err := parseAmount(b.AmountText)
		if err != nil {
			return fmt.Sprintf("bidder %d needs a numeric amount", i+1)
		}
		if amount <= 0 {
			return fmt.Sprintf("bidder %d amount must be positive", i+1)
		}
	}
	if _, ok := s.Winner(); !ok {
		return "mark one bidder as the winner"
	}
	if strings.TrimSpace(s.Reasoning) == "" {
		return "enter the reasoning for the award"
	}
	for i, m := range s.Members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Sprintf("BAC member %d needs a name", i+1)
		}
		if strings.TrimSpace(m.Designation) == "" {
			return fmt.Sprintf("BAC member %d needs a designation", i+1)
		}
	}
	return ""
}

// CompiledBidders converts the entered rows into domain bidders with
// parsed amounts. Fails if any amount does not parse; callers gate on
// Valid first, so an error here means a programming mistake.
func (s State) CompiledBidders() ([]types.Bidder, error) {
	out := make([]types.Bidder, 0, len(s.Bidders))
	for _, b := range s.Bidders {
		amount, err := parseAmount(b.AmountText)
		if err != nil {
			return nil, fmt.Errorf("bidder %q: amount %q is not numeric", b.Name, b.AmountText)
		}
		out = append(out, types.Bidder{
			ID:         b.ID,
			Name:       b.Name,
			Amount:     amount,
			Inclusions: b.Inclusions,
		})
	}
	return out, nil
}

// PreviewBidders returns the rows that already parse to a positive
// amount, for the live chart while the form is still being filled in.
// Incomplete rows are simply skipped.
func (s State) PreviewBidders() []types.Bidder {
	var out []types.Bidder
	for _, b := range s.Bidders {
		if strings.TrimSpace(b.Name) == "" {
			continue
		}
		amount, err := parseAmount(b.AmountText)
		if err != nil || amount <= 0 {
			continue
		}
		out = append(out, types.Bidder{
			ID:         b.ID,
			Name:       b.Name,
			Amount:     amount,
			Inclusions: b.Inclusions,
		})
	}
	return out
}

// CompiledMembers converts the entered rows into domain BAC members.
func (s State) CompiledMembers() []types.BACMember {
	out := make([]types.BACMember, 0, len(s.Members))
	for _, m := range s.Members {
		out = append(out, types.BACMember{
			ID:          m.ID,
			Name:        m.Name,
			Designation: m.Designation,
		})
	}
	return out
}

// parseAmount converts entered amount text to a number. Commas are
// accepted as thousands separators since budgets are displayed that way.
func parseAmount(text string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(cleaned, 64)
}
