// Package types provides the shared domain records used across bideval packages.
// This package exists so the form, catalog, report, and UI layers agree on one
// set of plain data structures with no behavioral dependencies.
package types

import (
	"strconv"
	"strings"
)

// Project is one procurement project from the ingested document catalog.
// Immutable once loaded; the wizard only ever holds copies.
type Project struct {
	// ID is the catalog identifier for the project.
	ID string `json:"id" yaml:"id"`
	// Name is the official project title.
	Name string `json:"name" yaml:"name"`
	// Description is the one-paragraph scope summary.
	Description string `json:"description" yaml:"description"`
	// Budget is the approved budget for the contract in whole pesos.
	Budget int64 `json:"budget" yaml:"budget"`
	// Location is the implementing locality.
	Location string `json:"location" yaml:"location"`
}

// Bidder is one participating bidder with its submitted bid.
// Collections of Bidder keep insertion order; IDs are generated and unique,
// names are not (duplicate bidder names are permitted).
type Bidder struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Inclusions string  `json:"inclusions"`
}

// BACMember is one member of the Bids and Awards Committee.
// Same ordering and uniqueness properties as Bidder.
type BACMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// GroundingSource is a citation returned with a generated report.
// Title may be empty; display falls back to the URI.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Display returns the human-facing label for the source.
func (g GroundingSource) Display() string {
	if g.Title != "" {
		return g.Title
	}
	return g.URI
}

// ReportResult is the outcome of one successful analysis request:
// the report text exactly as the service produced it, plus zero or
// more citation sources extracted from grounding metadata.
type ReportResult struct {
	Text    string
	Sources []GroundingSource
}

// BudgetDisplay renders the approved budget in currency form, e.g.
// "PHP 350,000,000".
func (p Project) BudgetDisplay() string {
	return FormatPesos(p.Budget)
}

// FormatPesos renders a whole-peso amount with thousands separators.
func FormatPesos(amount int64) string {
	return "PHP " + groupDigits(strconv.FormatInt(amount, 10))
}

// FormatBidAmount renders a bid amount for display. Whole-peso bids are
// shown without centavos; fractional amounts keep two decimal places.
func FormatBidAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return FormatPesos(int64(amount))
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return "PHP " + groupDigits(s[:dot]) + s[dot:]
}

// groupDigits inserts comma separators into a base-10 integer string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
