package types

import "testing"

func TestGroundingSourceDisplay(t *testing.T) {
	tests := []struct {
		name   string
		source GroundingSource
		want   string
	}{
		{"title present", GroundingSource{URI: "https://example.gov/audit", Title: "COA Audit Report"}, "COA Audit Report"},
		{"title missing falls back to uri", GroundingSource{URI: "https://example.gov/audit"}, "https://example.gov/audit"},
		{"both empty", GroundingSource{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPesos(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "PHP 0"},
		{"under a thousand", 950, "PHP 950"},
		{"thousands", 85000, "PHP 85,000"},
		{"millions", 350000000, "PHP 350,000,000"},
		{"boundary", 1000, "PHP 1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPesos(tt.amount); got != tt.want {
				t.Errorf("FormatPesos(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatBidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole amount", 300000000, "PHP 300,000,000"},
		{"fractional amount", 1250000.5, "PHP 1,250,000.50"},
		{"small fractional", 10.25, "PHP 10.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBidAmount(tt.amount); got != tt.want {
				t.Errorf("FormatBidAmount(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestBudgetDisplay(t *testing.T) {
	p := Project{Name: "Flood Control Project for Pasig River", Budget: 350000000}
	if got := p.BudgetDisplay(); got != "PHP 350,000,000" {
		t.Errorf("BudgetDisplay() = %q, want %q", got, "PHP 350,000,000")
	}
}
