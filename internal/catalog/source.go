// Package catalog provides the document-ingestion boundary for bideval.
// The wizard only ever sees the Source interface, so the built-in example
// catalog can be swapped for a real document pipeline without touching
// workflow logic.
package catalog

import (
	"context"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/logging"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// Source yields the projects extracted from an uploaded procurement document.
type Source interface {
	Projects(ctx context.Context) ([]types.Project, error)
}

// MockSource stands in for real document parsing with a fixed catalog of
// example projects. It always returns fresh copies so callers cannot
// mutate the catalog.
type MockSource struct{}

// NewMockSource returns the built-in example catalog.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// mockProjects is the static catalog returned in place of real parsing.
var mockProjects = []types.Project{
	{
		ID:          "PRJ-2025-001",
		Name:        "Flood Control Project for Pasig River",
		Description: "Construction of reinforced concrete flood walls and dredging works along a 3.2 km stretch of the Pasig River.",
		Budget:      350000000,
		Location:    "Pasig City",
	},
	{
		ID:          "PRJ-2025-002",
		Name:        "Construction of Multi-Purpose Evacuation Center",
		Description: "Two-storey evacuation center with emergency supply storage and standby power for typhoon response.",
		Budget:      120000000,
		Location:    "Marikina City",
	},
	{
		ID:          "PRJ-2025-003",
		Name:        "Road Widening along Ortigas Avenue Extension",
		Description: "Widening from four to six lanes including drainage improvement and street lighting over 5.8 km.",
		Budget:      220000000,
		Location:    "Cainta, Rizal",
	},
	{
		ID:          "PRJ-2025-004",
		Name:        "Rehabilitation of Barangay Health Stations",
		Description: "Retrofit and re-equipment of twelve barangay health stations including cold-chain storage.",
		Budget:      85000000,
		Location:    "Quezon City",
	},
}

// Projects returns the example catalog.
func (s *MockSource) Projects(ctx context.Context) ([]types.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]types.Project, len(mockProjects))
	copy(out, mockProjects)
	logging.Catalog("mock source returned %d projects", len(out))
	return out, nil
}
