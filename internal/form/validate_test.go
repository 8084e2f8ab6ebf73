package form

import (
	"strings"
	"testing"
)

// readyState assembles the fully valid session used across validity tests:
// project selected, two complete bidders, winner marked, reasoning set,
// one complete BAC member.
func readyState() State {
	s := NewState().ProjectsLoaded(testProjects).SelectProject("PRJ-1")
	s = s.AddBidder()
	s = s.SetBidderName(s.Bidders[0].ID, "ACME Corp")
	s = s.SetBidderAmount(s.Bidders[0].ID, "300000000")
	s = s.SetBidderInclusions(s.Bidders[0].ID, "materials and labor")
	s = s.AddBidder()
	s = s.SetBidderName(s.Bidders[1].ID, "BuildRight Inc")
	s = s.SetBidderAmount(s.Bidders[1].ID, "310000000")
	s = s.SetWinner(s.Bidders[0].ID)
	s = s.SetReasoning("lowest compliant bid")
	s = s.AddMember()
	s = s.SetMemberName(s.Members[0].ID, "Juan Dela Cruz")
	s = s.SetMemberDesignation(s.Members[0].ID, "Chairperson")
	return s
}

func TestValidOnCompleteState(t *testing.T) {
	t.Parallel()

	s := readyState()
	if !s.Valid() {
		t.Fatalf("complete state reported invalid: %s", s.InvalidReason())
	}
}

func TestEachMissingFieldInvalidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(State) State
		reason string
	}{
		{
			"no project selected",
			func(s State) State { s.Project = nil; return s },
			"select a project",
		},
		{
			"empty bidder name",
			func(s State) State { return s.SetBidderName(s.Bidders[1].ID, "") },
			"needs a name",
		},
		{
			"whitespace bidder name",
			func(s State) State { return s.SetBidderName(s.Bidders[1].ID, "   ") },
			"needs a name",
		},
		{
			"empty amount",
			func(s State) State { return s.SetBidderAmount(s.Bidders[0].ID, "") },
			"numeric amount",
		},
		{
			"non-numeric amount",
			func(s State) State { return s.SetBidderAmount(s.Bidders[0].ID, "three hundred million") },
			"numeric amount",
		},
		{
			"zero amount",
			func(s State) State { return s.SetBidderAmount(s.Bidders[0].ID, "0") },
			"must be positive",
		},
		{
			"negative amount",
			func(s State) State { return s.SetBidderAmount(s.Bidders[0].ID, "-5") },
			"must be positive",
		},
		{
			"no winner marked",
			func(s State) State { s.WinnerID = ""; return s },
			"winner",
		},
		{
			"winner row removed",
			func(s State) State { return s.RemoveBidder(s.WinnerID) },
			"winner",
		},
		{
			"empty reasoning",
			func(s State) State { return s.SetReasoning("") },
			"reasoning",
		},
		{
			"member missing name",
			func(s State) State { return s.SetMemberName(s.Members[0].ID, "") },
			"needs a name",
		},
		{
			"member missing designation",
			func(s State) State { return s.SetMemberDesignation(s.Members[0].ID, "") },
			"designation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := tt.mutate(readyState())
			if s.Valid() {
				t.Fatal("state should be invalid")
			}
			if reason := s.InvalidReason(); !strings.Contains(reason, tt.reason) {
				t.Errorf("InvalidReason() = %q, want mention of %q", reason, tt.reason)
			}
		})
	}
}

func TestNoBiddersIsInvalid(t *testing.T) {
	t.Parallel()

	s := NewState().ProjectsLoaded(testProjects).SelectProject("PRJ-1").SetReasoning("n/a")
	if s.Valid() {
		t.Error("state with no bidders should be invalid")
	}
	if reason := s.InvalidReason(); !strings.Contains(reason, "bidder") {
		t.Errorf("InvalidReason() = %q", reason)
	}
}

func TestEmptyMemberListPassesVacuously(t *testing.T) {
	t.Parallel()

	s := readyState()
	s = s.RemoveMember(s.Members[0].ID)
	if !s.Valid() {
		t.Errorf("zero BAC members should pass, got: %s", s.InvalidReason())
	}
}

func TestAmountAcceptsCommaSeparators(t *testing.T) {
	t.Parallel()

	s := readyState()
	s = s.SetBidderAmount(s.Bidders[0].ID, "300,000,000")
	if !s.Valid() {
		t.Errorf("comma-grouped amount rejected: %s", s.InvalidReason())
	}

	bidders, err := s.CompiledBidders()
	if err != nil {
		t.Fatalf("CompiledBidders: %v", err)
	}
	if bidders[0].Amount != 300000000 {
		t.Errorf("parsed amount = %v, want 300000000", bidders[0].Amount)
	}
}

func TestCompiledBidders(t *testing.T) {
	t.Parallel()

	s := readyState()
	bidders, err := s.CompiledBidders()
	if err != nil {
		t.Fatalf("CompiledBidders: %v", err)
	}
	if len(bidders) != 2 {
		t.Fatalf("bidders = %d, want 2", len(bidders))
	}
	if bidders[0].Name != "ACME Corp" || bidders[0].Amount != 300000000 {
		t.Errorf("first = %+v", bidders[0])
	}
	if bidders[0].Inclusions != "materials and labor" {
		t.Errorf("inclusions lost: %+v", bidders[0])
	}
	if bidders[1].Name != "BuildRight Inc" || bidders[1].Amount != 310000000 {
		t.Errorf("second = %+v", bidders[1])
	}

	// Parse failure path
	bad := s.SetBidderAmount(s.Bidders[0].ID, "not a number")
	if _, err := bad.CompiledBidders(); err == nil {
		t.Error("expected error for unparseable amount")
	}
}

func TestCompiledMembers(t *testing.T) {
	t.Parallel()

	members := readyState().CompiledMembers()
	if len(members) != 1 {
		t.Fatalf("members = %d, want 1", len(members))
	}
	if members[0].Name != "Juan Dela Cruz" || members[0].Designation != "Chairperson" {
		t.Errorf("member = %+v", members[0])
	}
}
