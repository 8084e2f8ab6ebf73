// Package form holds the wizard's session state as an immutable value.
// Every user action is a transition method returning a new State, so each
// transition is auditable and testable in isolation; the UI layer never
// edits fields in place. Winning-bidder selection is referenced by row ID,
// not by name: duplicate bidder names stay unambiguous.
package form

import (
	"github.com/google/uuid"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// Stage is the wizard position. Transitions are forward-only.
type Stage int

const (
	StageUpload Stage = iota + 1
	StageSelectProject
	StageEnterDetails
	StageViewReport
)

// String returns the display name of the stage.
func (s Stage) String() string {
	switch s {
	case StageUpload:
		return "Upload"
	case StageSelectProject:
		return "Select Project"
	case StageEnterDetails:
		return "Enter Details"
	case StageViewReport:
		return "View Report"
	default:
		return "Unknown"
	}
}

// BidderInput is one editable bidder row. The amount stays text until
// submission; conversion happens only inside Valid and CompiledBidders.
type BidderInput struct {
	ID         string
	Name       string
	AmountText string
	Inclusions string
}

// MemberInput is one editable BAC member row.
type MemberInput struct {
	ID          string
	Name        string
	Designation string
}

// State is the complete wizard session. It lives only for the duration of
// one run; nothing is persisted.
type State struct {
	Stage     Stage
	Projects  []types.Project
	Project   *types.Project
	Bidders   []BidderInput
	Members   []MemberInput
	WinnerID  string
	Reasoning string
	Report    *types.ReportResult
	ReportErr string
}

// NewState returns the initial session at the upload stage.
func NewState() State {
	return State{Stage: StageUpload}
}

// ProjectsLoaded records the ingested catalog and advances to project
// selection.
func (s State) ProjectsLoaded(projects []types.Project) State {
	s.Projects = append([]types.Project(nil), projects...)
	s.Stage = StageSelectProject
	return s
}

// SelectProject picks a catalog project by ID and advances to detail
// entry. An unknown ID leaves the state unchanged.
func (s State) SelectProject(id string) State {
	for _, p := range s.Projects {
		if p.ID == id {
			chosen := p
			s.Project = &chosen
			s.Stage = StageEnterDetails
			return s
		}
	}
	return s
}

// AddBidder appends an empty bidder row with a generated ID.
func (s State) AddBidder() State {
	s.Bidders = append(cloneBidders(s.Bidders), BidderInput{ID: uuid.NewString()})
	return s
}

// RemoveBidder deletes a bidder row. Removing the row currently marked as
// winner clears the winner selection, so the selection can never dangle.
func (s State) RemoveBidder(id string) State {
	out := make([]BidderInput, 0, len(s.Bidders))
	for _, b := range s.Bidders {
		if b.ID != id {
			out = append(out, b)
		}
	}
	s.Bidders = out
	if s.WinnerID == id {
		s.WinnerID = ""
	}
	return s
}

// SetBidderName updates one row's bidder name.
func (s State) SetBidderName(id, name string) State {
	s.Bidders = updateBidder(s.Bidders, id, func(b *BidderInput) { b.Name = name })
	return s
}

// SetBidderAmount updates one row's bid amount text. No parsing happens
// here; invalid text simply fails validation later.
func (s State) SetBidderAmount(id, amount string) State {
	s.Bidders = updateBidder(s.Bidders, id, func(b *BidderInput) { b.AmountText = amount })
	return s
}

// SetBidderInclusions updates one row's inclusions text.
func (s State) SetBidderInclusions(id, inclusions string) State {
	s.Bidders = updateBidder(s.Bidders, id, func(b *BidderInput) { b.Inclusions = inclusions })
	return s
}

// AddMember appends an empty BAC member row with a generated ID.
func (s State) AddMember() State {
	s.Members = append(cloneMembers(s.Members), MemberInput{ID: uuid.NewString()})
	return s
}

// RemoveMember deletes a BAC member row.
func (s State) RemoveMember(id string) State {
	out := make([]MemberInput, 0, len(s.Members))
	for _, m := range s.Members {
		if m.ID != id {
			out = append(out, m)
		}
	}
	s.Members = out
	return s
}

// SetMemberName updates one member row's name.
func (s State) SetMemberName(id, name string) State {
	s.Members = updateMember(s.Members, id, func(m *MemberInput) { m.Name = name })
	return s
}

// SetMemberDesignation updates one member row's designation.
func (s State) SetMemberDesignation(id, designation string) State {
	s.Members = updateMember(s.Members, id, func(m *MemberInput) { m.Designation = designation })
	return s
}

// SetWinner marks a bidder row as the declared winner. IDs that do not
// match an entered bidder are ignored.
func (s State) SetWinner(id string) State {
	for _, b := range s.Bidders {
		if b.ID == id {
			s.WinnerID = id
			return s
		}
	}
	return s
}

// SetReasoning updates the free-text award reasoning.
func (s State) SetReasoning(reasoning string) State {
	s.Reasoning = reasoning
	return s
}

// ReportReady records a successful analysis and advances to the report
// view.
func (s State) ReportReady(result *types.ReportResult) State {
	s.Report = result
	s.ReportErr = ""
	s.Stage = StageViewReport
	return s
}

// ReportFailed records a failed analysis. The stage does not advance:
// the form stays editable so the user can resubmit with the same data.
func (s State) ReportFailed(msg string) State {
	s.Report = nil
	s.ReportErr = msg
	return s
}

// ClearReportErr drops a previous failure message, typically on the next
// edit or submission.
func (s State) ClearReportErr() State {
	s.ReportErr = ""
	return s
}

// Winner resolves the winner selection to its bidder row.
func (s State) Winner() (BidderInput, bool) {
	if s.WinnerID == "" {
		return BidderInput{}, false
	}
	for _, b := range s.Bidders {
		if b.ID == s.WinnerID {
			return b, true
		}
	}
	return BidderInput{}, false
}

func cloneBidders(in []BidderInput) []BidderInput {
	return append([]BidderInput(nil), in...)
}

func cloneMembers(in []MemberInput) []MemberInput {
	return append([]MemberInput(nil), in...)
}

func updateBidder(in []BidderInput, id string, apply func(*BidderInput)) []BidderInput {
	out := cloneBidders(in)
	for i := range out {
		if out[i].ID == id {
			apply(&out[i])
			break
		}
	}
	return out
}

func updateMember(in []MemberInput, id string, apply func(*MemberInput)) []MemberInput {
	out := cloneMembers(in)
	for i := range out {
		if out[i].ID == id {
			apply(&out[i])
			break
		}
	}
	return out
}
