// Package wizard implements the interactive four-stage evaluation flow:
// Upload, Select Project, Enter Details, View Report. All session data
// lives in a form.State value; the Model only adds presentation state
// (focus, spinner, progress ticker) and funnels every user action through
// a state transition.
package wizard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/cmd/bideval/ui"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/catalog"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/form"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/report"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// defaultUploadDelay simulates document processing on the upload stage.
const defaultUploadDelay = 1500 * time.Millisecond

// defaultProgressInterval drives the cosmetic progress-message rotation
// while an analysis request is pending.
const defaultProgressInterval = 2 * time.Second

// progressMessages cycle under the loading spinner during analysis. They
// are cosmetic only and say nothing about actual request progress.
var progressMessages = []string{
	"Transmitting bid portfolio for analysis...",
	"Cross-referencing bidder track records...",
	"Scanning public records for conflicts of interest...",
	"Reviewing financial disclosures and asset declarations...",
	"Compiling the risk assessment...",
}

// Internal messages
type (
	// uploadDoneMsg carries the ingested catalog after the simulated
	// processing delay.
	uploadDoneMsg struct {
		projects []types.Project
		err      error
	}

	// analysisDoneMsg settles one analysis request. seq ties it to the
	// request generation that issued it.
	analysisDoneMsg struct {
		seq    int
		result *types.ReportResult
		err    error
	}

	// progressTickMsg rotates the loading message. seq mismatches are
	// discarded so a settled request's late ticks die silently.
	progressTickMsg struct {
		seq int
	}
)

// focusKind discriminates the focusable targets on the details stage.
type focusKind int

const (
	focusBidderName focusKind = iota
	focusBidderAmount
	focusBidderInclusions
	focusMemberName
	focusMemberDesignation
	focusReasoning
	focusAnalyze
)

// focusTarget addresses one editable field (or the analyze action).
type focusTarget struct {
	kind focusKind
	row  int
}

// editable reports whether the target binds to the text editor.
func (t focusTarget) editable() bool {
	return t.kind != focusAnalyze
}

// Model is the bubbletea model for the wizard.
type Model struct {
	state  form.State
	styles ui.Styles

	source    catalog.Source
	requester report.Requester

	// Presentation state
	spinner     spinner.Model
	editor      textinput.Model
	viewport    viewport.Model
	renderer    *glamour.TermRenderer
	width       int
	height      int
	ready       bool
	uploading   bool
	uploadErr   string
	projectIdx  int
	focusIdx    int
	analyzing   bool
	analysisSeq int
	progressIdx int

	// Timing knobs, shrunk to zero in tests.
	uploadDelay      time.Duration
	progressInterval time.Duration

	version string
}

// New constructs the wizard model. The catalog source and requester come
// from startup wiring so tests can substitute both.
func New(source catalog.Source, requester report.Requester, version string) Model {
	styles := ui.DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Width = 40

	vp := viewport.New(80, 20)

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}

	return Model{
		state:            form.NewState(),
		styles:           styles,
		source:           source,
		requester:        requester,
		spinner:          sp,
		editor:           ti,
		viewport:         vp,
		renderer:         renderer,
		projectIdx:       0,
		focusIdx:         0,
		uploadDelay:      defaultUploadDelay,
		progressInterval: defaultProgressInterval,
		version:          version,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// State exposes the session for tests and the runner.
func (m Model) State() form.State {
	return m.state
}

// targets computes the ordered focus list for the details stage. The
// order mirrors the visual layout: bidder rows top to bottom (name,
// amount, inclusions), then member rows, reasoning, analyze.
func (m Model) targets() []focusTarget {
	var out []focusTarget
	for i := range m.state.Bidders {
		out = append(out,
			focusTarget{kind: focusBidderName, row: i},
			focusTarget{kind: focusBidderAmount, row: i},
			focusTarget{kind: focusBidderInclusions, row: i},
		)
	}
	for i := range m.state.Members {
		out = append(out,
			focusTarget{kind: focusMemberName, row: i},
			focusTarget{kind: focusMemberDesignation, row: i},
		)
	}
	out = append(out, focusTarget{kind: focusReasoning}, focusTarget{kind: focusAnalyze})
	return out
}

// currentTarget returns the focused target, clamping the index when rows
// were removed since the last update.
func (m *Model) currentTarget() focusTarget {
	ts := m.targets()
	if m.focusIdx >= len(ts) {
		m.focusIdx = len(ts) - 1
	}
	if m.focusIdx < 0 {
		m.focusIdx = 0
	}
	return ts[m.focusIdx]
}

// targetValue reads the state value behind a focus target.
func (m Model) targetValue(t focusTarget) string {
	switch t.kind {
	case focusBidderName:
		return m.state.Bidders[t.row].Name
	case focusBidderAmount:
		return m.state.Bidders[t.row].AmountText
	case focusBidderInclusions:
		return m.state.Bidders[t.row].Inclusions
	case focusMemberName:
		return m.state.Members[t.row].Name
	case focusMemberDesignation:
		return m.state.Members[t.row].Designation
	case focusReasoning:
		return m.state.Reasoning
	default:
		return ""
	}
}

// applyEdit funnels the editor's current text into the matching state
// transition.
func (m Model) applyEdit(t focusTarget, value string) form.State {
	switch t.kind {
	case focusBidderName:
		return m.state.SetBidderName(m.state.Bidders[t.row].ID, value)
	case focusBidderAmount:
		return m.state.SetBidderAmount(m.state.Bidders[t.row].ID, value)
	case focusBidderInclusions:
		return m.state.SetBidderInclusions(m.state.Bidders[t.row].ID, value)
	case focusMemberName:
		return m.state.SetMemberName(m.state.Members[t.row].ID, value)
	case focusMemberDesignation:
		return m.state.SetMemberDesignation(m.state.Members[t.row].ID, value)
	case focusReasoning:
		return m.state.SetReasoning(value)
	default:
		return m.state
	}
}

// syncEditor loads the focused field's stored value into the editor and
// sets a matching placeholder.
func (m *Model) syncEditor() {
	t := m.currentTarget()
	if !t.editable() {
		m.editor.Blur()
		return
	}
	m.editor.SetValue(m.targetValue(t))
	m.editor.CursorEnd()
	m.editor.Placeholder = placeholderFor(t)
	m.editor.Focus()
}

func placeholderFor(t focusTarget) string {
	switch t.kind {
	case focusBidderName:
		return "bidder name"
	case focusBidderAmount:
		return "bid amount in pesos"
	case focusBidderInclusions:
		return "inclusions (optional)"
	case focusMemberName:
		return "member name"
	case focusMemberDesignation:
		return "designation"
	case focusReasoning:
		return "why this bidder won"
	default:
		return ""
	}
}

// moveFocus advances (or rewinds) the focus ring and reloads the editor.
func (m *Model) moveFocus(delta int) {
	ts := m.targets()
	if len(ts) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + delta + len(ts)) % len(ts)
	m.syncEditor()
}

// focusedBidderRow returns the bidder row index the focus sits on, or -1
// when focus is elsewhere.
func (m Model) focusedBidderRow() int {
	t := m.currentTarget()
	switch t.kind {
	case focusBidderName, focusBidderAmount, focusBidderInclusions:
		return t.row
	default:
		return -1
	}
}

// focusedMemberRow returns the member row index the focus sits on, or -1.
func (m Model) focusedMemberRow() int {
	t := m.currentTarget()
	switch t.kind {
	case focusMemberName, focusMemberDesignation:
		return t.row
	default:
		return -1
	}
}

// uploadCmd simulates document processing, then ingests the catalog.
func (m Model) uploadCmd() tea.Cmd {
	source := m.source
	delay := m.uploadDelay
	return func() tea.Msg {
		time.Sleep(delay)
		projects, err := source.Projects(context.Background())
		return uploadDoneMsg{projects: projects, err: err}
	}
}

// analyzeCmd issues the single analysis request. The request is
// deliberately not cancelable: no context deadline, no user abort.
func (m Model) analyzeCmd(req report.Request, seq int) tea.Cmd {
	requester := m.requester
	return func() tea.Msg {
		result, err := requester.Analyze(context.Background(), req)
		return analysisDoneMsg{seq: seq, result: result, err: err}
	}
}

// tickProgressCmd schedules the next cosmetic progress rotation for the
// given request generation.
func (m Model) tickProgressCmd(seq int) tea.Cmd {
	return tea.Tick(m.progressInterval, func(time.Time) tea.Msg {
		return progressTickMsg{seq: seq}
	})
}

// buildRequest assembles the analysis request from a valid session.
func (m Model) buildRequest() (report.Request, error) {
	bidders, err := m.state.CompiledBidders()
	if err != nil {
		return report.Request{}, err
	}
	winner, _ := m.state.Winner()
	return report.Request{
		Project:    *m.state.Project,
		Bidders:    bidders,
		WinnerName: winner.Name,
		Reasoning:  m.state.Reasoning,
		Members:    m.state.CompiledMembers(),
	}, nil
}

// progressMessage returns the currently displayed cosmetic status line.
func (m Model) progressMessage() string {
	if len(progressMessages) == 0 {
		return ""
	}
	return progressMessages[m.progressIdx%len(progressMessages)]
}
