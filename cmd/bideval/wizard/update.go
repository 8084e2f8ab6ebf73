package wizard

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/form"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/logging"
)

// Update routes messages to the active stage. Async settlement messages
// (upload, analysis, progress ticks) are handled before key dispatch so
// they apply regardless of focus.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-8, 5)
		if m.state.Stage == form.StageViewReport {
			m.viewport.SetContent(m.renderReportBody())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case uploadDoneMsg:
		m.uploading = false
		if msg.err != nil {
			m.uploadErr = "could not read the uploaded documents"
			logging.UIDebug("upload failed: %v", msg.err)
			return m, nil
		}
		m.uploadErr = ""
		m.state = m.state.ProjectsLoaded(msg.projects)
		m.projectIdx = 0
		logging.UI("catalog loaded, %d projects", len(msg.projects))
		return m, nil

	case analysisDoneMsg:
		if msg.seq != m.analysisSeq {
			return m, nil
		}
		m.analyzing = false
		if msg.err != nil {
			m.state = m.state.ReportFailed(msg.err.Error())
			m.syncEditor()
			return m, nil
		}
		m.state = m.state.ReportReady(msg.result)
		m.viewport.SetContent(m.renderReportBody())
		m.viewport.GotoTop()
		logging.UI("report ready, %d chars, %d sources",
			len(msg.result.Text), len(msg.result.Sources))
		return m, nil

	case progressTickMsg:
		// Ticks from settled or superseded requests stop here; only a
		// live generation reschedules itself.
		if !m.analyzing || msg.seq != m.analysisSeq {
			return m, nil
		}
		m.progressIdx++
		return m, m.tickProgressCmd(msg.seq)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

// updateKey dispatches keys for the active stage. While a background
// operation is pending only quit is honored.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.uploading || m.analyzing {
		return m, nil
	}

	switch m.state.Stage {
	case form.StageUpload:
		return m.updateUploadKey(msg)
	case form.StageSelectProject:
		return m.updateSelectKey(msg)
	case form.StageEnterDetails:
		return m.updateDetailsKey(msg)
	case form.StageViewReport:
		return m.updateReportKey(msg)
	}
	return m, nil
}

func (m Model) updateUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter", "u":
		m.uploading = true
		m.uploadErr = ""
		logging.UI("upload started")
		return m, tea.Batch(m.uploadCmd(), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) updateSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.projectIdx > 0 {
			m.projectIdx--
		}
		return m, nil
	case "down", "j":
		if m.projectIdx < len(m.state.Projects)-1 {
			m.projectIdx++
		}
		return m, nil
	case "enter":
		if len(m.state.Projects) == 0 {
			return m, nil
		}
		chosen := m.state.Projects[m.projectIdx]
		m.state = m.state.SelectProject(chosen.ID)
		m.focusIdx = 0
		m.syncEditor()
		logging.UI("project selected: %s", chosen.Name)
		return m, nil
	}
	return m, nil
}

func (m Model) updateDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.state.ClearReportErr()
		return m, nil

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "ctrl+n":
		m.state = m.state.AddBidder()
		// Jump to the new row's name field.
		m.focusIdx = (len(m.state.Bidders) - 1) * 3
		m.syncEditor()
		return m, nil

	case "ctrl+b":
		m.state = m.state.AddMember()
		m.focusIdx = len(m.state.Bidders)*3 + (len(m.state.Members)-1)*2
		m.syncEditor()
		return m, nil

	case "ctrl+d":
		if row := m.focusedBidderRow(); row >= 0 {
			m.state = m.state.RemoveBidder(m.state.Bidders[row].ID)
		} else if row := m.focusedMemberRow(); row >= 0 {
			m.state = m.state.RemoveMember(m.state.Members[row].ID)
		}
		m.syncEditor()
		return m, nil

	case "ctrl+w":
		if row := m.focusedBidderRow(); row >= 0 {
			m.state = m.state.SetWinner(m.state.Bidders[row].ID)
		}
		return m, nil

	case "enter":
		if m.currentTarget().kind == focusAnalyze {
			return m.startAnalysis()
		}
		m.moveFocus(1)
		return m, nil
	}

	if !m.currentTarget().editable() {
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.state = m.applyEdit(m.currentTarget(), m.editor.Value())
	return m, cmd
}

// startAnalysis validates the session and fires the single analysis
// request for a fresh generation.
func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	if !m.state.Valid() {
		return m, nil
	}
	req, err := m.buildRequest()
	if err != nil {
		m.state = m.state.ReportFailed("analysis failed")
		return m, nil
	}
	m.state = m.state.ClearReportErr()
	m.analyzing = true
	m.analysisSeq++
	m.progressIdx = 0
	logging.UI("analysis started for %q, seq %d", req.Project.Name, m.analysisSeq)
	return m, tea.Batch(
		m.analyzeCmd(req, m.analysisSeq),
		m.tickProgressCmd(m.analysisSeq),
		m.spinner.Tick,
	)
}

func (m Model) updateReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		fresh := New(m.source, m.requester, m.version)
		fresh.width = m.width
		fresh.height = m.height
		fresh.ready = m.ready
		fresh.uploadDelay = m.uploadDelay
		fresh.progressInterval = m.progressInterval
		logging.UI("session reset")
		return fresh, fresh.Init()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
