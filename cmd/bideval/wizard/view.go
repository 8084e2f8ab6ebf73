package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/cmd/bideval/ui"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/form"
)

const welcomeMarkdown = `## Upload Bid Documents

Drop the scanned bid documents, abstracts of bids, and notices of award
into the intake folder, then press **enter** to process them.

This build ships with a mock document set covering four public
infrastructure projects, so processing always succeeds and takes a
moment on purpose.`

// fieldLabelWidth aligns the detail-stage field labels.
const fieldLabelWidth = 13

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch m.state.Stage {
	case form.StageUpload:
		body = m.viewUpload()
	case form.StageSelectProject:
		body = m.viewSelect()
	case form.StageEnterDetails:
		body = m.viewDetails()
	case form.StageViewReport:
		body = m.viewReport()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.styles.Content.Render(body),
		footer,
	)
}

// stageTitles label the breadcrumb in wizard order.
var stageTitles = []struct {
	stage form.Stage
	title string
}{
	{form.StageUpload, "Upload"},
	{form.StageSelectProject, "Select Project"},
	{form.StageEnterDetails, "Enter Details"},
	{form.StageViewReport, "Report"},
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" Bid Evaluator ")
	version := m.styles.Badge.Render("v" + m.version)

	crumbs := make([]string, 0, len(stageTitles))
	for i, st := range stageTitles {
		label := fmt.Sprintf("%d %s", i+1, st.title)
		switch {
		case st.stage == m.state.Stage:
			crumbs = append(crumbs, m.styles.StepActive.Render(label))
		case st.stage < m.state.Stage:
			crumbs = append(crumbs, m.styles.StepDone.Render(label))
		default:
			crumbs = append(crumbs, m.styles.StepPending.Render(label))
		}
	}
	breadcrumb := strings.Join(crumbs, m.styles.Muted.Render(" > "))

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", version, "  ", breadcrumb)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	var parts []string

	if m.state.ReportErr != "" && m.state.Stage == form.StageEnterDetails {
		parts = append(parts, m.styles.Error.Render(m.state.ReportErr+" - adjust the details and analyze again (esc to dismiss)"))
	}
	if m.uploadErr != "" && m.state.Stage == form.StageUpload {
		parts = append(parts, m.styles.Error.Render(m.uploadErr))
	}

	var keys string
	switch {
	case m.uploading:
		keys = "processing documents, ctrl+c: quit"
	case m.analyzing:
		keys = "analysis in flight, ctrl+c: quit"
	case m.state.Stage == form.StageUpload:
		keys = "enter: upload | q: quit"
	case m.state.Stage == form.StageSelectProject:
		keys = "up/down: choose | enter: select | q: quit"
	case m.state.Stage == form.StageEnterDetails:
		keys = "tab: next field | ctrl+n: add bidder | ctrl+b: add BAC member | ctrl+w: mark winner | ctrl+d: remove row | ctrl+c: quit"
	case m.state.Stage == form.StageViewReport:
		keys = "up/down: scroll | n: new evaluation | q: quit"
	}
	parts = append(parts, m.styles.Muted.Render(keys))

	return m.styles.Footer.Render(strings.Join(parts, "\n"))
}

func (m Model) viewUpload() string {
	logo := ui.Logo(m.styles)
	welcome := m.safeRenderMarkdown(welcomeMarkdown)

	status := ""
	if m.uploading {
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Info.Render("Processing documents..."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, logo, welcome, status)
}

func (m Model) viewSelect() string {
	table := ui.NewSelectTable("Select the project under evaluation",
		[]string{"ID", "Project", "Approved Budget", "Location"})
	for _, p := range m.state.Projects {
		table.AddRow(p.ID, p.Name, p.BudgetDisplay(), p.Location)
	}
	table.Selected = m.projectIdx
	return table.View(m.styles)
}

func (m Model) viewDetails() string {
	var sb strings.Builder

	p := m.state.Project
	if p != nil {
		sb.WriteString(m.styles.Title.Render(p.Name))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s | %s", p.BudgetDisplay(), p.Location)))
		sb.WriteString("\n\n")
	}

	if m.analyzing {
		sb.WriteString(m.renderAnalysisProgress())
		return sb.String()
	}

	sb.WriteString(m.styles.Subtitle.Render("Bidders"))
	sb.WriteString("\n")
	if len(m.state.Bidders) == 0 {
		sb.WriteString(m.styles.Muted.Render("none yet, press ctrl+n to add one"))
		sb.WriteString("\n")
	}
	for i, b := range m.state.Bidders {
		head := fmt.Sprintf("Bidder %d", i+1)
		if b.ID == m.state.WinnerID {
			head = lipgloss.JoinHorizontal(lipgloss.Center,
				m.styles.Bold.Render(head), " ", m.styles.Badge.Render("WINNER"))
		} else {
			head = m.styles.Bold.Render(head)
		}
		sb.WriteString(head)
		sb.WriteString("\n")
		sb.WriteString(m.renderField("Name", b.Name, focusTarget{kind: focusBidderName, row: i}))
		sb.WriteString(m.renderField("Bid Amount", b.AmountText, focusTarget{kind: focusBidderAmount, row: i}))
		sb.WriteString(m.renderField("Inclusions", b.Inclusions, focusTarget{kind: focusBidderInclusions, row: i}))
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Subtitle.Render("Bids and Awards Committee"))
	sb.WriteString("\n")
	if len(m.state.Members) == 0 {
		sb.WriteString(m.styles.Muted.Render("none yet, press ctrl+b to add one"))
		sb.WriteString("\n")
	}
	for i, member := range m.state.Members {
		sb.WriteString(m.styles.Bold.Render(fmt.Sprintf("Member %d", i+1)))
		sb.WriteString("\n")
		sb.WriteString(m.renderField("Name", member.Name, focusTarget{kind: focusMemberName, row: i}))
		sb.WriteString(m.renderField("Designation", member.Designation, focusTarget{kind: focusMemberDesignation, row: i}))
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Subtitle.Render("Award"))
	sb.WriteString("\n")
	sb.WriteString(m.renderField("Reasoning", m.state.Reasoning, focusTarget{kind: focusReasoning}))
	sb.WriteString("\n")

	sb.WriteString(m.renderAnalyzeButton())
	sb.WriteString("\n")

	if preview := m.state.PreviewBidders(); len(preview) > 0 && p != nil {
		sb.WriteString("\n")
		sb.WriteString(RenderBidChart(m.styles, preview, "Approved Budget", p.Budget))
	}

	return sb.String()
}

// renderField draws one labelled field line. The focused field shows the
// live text input, everything else shows the stored value.
func (m Model) renderField(label, value string, target focusTarget) string {
	current := m.currentTarget()
	focused := current.kind == target.kind && current.row == target.row

	labelCell := m.styles.FieldLabel.Width(fieldLabelWidth).Render(label)
	if focused {
		return fmt.Sprintf("  %s %s\n", labelCell, m.styles.FieldFocus.Render("> ")+m.editor.View())
	}
	if value == "" {
		return fmt.Sprintf("  %s %s\n", labelCell, m.styles.Muted.Render("-"))
	}
	return fmt.Sprintf("  %s %s\n", labelCell, value)
}

func (m Model) renderAnalyzeButton() string {
	focused := m.currentTarget().kind == focusAnalyze
	label := "[ Analyze Bids ]"

	if !m.state.Valid() {
		out := m.styles.Muted.Render(label)
		hint := m.styles.Warning.Render(m.state.InvalidReason())
		if focused {
			out = m.styles.FieldFocus.Render("> ") + out
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, out, "  ", hint)
	}
	if focused {
		return m.styles.FieldFocus.Render("> ") + m.styles.Success.Render(label) +
			m.styles.Muted.Render("  press enter to run the analysis")
	}
	return m.styles.Success.Render(label)
}

func (m Model) renderAnalysisProgress() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Info.Render("Analyzing the award...")),
		m.styles.Muted.Render(m.progressMessage()),
	)
}

func (m Model) viewReport() string {
	return m.viewport.View()
}

// renderReportBody builds the full report page: classified report lines,
// the bid chart, and the citation list.
func (m Model) renderReportBody() string {
	var sb strings.Builder

	if p := m.state.Project; p != nil {
		sb.WriteString(m.styles.Title.Render("Risk Analysis: " + p.Name))
		sb.WriteString("\n\n")
	}

	if m.state.Report == nil {
		sb.WriteString(m.styles.Muted.Render("no report available"))
		return sb.String()
	}

	for _, line := range FormatReportLines(m.state.Report.Text) {
		switch line.Kind {
		case LineHeading:
			sb.WriteString(m.styles.ReportHeading.Render(line.Text))
		case LineSubheading:
			sb.WriteString(m.styles.ReportSubheading.Render(line.Text))
		case LineListItem:
			sb.WriteString(m.styles.ReportListItem.Render("• " + line.Text))
		default:
			sb.WriteString(m.styles.ReportParagraph.Render(line.Text))
		}
		sb.WriteString("\n")
	}

	if p := m.state.Project; p != nil {
		if bidders, err := m.state.CompiledBidders(); err == nil && len(bidders) > 0 {
			sb.WriteString("\n")
			sb.WriteString(RenderBidChart(m.styles, bidders, "Approved Budget", p.Budget))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Sources"))
	sb.WriteString("\n")
	if len(m.state.Report.Sources) == 0 {
		sb.WriteString(m.styles.Muted.Render("no web sources were cited"))
		sb.WriteString("\n")
	}
	for i, src := range m.state.Report.Sources {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, src.Display()))
		sb.WriteString("   " + m.styles.Muted.Render(src.URI) + "\n")
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			// If glamour panics, return plain text
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
