package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SelectTable renders static rows with one selectable row, used by the
// project picker. Selection is an index into Rows; -1 disables the
// highlight entirely.
type SelectTable struct {
	Title    string
	Headers  []string
	Rows     [][]string
	Selected int
}

// NewSelectTable creates a table with the given title and headers and no
// selection.
func NewSelectTable(title string, headers []string) *SelectTable {
	return &SelectTable{
		Title:    title,
		Headers:  headers,
		Rows:     make([][]string, 0),
		Selected: -1,
	}
}

// AddRow appends a row.
func (t *SelectTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *SelectTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	// Column widths from headers and cells; lipgloss Width accounts for
	// styling escapes.
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.FieldLabel.Copy().Padding(0, 1)
	rowStyle := styles.Body.Copy().Padding(0, 1)
	selectedStyle := styles.FieldFocus.Copy().Padding(0, 1)
	sepStyle := styles.Muted

	// Header line with a leading gutter for the selection marker
	sb.WriteString("  ")
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := 2
	for _, w := range colWidths {
		totalWidth += w
	}
	totalWidth += len(t.Headers) - 1
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for r, row := range t.Rows {
		cellStyle := rowStyle
		if r == t.Selected {
			cellStyle = selectedStyle
			sb.WriteString(styles.FieldFocus.Render("> "))
		} else {
			sb.WriteString("  ")
		}
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(cellStyle.Width(colWidths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
