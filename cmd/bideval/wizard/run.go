package wizard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/catalog"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/logging"
	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/report"
)

// Run starts the wizard and blocks until the user quits.
func Run(source catalog.Source, requester report.Requester, version string) error {
	logging.UI("wizard starting")
	defer logging.UI("wizard stopped")

	model := New(source, requester, version)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}
