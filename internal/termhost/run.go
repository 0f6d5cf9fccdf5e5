package termhost

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives m on the terminal with mouse reporting enabled until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if m.gen.Tracking() {
		m.lifecycle.OnBackground()
	}
	return err
}
