package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

func RunBoard(dash Dashboard, out io.Writer) error {
	m := newBoardModel(dash)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
