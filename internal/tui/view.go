package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapcraft-io/kdbg/pkg/types"
)

// View renders the picker
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}

// Pick runs the picker on the given terminal streams and returns the chosen pod
func Pick(pattern string, candidates []types.Target, in io.Reader, out io.Writer) (types.Target, error) {
	p := tea.NewProgram(NewModel(pattern, candidates), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return types.Target{}, fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return types.Target{}, ErrPickCancelled
	}
	if target, chosen := m.Choice(); chosen {
		return target, nil
	}
	return types.Target{}, ErrPickCancelled
}
