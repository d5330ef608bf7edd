package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// While the filter input is open, keys belong to it
		if m.list.FilterState() == list.Filtering {
			break
		}
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKeyPress handles key presses outside the filter input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if selected, ok := m.list.SelectedItem().(listItem); ok {
			m.choice = selected.item.Target
			m.chosen = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case "esc":
		// First esc clears an applied filter
		if m.list.FilterState() == list.FilterApplied {
			break
		}
		return m.cancel()

	case "ctrl+c", "q":
		return m.cancel()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.cancelled = true
	m.quitting = true
	return m, tea.Quit
}
