package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tapcraft-io/kdbg/pkg/types"
)

// ErrPickCancelled is returned when the user leaves the picker without choosing
var ErrPickCancelled = errors.New("selection cancelled")

const (
	pickerWidth     = 60
	pickerMaxHeight = 20
)

// Model is the candidate picker shown when a pattern matches several pods
type Model struct {
	list list.Model

	// Selection state
	choice    types.Target
	chosen    bool
	cancelled bool
	quitting  bool
}

// NewModel creates a picker over the given candidates
func NewModel(pattern string, candidates []types.Target) Model {
	delegate := list.NewDefaultDelegate()

	l := list.New(convertToListItems(types.TargetsToListItems(candidates)), delegate, pickerWidth, pickerHeight(len(candidates)))
	l.Title = fmt.Sprintf("Pods matching '%s'", pattern)
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{list: l}
}

// pickerHeight fits short candidate lists without leaving a tall blank area
func pickerHeight(n int) int {
	// title, help and pagination take about six lines, each item three
	h := n*3 + 6
	if h > pickerMaxHeight {
		return pickerMaxHeight
	}
	return h
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Choice returns the selected pod, if one was chosen
func (m Model) Choice() (types.Target, bool) {
	return m.choice, m.chosen
}

// Cancelled reports whether the user quit without choosing
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Item adapter for list.Item interface
type listItem struct {
	item types.ListItem
}

func (i listItem) FilterValue() string {
	return i.item.FilterValue()
}

func (i listItem) Title() string {
	return i.item.Title
}

func (i listItem) Description() string {
	return i.item.Description
}

// convertToListItems converts types.ListItem to list.Item
func convertToListItems(items []types.ListItem) []list.Item {
	result := make([]list.Item, len(items))
	for i, item := range items {
		result[i] = listItem{item: item}
	}
	return result
}
