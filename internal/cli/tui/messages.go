package tui

import (
	"ItemKeeper/internal/cli/model"

	tea "github.com/charmbracelet/bubbletea"
)

// --- view events ---

// SelectedMsg is emitted by ListView when an item is picked for editing.
type SelectedMsg struct{ Item model.Item }

// DeletedMsg is emitted by ListView when the delete affordance of an item is used.
type DeletedMsg struct{ Item model.Item }

// SavedMsg carries the edited working copy from DetailView.
type SavedMsg struct{ Item model.Item }

// CancelledMsg carries the discarded working copy from DetailView.
type CancelledMsg struct{ Item model.Item }

// --- network results ---

type itemsLoadedMsg struct {
	items []model.Item
	err   error
}

type saveResultMsg struct {
	sent  model.Item
	saved model.Item
	err   error
}

type deleteResultMsg struct {
	item model.Item
	err  error
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
