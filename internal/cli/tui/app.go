package tui

import (
	"ItemKeeper/internal/cli/model"
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ItemsService is the network side the container talks to.
type ItemsService interface {
	LoadItems(ctx context.Context) ([]model.Item, error)
	SaveItem(ctx context.Context, it model.Item) (model.Item, error)
	DeleteItem(ctx context.Context, it model.Item) error
}

type pane int

const (
	paneList pane = iota
	paneDetail
)

// screen layout: header line, blank line, then the panes side by side
const (
	listTop   = 2
	listLeft  = 0
	paneGap   = 2
	helpLines = 2
)

// App is the container: it owns the authoritative item list and the current
// selection, and turns view events into ItemsService calls.
type App struct {
	ctx    context.Context
	svc    ItemsService
	logger *zap.SugaredLogger

	items    []model.Item
	selected model.Item

	list   ListView
	detail DetailView
	focus  pane
	help   help.Model

	width  int
	height int
}

func New(ctx context.Context, svc ItemsService, logger *zap.SugaredLogger) App {
	a := App{
		ctx:    ctx,
		svc:    svc,
		logger: logger,
		list:   NewListView(),
		detail: NewDetailView(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	a.layout()
	a.detail.SetItem(a.selected)
	return a
}

// Items returns the authoritative list.
func (a App) Items() []model.Item { return a.items }

// Selected returns the item currently bound to the detail view.
func (a App) Selected() model.Item { return a.selected }

func (a App) Init() tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		items, err := svc.LoadItems(ctx)
		return itemsLoadedMsg{items: items, err: err}
	}
}

// ResetItem binds an empty item, which the detail view shows as "create new".
func (a *App) ResetItem() {
	a.SelectItem(model.Item{})
}

func (a *App) SelectItem(it model.Item) {
	a.selected = it
	a.detail.SetItem(it)
}

// SaveItem issues the save and returns the command carrying its result.
func (a *App) SaveItem(it model.Item) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	cmd := func() tea.Msg {
		saved, err := svc.SaveItem(ctx, it)
		return saveResultMsg{sent: it, saved: saved, err: err}
	}
	// Does not wait for the save to complete: the form is cleared now and the
	// result is applied to the list whenever it arrives.
	a.ResetItem()
	return cmd
}

// DeleteItem issues the delete and returns the command carrying its result.
func (a *App) DeleteItem(it model.Item) tea.Cmd {
	ctx, svc := a.ctx, a.svc
	cmd := func() tea.Msg {
		return deleteResultMsg{item: it, err: svc.DeleteItem(ctx, it)}
	}
	// Same as SaveItem: reset without waiting for the delete.
	a.ResetItem()
	return cmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.focus == paneDetail {
			var cmd tea.Cmd
			a.detail, cmd = a.detail.Update(msg)
			return a, cmd
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.New):
			a.ResetItem()
			return a, a.focusDetail()
		case key.Matches(msg, keys.Edit):
			return a, a.focusDetail()
		}
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		rel := msg
		rel.X, rel.Y = msg.X-listLeft, msg.Y-listTop
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(rel)
		return a, cmd

	case SelectedMsg:
		a.SelectItem(msg.Item)
		return a, a.focusDetail()

	case DeletedMsg:
		return a, a.DeleteItem(msg.Item)

	case SavedMsg:
		cmd := a.SaveItem(msg.Item)
		a.focusList()
		return a, cmd

	case CancelledMsg:
		a.ResetItem()
		a.focusList()
		return a, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			a.logger.Warnw("load items failed", "error", msg.err)
			return a, nil
		}
		a.setItems(msg.items)
		return a, nil

	case saveResultMsg:
		if msg.err != nil {
			a.logger.Warnw("save item failed", "id", msg.sent.ID, "error", msg.err)
			return a, nil
		}
		if !msg.sent.IsNew() {
			a.setItems(replaceItem(a.items, msg.saved))
		} else {
			a.setItems(append(slices.Clip(a.items), msg.saved))
		}
		return a, nil

	case deleteResultMsg:
		if msg.err != nil {
			a.logger.Warnw("delete item failed", "id", msg.item.ID, "error", msg.err)
			return a, nil
		}
		if i := slices.Index(a.items, msg.item); i >= 0 {
			a.setItems(slices.Concat(a.items[:i], a.items[i+1:]))
		}
		return a, nil
	}

	// cursor blink and other input internals
	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	return a, cmd
}

func (a *App) setItems(items []model.Item) {
	a.items = items
	a.list.SetItems(items)
}

func (a *App) focusDetail() tea.Cmd {
	a.focus = paneDetail
	a.list.SetFocused(false)
	return a.detail.Focus()
}

func (a *App) focusList() {
	a.focus = paneList
	a.detail.Blur()
	a.list.SetFocused(true)
}

func (a *App) listWidth() int {
	w := a.width/2 - paneGap
	if w < minListWidth {
		w = minListWidth
	}
	return w
}

func (a *App) layout() {
	bodyHeight := a.height - listTop - helpLines
	a.list.SetSize(a.listWidth(), bodyHeight)
	// border (2) and padding (2) of the detail box
	a.detail.SetWidth(a.width - a.listWidth() - paneGap - 4)
	a.help.Width = a.width
}

func (a App) View() string {
	header := titleStyle.Render("Items") + "  " + accentStyle.Render(fmt.Sprintf("%d", len(a.items)))
	gap := lipgloss.NewStyle().Width(paneGap).Render("")
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.list.View(), gap, a.detail.View())

	bindings := keys.listHelp()
	if a.focus == paneDetail {
		bindings = keys.detailHelp()
	}
	footer := helpStyle.Render(a.help.ShortHelpView(bindings))
	return header + "\n\n" + body + "\n\n" + footer
}

// replaceItem returns a copy of items with every entry sharing it.ID replaced by it.
func replaceItem(items []model.Item, it model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, cur := range items {
		if cur.ID == it.ID {
			out[i] = it
		} else {
			out[i] = cur
		}
	}
	return out
}
