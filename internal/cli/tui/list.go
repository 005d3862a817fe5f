package tui

import (
	"ItemKeeper/internal/cli/model"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	cardHeight       = 3 // name line, description line, gap
	deleteAffordance = "[x]"
	deleteWidth      = len(deleteAffordance)
	cursorWidth      = 2
	minListWidth     = cursorWidth + deleteWidth + 4
)

// ListView renders items as cards and reports user intent as SelectedMsg / DeletedMsg.
// Mouse coordinates it receives are relative to its top-left corner.
type ListView struct {
	items   []model.Item
	cursor  int
	offset  int // index of the first visible card
	width   int
	height  int
	focused bool
}

func NewListView() ListView {
	return ListView{width: 40, height: 20, focused: true}
}

// SetItems replaces the rendered items, keeping the cursor in range.
func (l *ListView) SetItems(items []model.Item) {
	l.items = items
	l.clamp()
}

func (l *ListView) SetSize(width, height int) {
	if width < minListWidth {
		width = minListWidth
	}
	if height < cardHeight {
		height = cardHeight
	}
	l.width, l.height = width, height
	l.clamp()
}

func (l *ListView) SetFocused(f bool) { l.focused = f }

func (l ListView) Cursor() int { return l.cursor }

func (l ListView) visible() int {
	return l.height / cardHeight
}

func (l *ListView) clamp() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if v := l.visible(); v > 0 && l.cursor >= l.offset+v {
		l.offset = l.cursor - v + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			l.cursor--
			l.clamp()
		case key.Matches(msg, keys.Down):
			l.cursor++
			l.clamp()
		case key.Matches(msg, keys.Select):
			if it, ok := l.current(); ok {
				return l, emit(SelectedMsg{Item: it})
			}
		case key.Matches(msg, keys.Delete):
			if it, ok := l.current(); ok {
				return l, emit(DeletedMsg{Item: it})
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return l, nil
		}
		idx, onDelete, ok := l.hit(msg.X, msg.Y)
		if !ok {
			return l, nil
		}
		l.cursor = idx
		l.clamp()
		// the delete affordance sits inside the card: only DeletedMsg is emitted for it
		if onDelete {
			return l, emit(DeletedMsg{Item: l.items[idx]})
		}
		return l, emit(SelectedMsg{Item: l.items[idx]})
	}
	return l, nil
}

func (l ListView) current() (model.Item, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return model.Item{}, false
	}
	return l.items[l.cursor], true
}

// hit maps a point to a card index and reports whether it is on the delete affordance.
func (l ListView) hit(x, y int) (idx int, onDelete bool, ok bool) {
	if x < 0 || y < 0 || x >= l.width || y >= l.visible()*cardHeight {
		return 0, false, false
	}
	row := y % cardHeight
	if row == cardHeight-1 {
		return 0, false, false
	}
	idx = l.offset + y/cardHeight
	if idx >= len(l.items) {
		return 0, false, false
	}
	return idx, row == 0 && x >= l.width-deleteWidth, true
}

func (l ListView) View() string {
	if len(l.items) == 0 {
		return mutedStyle.Render(fit("No items. Press n to create one.", l.width))
	}
	textWidth := l.width - cursorWidth - deleteWidth
	end := l.offset + l.visible()
	if end > len(l.items) {
		end = len(l.items)
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		it := l.items[i]
		prefix := "  "
		name := titleStyle.Render(fit(it.Name, textWidth))
		if i == l.cursor && l.focused {
			prefix = selectedStyle.Render("> ")
			name = selectedStyle.Render(fit(it.Name, textWidth))
		}
		b.WriteString(prefix + name + errorStyle.Render(deleteAffordance) + "\n")
		b.WriteString("  " + mutedStyle.Render(fit(it.Description, l.width-cursorWidth)) + "\n")
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
