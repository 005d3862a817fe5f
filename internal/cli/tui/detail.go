package tui

import (
	"ItemKeeper/internal/cli/model"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDescription
	fieldCount
)

// DetailView edits a working copy of one item. It never touches the item it was
// given; SavedMsg and CancelledMsg carry the copy back to the container.
type DetailView struct {
	originalName string
	item         model.Item
	inputs       [fieldCount]textinput.Model
	field        int
	focused      bool
	width        int
}

func NewDetailView() DetailView {
	d := DetailView{width: 40}
	for i := range d.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 0 // values are stored as-is
		d.inputs[i] = ti
	}
	d.inputs[fieldName].Placeholder = "Enter a name"
	d.inputs[fieldDescription].Placeholder = "Enter a description"
	return d
}

// SetItem receives a new input item: the original name is kept for the title
// and the inputs are loaded from a fresh duplicate.
func (d *DetailView) SetItem(it model.Item) {
	d.originalName = it.Name
	d.item = it
	d.inputs[fieldName].SetValue(it.Name)
	d.inputs[fieldName].CursorEnd()
	d.inputs[fieldDescription].SetValue(it.Description)
	d.inputs[fieldDescription].CursorEnd()
	d.field = fieldName
	if d.focused {
		d.inputs[fieldDescription].Blur()
		d.inputs[fieldName].Focus()
	}
}

// Item returns the current working copy.
func (d DetailView) Item() model.Item { return d.item }

func (d DetailView) Title() string {
	if !d.item.IsNew() {
		return "Editing " + d.originalName
	}
	return "Create New Item"
}

func (d *DetailView) SetWidth(w int) {
	d.width = w
	for i := range d.inputs {
		// box padding, prompt and the trailing cursor cell
		d.inputs[i].Width = w - 2 - len(d.inputs[i].Prompt) - 1
	}
}

func (d *DetailView) Focus() tea.Cmd {
	d.focused = true
	return d.inputs[d.field].Focus()
}

func (d *DetailView) Blur() {
	d.focused = false
	for i := range d.inputs {
		d.inputs[i].Blur()
	}
}

func (d DetailView) Focused() bool { return d.focused }

func (d DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Save):
			return d, emit(SavedMsg{Item: d.item})
		case key.Matches(km, keys.Cancel):
			return d, emit(CancelledMsg{Item: d.item})
		case key.Matches(km, keys.NextField):
			return d, d.moveField(1)
		case key.Matches(km, keys.PrevField):
			return d, d.moveField(-1)
		}
	}

	var cmd tea.Cmd
	d.inputs[d.field], cmd = d.inputs[d.field].Update(msg)
	d.item.Name = d.inputs[fieldName].Value()
	d.item.Description = d.inputs[fieldDescription].Value()
	return d, cmd
}

func (d *DetailView) moveField(delta int) tea.Cmd {
	d.inputs[d.field].Blur()
	d.field = (d.field + delta + fieldCount) % fieldCount
	if !d.focused {
		return nil
	}
	return d.inputs[d.field].Focus()
}

func (d DetailView) View() string {
	lines := []string{
		titleStyle.Render(d.Title()),
		"",
		mutedStyle.Render("Item Name"),
		d.inputs[fieldName].View(),
		"",
		mutedStyle.Render("Item Description"),
		d.inputs[fieldDescription].View(),
		"",
		buttonStyle.Render("[ Cancel: esc ]") + " " + buttonStyle.Bold(true).Render("[ Save: enter ]"),
	}
	content := strings.Join(lines, "\n")
	if d.focused {
		return detailBorderFocused.Width(d.width).Render(content)
	}
	return detailBorder.Width(d.width).Render(content)
}
