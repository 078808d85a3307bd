package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ListView is a read-only projection of the item sequence: one entry per
// item, in sequence order, keyed by position. It holds nothing but the bound
// snapshot; the parent rebinds it whenever the sequence changes.
type ListView struct {
	items []string
}

// Ensure ListView implements View.
var _ View = (*ListView)(nil)

// NewListView creates a list view bound to items. A nil slice is a wiring
// bug and is rejected; an empty slice is a valid, empty list.
func NewListView(items []string) (*ListView, error) {
	if items == nil {
		return nil, errors.New("listview: nil items slice")
	}
	v := &ListView{}
	v.SetItems(items)
	return v, nil
}

// SetItems rebinds the view to a new snapshot of the sequence.
func (v *ListView) SetItems(items []string) {
	v.items = make([]string, len(items))
	copy(v.items, items)
}

// Entries returns the entry texts in order: exactly one per item, each equal
// to its item.
func (v *ListView) Entries() []string {
	out := make([]string, len(v.items))
	copy(out, v.items)
	return out
}

// Init implements View.
func (v *ListView) Init() tea.Cmd { return nil }

// Update implements View. The list is display-only; it consumes no events.
func (v *ListView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

// View implements View. Each item renders as its own row; an empty-string
// item is a blank row.
func (v *ListView) View() string {
	if len(v.items) == 0 {
		return Styles.Empty.Render("No items yet.")
	}
	lines := make([]string, len(v.items))
	for i, it := range v.items {
		lines[i] = Styles.Normal.Render(it)
	}
	return strings.Join(lines, "\n")
}
