package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryForm is the single focusable input. Enter hands the current buffer to
// the submit callback, then clears and refocuses; the form never touches the
// item sequence directly.
type EntryForm struct {
	input  textinput.Model
	submit func(string)
}

// Ensure EntryForm implements View.
var _ View = (*EntryForm)(nil)

// NewEntryForm creates the form. submit receives the buffer value on enter,
// the empty string included; it is fixed for the life of the form.
func NewEntryForm(submit func(string)) *EntryForm {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item"
	ti.Focus()
	return &EntryForm{input: ti, submit: submit}
}

// Init implements View.
func (f *EntryForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Enter is consumed here; every other message goes
// to the textinput.
func (f *EntryForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		value := f.input.Value()
		if f.submit != nil {
			f.submit(value)
		}
		// Reset before focusing: the next frame starts from an empty,
		// focused buffer.
		f.input.Reset()
		return f, f.input.Focus()
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View implements View.
func (f *EntryForm) View() string {
	return f.input.View()
}

// Value returns the current buffer contents.
func (f *EntryForm) Value() string { return f.input.Value() }

// Focused reports whether the input has focus.
func (f *EntryForm) Focused() bool { return f.input.Focused() }
