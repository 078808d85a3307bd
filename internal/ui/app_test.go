package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestSeedThenSubmitAppends(t *testing.T) {
	m := NewAppModel([]string{"red", "blue"})
	adapter := m.AsTeaModel().(*appModelAdapter)

	adapter.Update(keyMsg("green"))
	adapter.Update(keyMsg("enter"))

	if diff := cmp.Diff([]string{"red", "blue", "green"}, m.Items.Items()); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"red", "blue", "green"}, m.List.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if m.Form.Value() != "" {
		t.Errorf("buffer should reset after submit, got %q", m.Form.Value())
	}
}

func TestSubmitEmptyBufferAppendsEmptyItem(t *testing.T) {
	m := NewAppModel([]string{"red", "blue"})
	adapter := m.AsTeaModel().(*appModelAdapter)

	adapter.Update(keyMsg("enter"))

	if diff := cmp.Diff([]string{"red", "blue", ""}, m.Items.Items()); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestNoSeedStartsEmpty(t *testing.T) {
	m := NewAppModel(nil)
	adapter := m.AsTeaModel().(*appModelAdapter)

	if m.Items.Len() != 0 {
		t.Errorf("expected empty sequence, got %d items", m.Items.Len())
	}
	if n := len(m.List.Entries()); n != 0 {
		t.Errorf("expected zero entries, got %d", n)
	}
	if view := adapter.View(); !strings.Contains(view, "No items") {
		t.Errorf("expected empty hint in view, got:\n%s", view)
	}
}

func TestInitStartsCursorBlink(t *testing.T) {
	m := NewAppModel(nil)
	adapter := m.AsTeaModel().(*appModelAdapter)

	if adapter.Init() == nil {
		t.Error("expected a blink cmd from Init")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(nil)
	adapter := m.AsTeaModel().(*appModelAdapter)

	_, cmd := adapter.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected a quit cmd from ctrl+c")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("expected tea.QuitMsg, got nil")
	} else if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestPrintableKeysReachForm(t *testing.T) {
	m := NewAppModel(nil)
	adapter := m.AsTeaModel().(*appModelAdapter)

	// "q" types into the form; only ctrl+c quits.
	_, _ = adapter.Update(keyMsg("q"))
	if m.Form.Value() != "q" {
		t.Errorf("expected %q in buffer, got %q", "q", m.Form.Value())
	}
}

func TestDirectAppendRebindsListView(t *testing.T) {
	m := NewAppModel([]string{"red"})

	m.Append("blue")

	if diff := cmp.Diff([]string{"red", "blue"}, m.List.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestWindowSizeCreatesViewport(t *testing.T) {
	m := NewAppModel([]string{"red", "blue"})
	adapter := m.AsTeaModel().(*appModelAdapter)

	adapter.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if !m.Ready {
		t.Fatal("expected Ready after WindowSizeMsg")
	}
	if m.Viewport.Width != 80 {
		t.Errorf("expected viewport width 80, got %d", m.Viewport.Width)
	}
	if want := 24 - chromeLines; m.Viewport.Height != want {
		t.Errorf("expected viewport height %d, got %d", want, m.Viewport.Height)
	}
	view := adapter.View()
	for _, want := range []string{"TODO", "red", "blue"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got:\n%s", want, view)
		}
	}
}

func TestScrollKeysGoToViewport(t *testing.T) {
	seed := make([]string, 30)
	for i := range seed {
		seed[i] = fmt.Sprintf("item-%d", i)
	}
	m := NewAppModel(seed)
	adapter := m.AsTeaModel().(*appModelAdapter)

	adapter.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.Viewport.YOffset != 0 {
		t.Fatalf("fresh viewport should start at the top, got offset %d", m.Viewport.YOffset)
	}

	adapter.Update(keyMsg("down"))
	if m.Viewport.YOffset != 1 {
		t.Errorf("expected offset 1 after down, got %d", m.Viewport.YOffset)
	}
	adapter.Update(keyMsg("up"))
	if m.Viewport.YOffset != 0 {
		t.Errorf("expected offset 0 after up, got %d", m.Viewport.YOffset)
	}

	// Scroll keys must not leak into the entry form.
	if m.Form.Value() != "" {
		t.Errorf("buffer should stay empty, got %q", m.Form.Value())
	}
}

func TestAppendScrollsToBottom(t *testing.T) {
	seed := make([]string, 30)
	for i := range seed {
		seed[i] = fmt.Sprintf("item-%d", i)
	}
	m := NewAppModel(seed)
	adapter := m.AsTeaModel().(*appModelAdapter)

	adapter.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	adapter.Update(keyMsg("newest"))
	adapter.Update(keyMsg("enter"))

	if !m.Viewport.AtBottom() {
		t.Error("viewport should follow the newest item")
	}
	if view := adapter.View(); !strings.Contains(view, "newest") {
		t.Errorf("view should contain the appended item, got:\n%s", view)
	}
}

func TestHelpFooterListsBindings(t *testing.T) {
	m := NewAppModel(nil)
	adapter := m.AsTeaModel().(*appModelAdapter)

	view := adapter.View()
	for _, want := range []string{"add item", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("help footer should mention %q, got:\n%s", want, view)
		}
	}
}
