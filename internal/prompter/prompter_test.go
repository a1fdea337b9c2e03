package prompter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func TestEnterSubmitsAnswer(t *testing.T) {
	m := typeString(t, newModel("Dune"), "Science Fiction")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	final := next.(model)
	if !final.answered {
		t.Fatal("enter should mark the prompt answered")
	}
	if got := final.input.Value(); got != "Science Fiction" {
		t.Fatalf("unexpected input value %q", got)
	}
	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
}

func TestEscDismisses(t *testing.T) {
	m := typeString(t, newModel("Dune"), "half an ans")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	final := next.(model)
	if final.answered {
		t.Fatal("esc must not count as an answer")
	}
	if cmd == nil {
		t.Fatal("esc should quit the program")
	}
}

func TestViewShowsTitleAndHints(t *testing.T) {
	view := newModel("Dune").View()
	for _, want := range []string{"Dune", "SKIP", "esc"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
