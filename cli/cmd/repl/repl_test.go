package repl

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/calcsheet/log"
	"github.com/ardnew/calcsheet/sheet"
)

func testModel(t *testing.T, inputs ...string) model {
	t.Helper()

	return newModel(
		context.Background(),
		sheet.FromInputs(inputs),
		NewHistory(""),
		log.Logger{},
		sheet.DefaultFormat,
	)
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}

	return m
}

func typeLine(t *testing.T, m model, line string) model {
	t.Helper()

	return press(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
}

func TestModel_EnterAppendsRows(t *testing.T) {
	m := testModel(t)

	m = typeLine(t, m, "rate=3/4")
	m = typeLine(t, m, "rate*8")

	if got, want := m.sheet.Inputs(), []string{"rate=3/4", "rate*8"}; !slices.Equal(got, want) {
		t.Fatalf("Inputs() = %v, want %v", got, want)
	}

	r, _ := m.sheet.Row(1)
	if v, ok := r.Result(); !ok || v.String() != "6" {
		t.Errorf("Result() = %v, %v, want 6", v, ok)
	}

	if m.input.Value() != "" {
		t.Errorf("input = %q, want cleared", m.input.Value())
	}

	if m.history.Len() != 2 {
		t.Errorf("history.Len() = %d, want 2", m.history.Len())
	}
}

func TestModel_EscTogglesModeAndRunsCommands(t *testing.T) {
	m := testModel(t, "a=1/2")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeCtrl {
		t.Fatalf("mode = %v, want command mode", m.mode)
	}

	m = typeLine(t, m, "fractions")
	if m.format.ShowFractions {
		t.Error("fractions command did not toggle ShowFractions")
	}

	if got := m.listNames(); !strings.Contains(got, "a") || !strings.Contains(got, "0.5") {
		t.Errorf("listNames() = %q, want a = 0.5", got)
	}

	if got := m.sheet.Inputs(); !slices.Equal(got, []string{"a=1/2"}) {
		t.Errorf("commands must not add rows, Inputs() = %v", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeEval {
		t.Errorf("mode = %v, want formula mode", m.mode)
	}
}

func TestModel_QuitCommand(t *testing.T) {
	m := testModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = typeLine(t, m, "quit")

	if !m.quitting {
		t.Error("quit command did not set quitting")
	}

	if m.View() != "" {
		t.Errorf("View() = %q after quit, want empty", m.View())
	}
}

func TestModel_RenderRow(t *testing.T) {
	m := testModel(t, "x=7/2", "y++1", "1/0")

	tests := []struct {
		index int
		want  []string
	}{
		{0, []string{"[1]", "x=7/2", "= 7/2"}},
		{1, []string{"[2]", "y++1", "Expected expression", "Name is not defined"}},
		{2, []string{"[3]", "= !ERROR!"}},
	}

	for _, tt := range tests {
		r, ok := m.sheet.Row(tt.index)
		if !ok {
			t.Fatalf("Row(%d) missing", tt.index)
		}

		got := m.renderRow(r)
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Errorf("renderRow(%d) = %q, missing %q", tt.index, got, want)
			}
		}
	}
}

func TestModel_HistoryNavigation(t *testing.T) {
	m := testModel(t)

	m = typeLine(t, m, "a=1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = typeLine(t, m, "rows")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Value() != "rows" || m.mode != modeCtrl {
		t.Fatalf("Up: input = %q mode = %v, want rows in command mode", m.input.Value(), m.mode)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Value() != "a=1" || m.mode != modeEval {
		t.Fatalf("Up: input = %q mode = %v, want a=1 in formula mode", m.input.Value(), m.mode)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.input.Value() != "" || m.historyIdx != m.history.Len() {
		t.Errorf("Down past end: input = %q idx = %d, want cleared", m.input.Value(), m.historyIdx)
	}
}

func TestModel_TabCompletesNames(t *testing.T) {
	m := testModel(t, "rate=2", "rent=3")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("re")})
	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want rate and rent", m.matches)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	first := m.input.Value()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	second := m.input.Value()

	if first == second || !slices.Contains([]string{"rate", "rent"}, first) ||
		!slices.Contains([]string{"rate", "rent"}, second) {
		t.Errorf("tab cycle = %q then %q, want both names", first, second)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.input.Value() != "re" {
		t.Errorf("Esc during tab cycle: input = %q, want restored %q", m.input.Value(), "re")
	}
}

func TestRun_NilWorksheet(t *testing.T) {
	err := Run(context.Background(), nil, "", log.Logger{}, sheet.DefaultFormat)
	if !errors.Is(err, ErrNoWorksheet) {
		t.Errorf("Run(nil) error = %v, want %v", err, ErrNoWorksheet)
	}
}
