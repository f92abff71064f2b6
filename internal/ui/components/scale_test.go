package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestScale_DirectPick(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'1', -3},
		{'4', 0},
		{'7', 3},
	}
	for _, tt := range tests {
		s, _ := NewScale("q").Update(tea.KeyPressMsg{Code: tt.key, Text: string(tt.key)})
		if s.Value != tt.want {
			t.Errorf("key %c: value = %d, want %d", tt.key, s.Value, tt.want)
		}
	}
}

func TestScale_SubmitFreezes(t *testing.T) {
	s := NewScale("q")
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.Submitted || s.Value != 1 {
		t.Fatalf("submitted=%v value=%d", s.Submitted, s.Value)
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Value != 1 {
		t.Errorf("value changed after submit: %d", s.Value)
	}
}

func TestScale_View(t *testing.T) {
	out := NewScale("I enjoy crowds.").View()
	if !strings.Contains(out, "I enjoy crowds.") || !strings.Contains(out, "[●]") {
		t.Errorf("unexpected view:\n%s", out)
	}
}

func TestProgressBar_Percent(t *testing.T) {
	if p := NewProgressBar(1, 4, 40).Percent(); p != 0.25 {
		t.Errorf("percent = %v", p)
	}
	if p := NewProgressBar(3, 0, 40).Percent(); p != 0 {
		t.Errorf("percent with zero total = %v", p)
	}
	if !strings.Contains(NewProgressBar(2, 5, 40).View(), "2/5") {
		t.Error("expected counter in view")
	}
}
