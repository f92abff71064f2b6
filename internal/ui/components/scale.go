package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/scoring"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// ScaleKeys are the bindings understood by Scale.
type ScaleKeys struct {
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
	Direct key.Binding
}

// DefaultScaleKeys returns arrow/vim navigation, enter to submit and
// 1-7 to pick a point directly.
func DefaultScaleKeys() ScaleKeys {
	return ScaleKeys{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "disagree"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "agree"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "answer"),
		),
		Direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "pick"),
		),
	}
}

// Scale is a 7-point agreement selector for one statement. The selected
// value ranges over scoring.MinAnswer..scoring.MaxAnswer.
type Scale struct {
	Statement string
	Value     int
	Submitted bool
	Keys      ScaleKeys
}

// NewScale creates a selector resting on the neutral point.
func NewScale(statement string) Scale {
	return Scale{
		Statement: statement,
		Keys:      DefaultScaleKeys(),
	}
}

// Update handles keyboard selection.
func (s Scale) Update(msg tea.Msg) (Scale, tea.Cmd) {
	if s.Submitted {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.Keys.Left):
		if s.Value > scoring.MinAnswer {
			s.Value--
		}
	case key.Matches(kmsg, s.Keys.Right):
		if s.Value < scoring.MaxAnswer {
			s.Value++
		}
	case key.Matches(kmsg, s.Keys.Direct):
		s.Value = int(kmsg.String()[0]-'1') + scoring.MinAnswer
	case key.Matches(kmsg, s.Keys.Submit):
		s.Submitted = true
	}

	return s, nil
}

// View renders the statement and the seven points.
func (s Scale) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Statement))
	b.WriteString("\n\n")

	points := make([]string, 0, scoring.MaxAnswer-scoring.MinAnswer+1)
	for v := scoring.MinAnswer; v <= scoring.MaxAnswer; v++ {
		c := theme.ScaleColors[v-scoring.MinAnswer]
		if v == s.Value {
			points = append(points, lipgloss.NewStyle().Foreground(c).Bold(true).Render("[●]"))
		} else {
			points = append(points, lipgloss.NewStyle().Foreground(c).Render(" ○ "))
		}
	}
	b.WriteString("Disagree  " + strings.Join(points, " ") + "  Agree")

	return b.String()
}
