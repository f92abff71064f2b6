// Package play runs a generated quiz in the terminal and shows the
// ranked personality results.
package play

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/scoring"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseResults
)

type keyMap struct {
	Back key.Binding
	Quit key.Binding
	Done key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "previous"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "q", "esc"),
			key.WithHelp("Enter", "exit"),
		),
	}
}

// Model is the Bubble Tea model for a single play-through.
type Model struct {
	content   *quizgen.Content
	keys      keyMap
	phase     phase
	index     int
	answers   []int
	scale     components.Scale
	standings []scoring.Standing
	err       error
	width     int
	height    int
}

// New creates a model positioned on the first question.
func New(content *quizgen.Content) Model {
	m := Model{
		content: content,
		keys:    defaultKeys(),
		answers: make([]int, 0, len(content.QuizElements)),
	}
	if len(content.QuizElements) == 0 {
		m.finish()
		return m
	}
	m.scale = components.NewScale(content.QuizElements[0].QuestionText)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.phase == phaseResults {
			if key.Matches(msg, m.keys.Done) {
				return m, tea.Quit
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Back) {
			m.back()
			return m, nil
		}
	}

	if m.phase != phaseAnswering {
		return m, nil
	}

	var cmd tea.Cmd
	m.scale, cmd = m.scale.Update(msg)
	if m.scale.Submitted {
		m.answers = append(m.answers, m.scale.Value)
		m.index++
		if m.index < len(m.content.QuizElements) {
			m.scale = components.NewScale(m.content.QuizElements[m.index].QuestionText)
		} else {
			m.finish()
		}
	}
	return m, cmd
}

// back returns to the previous question, restoring its answer.
func (m *Model) back() {
	if m.index == 0 {
		return
	}
	m.index--
	prev := m.answers[m.index]
	m.answers = m.answers[:m.index]
	m.scale = components.NewScale(m.content.QuizElements[m.index].QuestionText)
	m.scale.Value = prev
}

func (m *Model) finish() {
	m.phase = phaseResults
	m.standings, m.err = scoring.Score(m.content, m.answers)
}

// Answers returns the answers given so far.
func (m Model) Answers() []int {
	return m.answers
}

// Standings returns the ranked results once every question is answered.
func (m Model) Standings() ([]scoring.Standing, error) {
	if m.phase != phaseResults {
		return nil, fmt.Errorf("quiz not finished: %d of %d answered", len(m.answers), len(m.content.QuizElements))
	}
	return m.standings, m.err
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	var status, content string
	var hints []layout.KeyHint

	if m.phase == phaseAnswering {
		status = fmt.Sprintf("Q %d/%d", m.index+1, len(m.content.QuizElements))
		content = renderQuestion(m.scale, m.index, len(m.content.QuizElements), m.width)
		s := m.scale.Keys
		hints = layout.HintsFrom(s.Left, s.Right, s.Direct, s.Submit, m.keys.Back, m.keys.Quit)
	} else {
		status = "Results"
		content = renderResults(m.standings, m.err, m.width)
		hints = layout.HintsFrom(m.keys.Done)
	}

	header := layout.RenderHeader(m.content.Quizzes.Title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run plays content interactively and returns the final standings. A
// player who quits early gets an error.
func Run(content *quizgen.Content) ([]scoring.Standing, error) {
	final, err := tea.NewProgram(New(content)).Run()
	if err != nil {
		return nil, fmt.Errorf("run quiz: %w", err)
	}
	return final.(Model).Standings()
}
