package play

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/scoring"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func renderQuestion(scale components.Scale, index, total, width int) string {
	var b strings.Builder

	barWidth := min(width-8, 60)
	b.WriteString("\n")
	b.WriteString(centered(width, components.NewProgressBar(index, total, barWidth).View()))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 72)).Render(scale.View())
	b.WriteString(centered(width, card))

	return b.String()
}

func renderResults(standings []scoring.Standing, err error, width int) string {
	var b strings.Builder

	if err != nil {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Negative.Render("Could not score this quiz: "+err.Error())))
		return b.String()
	}
	if len(standings) == 0 {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("This quiz has no results.")))
		return b.String()
	}

	top := standings[0].Result
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Subtitle.Render("You are")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Winner.Render(top.Name())))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 72)
	b.WriteString(centered(width, theme.Card.Width(cardWidth).Render(resultDetail(top))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cardWidth))
	b.WriteString(centered(width, divider))
	b.WriteString("\n")

	for i, s := range standings {
		line := fmt.Sprintf("%2d. %-32s %6.1f", i+1, s.Result.Name(), s.Score)
		style := theme.Unselected
		if i == 0 {
			style = theme.Selected
		}
		b.WriteString(centered(width, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func resultDetail(r quizgen.Result) string {
	var b strings.Builder

	if r.Description != "" {
		b.WriteString(theme.Body.Render(r.Description))
		b.WriteString("\n")
	}
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("\n")
		b.WriteString(theme.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(value))
		b.WriteString("\n")
	}
	field("Strengths", r.Strengths)
	field("Weaknesses", r.Weaknesses)
	field("Good matches", strings.Join(r.GoodMatches, ", "))
	field("Bad matches", strings.Join(r.BadMatches, ", "))
	field("Advice", r.Advice)

	return strings.TrimRight(b.String(), "\n")
}

// RenderPreview renders a non-interactive overview of content: metadata,
// every question with its type weights, and every result.
func RenderPreview(content *quizgen.Content, width int) string {
	var b strings.Builder

	meta := content.Quizzes
	b.WriteString(theme.Title.Render(meta.Title))
	b.WriteString("\n")
	if meta.Description != "" {
		b.WriteString(theme.Hint.Render(meta.Description))
		b.WriteString("\n")
	}
	info := fmt.Sprintf("scale: %s   theme: %s   by: %s", meta.ScaleType, meta.Theme, meta.CreatedBy)
	b.WriteString(theme.Weight.Render(info))
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render(fmt.Sprintf("Questions (%d)", len(content.QuizElements))))
	b.WriteString("\n")
	for i, e := range content.QuizElements {
		b.WriteString(theme.Body.Width(width).Render(fmt.Sprintf("%2d. %s", i+1, e.QuestionText)))
		b.WriteString("\n")
		b.WriteString("    " + renderWeights(e.TypeWeights))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf("Results (%d)", len(content.QuizResults))))
	b.WriteString("\n")
	for _, r := range content.QuizResults {
		b.WriteString(theme.Card.Width(min(width, 80)).Render(
			theme.Winner.Render(r.Name()) + "\n" + resultDetail(r) + "\n\n" +
				theme.Hint.Render("image: "+r.ImagePrompt)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderWeights(weights map[string]json.Number) string {
	labels := make([]string, 0, len(weights))
	for label := range weights {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		w := weights[label]
		style := theme.Weight
		if strings.HasPrefix(w.String(), "-") {
			style = theme.Negative
		}
		parts = append(parts, style.Render(label+" "+w.String()))
	}
	return strings.Join(parts, "  ")
}
