// Package scoring turns Likert answers into archetype rankings.
package scoring

import (
	"fmt"
	"sort"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// Answer bounds of the 7-point scale.
const (
	MinAnswer = -3
	MaxAnswer = 3
)

// Standing is one archetype's total.
type Standing struct {
	Result quizgen.Result
	Score  float64
}

// Score multiplies each answer by its question's weights and sums the
// products per archetype. answers[i] answers content.QuizElements[i].
// Standings come back highest first; ties keep quiz_results order.
// Weights for labels without a result are ignored.
func Score(content *quizgen.Content, answers []int) ([]Standing, error) {
	if len(answers) != len(content.QuizElements) {
		return nil, fmt.Errorf("got %d answers for %d questions", len(answers), len(content.QuizElements))
	}

	totals := make(map[string]float64, len(content.QuizResults))
	for _, r := range content.QuizResults {
		totals[r.BaseType] = 0
	}

	for i, el := range content.QuizElements {
		a := answers[i]
		if a < MinAnswer || a > MaxAnswer {
			return nil, fmt.Errorf("answer %d for question %s is outside [%d, %d]", a, el.ID, MinAnswer, MaxAnswer)
		}
		for label, w := range el.TypeWeights {
			if _, ok := totals[label]; !ok {
				continue
			}
			weight, err := w.Float64()
			if err != nil {
				return nil, fmt.Errorf("question %s weight for %q: %w", el.ID, label, err)
			}
			totals[label] += float64(a) * weight
		}
	}

	standings := make([]Standing, len(content.QuizResults))
	for i, r := range content.QuizResults {
		standings[i] = Standing{Result: r, Score: totals[r.BaseType]}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	return standings, nil
}
