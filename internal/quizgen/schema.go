package quizgen

import "github.com/abhisek/quizforge/internal/llm"

// ContentSchema checks the top-level shape of a generated quiz only. Field
// contents, lengths and weight balance are not verified.
var ContentSchema = &llm.Schema{
	Name:        "quiz-content",
	Description: "A personality quiz with metadata, questions and results",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizzes": map[string]any{
				"type": "object",
			},
			"quiz_elements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
			"quiz_results": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required": []any{"quizzes", "quiz_elements", "quiz_results"},
	},
}
