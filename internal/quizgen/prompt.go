package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
)

const promptRules = `You generate personality quizzes. Using the theme below (animals, RPG classes, mythological figures and so on) and the archetype list the user chose, produce the questions, the scoring weights and the result archetypes.

RULES

1. Archetypes
For every archetype in the list, invent one evocative modifier that fits the theme, for example "Lone" for "Wolf" or "Star-Reading" for "Mage".
Use the archetype name exactly as given for base_type. Put only the modifier in modifier.

2. Questions (type weights)
Write exactly the requested number of questions.
Every question is answered on a 7-point scale from -3 to +3.
Give every question a type_weights object with one numeric weight per archetype. The answer is multiplied by the weight and added to that archetype's score.
Keep the weights balanced so that no archetype stands out: the total of all weights should be the same for every archetype.

3. Results
Produce exactly one result per archetype, each with:
- base_type: the archetype name exactly as given
- modifier: the modifier only
- description: 100 to 200 characters
- strengths: 100 to 150 characters
- weaknesses: 100 to 150 characters
- good_matches: up to two compatible archetypes (optional)
- bad_matches: up to two incompatible archetypes (optional)
- advice: 100 to 150 characters
- image_prompt: an English illustration prompt of 100 to 200 characters

4. Image prompts
- Start with the full archetype name, modifier then base_type, e.g. "Star-Reading Mage ..."
- Write in English.
- Describe the archetype's mood and traits visually: atmosphere, background, colour palette.
- Suitable for all ages. No conflict, weapons or dangerous acts.
- Ask for a gentle fantasy illustration style.`

const outputShape = `{
  "quizzes": {
    "title": "string",
    "description": "string",
    "scale_type": "7-point (-3 to +3)",
    "theme": "string",
    "created_by": "system"
  },
  "quiz_elements": [
    {
      "id": number,
      "question_text": "string",
      "type_weights": {
        "<archetype 1>": number,
        "<archetype 2>": number
      }
    }
  ],
  "quiz_results": [
    {
      "base_type": "string",
      "modifier": "string",
      "description": "string",
      "strengths": "string",
      "weaknesses": "string",
      "good_matches": ["string", "string"],
      "bad_matches": ["string", "string"],
      "advice": "string",
      "image_prompt": "string"
    }
  ]
}`

// validateSpec rejects specs that cannot produce a meaningful quiz.
func validateSpec(spec Spec) error {
	if len(spec.Types) == 0 {
		return &llm.ErrInvalidRequest{Reason: "at least one type is required"}
	}
	for i, t := range spec.Types {
		if strings.TrimSpace(t) == "" {
			return &llm.ErrInvalidRequest{Reason: fmt.Sprintf("type %d is blank", i+1)}
		}
	}
	if spec.QuestionsCount <= 0 {
		return &llm.ErrInvalidRequest{Reason: "questions_count must be positive"}
	}
	return nil
}

// buildRequest encodes spec as a single-message model request.
func buildRequest(spec Spec, cfg Config) (llm.Request, error) {
	if err := validateSpec(spec); err != nil {
		return llm.Request{}, err
	}

	return llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(spec)},
		},
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}, nil
}

func buildPrompt(spec Spec) string {
	var b strings.Builder

	b.WriteString(promptRules)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Title: %s\n", spec.Title)
	fmt.Fprintf(&b, "Description: %s\n", spec.Description)
	b.WriteString("Archetypes: ")
	for i, t := range spec.Types {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, t)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Number of questions: %d\n\n", spec.QuestionsCount)

	b.WriteString("OUTPUT\n")
	b.WriteString("Respond with raw JSON only, in exactly this shape. No commentary and no markdown code fences.\n\n")
	b.WriteString(outputShape)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Generate exactly %d questions and exactly %d results.", spec.QuestionsCount, len(spec.Types))

	return b.String()
}
