package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
)

// decodeContent turns raw model text into Content. The text may be wrapped
// in a single markdown code fence; nothing else is repaired.
func decodeContent(text string, spec Spec, cfg Config) (*Content, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &llm.ErrEmptyResponse{Detail: "model returned no text"}
	}

	body := llm.StripCodeFence(text)
	if body == "" {
		return nil, &llm.ErrEmptyResponse{Detail: "code fence is empty"}
	}

	if err := llm.ValidateJSON(ContentSchema, []byte(body)); err != nil {
		return nil, err
	}

	var content Content
	if err := json.Unmarshal([]byte(body), &content); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: body, Err: fmt.Errorf("decode quiz content: %w", err)}
	}

	if cfg.StrictCounts {
		if err := checkCounts(&content, spec); err != nil {
			return nil, &llm.ErrInvalidResponse{Content: body, Err: err}
		}
	}

	return &content, nil
}

func checkCounts(c *Content, spec Spec) error {
	if len(c.QuizElements) != spec.QuestionsCount {
		return fmt.Errorf("got %d questions, want %d", len(c.QuizElements), spec.QuestionsCount)
	}
	if len(c.QuizResults) != len(spec.Types) {
		return fmt.Errorf("got %d results, want %d", len(c.QuizResults), len(spec.Types))
	}
	return nil
}

// Parse decodes a saved quiz document with the same rules applied to
// model output, minus count checks.
func Parse(data []byte) (*Content, error) {
	content, err := decodeContent(string(data), Spec{}, Config{})
	if err != nil {
		return nil, llm.Wrap(err)
	}
	return content, nil
}
