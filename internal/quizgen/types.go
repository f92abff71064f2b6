package quizgen

import "encoding/json"

// Spec is what the caller asks for.
type Spec struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	// Types are the archetype labels, in order. Each one is echoed back
	// verbatim as a result's BaseType. Duplicates are passed through.
	Types []string `json:"types"`

	// QuestionsCount is the number of questions requested. Must be > 0.
	QuestionsCount int `json:"questions_count"`
}

// Content is a generated quiz: metadata, questions and results.
type Content struct {
	Quizzes      Metadata  `json:"quizzes"`
	QuizElements []Element `json:"quiz_elements"`
	QuizResults  []Result  `json:"quiz_results"`
}

// Metadata describes the quiz as a whole.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ScaleType   string `json:"scale_type"`
	Theme       string `json:"theme"`
	CreatedBy   string `json:"created_by"`
}

// Element is one question. Answers are on a 7-point scale from -3 to +3;
// each answer is multiplied by TypeWeights[label] and added to that
// archetype's score.
//
// Numbers are json.Number so quoted numerals ("3") decode as well.
type Element struct {
	ID           json.Number            `json:"id"`
	QuestionText string                 `json:"question_text"`
	TypeWeights  map[string]json.Number `json:"type_weights"`
}

// Result is one archetype outcome.
type Result struct {
	BaseType    string   `json:"base_type"`
	Modifier    string   `json:"modifier"`
	Description string   `json:"description"`
	Strengths   string   `json:"strengths"`
	Weaknesses  string   `json:"weaknesses"`
	GoodMatches []string `json:"good_matches,omitempty"`
	BadMatches  []string `json:"bad_matches,omitempty"`
	Advice      string   `json:"advice"`

	// ImagePrompt is an English illustration prompt starting with
	// "<modifier> <base_type>".
	ImagePrompt string `json:"image_prompt"`
}

// Name is the display name of the archetype, e.g. "Lone Wolf".
func (r Result) Name() string {
	if r.Modifier == "" {
		return r.BaseType
	}
	return r.Modifier + " " + r.BaseType
}
