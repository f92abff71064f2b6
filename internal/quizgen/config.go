package quizgen

// Config controls how quizzes are requested and decoded.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64

	// StrictCounts rejects output whose question or result counts differ
	// from the Spec. Off by default: counts are asked for, not enforced.
	StrictCounts bool
}

// DefaultConfig returns the standard request parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
