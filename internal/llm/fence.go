package llm

import (
	"regexp"
	"strings"
)

// fencePattern matches a whole-text markdown code block with an optional
// language tag, e.g. "```json\n{...}\n```".
var fencePattern = regexp.MustCompile("(?s)^```(?:[A-Za-z0-9_+-]+)?[ \t]*\r?\n?(.*?)\r?\n?```$")

// StripCodeFence returns the body of a fenced block when text (after
// trimming) is exactly one such block. Any other text is returned trimmed
// but otherwise unchanged.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	m := fencePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}
	return strings.TrimSpace(m[1])
}
