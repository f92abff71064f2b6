package llm

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"crlf", "```json\r\n{\"a\":1}\r\n```", `{"a":1}`},
		{"prose before fence", "Here you go:\n```json\n{}\n```", "Here you go:\n```json\n{}\n```"},
		{"unterminated fence", "```json\n{\"a\":1}", "```json\n{\"a\":1}"},
		{"empty", "   ", ""},
		{"empty fence", "```json\n```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripCodeFence_Idempotent(t *testing.T) {
	in := "```json\n{\"quizzes\":{\"title\":\"Animals\"}}\n```"
	once := StripCodeFence(in)
	if twice := StripCodeFence(once); twice != once {
		t.Errorf("second strip changed text: %q -> %q", once, twice)
	}
}
