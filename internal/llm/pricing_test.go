package llm

import "testing"

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  float64 // input price per MTok, 0 for unknown
	}{
		{"gpt-4o-mini", 0.15},
		{"anthropic.claude-3-haiku-20240307-v1:0", 0.25},
		{"arn:aws:bedrock:us-east-1::foundation-model/anthropic.claude-3-haiku-20240307-v1:0", 0.25},
		{"arn:aws:bedrock:us-east-1:123456789012:inference-profile/us.anthropic.claude-sonnet-4-20250514-v1:0", 3},
		{"mock", 0},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			if tt.want == 0 {
				if c != nil {
					t.Fatalf("expected no pricing, got %+v", c)
				}
				return
			}
			if c == nil {
				t.Fatal("expected pricing")
			}
			if c.InputPerMTok != tt.want {
				t.Errorf("input price = %v, want %v", c.InputPerMTok, tt.want)
			}
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	if got := c.Cost(1_000_000, 100_000); got != 4.5 {
		t.Errorf("Cost = %v, want 4.5", got)
	}
}
