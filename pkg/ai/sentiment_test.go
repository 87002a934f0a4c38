package ai

import "testing"

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float64
		want       float64
	}{
		{name: "positive", label: "positive", confidence: 0.9, want: 0.9},
		{name: "joy maps positive", label: "joy", confidence: 0.5, want: 0.5},
		{name: "admiration maps positive", label: "admiration", confidence: 1.0, want: 1.0},
		{name: "negative", label: "negative", confidence: 0.8, want: -0.8},
		{name: "anger maps negative", label: "anger", confidence: 0.6, want: -0.6},
		{name: "disapproval maps negative", label: "disapproval", confidence: 0.3, want: -0.3},
		{name: "neutral", label: "neutral", confidence: 0.95, want: 0},
		{name: "unknown label", label: "confused", confidence: 0.7, want: 0},
		{name: "case and whitespace folded", label: "  Positive ", confidence: 0.4, want: 0.4},
		{name: "confidence clamped high", label: "love", confidence: 1.7, want: 1.0},
		{name: "confidence clamped low", label: "sadness", confidence: -0.5, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SentimentScore(tc.label, tc.confidence); got != tc.want {
				t.Fatalf("SentimentScore(%q, %v) = %v, want %v", tc.label, tc.confidence, got, tc.want)
			}
		})
	}
}
