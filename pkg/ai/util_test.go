package ai

import (
	"testing"
)

func TestUnmarshalFlexible(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SentimentResponse
	}{
		{
			name:  "valid json object",
			input: `{"label":"positive","confidence":0.9}`,
			want:  SentimentResponse{Label: "positive", Confidence: 0.9},
		},
		{
			name:  "unquoted keys and single quotes",
			input: `{label: 'negative', confidence: 0.4}`,
			want:  SentimentResponse{Label: "negative", Confidence: 0.4},
		},
		{
			name:  "trailing comma",
			input: `{"label":"neutral","confidence":1.0,}`,
			want:  SentimentResponse{Label: "neutral", Confidence: 1.0},
		},
		{
			name:  "missing end bracket",
			input: `{"label":"joy","confidence":0.7`,
			want:  SentimentResponse{Label: "joy", Confidence: 0.7},
		},
		{
			name:  "stringified json",
			input: `"{\"label\":\"fear\",\"confidence\":0.5}"`,
			want:  SentimentResponse{Label: "fear", Confidence: 0.5},
		},
		{
			name:  "duplicate leading brace",
			input: "{\n{\n  \"label\": \"anger\", \"confidence\": 0.3\n}\n",
			want:  SentimentResponse{Label: "anger", Confidence: 0.3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got SentimentResponse
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUnmarshalFlexibleRejectsGarbage(t *testing.T) {
	var got SentimentResponse
	if err := UnmarshalFlexible("not even close", &got); err == nil {
		t.Fatalf("UnmarshalFlexible() accepted non-JSON input")
	}
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema(&SentimentResponse{})
	if schema == nil {
		t.Fatalf("GenerateSchema() returned nil")
	}
}
