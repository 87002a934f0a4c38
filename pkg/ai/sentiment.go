package ai

import (
	"context"
	"fmt"
	"strings"
)

// SentimentResponse is the structured output returned by sentiment
// classification calls.
type SentimentResponse struct {
	Label      string  `json:"label" jsonschema_description:"Sentiment label for the sentence"`
	Confidence float64 `json:"confidence" jsonschema_description:"Classifier confidence between 0.0 and 1.0"`
}

var positiveLabels = map[string]struct{}{
	"positive":   {},
	"joy":        {},
	"love":       {},
	"optimism":   {},
	"admiration": {},
	"approval":   {},
	"caring":     {},
}

var negativeLabels = map[string]struct{}{
	"negative":    {},
	"anger":       {},
	"sadness":     {},
	"fear":        {},
	"disgust":     {},
	"disapproval": {},
	"annoyance":   {},
}

// SentimentScore converts a label/confidence pair into a signed score in
// [-1.0, 1.0]. Positive label families map to +confidence, negative families
// to -confidence, everything else (neutral included) to 0.0.
func SentimentScore(label string, confidence float64) float64 {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	label = strings.ToLower(strings.TrimSpace(label))
	if _, ok := positiveLabels[label]; ok {
		return confidence
	}
	if _, ok := negativeLabels[label]; ok {
		return -confidence
	}
	return 0.0
}

// CallSentimentAI classifies one sentence and returns its signed sentiment
// score. The zero score is returned with a non-nil error when the call or
// response parsing fails.
func CallSentimentAI(ctx context.Context, client SentimentAIClient, sentence string, opts ...GenerateOption) (float64, error) {
	if client == nil {
		return 0, fmt.Errorf("sentiment: no AI client configured")
	}

	opts = append([]GenerateOption{WithSystemPrompts(SentimentSystemPrompt)}, opts...)

	var response SentimentResponse
	err := client.GenerateCompletionWithFormat(
		ctx,
		"sentiment_classification",
		"Sentiment label and confidence for a single sentence",
		SentimentPrompt(sentence),
		&response,
		opts...,
	)
	if err != nil {
		return 0, fmt.Errorf("sentiment classification failed: %w", err)
	}

	return SentimentScore(response.Label, response.Confidence), nil
}
