package loader

import (
	"errors"
	"testing"

	"github.com/nexus-nlp/nexus/pkg/common"
)

func TestParseMentionDocument(t *testing.T) {
	data := []byte(`{
		"name": "act one",
		"sentences": ["Caesar spoke.", "Brutus listened."],
		"mentions": [
			{"surface_form": "Caesar", "offset": 0, "sentence_index": 0},
			{"surface_form": "Brutus", "offset": 14, "sentence_index": 1}
		]
	}`)

	doc, err := ParseMentionDocument(data)
	if err != nil {
		t.Fatalf("ParseMentionDocument() error = %v", err)
	}
	if doc.Name != "act one" {
		t.Fatalf("Name = %q, want %q", doc.Name, "act one")
	}
	if len(doc.Mentions) != 2 || len(doc.Sentences) != 2 {
		t.Fatalf("parsed %d mentions and %d sentences, want 2 and 2", len(doc.Mentions), len(doc.Sentences))
	}
}

func TestParseMentionDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "no mentions",
			data: `{"name": "empty", "mentions": []}`,
			want: ErrNoMentions,
		},
		{
			name: "unordered offsets",
			data: `{"mentions": [
				{"surface_form": "b", "offset": 10, "sentence_index": 0},
				{"surface_form": "a", "offset": 3, "sentence_index": 0}
			]}`,
			want: ErrUnordered,
		},
		{
			name: "negative offset",
			data: `{"mentions": [
				{"surface_form": "a", "offset": -1, "sentence_index": 0}
			]}`,
			want: ErrNegativePosition,
		},
		{
			name: "negative sentence index",
			data: `{"mentions": [
				{"surface_form": "a", "offset": 0, "sentence_index": -3}
			]}`,
			want: ErrNegativePosition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMentionDocument([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseMentionDocument() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseMentionDocumentInvalidJSON(t *testing.T) {
	if _, err := ParseMentionDocument([]byte(`{`)); err == nil {
		t.Fatalf("ParseMentionDocument() accepted invalid JSON")
	}
}

func TestValidateSentenceIndexBounds(t *testing.T) {
	doc := &MentionDocument{
		Sentences: []string{"only one"},
		Mentions: []common.Mention{
			{Surface: "a", Offset: 0, SentenceIndex: 3},
		},
	}
	if err := doc.Validate(); err == nil {
		t.Fatalf("Validate() accepted sentence index past the sentence list")
	}
}

func TestValidateNegativePositions(t *testing.T) {
	doc := &MentionDocument{
		Mentions: []common.Mention{
			{Surface: "a", Offset: -1, SentenceIndex: -3},
		},
	}
	if err := doc.Validate(); !errors.Is(err, ErrNegativePosition) {
		t.Fatalf("Validate() error = %v, want ErrNegativePosition", err)
	}
}

func TestValidateEqualOffsetsAllowed(t *testing.T) {
	doc := &MentionDocument{
		Mentions: []common.Mention{
			{Surface: "a", Offset: 5, SentenceIndex: 0},
			{Surface: "b", Offset: 5, SentenceIndex: 0},
		},
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil for equal offsets", err)
	}
}
