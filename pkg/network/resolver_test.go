package network

import (
	"reflect"
	"testing"

	"github.com/nexus-nlp/nexus/pkg/common"
)

func TestNormalizeSurface(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Caesar", want: "caesar"},
		{name: "punctuation stripped", input: "Caesar!", want: "caesar"},
		{name: "inner punctuation becomes space", input: "O'Brien", want: "o brien"},
		{name: "whitespace collapsed", input: "  Julius   Caesar  ", want: "julius caesar"},
		{name: "only punctuation", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeSurface(tc.input); got != tc.want {
				t.Fatalf("normalizeSurface(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolveMergesAliases(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	mentions := []common.Mention{
		{Surface: "Julius Caesar", Offset: 0, SentenceIndex: 0},
		{Surface: "Caesar", Offset: 10, SentenceIndex: 0},
		{Surface: "CAESAR!", Offset: 20, SentenceIndex: 1},
		{Surface: "Brutus", Offset: 30, SentenceIndex: 1},
	}

	res := c.resolve(mentions)
	if len(res.entities) != 2 {
		t.Fatalf("resolve() produced %d entities, want 2", len(res.entities))
	}

	caesar := res.entities[0]
	if caesar.ID != "julius caesar" {
		t.Fatalf("canonical ID = %q, want %q", caesar.ID, "julius caesar")
	}
	if caesar.MentionCount != 3 {
		t.Fatalf("MentionCount = %d, want 3", caesar.MentionCount)
	}
	wantAliases := []string{"CAESAR!", "Caesar", "Julius Caesar"}
	if !reflect.DeepEqual(caesar.Aliases, wantAliases) {
		t.Fatalf("Aliases = %v, want %v", caesar.Aliases, wantAliases)
	}

	// All three mentions map to the merged entity.
	for i := 0; i < 3; i++ {
		if res.mentions[i].entityID != "julius caesar" {
			t.Fatalf("mention %d resolved to %q, want %q", i, res.mentions[i].entityID, "julius caesar")
		}
	}
	if res.mentions[3].entityID != "brutus" {
		t.Fatalf("mention 3 resolved to %q, want %q", res.mentions[3].entityID, "brutus")
	}
}

func TestResolveShortFormsNeverMerge(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	mentions := []common.Mention{
		{Surface: "Jo Smith", Offset: 0, SentenceIndex: 0},
		{Surface: "Jo", Offset: 5, SentenceIndex: 0},
	}

	res := c.resolve(mentions)
	if len(res.entities) != 2 {
		t.Fatalf("resolve() merged a form below the minimum alias length: %d entities, want 2", len(res.entities))
	}
}

func TestResolveSubstringNotWholeWord(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	// "ann" is a substring of "annabel" but not a whole word of it.
	mentions := []common.Mention{
		{Surface: "Ann", Offset: 0, SentenceIndex: 0},
		{Surface: "Annabel", Offset: 5, SentenceIndex: 0},
	}

	res := c.resolve(mentions)
	if len(res.entities) != 2 {
		t.Fatalf("resolve() merged non-whole-word substring: %d entities, want 2", len(res.entities))
	}
}

func TestResolveDiscardsMalformed(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	mentions := []common.Mention{
		{Surface: "Caesar", Offset: 0, SentenceIndex: 0},
		{Surface: "!!!", Offset: 5, SentenceIndex: 0},
		{Surface: "   ", Offset: 9, SentenceIndex: 0},
	}

	res := c.resolve(mentions)
	if res.discarded != 2 {
		t.Fatalf("discarded = %d, want 2", res.discarded)
	}
	if len(res.entities) != 1 || len(res.mentions) != 1 {
		t.Fatalf("resolve() kept %d entities and %d mentions, want 1 and 1", len(res.entities), len(res.mentions))
	}
}

func TestResolveDisplayNameMostFrequent(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	mentions := []common.Mention{
		{Surface: "caesar", Offset: 0, SentenceIndex: 0},
		{Surface: "Caesar", Offset: 5, SentenceIndex: 0},
		{Surface: "Caesar", Offset: 9, SentenceIndex: 1},
	}

	res := c.resolve(mentions)
	if len(res.entities) != 1 {
		t.Fatalf("resolve() produced %d entities, want 1", len(res.entities))
	}
	if res.entities[0].Name != "Caesar" {
		t.Fatalf("display name = %q, want %q", res.entities[0].Name, "Caesar")
	}
}

func TestResolveEntityType(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	mentions := []common.Mention{
		{Surface: "Rome", Offset: 0, SentenceIndex: 0, Type: "LOC"},
		{Surface: "Rome", Offset: 5, SentenceIndex: 0, Type: "LOC"},
		{Surface: "Rome", Offset: 9, SentenceIndex: 1, Type: "ORG"},
	}

	res := c.resolve(mentions)
	if res.entities[0].Type != "LOC" {
		t.Fatalf("entity type = %q, want %q", res.entities[0].Type, "LOC")
	}
}

func TestResolveDeterministic(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	mentions := []common.Mention{
		{Surface: "Julius Caesar", Offset: 0, SentenceIndex: 0},
		{Surface: "Brutus", Offset: 10, SentenceIndex: 0},
		{Surface: "Caesar", Offset: 20, SentenceIndex: 1},
		{Surface: "Mark Antony", Offset: 30, SentenceIndex: 1},
		{Surface: "Antony", Offset: 40, SentenceIndex: 2},
	}

	first := c.resolve(mentions)
	second := c.resolve(mentions)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolve() is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
