package network

import (
	"math"
	"reflect"
	"testing"

	"github.com/nexus-nlp/nexus/pkg/common"
)

func resolvedFixture(mentions ...resolvedMention) *resolution {
	seen := make(map[string]bool)
	res := &resolution{mentions: mentions}
	for _, m := range mentions {
		if !seen[m.entityID] {
			seen[m.entityID] = true
			res.entities = append(res.entities, common.Entity{ID: m.entityID, Name: m.entityID})
		}
	}
	return res
}

func TestAggregateSameSentence(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	res := resolvedFixture(
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "brutus", sentenceIndex: 0},
		resolvedMention{entityID: "antony", sentenceIndex: 0},
	)

	edges := c.aggregate(res)
	if len(edges) != 3 {
		t.Fatalf("aggregate() produced %d edges, want 3", len(edges))
	}

	for _, e := range edges {
		if e.Source >= e.Target {
			t.Fatalf("edge %q-%q violates Source < Target", e.Source, e.Target)
		}
		if e.Weight != 1.0 || e.Count != 1 {
			t.Fatalf("edge %q-%q weight=%v count=%d, want 1.0 and 1", e.Source, e.Target, e.Weight, e.Count)
		}
		if !reflect.DeepEqual(e.SentenceIndices, []int{0}) {
			t.Fatalf("edge %q-%q sentences = %v, want [0]", e.Source, e.Target, e.SentenceIndices)
		}
	}

	// Deterministic sorted order.
	want := [][2]string{{"antony", "brutus"}, {"antony", "caesar"}, {"brutus", "caesar"}}
	for i, e := range edges {
		if e.Source != want[i][0] || e.Target != want[i][1] {
			t.Fatalf("edge %d = %q-%q, want %q-%q", i, e.Source, e.Target, want[i][0], want[i][1])
		}
	}
}

func TestAggregateDuplicateMentionsCountOnce(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	res := resolvedFixture(
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "brutus", sentenceIndex: 0},
	)

	edges := c.aggregate(res)
	if len(edges) != 1 {
		t.Fatalf("aggregate() produced %d edges, want 1", len(edges))
	}
	if edges[0].Weight != 1.0 || edges[0].Count != 1 {
		t.Fatalf("duplicate mentions double-counted: weight=%v count=%d", edges[0].Weight, edges[0].Count)
	}
}

func TestAggregateNoSelfEdges(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{WindowRadius: 1, MinMentions: 1})

	res := resolvedFixture(
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "caesar", sentenceIndex: 1},
	)

	edges := c.aggregate(res)
	if len(edges) != 0 {
		t.Fatalf("aggregate() produced a self edge: %+v", edges)
	}
}

func TestAggregateWindowDecay(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{WindowRadius: 2, MinMentions: 1})

	res := resolvedFixture(
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "brutus", sentenceIndex: 1},
		resolvedMention{entityID: "antony", sentenceIndex: 2},
	)

	edges := c.aggregate(res)
	if len(edges) != 3 {
		t.Fatalf("aggregate() produced %d edges, want 3", len(edges))
	}

	// radius 2: distance 1 contributes 2/3, distance 2 contributes 1/3.
	weights := map[string]float64{
		"brutus|caesar": 2.0 / 3.0, // distance 1
		"antony|brutus": 2.0 / 3.0, // distance 1
		"antony|caesar": 1.0 / 3.0, // distance 2
	}
	for _, e := range edges {
		key := e.Source + "|" + e.Target
		want, ok := weights[key]
		if !ok {
			t.Fatalf("unexpected edge %q", key)
		}
		if math.Abs(e.Weight-want) > 1e-12 {
			t.Fatalf("edge %q weight = %v, want %v", key, e.Weight, want)
		}
		if e.Weight <= 0 {
			t.Fatalf("edge %q has non-positive weight %v", key, e.Weight)
		}
	}
}

func TestAggregateOverlappingWindowsNoDoubleCount(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{WindowRadius: 1, MinMentions: 1})

	// caesar and brutus co-occur in sentence 0 and again at distance 1.
	// Each sentence pair is visited once: (0,0) at 1.0 and (0,1) at 0.5.
	res := resolvedFixture(
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "brutus", sentenceIndex: 0},
		resolvedMention{entityID: "brutus", sentenceIndex: 1},
	)

	edges := c.aggregate(res)
	if len(edges) != 1 {
		t.Fatalf("aggregate() produced %d edges, want 1", len(edges))
	}
	e := edges[0]
	if math.Abs(e.Weight-1.5) > 1e-12 || e.Count != 2 {
		t.Fatalf("edge weight=%v count=%d, want 1.5 and 2", e.Weight, e.Count)
	}
	if !reflect.DeepEqual(e.SentenceIndices, []int{0, 1}) {
		t.Fatalf("edge sentences = %v, want [0 1]", e.SentenceIndices)
	}
}

func TestAggregateRadiusZeroIgnoresNeighbors(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})

	res := resolvedFixture(
		resolvedMention{entityID: "caesar", sentenceIndex: 0},
		resolvedMention{entityID: "brutus", sentenceIndex: 1},
	)

	edges := c.aggregate(res)
	if len(edges) != 0 {
		t.Fatalf("radius 0 produced cross-sentence edges: %+v", edges)
	}
}
