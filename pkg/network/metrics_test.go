package network

import (
	"math"
	"testing"

	"github.com/nexus-nlp/nexus/pkg/common"
)

func entityList(ids ...string) []common.Entity {
	entities := make([]common.Entity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, common.Entity{ID: id, Name: id})
	}
	return entities
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestComputeMetricsTwoNodes(t *testing.T) {
	entities := entityList("a", "b")
	edges := []common.Edge{{Source: "a", Target: "b", Weight: 1, Count: 1}}

	metrics, components := computeMetrics(entities, edges)
	if components != 1 {
		t.Fatalf("components = %d, want 1", components)
	}

	for _, id := range []string{"a", "b"} {
		m := metrics[id]
		if m.Degree != 1 {
			t.Fatalf("%s degree = %d, want 1", id, m.Degree)
		}
		if !almostEqual(m.WeightedDegree, 1) {
			t.Fatalf("%s weighted degree = %v, want 1", id, m.WeightedDegree)
		}
		if !almostEqual(m.Closeness, 1) {
			t.Fatalf("%s closeness = %v, want 1", id, m.Closeness)
		}
		if m.Betweenness != 0 {
			t.Fatalf("%s betweenness = %v, want 0 (component below normalization size)", id, m.Betweenness)
		}
	}
}

func TestComputeMetricsPath(t *testing.T) {
	// a - b - c, all weights 1. b sits on the only a..c shortest path.
	entities := entityList("a", "b", "c")
	edges := []common.Edge{
		{Source: "a", Target: "b", Weight: 1, Count: 1},
		{Source: "b", Target: "c", Weight: 1, Count: 1},
	}

	metrics, components := computeMetrics(entities, edges)
	if components != 1 {
		t.Fatalf("components = %d, want 1", components)
	}

	if !almostEqual(metrics["b"].Betweenness, 1) {
		t.Fatalf("b betweenness = %v, want 1", metrics["b"].Betweenness)
	}
	if metrics["a"].Betweenness != 0 || metrics["c"].Betweenness != 0 {
		t.Fatalf("endpoint betweenness = %v / %v, want 0", metrics["a"].Betweenness, metrics["c"].Betweenness)
	}

	// a reaches b at distance 1 and c at distance 2: closeness 2/3.
	if !almostEqual(metrics["a"].Closeness, 2.0/3.0) {
		t.Fatalf("a closeness = %v, want 2/3", metrics["a"].Closeness)
	}
	if !almostEqual(metrics["b"].Closeness, 1) {
		t.Fatalf("b closeness = %v, want 1", metrics["b"].Closeness)
	}

	if metrics["b"].Degree != 2 || !almostEqual(metrics["b"].WeightedDegree, 2) {
		t.Fatalf("b degree=%d weighted=%v, want 2 and 2", metrics["b"].Degree, metrics["b"].WeightedDegree)
	}
}

func TestComputeMetricsWeightedShortestPaths(t *testing.T) {
	// Strong edges are short: the a-b-c route (distance 1/4 + 1/4) beats the
	// direct a-c edge (distance 1), so b lies between a and c.
	entities := entityList("a", "b", "c")
	edges := []common.Edge{
		{Source: "a", Target: "b", Weight: 4, Count: 4},
		{Source: "b", Target: "c", Weight: 4, Count: 4},
		{Source: "a", Target: "c", Weight: 1, Count: 1},
	}

	metrics, _ := computeMetrics(entities, edges)
	if !almostEqual(metrics["b"].Betweenness, 1) {
		t.Fatalf("b betweenness = %v, want 1 (strong path should win)", metrics["b"].Betweenness)
	}

	// a reaches b at 0.25 and c at 0.5: closeness 2/0.75.
	if !almostEqual(metrics["a"].Closeness, 2.0/0.75) {
		t.Fatalf("a closeness = %v, want %v", metrics["a"].Closeness, 2.0/0.75)
	}
}

func TestComputeMetricsDisconnected(t *testing.T) {
	entities := entityList("a", "b", "c", "d")
	edges := []common.Edge{
		{Source: "a", Target: "b", Weight: 1, Count: 1},
		{Source: "c", Target: "d", Weight: 1, Count: 1},
	}

	metrics, components := computeMetrics(entities, edges)
	if components != 2 {
		t.Fatalf("components = %d, want 2", components)
	}

	// Closeness only sees the node's own component.
	for _, id := range []string{"a", "b", "c", "d"} {
		if !almostEqual(metrics[id].Closeness, 1) {
			t.Fatalf("%s closeness = %v, want 1", id, metrics[id].Closeness)
		}
	}
}

func TestComputeMetricsEqualPathsSplitCredit(t *testing.T) {
	// Diamond: a-b-d and a-c-d with equal weights. b and c each carry half of
	// the single a..d dependency: 0.5 raw, normalized by (4-1)(4-2)/2 = 3.
	entities := entityList("a", "b", "c", "d")
	edges := []common.Edge{
		{Source: "a", Target: "b", Weight: 1, Count: 1},
		{Source: "a", Target: "c", Weight: 1, Count: 1},
		{Source: "b", Target: "d", Weight: 1, Count: 1},
		{Source: "c", Target: "d", Weight: 1, Count: 1},
	}

	metrics, _ := computeMetrics(entities, edges)
	want := 0.5 / 3.0
	if !almostEqual(metrics["b"].Betweenness, want) {
		t.Fatalf("b betweenness = %v, want %v", metrics["b"].Betweenness, want)
	}
	if !almostEqual(metrics["c"].Betweenness, want) {
		t.Fatalf("c betweenness = %v, want %v", metrics["c"].Betweenness, want)
	}
}
