package common

// Mention is a single detected occurrence of an entity name in a document,
// produced by an upstream NLP collaborator. Mentions are transient input and
// are never mutated by the analysis pipeline.
//
// Mentions must arrive ordered by Offset; the co-occurrence window logic
// depends on document order.
type Mention struct {
	Surface       string `json:"surface_form"`
	Offset        int    `json:"offset"`
	SentenceIndex int    `json:"sentence_index"`
	Type          string `json:"type,omitempty"`
}

// Entity is a canonical identity produced by alias resolution. All surface
// forms that resolve to the same referent share one Entity.
//
// The ID is derived from the normalized canonical form and is stable for a
// given mention sequence. It never changes once assigned.
type Entity struct {
	ID           string   `json:"id"`
	Name         string   `json:"display_name"`
	Aliases      []string `json:"aliases,omitempty"`
	Type         string   `json:"type,omitempty"`
	MentionCount int      `json:"mention_count"`
}

// Edge is an undirected, deduplicated co-occurrence relationship between two
// canonical entities. Source and Target hold entity IDs with Source < Target,
// so at most one Edge exists per unordered pair. Weight only grows during
// aggregation and no edge connects an entity to itself.
//
// SentenceIndices records the sentences that produced the edge, in ascending
// order. Sentiment is optional enrichment: the averaged score of the
// co-occurring sentences, in [-1, 1].
type Edge struct {
	Source          string  `json:"source_id"`
	Target          string  `json:"target_id"`
	Weight          float64 `json:"weight"`
	Count           int     `json:"cooccurrence_count"`
	SentenceIndices []int   `json:"sentence_indices,omitempty"`
	Sentiment       float64 `json:"sentiment,omitempty"`
	SentimentCount  int     `json:"sentiment_count,omitempty"`
}

// NodeMetrics holds the computed structural statistics for one entity.
//
// Degree counts incident edges, WeightedDegree sums their weights.
// Betweenness is the fraction of pairwise shortest paths passing through the
// node, normalized per connected component. Closeness is the inverse of the
// average shortest-path distance to all reachable nodes; nodes in other
// components do not contribute and an isolated node reports 0.
type NodeMetrics struct {
	Degree         int     `json:"degree"`
	WeightedDegree float64 `json:"weighted_degree"`
	Betweenness    float64 `json:"betweenness"`
	Closeness      float64 `json:"closeness"`
}

// Graph is the frozen network handed to downstream consumers. Once assembled
// it is read-only: no pipeline stage mutates a returned Graph.
//
// Components reports the number of connected components so that callers can
// tell when closeness values are confined to partial reachability.
type Graph struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name,omitempty"`
	Entities   []Entity               `json:"nodes"`
	Edges      []Edge                 `json:"edges"`
	Metrics    map[string]NodeMetrics `json:"metrics"`
	Components int                    `json:"components"`
	Discarded  int                    `json:"discarded_mentions,omitempty"`
}

// Density returns the ratio of present edges to possible edges.
func (g *Graph) Density() float64 {
	n := len(g.Entities)
	if n < 2 {
		return 0
	}
	return float64(2*len(g.Edges)) / float64(n*(n-1))
}
