package network

import (
	"sort"

	"github.com/nexus-nlp/nexus/pkg/common"
)

// aggregate scans the resolved mention sequence and accumulates one
// undirected edge per unordered entity pair that co-occurs within the
// proximity window.
//
// Window policy: every ordered sentence pair (s, s+d) with 0 <= d <= radius
// is visited exactly once, using the unique entity set of each sentence. For
// d == 0 the pairs are combinations within the sentence, for d > 0 the cross
// product of the two sentence sets. Because each sentence pair is visited
// once, overlapping windows never double-count.
//
// Contribution decays linearly with sentence distance:
//
//	w(d) = (radius+1-d) / (radius+1)
//
// so same-sentence pairs contribute 1.0 and the furthest in-window pairs
// contribute 1/(radius+1), which is always positive. Self-pairs are excluded.
func (c *NetworkClient) aggregate(res *resolution) []common.Edge {
	// Unique entity set per sentence, membership first-come.
	sentences := make(map[int]map[string]struct{})
	for _, m := range res.mentions {
		set, ok := sentences[m.sentenceIndex]
		if !ok {
			set = make(map[string]struct{})
			sentences[m.sentenceIndex] = set
		}
		set[m.entityID] = struct{}{}
	}

	indices := make([]int, 0, len(sentences))
	for idx := range sentences {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	sorted := make(map[int][]string, len(sentences))
	for idx, set := range sentences {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		sorted[idx] = ids
	}

	type accum struct {
		weight    float64
		count     int
		sentences map[int]struct{}
	}
	edges := make(map[string]*accum)

	record := func(a, b string, weight float64, si, sj int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		key := a + "|" + b
		e, ok := edges[key]
		if !ok {
			e = &accum{sentences: make(map[int]struct{})}
			edges[key] = e
		}
		e.weight += weight
		e.count++
		e.sentences[si] = struct{}{}
		e.sentences[sj] = struct{}{}
	}

	for _, si := range indices {
		left := sorted[si]

		// Same-sentence combinations at full weight.
		for i := 0; i < len(left); i++ {
			for j := i + 1; j < len(left); j++ {
				record(left[i], left[j], 1.0, si, si)
			}
		}

		for d := 1; d <= c.windowRadius; d++ {
			right, ok := sorted[si+d]
			if !ok {
				continue
			}
			weight := float64(c.windowRadius+1-d) / float64(c.windowRadius+1)
			for _, a := range left {
				for _, b := range right {
					record(a, b, weight, si, si+d)
				}
			}
		}
	}

	keys := make([]string, 0, len(edges))
	for key := range edges {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]common.Edge, 0, len(keys))
	for _, key := range keys {
		e := edges[key]
		sep := 0
		for i := range key {
			if key[i] == '|' {
				sep = i
				break
			}
		}

		sentenceIndices := make([]int, 0, len(e.sentences))
		for idx := range e.sentences {
			sentenceIndices = append(sentenceIndices, idx)
		}
		sort.Ints(sentenceIndices)

		out = append(out, common.Edge{
			Source:          key[:sep],
			Target:          key[sep+1:],
			Weight:          e.weight,
			Count:           e.count,
			SentenceIndices: sentenceIndices,
		})
	}

	return out
}
