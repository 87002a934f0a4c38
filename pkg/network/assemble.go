package network

import (
	"fmt"

	"github.com/nexus-nlp/nexus/pkg/common"
	"github.com/nexus-nlp/nexus/pkg/logger"
)

// Assemble runs the full pipeline for one document: resolve aliases,
// aggregate co-occurrences, apply the minimum-mentions filter, and compute
// metrics. The returned Graph is frozen; callers must treat it as read-only.
//
// Filtering happens before metrics are computed, so the graph the consumer
// sees is exactly the graph the reported metrics describe. If filtering
// leaves zero nodes or zero edges the call fails with ErrEmptyGraph and no
// partial graph is returned.
func (c *NetworkClient) Assemble(mentions []common.Mention) (*common.Graph, error) {
	res := c.resolve(mentions)
	if res.discarded > 0 {
		logger.Debug("[Network] Discarded malformed mentions", "count", res.discarded)
	}

	edges := c.aggregate(res)

	entities, edges := c.filter(res.entities, edges)
	if len(entities) == 0 || len(edges) == 0 {
		return nil, fmt.Errorf("%w (min_mentions=%d)", ErrEmptyGraph, c.minMentions)
	}

	metrics, components := computeMetrics(entities, edges)
	if components > 1 {
		logger.Warn("[Network] Graph is disconnected; closeness is per-component", "components", components)
	}

	return &common.Graph{
		Entities:   entities,
		Edges:      edges,
		Metrics:    metrics,
		Components: components,
		Discarded:  res.discarded,
	}, nil
}

// filter removes entities below the minimum mention count along with every
// edge incident to a removed entity. Raising the threshold can only shrink
// the result.
func (c *NetworkClient) filter(entities []common.Entity, edges []common.Edge) ([]common.Entity, []common.Edge) {
	keptEntities := make([]common.Entity, 0, len(entities))
	kept := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if e.MentionCount >= c.minMentions {
			keptEntities = append(keptEntities, e)
			kept[e.ID] = struct{}{}
		}
	}

	keptEdges := make([]common.Edge, 0, len(edges))
	for _, e := range edges {
		if _, ok := kept[e.Source]; !ok {
			continue
		}
		if _, ok := kept[e.Target]; !ok {
			continue
		}
		keptEdges = append(keptEdges, e)
	}

	return keptEntities, keptEdges
}
