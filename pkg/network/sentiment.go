package network

import (
	"context"
	"sync"

	"github.com/nexus-nlp/nexus/internal/util"
	"github.com/nexus-nlp/nexus/pkg/ai"
	"github.com/nexus-nlp/nexus/pkg/common"
	"github.com/nexus-nlp/nexus/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	// maxSentimentSamples caps how many sentences are scored per edge.
	maxSentimentSamples = 5

	sentimentMaxTries   = 3
	sentimentConcurrent = 4
)

// EnrichSentiment scores the relationship tone of every edge in the graph by
// classifying a sample of the sentences that produced it. Scores are averaged
// per edge and written into Edge.Sentiment; Edge.SentimentCount records how
// many sentences contributed.
//
// Enrichment runs between assembly and publication, before the graph is
// handed to consumers. Edges whose sentences all fail classification keep the
// neutral score 0. The call only fails when ctx is canceled; individual model
// errors degrade to neutral and are logged.
func EnrichSentiment(
	ctx context.Context,
	graph *common.Graph,
	sentences []string,
	client ai.SentimentAIClient,
) error {
	if client == nil || len(sentences) == 0 {
		logger.Debug("[Sentiment] Skipping enrichment", "sentences", len(sentences))
		return nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sentimentConcurrent)

	for i := range graph.Edges {
		edge := &graph.Edges[i]

		samples := make([]string, 0, maxSentimentSamples)
		for _, idx := range edge.SentenceIndices {
			if idx < 0 || idx >= len(sentences) {
				continue
			}
			samples = append(samples, sentences[idx])
			if len(samples) == maxSentimentSamples {
				break
			}
		}
		if len(samples) == 0 {
			continue
		}

		g.Go(func() error {
			var sum float64
			var scored int
			for _, sentence := range samples {
				score, err := util.RetryWithContext(gctx, sentimentMaxTries, func(ctx context.Context) (float64, error) {
					return ai.CallSentimentAI(ctx, client, sentence)
				})
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					logger.Warn("[Sentiment] Classification failed, treating as neutral",
						"source", edge.Source, "target", edge.Target, "error", err)
					continue
				}
				sum += score
				scored++
			}
			if scored == 0 {
				return nil
			}

			mu.Lock()
			edge.Sentiment = sum / float64(scored)
			edge.SentimentCount = scored
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m := client.GetMetrics()
	logger.Debug("[Sentiment] Enrichment finished",
		"edges", len(graph.Edges),
		"total_tokens", m.TotalTokens,
		"duration_ms", m.DurationMs,
	)
	return nil
}
