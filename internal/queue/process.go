package queue

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nexus-nlp/nexus/internal/storage"
	"github.com/nexus-nlp/nexus/pkg/ai"
	"github.com/nexus-nlp/nexus/pkg/loader"
	"github.com/nexus-nlp/nexus/pkg/loader/s3"
	"github.com/nexus-nlp/nexus/pkg/logger"
	"github.com/nexus-nlp/nexus/pkg/network"
	"github.com/nexus-nlp/nexus/pkg/store/base"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyzeNetworkMsg is the job payload published to the analyze queue by the
// API and consumed by the worker.
type AnalyzeNetworkMsg struct {
	Message string `json:"message"`

	Name    string `json:"name"`
	FileKey string `json:"file_key"`

	MinMentions  int  `json:"min_mentions"`
	WindowRadius int  `json:"window_radius"`
	Sentiment    bool `json:"sentiment"`
}

// ProcessAnalyzeMessage runs one analysis job end to end: fetch the mention
// document from S3, assemble the network, optionally enrich edge sentiment,
// and persist the result.
//
// An empty result after filtering is a terminal condition, not a transient
// failure; the message is dropped without retry.
func ProcessAnalyzeMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	aiClient ai.SentimentAIClient,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(AnalyzeNetworkMsg)
	if err := json.Unmarshal([]byte(msg), &data); err != nil {
		return err
	}

	s3Loader := s3.NewS3MentionFileLoaderWithClient(storage.BucketName(), s3Client)

	file := loader.MentionFile{
		ID:       data.FileKey,
		FilePath: data.FileKey,
		Loader:   s3Loader,
	}
	doc, err := file.GetDocument(ctx)
	if err != nil {
		return err
	}

	logger.Info("[Queue] Assembling network",
		"name", data.Name,
		"mentions", len(doc.Mentions),
		"min_mentions", data.MinMentions,
		"window_radius", data.WindowRadius,
	)

	client := network.NewNetworkClient(network.NewNetworkClientParams{
		MinMentions:  data.MinMentions,
		WindowRadius: data.WindowRadius,
	})

	graph, err := client.Assemble(doc.Mentions)
	if err != nil {
		if errors.Is(err, network.ErrEmptyGraph) {
			logger.Warn("[Queue] Network is empty after filtering, dropping job", "name", data.Name, "err", err)
			return nil
		}
		return err
	}
	graph.Name = data.Name

	if data.Sentiment {
		if err := network.EnrichSentiment(ctx, graph, doc.Sentences, aiClient); err != nil {
			return err
		}
	}

	networkStorage := base.NewNetworkDBStorageWithConnection(conn)
	publicID, err := networkStorage.SaveNetwork(ctx, graph)
	if err != nil {
		return err
	}

	logger.Info("[Queue] Network saved",
		"id", publicID,
		"name", data.Name,
		"nodes", len(graph.Entities),
		"edges", len(graph.Edges),
		"components", graph.Components,
	)
	return nil
}
