package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nexus-nlp/nexus/internal/util"
	"github.com/nexus-nlp/nexus/pkg/ai"
	oai "github.com/nexus-nlp/nexus/pkg/ai/ollama"
	gai "github.com/nexus-nlp/nexus/pkg/ai/openai"
	"github.com/nexus-nlp/nexus/pkg/common"
	"github.com/nexus-nlp/nexus/pkg/loader"
	loaderio "github.com/nexus-nlp/nexus/pkg/loader/io"
	"github.com/nexus-nlp/nexus/pkg/network"

	"github.com/spf13/cobra"
)

var (
	analyzeFile         string
	analyzeOut          string
	analyzeMinMentions  int
	analyzeWindowRadius int
	analyzeSentiment    bool
	analyzeTop          int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build a co-occurrence network from a mention document",
	Long: `Read a mention document, resolve aliases, aggregate windowed
co-occurrences, and compute centrality metrics. The resulting network is
printed as JSON or written to --out.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "mention document to analyze (required)")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "write network JSON to this file instead of stdout")
	analyzeCmd.Flags().IntVar(&analyzeMinMentions, "min-mentions", 3, "minimum mentions for an entity to be kept")
	analyzeCmd.Flags().IntVar(&analyzeWindowRadius, "window-radius", 0, "co-occurrence window span in sentences")
	analyzeCmd.Flags().BoolVar(&analyzeSentiment, "sentiment", false, "score edge sentiment with the configured AI adapter")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 10, "number of top-connected entities to print")
	analyzeCmd.MarkFlagRequired("file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file := loader.MentionFile{
		ID:       analyzeFile,
		FilePath: analyzeFile,
		Loader:   loaderio.NewIOMentionFileLoader(),
	}
	doc, err := file.GetDocument(ctx)
	if err != nil {
		return err
	}

	client := network.NewNetworkClient(network.NewNetworkClientParams{
		MinMentions:  analyzeMinMentions,
		WindowRadius: analyzeWindowRadius,
	})

	graph, err := client.Assemble(doc.Mentions)
	if err != nil {
		return err
	}
	graph.Name = doc.Name

	if analyzeSentiment {
		aiClient, err := newSentimentClient()
		if err != nil {
			return err
		}
		if err := network.EnrichSentiment(ctx, graph, doc.Sentences, aiClient); err != nil {
			return err
		}
	}

	out, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return err
	}

	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, out, 0o644); err != nil {
			return err
		}
	} else {
		fmt.Println(string(out))
	}

	printSummary(cmd, graph)
	return nil
}

func newSentimentClient() (ai.SentimentAIClient, error) {
	adapter := util.GetEnv("AI_ADAPTER")
	switch adapter {
	case "ollama":
		return oai.NewSentimentOllamaClient(oai.NewSentimentOllamaClientParams{
			SentimentModel: util.GetEnv("AI_SENTIMENT_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
		})
	default:
		return gai.NewSentimentOpenAIClient(gai.NewSentimentOpenAIClientParams{
			SentimentModel: util.GetEnv("AI_SENTIMENT_MODEL"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		}), nil
	}
}

func printSummary(cmd *cobra.Command, graph *common.Graph) {
	w := cmd.ErrOrStderr()

	fmt.Fprintf(w, "Network: %s\n", graph.Name)
	fmt.Fprintf(w, "  nodes:      %d\n", len(graph.Entities))
	fmt.Fprintf(w, "  edges:      %d\n", len(graph.Edges))
	fmt.Fprintf(w, "  density:    %.4f\n", graph.Density())
	fmt.Fprintf(w, "  components: %d\n", graph.Components)
	if graph.Discarded > 0 {
		fmt.Fprintf(w, "  discarded:  %d mentions\n", graph.Discarded)
	}

	type ranked struct {
		name   string
		degree float64
	}
	rankings := make([]ranked, 0, len(graph.Entities))
	for _, entity := range graph.Entities {
		rankings = append(rankings, ranked{
			name:   entity.Name,
			degree: graph.Metrics[entity.ID].WeightedDegree,
		})
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].degree != rankings[j].degree {
			return rankings[i].degree > rankings[j].degree
		}
		return rankings[i].name < rankings[j].name
	})

	top := analyzeTop
	if top > len(rankings) {
		top = len(rankings)
	}
	if top > 0 {
		fmt.Fprintf(w, "  top connected:\n")
		for _, r := range rankings[:top] {
			fmt.Fprintf(w, "    %-30s %.2f\n", r.name, r.degree)
		}
	}
}
