package openai

import (
	"math"
	"sync"

	"github.com/nexus-nlp/nexus/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// SentimentOpenAIClient implements the ai.SentimentAIClient interface against
// an OpenAI-compatible chat completions endpoint.
//
// A SentimentOpenAIClient should be created using NewSentimentOpenAIClient.
type SentimentOpenAIClient struct {
	sentimentModel string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewSentimentOpenAIClientParams defines the configuration parameters for
// creating a new SentimentOpenAIClient.
//
// SentimentModel specifies the model used for sentence classification.
// ChatURL and ChatKey configure the chat/completion API endpoint; an empty
// ChatURL targets the official OpenAI API.
type NewSentimentOpenAIClientParams struct {
	SentimentModel string

	ChatURL string
	ChatKey string
}

// NewSentimentOpenAIClient creates and returns a new SentimentOpenAIClient
// configured with the provided parameters. The ChatClient is nil when no API
// key is configured.
func NewSentimentOpenAIClient(
	params NewSentimentOpenAIClientParams,
) *SentimentOpenAIClient {
	chatClient := newOpenaiClient(params.ChatURL, params.ChatKey)

	return &SentimentOpenAIClient{
		sentimentModel: params.SentimentModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics: ai.ModelMetrics{
			InputTokens:  0,
			OutputTokens: 0,
			TotalTokens:  0,
			DurationMs:   0,
		},

		ChatClient: chatClient,
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

// ResetMetrics clears all accumulated token and timing metrics to zero.
func (c *SentimentOpenAIClient) ResetMetrics() {
	c.metricsLock.Lock()
	c.metrics = ai.ModelMetrics{
		InputTokens:  0,
		OutputTokens: 0,
		TotalTokens:  0,
		DurationMs:   0,
	}
	c.metricsLock.Unlock()
}

// GetMetrics returns the accumulated token usage and timing metrics since the last reset.
func (c *SentimentOpenAIClient) GetMetrics() ai.ModelMetrics {
	return c.metrics
}

func (c *SentimentOpenAIClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs

	if c.metrics.DurationMs > 0 {
		tokensPerSecond := (float64(c.metrics.TotalTokens) * 1000.0) / float64(c.metrics.DurationMs)
		c.metrics.TokenPerSecond = float32(math.Round(tokensPerSecond*100) / 100)
	}
}
