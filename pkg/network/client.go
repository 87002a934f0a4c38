package network

// NetworkClient runs the analysis pipeline that turns a mention sequence into
// a weighted co-occurrence network. It holds the tuning knobs for alias
// resolution, windowing, and filtering.
//
// A NetworkClient should be created using NewNetworkClient. Clients carry no
// per-run state, so a single client is safe to reuse across documents and
// goroutines.
type NetworkClient struct {
	minMentions    int
	windowRadius   int
	aliasMinLength int
}

// NewNetworkClientParams defines the configuration parameters for creating
// a new NetworkClient.
//
// MinMentions is the minimum mention count for an entity to survive filtering.
// WindowRadius is the co-occurrence window span in sentences (0 means
// same-sentence only). AliasMinLength is the minimum normalized length a
// surface form must have before it can merge into a longer alias.
type NewNetworkClientParams struct {
	MinMentions    int
	WindowRadius   int
	AliasMinLength int
}

const (
	defaultMinMentions    = 3
	defaultWindowRadius   = 0
	defaultAliasMinLength = 3
)

// NewNetworkClient creates and returns a new NetworkClient configured with
// the provided parameters. Out-of-range values fall back to the defaults;
// a MinMentions of zero means "use the default", so callers that want every
// entity kept should pass 1.
//
// Example:
//
//	params := network.NewNetworkClientParams{
//		MinMentions:  3,
//		WindowRadius: 1,
//	}
//	client := network.NewNetworkClient(params)
//	graph, err := client.Assemble(mentions)
func NewNetworkClient(params NewNetworkClientParams) *NetworkClient {
	minMentions := params.MinMentions
	if minMentions <= 0 {
		minMentions = defaultMinMentions
	}
	windowRadius := params.WindowRadius
	if windowRadius < 0 {
		windowRadius = defaultWindowRadius
	}
	aliasMinLength := params.AliasMinLength
	if aliasMinLength < 1 {
		aliasMinLength = defaultAliasMinLength
	}

	return &NetworkClient{
		minMentions:    minMentions,
		windowRadius:   windowRadius,
		aliasMinLength: aliasMinLength,
	}
}
