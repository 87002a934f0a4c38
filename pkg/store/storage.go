package store

import (
	"context"
	"errors"
	"time"

	"github.com/nexus-nlp/nexus/pkg/common"
)

// ErrNetworkNotFound indicates a lookup for a network ID that does not exist.
var ErrNetworkNotFound = errors.New("store: network not found")

// NetworkSummary is the listing view of a stored network: identity and size,
// without the node and edge payload.
type NetworkSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	CreatedAt time.Time `json:"created_at"`
}

// NetworkStorage defines the interface for persisting and querying
// co-occurrence networks. It provides CRUD operations on assembled graphs
// including their nodes, edges, and per-node metrics.
type NetworkStorage interface {
	// SaveNetwork persists a fully assembled graph and returns its public ID.
	SaveNetwork(ctx context.Context, graph *common.Graph) (string, error)

	// GetNetwork loads a graph by public ID, including metrics.
	GetNetwork(ctx context.Context, id string) (*common.Graph, error)

	// ListNetworks returns summaries of all stored networks, newest first.
	ListNetworks(ctx context.Context) ([]NetworkSummary, error)

	// DeleteNetwork removes a network and all of its nodes and edges.
	DeleteNetwork(ctx context.Context, id string) error
}
