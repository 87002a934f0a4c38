package base

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexus-nlp/nexus/pkg/common"
	"github.com/nexus-nlp/nexus/pkg/store"

	"github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SaveNetwork persists a fully assembled graph inside one transaction and
// returns the generated public ID. Nodes carry their metrics inline so a
// stored network round-trips without recomputation.
func (s *NetworkDBStorage) SaveNetwork(ctx context.Context, graph *common.Graph) (string, error) {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()

	publicID, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var networkID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO networks (public_id, name, components, discarded_mentions)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		publicID, graph.Name, graph.Components, graph.Discarded,
	).Scan(&networkID)
	if err != nil {
		return "", fmt.Errorf("insert network: %w", err)
	}

	for _, entity := range graph.Entities {
		m := graph.Metrics[entity.ID]
		_, err := tx.Exec(ctx, `
			INSERT INTO network_nodes (
				network_id, node_id, display_name, aliases, node_type, mention_count,
				degree, weighted_degree, betweenness, closeness
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			networkID, entity.ID, entity.Name, entity.Aliases, entity.Type, entity.MentionCount,
			m.Degree, m.WeightedDegree, m.Betweenness, m.Closeness,
		)
		if err != nil {
			return "", fmt.Errorf("insert node %s: %w", entity.ID, err)
		}
	}

	for _, edge := range graph.Edges {
		_, err := tx.Exec(ctx, `
			INSERT INTO network_edges (
				network_id, source_id, target_id, weight, cooccurrence_count,
				sentence_indices, sentiment, sentiment_count
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			networkID, edge.Source, edge.Target, edge.Weight, edge.Count,
			edge.SentenceIndices, edge.Sentiment, edge.SentimentCount,
		)
		if err != nil {
			return "", fmt.Errorf("insert edge %s-%s: %w", edge.Source, edge.Target, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return publicID, nil
}

// GetNetwork loads a network by public ID, including node metrics and edges.
func (s *NetworkDBStorage) GetNetwork(ctx context.Context, id string) (*common.Graph, error) {
	var (
		networkID  int64
		name       string
		components int
		discarded  int
	)
	err := s.conn.QueryRow(ctx, `
		SELECT id, name, components, discarded_mentions
		FROM networks
		WHERE public_id = $1`,
		id,
	).Scan(&networkID, &name, &components, &discarded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNetworkNotFound
		}
		return nil, err
	}

	graph := &common.Graph{
		ID:         id,
		Name:       name,
		Components: components,
		Discarded:  discarded,
		Metrics:    make(map[string]common.NodeMetrics),
	}

	rows, err := s.conn.Query(ctx, `
		SELECT node_id, display_name, aliases, node_type, mention_count,
		       degree, weighted_degree, betweenness, closeness
		FROM network_nodes
		WHERE network_id = $1
		ORDER BY node_id`,
		networkID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entity common.Entity
		var m common.NodeMetrics
		if err := rows.Scan(
			&entity.ID, &entity.Name, &entity.Aliases, &entity.Type, &entity.MentionCount,
			&m.Degree, &m.WeightedDegree, &m.Betweenness, &m.Closeness,
		); err != nil {
			return nil, err
		}
		graph.Entities = append(graph.Entities, entity)
		graph.Metrics[entity.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	edgeRows, err := s.conn.Query(ctx, `
		SELECT source_id, target_id, weight, cooccurrence_count,
		       sentence_indices, sentiment, sentiment_count
		FROM network_edges
		WHERE network_id = $1
		ORDER BY source_id, target_id`,
		networkID,
	)
	if err != nil {
		return nil, err
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var edge common.Edge
		if err := edgeRows.Scan(
			&edge.Source, &edge.Target, &edge.Weight, &edge.Count,
			&edge.SentenceIndices, &edge.Sentiment, &edge.SentimentCount,
		); err != nil {
			return nil, err
		}
		graph.Edges = append(graph.Edges, edge)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, err
	}

	return graph, nil
}

// ListNetworks returns summaries of all stored networks, newest first.
func (s *NetworkDBStorage) ListNetworks(ctx context.Context) ([]store.NetworkSummary, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT n.public_id, n.name, n.created_at,
		       (SELECT COUNT(*) FROM network_nodes WHERE network_id = n.id),
		       (SELECT COUNT(*) FROM network_edges WHERE network_id = n.id)
		FROM networks n
		ORDER BY n.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []store.NetworkSummary{}
	for rows.Next() {
		var s store.NetworkSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.NodeCount, &s.EdgeCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// DeleteNetwork removes a network and all of its nodes and edges. Deleting a
// missing network returns ErrNetworkNotFound.
func (s *NetworkDBStorage) DeleteNetwork(ctx context.Context, id string) error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()

	tag, err := s.conn.Exec(ctx, `DELETE FROM networks WHERE public_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNetworkNotFound
	}
	return nil
}
