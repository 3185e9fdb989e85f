package store

import (
	"context"
	"fmt"

	"github.com/devu90197/CabDriverAgent/core"
)

// SaveDataset replaces the named road-network dataset with the given nodes
// and edges in one transaction.
func (s *Store) SaveDataset(ctx context.Context, name string, nodes []core.Node, edges []core.Edge) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_nodes WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("failed to clear dataset nodes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_edges WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("failed to clear dataset edges: %w", err)
	}

	for _, n := range nodes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO dataset_nodes (dataset, node_id, lat, lon) VALUES (?, ?, ?, ?)`,
			name, n.ID, n.Coord.Lat, n.Coord.Lon)
		if err != nil {
			return fmt.Errorf("failed to insert node %s: %w", n.ID, err)
		}
	}

	for _, e := range edges {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO dataset_edges (dataset, from_id, to_id, weight_km) VALUES (?, ?, ?, ?)`,
			name, e.From, e.To, e.WeightKm)
		if err != nil {
			return fmt.Errorf("failed to insert edge %s->%s: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// LoadDataset reads the named dataset back as node and edge slices, ordered
// deterministically by ID.
func (s *Store) LoadDataset(ctx context.Context, name string) ([]core.Node, []core.Edge, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node_id, lat, lon FROM dataset_nodes WHERE dataset = ? ORDER BY node_id`, name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	var nodes []core.Node
	for rows.Next() {
		var n core.Node
		if err := rows.Scan(&n.ID, &n.Coord.Lat, &n.Coord.Lon); err != nil {
			return nil, nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("row iteration error: %w", err)
	}

	erows, err := s.db.QueryContext(ctx,
		`SELECT from_id, to_id, weight_km FROM dataset_edges WHERE dataset = ? ORDER BY from_id, to_id`, name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer erows.Close()

	var edges []core.Edge
	for erows.Next() {
		var e core.Edge
		if err := erows.Scan(&e.From, &e.To, &e.WeightKm); err != nil {
			return nil, nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := erows.Err(); err != nil {
		return nil, nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(nodes) == 0 && len(edges) == 0 {
		return nil, nil, ErrDatasetNotFound
	}

	return nodes, edges, nil
}

// LoadGraph materializes the named dataset as a symmetric road graph with
// coordinates attached.
func (s *Store) LoadGraph(ctx context.Context, name string) (*core.Graph, error) {
	nodes, edges, err := s.LoadDataset(ctx, name)
	if err != nil {
		return nil, err
	}

	g, err := core.BuildFromEdges(edges, core.WithSymmetricEdges())
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, err
		}
		if err := g.SetCoord(n.ID, n.Coord); err != nil {
			return nil, err
		}
	}

	return g, nil
}
