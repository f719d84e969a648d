package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/outfit-planner/internal/types"
)

// SaveRecommendationSet stores the full output of a query
func (db *DB) SaveRecommendationSet(ctx context.Context, set *types.RecommendationSet) error {
	content, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation set: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO recommendation_runs (id, weather, occasion, checked, valid, content)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		set.QueryID.String(), string(set.Weather), string(set.Occasion), set.Checked, set.Valid, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save recommendation set %s: %w", set.QueryID, err)
	}
	return nil
}

// GetRecommendationSet retrieves a stored query output. Returns nil, nil when not found.
func (db *DB) GetRecommendationSet(ctx context.Context, id uuid.UUID) (*types.RecommendationSet, error) {
	var content []byte
	err := db.conn.QueryRowContext(ctx,
		`SELECT content FROM recommendation_runs WHERE id = $1`,
		id.String(),
	).Scan(&content)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendation set %s: %w", id, err)
	}

	var set types.RecommendationSet
	if err := json.Unmarshal(content, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendation set %s: %w", id, err)
	}
	return &set, nil
}
