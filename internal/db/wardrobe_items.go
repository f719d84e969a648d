package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/types"
)

// ErrItemNotFound is returned when an update targets an item that does not exist
var ErrItemNotFound = errors.New("wardrobe item not found")

const upsertItemSQL = `INSERT INTO wardrobe_items (id, name, category, color, style, formality, weather, available, unavailable_reason)
	 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	 ON CONFLICT (id) DO UPDATE SET
		name = $2, category = $3, color = $4, style = $5, formality = $6,
		weather = $7, available = $8, unavailable_reason = $9, updated_at = NOW()`

// ListItems returns every wardrobe item in insertion order
func (db *DB) ListItems(ctx context.Context) ([]types.Item, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, category, color, style, formality, weather, available, unavailable_reason
		 FROM wardrobe_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wardrobe items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []types.Item
	for rows.Next() {
		var item types.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Color, &item.Style,
			&item.Formality, &item.Weather, &item.Available, &item.UnavailableReason); err != nil {
			return nil, fmt.Errorf("failed to scan wardrobe item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wardrobe items: %w", err)
	}
	return items, nil
}

// LoadWardrobe builds an in-memory wardrobe from the stored items
func (db *DB) LoadWardrobe(ctx context.Context) (*inventory.Wardrobe, error) {
	items, err := db.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	w, err := inventory.FromItems(items)
	if err != nil {
		return nil, fmt.Errorf("stored wardrobe is invalid: %w", err)
	}
	return w, nil
}

// UpsertItem inserts an item or replaces the stored item with the same ID
func (db *DB) UpsertItem(ctx context.Context, item types.Item) error {
	_, err := db.conn.ExecContext(ctx, upsertItemSQL, itemArgs(item)...)
	if err != nil {
		return fmt.Errorf("failed to upsert item %d: %w", item.ID, err)
	}
	return nil
}

// SaveWardrobe upserts every item of w in a single transaction
func (db *DB) SaveWardrobe(ctx context.Context, w *inventory.Wardrobe) (int, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertItemSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	count := 0
	for _, item := range w.Items() {
		if _, err := stmt.ExecContext(ctx, itemArgs(item)...); err != nil {
			return 0, fmt.Errorf("failed to upsert item %d: %w", item.ID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit wardrobe: %w", err)
	}
	return count, nil
}

// SetAvailability marks an item available or unavailable
func (db *DB) SetAvailability(ctx context.Context, id int, available bool, reason string) error {
	if available {
		reason = ""
	} else if reason == "" {
		reason = inventory.DefaultUnavailableReason
	}

	result, err := db.conn.ExecContext(ctx,
		`UPDATE wardrobe_items SET available = $1, unavailable_reason = $2, updated_at = NOW() WHERE id = $3`,
		available, reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}
	return nil
}

// DeleteItem removes an item
func (db *DB) DeleteItem(ctx context.Context, id int) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM wardrobe_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}
	return nil
}

func itemArgs(item types.Item) []any {
	return []any{
		item.ID, item.Name, string(item.Category), item.Color, item.Style,
		item.Formality, string(item.Weather), item.Available, item.UnavailableReason,
	}
}

// isNoRows reports whether err is sql.ErrNoRows
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
