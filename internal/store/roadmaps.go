package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/arhaan/disha/internal/roadmap"
)

// roadmapsKey is the fixed blob key for the serialized roadmap collection.
const roadmapsKey = "roadmaps"

// RoadmapRepo persists the whole roadmap collection as one JSON blob.
// The snapshot is overwritten on every save; the expected volume (a
// handful of topics, tens of days each) makes incremental writes not
// worth their complexity.
type RoadmapRepo struct {
	db *sql.DB
}

// Load reads the stored collection. A missing row loads as an empty
// collection. An unparsable blob is logged and also loads as empty; it
// is never surfaced as a user-facing error.
func (r *RoadmapRepo) Load(ctx context.Context) *roadmap.Collection {
	c := roadmap.NewCollection()

	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM blobs WHERE key = ?`, roadmapsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return c
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load roadmaps: %v\n", err)
		return c
	}

	if err := json.Unmarshal([]byte(value), c); err != nil {
		fmt.Fprintf(os.Stderr, "warning: parse stored roadmaps, starting empty: %v\n", err)
		return roadmap.NewCollection()
	}
	return c
}

// Save writes the full collection snapshot. An empty collection removes
// the row entirely rather than storing an empty object.
func (r *RoadmapRepo) Save(ctx context.Context, c *roadmap.Collection) error {
	if c.Len() == 0 {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM blobs WHERE key = ?`, roadmapsKey)
		if err != nil {
			return fmt.Errorf("delete roadmaps blob: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize roadmaps: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		roadmapsKey, string(data))
	if err != nil {
		return fmt.Errorf("write roadmaps blob: %w", err)
	}
	return nil
}

// Clear removes all persisted roadmap data.
func (r *RoadmapRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, roadmapsKey)
	return err
}
