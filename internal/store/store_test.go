package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/arhaan/disha/internal/roadmap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "disha.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testCollection() *roadmap.Collection {
	c := roadmap.NewCollection()
	rm, _ := roadmap.New("DSA", []roadmap.Day{
		{Day: 1, Tasks: []roadmap.Task{{Text: "Learn arrays"}}},
		{Day: 2, Tasks: []roadmap.Task{{Text: "Learn linked lists"}}},
	})
	c.Add(rm)
	rm2, _ := roadmap.New("Web Dev", []roadmap.Day{
		{Day: 1, Tasks: []roadmap.Task{{Text: "HTML basics"}}},
	})
	c.Add(rm2)
	return c
}

func TestRoadmapRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	c := testCollection()
	c.Get("DSA").Days[0].IsCompleted = true

	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := repo.Load(ctx)
	if !reflect.DeepEqual(got.Topics(), c.Topics()) {
		t.Errorf("topics = %v, want %v", got.Topics(), c.Topics())
	}
	for _, topic := range c.Topics() {
		if !reflect.DeepEqual(got.Get(topic), c.Get(topic)) {
			t.Errorf("roadmap %q changed across round trip", topic)
		}
	}
}

func TestRoadmapRepo_LoadMissingIsEmpty(t *testing.T) {
	s := openTestStore(t)

	c := s.RoadmapRepo().Load(context.Background())
	if c.Len() != 0 {
		t.Errorf("fresh load Len = %d, want 0", c.Len())
	}
	if c.Active() != "" {
		t.Errorf("fresh load Active = %q, want empty", c.Active())
	}
}

func TestRoadmapRepo_SaveEmptyRemovesKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testCollection()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, roadmap.NewCollection()); err != nil {
		t.Fatalf("Save empty: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM blobs WHERE key = 'roadmaps'`).Scan(&count); err != nil {
		t.Fatalf("count blobs: %v", err)
	}
	if count != 0 {
		t.Errorf("blob row count = %d, want 0 after empty save", count)
	}

	if got := repo.Load(ctx); got.Len() != 0 {
		t.Errorf("load after empty save Len = %d, want 0", got.Len())
	}
}

func TestRoadmapRepo_CorruptBlobLoadsEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().Exec(
		`INSERT INTO blobs (key, value) VALUES ('roadmaps', 'not json at all')`)
	if err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	c := s.RoadmapRepo().Load(ctx)
	if c.Len() != 0 {
		t.Errorf("corrupt blob Len = %d, want 0", c.Len())
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "roadmap",
			InputTokens:  10 + i,
			OutputTokens: 20,
			LatencyMs:    150,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].ID <= events[1].ID {
		t.Error("events not newest-first")
	}
	if events[0].Purpose != "roadmap" || !events[0].Success {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestEventRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)

	e, err := s.EventRepo().GetLLMEvent(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing event, got %+v", e)
	}
}

func TestEventRepo_GetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "quiz",
		Success:      false,
		ErrorMessage: "rate limited",
		RequestBody:  "[user]\ngenerate a quiz",
		ResponseBody: "",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ErrorMessage != "rate limited" || e.Success {
		t.Errorf("unexpected event: %+v", e)
	}
}
