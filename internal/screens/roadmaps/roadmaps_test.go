package roadmaps

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/store"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "disha.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := roadmap.NewCollection()
	rm, err := roadmap.New("DSA", []roadmap.Day{
		{Day: 1, Tasks: []roadmap.Task{{Text: "Learn arrays"}}},
		{Day: 2, Tasks: []roadmap.Task{{Text: "Learn linked lists"}}},
	})
	if err != nil {
		t.Fatalf("build roadmap: %v", err)
	}
	c.Add(rm)

	return &state.State{
		Roadmaps:   s.RoadmapRepo(),
		Events:     s.EventRepo(),
		Collection: c,
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestToggleDayPersistsBeforeUpdateReturns(t *testing.T) {
	st := newTestState(t)
	scr := New(st)

	// Move focus to the day pane and toggle the first day. The save
	// must happen inside Update itself: a returned command would run on
	// another goroutine, racing the snapshot against later edits and
	// losing the write entirely if the program quits first.
	scr.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := scr.Update(keyPress('c'))
	if cmd != nil {
		t.Fatal("toggle returned a pending command; save must complete during Update")
	}

	got := st.Roadmaps.Load(context.Background())
	rm := got.Get("DSA")
	if rm == nil {
		t.Fatal("roadmap missing after toggle")
	}
	if !rm.Days[0].IsCompleted {
		t.Error("day 1 toggle was not persisted before Update returned")
	}
}

func TestDeletePersistsBeforeUpdateReturns(t *testing.T) {
	st := newTestState(t)
	scr := New(st)

	scr.Update(keyPress('x'))
	_, cmd := scr.Update(keyPress('y'))
	if cmd != nil {
		t.Fatal("delete returned a pending command; save must complete during Update")
	}

	if got := st.Roadmaps.Load(context.Background()); got.Len() != 0 {
		t.Errorf("persisted Len = %d, want 0 after delete", got.Len())
	}
}

func TestSelectCursorTopicSavesSnapshot(t *testing.T) {
	st := newTestState(t)
	rm, err := roadmap.New("Web Dev", []roadmap.Day{
		{Day: 1, Tasks: []roadmap.Task{{Text: "HTML basics"}}},
	})
	if err != nil {
		t.Fatalf("build roadmap: %v", err)
	}
	st.Collection.Add(rm)

	scr := New(st)
	if scr.cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (active topic)", scr.cursor)
	}

	// Nothing has been saved yet, so a synchronous save is the only way
	// the store can hold the collection after the cursor move.
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if cmd != nil {
		t.Fatal("selection returned a pending command; save must complete during Update")
	}

	if got := st.Roadmaps.Load(context.Background()); got.Len() != 2 {
		t.Errorf("persisted Len = %d, want 2 after selection save", got.Len())
	}
}
