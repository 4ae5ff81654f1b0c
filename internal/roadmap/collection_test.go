package roadmap

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNew_DerivesSummaries(t *testing.T) {
	days := []Day{
		{Day: 1, Tasks: []Task{{Text: "Learn arrays"}, {Text: "Solve two problems"}}},
		{Day: 2, Tasks: nil},
	}

	rm, err := New("DSA", days)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if rm.Days[0].Summary != "Learn arrays" {
		t.Errorf("day 1 summary = %q, want first task text", rm.Days[0].Summary)
	}
	if rm.Days[1].Summary != FallbackSummary {
		t.Errorf("day 2 summary = %q, want fallback", rm.Days[1].Summary)
	}
	for _, d := range rm.Days {
		if d.IsCompleted {
			t.Errorf("day %d starts completed", d.Day)
		}
	}
}

func TestNew_RejectsDuplicateDays(t *testing.T) {
	days := []Day{
		{Day: 1, Tasks: []Task{{Text: "a"}}},
		{Day: 1, Tasks: []Task{{Text: "b"}}},
	}
	if _, err := New("DSA", days); err == nil {
		t.Fatal("expected error for duplicate day numbers")
	}
}

func TestCollection_AddSelectsTopic(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 3))
	c.Add(testRoadmap("Web Dev", 2))

	if c.Active() != "Web Dev" {
		t.Errorf("Active = %q, want most recently added", c.Active())
	}
	if got := c.Topics(); !reflect.DeepEqual(got, []string{"DSA", "Web Dev"}) {
		t.Errorf("Topics = %v, want insertion order", got)
	}
}

func TestCollection_DeleteActiveFallsBack(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 3))
	c.Add(testRoadmap("Web Dev", 2))
	c.Add(testRoadmap("ML", 5))

	next, err := c.Delete("ML")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if next != "DSA" {
		t.Errorf("next active = %q, want first remaining topic", next)
	}
	if c.Get("ML") != nil {
		t.Error("deleted topic still present")
	}
}

func TestCollection_DeleteNonActiveKeepsSelection(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 3))
	c.Add(testRoadmap("Web Dev", 2))

	next, err := c.Delete("DSA")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if next != "Web Dev" {
		t.Errorf("active = %q, want unchanged selection", next)
	}
}

func TestCollection_DeleteLastClearsSelection(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 3))

	next, err := c.Delete("DSA")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if next != "" {
		t.Errorf("active = %q, want empty", next)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestCollection_DeleteUnknownTopic(t *testing.T) {
	c := NewCollection()
	if _, err := c.Delete("nope"); !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestCollection_ToggleDay(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 3))

	if err := c.ToggleDay("DSA", 2); err != nil {
		t.Fatalf("ToggleDay: %v", err)
	}
	if !c.Get("DSA").DayByNumber(2).IsCompleted {
		t.Error("day 2 not marked complete")
	}

	if err := c.ToggleDay("DSA", 2); err != nil {
		t.Fatalf("ToggleDay again: %v", err)
	}
	if c.Get("DSA").DayByNumber(2).IsCompleted {
		t.Error("day 2 still complete after second toggle")
	}
}

func TestCollection_ToggleDayMissing(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 3))

	if err := c.ToggleDay("DSA", 99); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("err = %v, want ErrDayNotFound", err)
	}
	if err := c.ToggleDay("nope", 1); !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestCollection_ToggleTaskBounds(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 1))

	if err := c.ToggleTask("DSA", 1, 1); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !c.Get("DSA").DayByNumber(1).Tasks[1].Completed {
		t.Error("task 1 not toggled")
	}

	if err := c.ToggleTask("DSA", 1, 5); !errors.Is(err, ErrTaskIndex) {
		t.Errorf("out of range err = %v, want ErrTaskIndex", err)
	}
	if err := c.ToggleTask("DSA", 1, -1); !errors.Is(err, ErrTaskIndex) {
		t.Errorf("negative index err = %v, want ErrTaskIndex", err)
	}
}

func TestCollection_TogglePractice(t *testing.T) {
	rm := testRoadmap("DSA", 1)
	rm.Days[0].PracticeQuestions = []Task{{Text: "implement a stack"}}

	c := NewCollection()
	c.Add(rm)

	if err := c.TogglePractice("DSA", 1, 0); err != nil {
		t.Fatalf("TogglePractice: %v", err)
	}
	if !c.Get("DSA").DayByNumber(1).PracticeQuestions[0].Completed {
		t.Error("practice item not toggled")
	}
	if err := c.TogglePractice("DSA", 1, 3); !errors.Is(err, ErrTaskIndex) {
		t.Errorf("err = %v, want ErrTaskIndex", err)
	}
}

func TestCollection_JSONRoundTrip(t *testing.T) {
	c := NewCollection()
	c.Add(testRoadmap("DSA", 2))
	c.Add(testRoadmap("Machine Learning", 3))
	c.Get("DSA").Days[0].IsCompleted = true
	c.Get("DSA").Days[0].Tasks[1].Completed = true

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := NewCollection()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(got.Topics(), c.Topics()) {
		t.Errorf("topic order changed: %v vs %v", got.Topics(), c.Topics())
	}
	for _, topic := range c.Topics() {
		if !reflect.DeepEqual(got.Get(topic), c.Get(topic)) {
			t.Errorf("roadmap %q changed across round trip", topic)
		}
	}
	if got.Active() != "DSA" {
		t.Errorf("active after load = %q, want first topic", got.Active())
	}
}

func TestCollection_UnmarshalRejectsNonObject(t *testing.T) {
	c := NewCollection()
	if err := json.Unmarshal([]byte(`[1,2]`), c); err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}
