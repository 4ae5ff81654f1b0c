package roadmap

import (
	"errors"
	"fmt"
)

// FallbackSummary is used when a generated day has no tasks to summarize.
const FallbackSummary = "Review topics"

var (
	// ErrTopicNotFound is returned when a topic is not in the collection.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrDayNotFound is returned when a day number does not exist in a roadmap.
	ErrDayNotFound = errors.New("day not found")

	// ErrTaskIndex is returned when a task index is out of range for a day.
	ErrTaskIndex = errors.New("task index out of range")
)

// Task is a single checkbox item of work, either a daily task or a
// practice exercise.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Day is one unit of a roadmap. Day numbers are unique within a roadmap
// and are the lookup key for all mutations.
type Day struct {
	Day               int    `json:"day"`
	Tasks             []Task `json:"tasks"`
	PracticeQuestions []Task `json:"practiceQuestions,omitempty"`
	Summary           string `json:"summary"`
	IsCompleted       bool   `json:"isCompleted"`
}

// Roadmap is a topic's generated multi-day study plan.
type Roadmap struct {
	Topic string `json:"topic"`
	Days  []Day  `json:"roadmap"`
}

// New builds a Roadmap from generated days, deriving each day's summary
// from its first task and clearing completion state. It rejects duplicate
// day numbers rather than letting later lookups resolve ambiguously.
func New(topic string, days []Day) (*Roadmap, error) {
	seen := make(map[int]bool, len(days))
	for i := range days {
		d := &days[i]
		if seen[d.Day] {
			return nil, fmt.Errorf("duplicate day %d in generated roadmap", d.Day)
		}
		seen[d.Day] = true

		if len(d.Tasks) > 0 && d.Tasks[0].Text != "" {
			d.Summary = d.Tasks[0].Text
		} else {
			d.Summary = FallbackSummary
		}
		d.IsCompleted = false
	}
	return &Roadmap{Topic: topic, Days: days}, nil
}

// DayByNumber returns the day with the given number, or nil if absent.
func (r *Roadmap) DayByNumber(n int) *Day {
	for i := range r.Days {
		if r.Days[i].Day == n {
			return &r.Days[i]
		}
	}
	return nil
}
