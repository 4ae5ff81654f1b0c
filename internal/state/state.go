// Package state holds the mutable application state shared by the TUI
// screens: the roadmap collection, the in-memory quiz session, and the
// services they reach for.
package state

import (
	"context"

	"github.com/arhaan/disha/internal/generate"
	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/store"
)

// State is shared by reference across all screens. The Bubble Tea
// runtime is single-threaded, so no locking is needed; background
// commands only touch State from the Update loop via messages.
type State struct {
	Service  generate.Service
	Roadmaps *store.RoadmapRepo
	Events   store.EventRepo

	Collection *roadmap.Collection
	Quizzes    *quiz.Session
}

// SaveRoadmaps persists the current collection snapshot.
func (s *State) SaveRoadmaps(ctx context.Context) error {
	return s.Roadmaps.Save(ctx, s.Collection)
}

// TopicCount returns the number of tracked roadmaps.
func (s *State) TopicCount() int {
	return s.Collection.Len()
}

// OverallPercent returns the mean completion across all roadmaps,
// rounded to a whole percent. Zero when nothing is tracked.
func (s *State) OverallPercent() int {
	topics := s.Collection.Topics()
	if len(topics) == 0 {
		return 0
	}
	total := 0
	for _, topic := range topics {
		total += roadmap.ProgressRounded(s.Collection.Get(topic))
	}
	return total / len(topics)
}
