// Package quiz holds the session-scoped quiz collection and its scoring
// rules. Quizzes live only for the process lifetime; they are not written
// to the store.
package quiz

import "github.com/google/uuid"

// Question is a single multiple-choice question. CorrectAnswer always
// equals one of Options exactly.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a generated set of questions for a topic.
type Quiz struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// New wraps generated questions with a fresh unique id.
func New(topic string, questions []Question) *Quiz {
	return &Quiz{
		ID:        uuid.NewString(),
		Topic:     topic,
		Questions: questions,
	}
}
