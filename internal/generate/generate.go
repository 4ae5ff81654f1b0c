// Package generate produces roadmaps, quizzes, and assistant answers.
// Two implementations exist: Client talks to a roadmap backend over
// HTTP, and Local generates content directly through an LLM provider.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/roadmap"
)

// Limits on generation inputs, validated before any network call.
const (
	MinDays = 1
	MaxDays = 90

	MinQuestions = 1
	MaxQuestions = 20
)

// FallbackAnswer is returned when the assistant produces no text.
const FallbackAnswer = "No answer received."

var (
	// ErrEmptyTopic is returned for a blank topic.
	ErrEmptyTopic = errors.New("topic must not be empty")

	// ErrEmptyQuestion is returned for a blank assistant question.
	ErrEmptyQuestion = errors.New("question must not be empty")
)

// Service is the generation boundary the screens and CLI depend on.
// Every call is a single logical attempt; failures are reported to the
// caller and never retried at this layer.
type Service interface {
	// GenerateRoadmap produces a study roadmap for a topic spanning the
	// given number of days.
	GenerateRoadmap(ctx context.Context, topic string, days int) (*roadmap.Roadmap, error)

	// GenerateQuiz produces a quiz with count questions for a topic.
	GenerateQuiz(ctx context.Context, topic string, count int) (*quiz.Quiz, error)

	// Ask answers a free-form question.
	Ask(ctx context.Context, question string) (string, error)
}

func validateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}

func validateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return fmt.Errorf("days must be between %d and %d, got %d", MinDays, MaxDays, days)
	}
	return nil
}

func validateCount(count int) error {
	if count < MinQuestions || count > MaxQuestions {
		return fmt.Errorf("question count must be between %d and %d, got %d", MinQuestions, MaxQuestions, count)
	}
	return nil
}

func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

// checkQuestions verifies every generated question's correct answer is
// one of its options. A quiz failing this would be unscoreable.
func checkQuestions(questions []quiz.Question) error {
	for i, q := range questions {
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %d: correct answer %q is not among the options", i+1, q.CorrectAnswer)
		}
	}
	return nil
}
