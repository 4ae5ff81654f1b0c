package quizzes

import (
	"testing"

	"github.com/arhaan/disha/internal/quiz"
)

func TestCorrectIndex(t *testing.T) {
	q := quiz.Question{
		Question:      "Which keyword starts a goroutine?",
		Options:       []string{"async", "go", "spawn", "run"},
		CorrectAnswer: "go",
	}
	if got := correctIndex(q); got != 1 {
		t.Errorf("correctIndex = %d, want 1", got)
	}

	q.CorrectAnswer = "missing"
	if got := correctIndex(q); got != -1 {
		t.Errorf("correctIndex for absent answer = %d, want -1", got)
	}
}
