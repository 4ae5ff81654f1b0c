package generate

import (
	"context"
	"fmt"

	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/roadmap"
)

// Unavailable is a Service used when no backend is configured. Every
// call fails with the configuration error, so the UI can keep running
// and show what is missing.
type Unavailable struct {
	Reason error
}

var _ Service = Unavailable{}

func (u Unavailable) GenerateRoadmap(context.Context, string, int) (*roadmap.Roadmap, error) {
	return nil, fmt.Errorf("generation unavailable: %w", u.Reason)
}

func (u Unavailable) GenerateQuiz(context.Context, string, int) (*quiz.Quiz, error) {
	return nil, fmt.Errorf("generation unavailable: %w", u.Reason)
}

func (u Unavailable) Ask(context.Context, string) (string, error) {
	return "", fmt.Errorf("generation unavailable: %w", u.Reason)
}
