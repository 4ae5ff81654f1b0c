package generate

import (
	"context"
	"fmt"
	"os"

	"github.com/arhaan/disha/internal/llm"
	"github.com/arhaan/disha/internal/store"
)

// Modes a Service can run in.
const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// FromEnv builds a Service from the environment. DISHA_API_URL selects
// the remote backend; otherwise an LLM provider is discovered and used
// directly. The returned mode is ModeRemote or ModeLocal.
func FromEnv(ctx context.Context, events store.EventRepo) (Service, string, error) {
	if baseURL := os.Getenv("DISHA_API_URL"); baseURL != "" {
		return NewClient(baseURL), ModeRemote, nil
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		return nil, "", fmt.Errorf("no generation backend: set DISHA_API_URL or an LLM API key: %w", err)
	}
	return NewLocal(provider, DefaultConfig()), ModeLocal, nil
}
