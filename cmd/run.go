package cmd

import (
	"fmt"
	"os"

	"github.com/arhaan/disha/internal/app"
	"github.com/arhaan/disha/internal/generate"
	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	roadmapRepo := st.RoadmapRepo()
	collection := roadmapRepo.Load(ctx)

	service, mode, err := generate.FromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Generation backend not configured:", err)
		fmt.Fprintln(os.Stderr, "Roadmap, quiz, and assistant generation will be unavailable.")
		service = generate.Unavailable{Reason: err}
	} else if mode == generate.ModeRemote {
		fmt.Fprintln(os.Stderr, "Using remote backend at", os.Getenv("DISHA_API_URL"))
	}

	return app.Run(&state.State{
		Service:    service,
		Roadmaps:   roadmapRepo,
		Events:     st.EventRepo(),
		Collection: collection,
		Quizzes:    quiz.NewSession(),
	})
}
