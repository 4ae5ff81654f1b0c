package roadmaps

import "github.com/arhaan/disha/internal/roadmap"

// roadmapReadyMsg is sent when roadmap generation finishes.
type roadmapReadyMsg struct {
	Roadmap *roadmap.Roadmap
	Err     error
}
