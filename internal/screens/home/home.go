package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/router"
	"github.com/arhaan/disha/internal/screen"
	"github.com/arhaan/disha/internal/screens/assistant"
	"github.com/arhaan/disha/internal/screens/quizzes"
	"github.com/arhaan/disha/internal/screens/roadmaps"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/ui/components"
	"github.com/arhaan/disha/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	st   *state.State
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *state.State) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ROADMAPS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmaps.New(st)}
			}
		}},
		{Label: "QUIZZES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizzes.New(st)}
			}
		}},
		{Label: "ASSISTANT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assistant.New(st)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		st:   st,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("D I S H A"))
	sections = append(sections, theme.Subtitle.Width(width).Render("your learning companion"))
	sections = append(sections, "")
	sections = append(sections, h.renderStats(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View()))

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStats summarizes the tracked roadmaps for the landing view.
func (h *HomeScreen) renderStats(width int) string {
	topics := h.st.Collection.Topics()
	if len(topics) == 0 {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No roadmaps yet. Create one to get started.")
	}

	completedDays, totalDays := 0, 0
	for _, topic := range topics {
		rm := h.st.Collection.Get(topic)
		completedDays += roadmap.CompletedDays(rm)
		totalDays += len(rm.Days)
	}

	stats := fmt.Sprintf("%d topics   %d/%d days done   %d%% overall",
		len(topics), completedDays, totalDays, h.st.OverallPercent())

	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(width).
		Align(lipgloss.Center).
		Render(stats)
}
