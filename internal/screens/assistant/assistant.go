// Package assistant implements the free-form question screen: a
// prompt box on top of the running exchange history.
package assistant

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arhaan/disha/internal/screen"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/ui/components"
	"github.com/arhaan/disha/internal/ui/layout"
	"github.com/arhaan/disha/internal/ui/theme"
)

// answerMsg is sent when the assistant finishes answering.
type answerMsg struct {
	Question string
	Answer   string
	Err      error
}

// exchange is one asked question and its answer.
type exchange struct {
	Question string
	Answer   string
}

// quickPrompts are offered while the input is empty.
var quickPrompts = []string{
	"Explain this topic like I'm a beginner",
	"What should I learn next?",
	"Give me a practice exercise",
}

// AssistantScreen answers free-form study questions.
type AssistantScreen struct {
	st *state.State

	input    components.TextInput
	history  []exchange
	waiting  bool
	scroll   int
	promptIx int // -1 when no quick prompt is highlighted
	errMsg   string
}

var _ screen.Screen = (*AssistantScreen)(nil)
var _ screen.KeyHintProvider = (*AssistantScreen)(nil)

// New creates a new AssistantScreen.
func New(st *state.State) *AssistantScreen {
	return &AssistantScreen{
		st:       st,
		input:    components.NewTextInput("Ask anything...", false, 200),
		promptIx: -1,
	}
}

func (s *AssistantScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AssistantScreen) Title() string {
	return "Assistant"
}

func (s *AssistantScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Ctrl+P", Description: "Quick prompt"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AssistantScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.history = append(s.history, exchange{Question: msg.Question, Answer: msg.Answer})
		s.scroll = 0 // snap to the newest exchange
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.ask()
		case "ctrl+p":
			s.promptIx = (s.promptIx + 1) % len(quickPrompts)
			s.input.Model.SetValue(quickPrompts[s.promptIx])
			return s, nil
		case "up":
			s.scroll++
			return s, nil
		case "down":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		}
	}

	if !s.waiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// ask submits the current question.
func (s *AssistantScreen) ask() tea.Cmd {
	if s.waiting {
		return nil
	}
	question := strings.TrimSpace(s.input.Value())
	if question == "" {
		return nil
	}

	s.waiting = true
	s.errMsg = ""
	s.promptIx = -1
	s.input.Reset()

	return func() tea.Msg {
		answer, err := s.st.Service.Ask(context.Background(), question)
		return answerMsg{Question: question, Answer: answer, Err: err}
	}
}

func (s *AssistantScreen) View(width, height int) string {
	innerWidth := width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	var top []string
	top = append(top, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render("Ask the assistant"))
	top = append(top, s.input.View())
	if s.waiting {
		top = append(top, theme.Hint.Render("Thinking..."))
	} else if s.errMsg != "" {
		top = append(top, theme.Incorrect.Render(s.errMsg))
	} else {
		top = append(top, "")
	}
	top = append(top, lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", innerWidth)))

	historyHeight := height - len(top) - 2
	if historyHeight < 1 {
		historyHeight = 1
	}

	body := append(top, s.renderHistory(innerWidth, historyHeight)...)
	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(strings.Join(body, "\n"))
}

// renderHistory renders the newest exchanges that fit, offset by the
// scroll position (scroll counts lines back from the bottom).
func (s *AssistantScreen) renderHistory(width, height int) []string {
	if len(s.history) == 0 {
		return []string{theme.Hint.Render("Answers will appear here.")}
	}

	var lines []string
	for _, ex := range s.history {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).Bold(true).
			Render("You: ")+lipgloss.NewStyle().Foreground(theme.Text).Render(ex.Question))
		for _, l := range wrap(ex.Answer, width) {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(l))
		}
		lines = append(lines, "")
	}

	// Window ending scroll lines above the bottom.
	end := len(lines) - s.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < height {
		end = min(height, len(lines))
	}
	start := end - height
	if start < 0 {
		start = 0
	}
	// Keep scroll in range for the next keypress.
	if s.scroll > len(lines)-height && len(lines) > height {
		s.scroll = len(lines) - height
	}

	return lines[start:end]
}

// wrap breaks text into lines at most width runes wide on spaces.
func wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
