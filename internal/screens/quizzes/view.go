package quizzes

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arhaan/disha/internal/ui/theme"
)

func (s *QuizzesScreen) View(width, height int) string {
	switch s.mode {
	case modeCreate:
		return s.renderCreate(width, height)
	case modeGenerating:
		return centered(width, height, theme.Hint.Render("Writing your quiz..."))
	case modeTaking:
		return s.renderTaking(width, height)
	case modeResults:
		return s.renderResults(width, height)
	}
	return s.renderList(width, height)
}

func (s *QuizzesScreen) renderList(width, height int) string {
	list := s.st.Quizzes.Quizzes()
	if len(list) == 0 {
		return centered(width, height,
			theme.Hint.Render("No quizzes this session. Press N to generate one."))
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Secondary).Bold(true).
		Render("  THIS SESSION"))
	lines = append(lines, "")

	for i, q := range list {
		line := fmt.Sprintf("%s  (%d questions)", q.Topic, len(q.Questions))
		if i == s.cursor {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).
				Render("  ▸ "+line))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line))
		}
	}

	if s.errMsg != "" {
		lines = append(lines, "", theme.Incorrect.Render("  "+s.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 0).Render(strings.Join(lines, "\n"))
}

func (s *QuizzesScreen) renderCreate(width, height int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render("New quiz"))
	lines = append(lines, "")
	lines = append(lines, fieldLabel(s.field == fieldTopic).Render("Topic"))
	lines = append(lines, s.topicInput.View())
	lines = append(lines, "")
	lines = append(lines, fieldLabel(s.field == fieldCount).Render("Questions"))
	lines = append(lines, s.countInput.View())
	if s.errMsg != "" {
		lines = append(lines, "", theme.Incorrect.Render(s.errMsg))
	}
	return centered(width, height, strings.Join(lines, "\n"))
}

func (s *QuizzesScreen) renderTaking(width, height int) string {
	q := s.st.Quizzes.Selected()
	if q == nil {
		return ""
	}

	answered := len(s.st.Quizzes.Attempt().Answers)

	var lines []string
	lines = append(lines, theme.Hint.Render(fmt.Sprintf(
		"%s — question %d of %d — %d answered",
		q.Topic, s.qIndex+1, len(q.Questions), answered)))
	lines = append(lines, "")
	lines = append(lines, s.choice.View())

	if answered == len(q.Questions) {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("All questions answered. Press S to finish."))
	}
	if s.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(strings.Join(lines, "\n"))
}

func (s *QuizzesScreen) renderResults(width, height int) string {
	q := s.st.Quizzes.Selected()
	if q == nil {
		return ""
	}
	attempt := s.st.Quizzes.Attempt()

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Score: %d / %d", attempt.Score, len(q.Questions))))
	lines = append(lines, "")

	for i, question := range q.Questions {
		chosen, ok := attempt.Answers[i]
		switch {
		case !ok:
			lines = append(lines, theme.Incorrect.Render(
				fmt.Sprintf("✗ %d. %s", i+1, question.Question)))
			lines = append(lines, theme.Hint.Render("   not answered"))
		case chosen == question.CorrectAnswer:
			lines = append(lines, theme.Correct.Render(
				fmt.Sprintf("✓ %d. %s", i+1, question.Question)))
		default:
			lines = append(lines, theme.Incorrect.Render(
				fmt.Sprintf("✗ %d. %s", i+1, question.Question)))
			lines = append(lines, theme.Hint.Render("   your answer: "+chosen))
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).
			Render("   answer: "+question.CorrectAnswer))
		if question.Explanation != "" {
			lines = append(lines, theme.Hint.Render("   "+question.Explanation))
		}
		lines = append(lines, "")
	}

	// Clamp scroll and show a window of lines.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(width).
		Render(strings.Join(lines[s.scroll:end], "\n"))
}

func fieldLabel(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
