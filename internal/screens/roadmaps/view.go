package roadmaps

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/ui/components"
	"github.com/arhaan/disha/internal/ui/theme"
)

const sidebarWidth = 28

func (s *RoadmapsScreen) View(width, height int) string {
	switch s.mode {
	case modeCreate:
		return s.renderCreate(width, height)
	case modeGenerating:
		return renderCentered(width, height, theme.Hint.Render("Generating your roadmap..."))
	case modeConfirmDelete:
		return s.renderConfirm(width, height)
	}
	return s.renderList(width, height)
}

func (s *RoadmapsScreen) renderList(width, height int) string {
	topics := s.st.Collection.Topics()
	if len(topics) == 0 {
		return renderCentered(width, height,
			theme.Hint.Render("No roadmaps yet. Press N to create one."))
	}

	sidebar := s.renderSidebar(topics, height)
	detail := s.renderDetail(width-sidebarWidth-3, height)

	sep := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.TrimRight(strings.Repeat("│\n", height), "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", sep, " ", detail)
	if s.errMsg != "" {
		body += "\n" + theme.Incorrect.Render("  "+s.errMsg)
	}
	return body
}

func (s *RoadmapsScreen) renderSidebar(topics []string, height int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Secondary).Bold(true).
		Render("  TOPICS"))
	lines = append(lines, "")

	for i, topic := range topics {
		rm := s.st.Collection.Get(topic)
		pct := roadmap.ProgressRounded(rm)

		name := clip(topic, sidebarWidth-10)
		line := fmt.Sprintf("%-*s %3d%%", sidebarWidth-8, name, pct)

		switch {
		case i == s.cursor && s.focus == focusTopics:
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
		case i == s.cursor:
			line = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  " + line)
		default:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + line)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (s *RoadmapsScreen) renderDetail(width, height int) string {
	rm := s.selected()
	if rm == nil {
		return ""
	}

	pct := roadmap.Progress(rm)
	var lines []string

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render(rm.Topic))
	lines = append(lines, "")

	bar := components.NewProgressBar("", pct/100, true, min(width, 50))
	lines = append(lines, bar.View())
	lines = append(lines, theme.Hint.Render(roadmap.MotivationalMessage(pct)))
	lines = append(lines, "")

	// Day grid, scrolled around the cursor.
	visible := height - len(lines) - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.dayCursor >= visible {
		start = s.dayCursor - visible + 1
	}
	for i := start; i < len(rm.Days) && i < start+visible; i++ {
		lines = append(lines, s.renderDayRow(rm.Days[i], i == s.dayCursor && s.focus == focusDays, width))
	}

	return strings.Join(lines, "\n")
}

func (s *RoadmapsScreen) renderDayRow(d roadmap.Day, selected bool, width int) string {
	box := "[ ]"
	if d.IsCompleted {
		box = "[x]"
	}
	done := 0
	for _, t := range d.Tasks {
		if t.Completed {
			done++
		}
	}

	summary := d.Summary
	if maxSummary := width - 24; maxSummary > 4 {
		summary = clip(summary, maxSummary)
	}

	line := fmt.Sprintf("%s Day %-3d %s  (%d/%d tasks)", box, d.Day, summary, done, len(d.Tasks))

	switch {
	case selected:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
	case d.IsCompleted:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("  " + line)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line)
	}
}

func (s *RoadmapsScreen) renderCreate(width, height int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render("New roadmap"))
	lines = append(lines, "")
	lines = append(lines, labelStyle(s.form.field == fieldTopic).Render("Topic"))
	lines = append(lines, s.form.topic.View())
	lines = append(lines, "")
	lines = append(lines, labelStyle(s.form.field == fieldDays).Render("Days"))
	lines = append(lines, s.form.days.View())
	if s.errMsg != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Incorrect.Render(s.errMsg))
	}

	return renderCentered(width, height, strings.Join(lines, "\n"))
}

func (s *RoadmapsScreen) renderConfirm(width, height int) string {
	topics := s.st.Collection.Topics()
	topic := ""
	if s.cursor < len(topics) {
		topic = topics[s.cursor]
	}
	msg := fmt.Sprintf("Delete the roadmap for %q?\n\nThis cannot be undone.\n\n[Y] Delete    [N] Keep", topic)
	return renderCentered(width, height, lipgloss.NewStyle().Foreground(theme.Text).Render(msg))
}

func labelStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim)
}

// clip shortens s to at most max runes, replacing the tail with an
// ellipsis when it truncates.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
