// Package dayview implements the per-day checklist screen: tasks and
// practice questions toggle individually, and the whole day can be
// marked done at once.
package dayview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/screen"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/ui/components"
	"github.com/arhaan/disha/internal/ui/layout"
	"github.com/arhaan/disha/internal/ui/theme"
)

// itemRef maps a checklist index back to a task or practice question.
type itemRef struct {
	practice bool
	index    int
}

// DayScreen shows one day's tasks and practice questions.
type DayScreen struct {
	st    *state.State
	topic string
	day   int

	list   components.Checklist
	refs   []itemRef // parallel to list.Items; headings hold a zero ref
	errMsg string
}

var _ screen.Screen = (*DayScreen)(nil)
var _ screen.KeyHintProvider = (*DayScreen)(nil)

// New creates a DayScreen for the given topic and day number.
func New(st *state.State, topic string, day int) *DayScreen {
	s := &DayScreen{st: st, topic: topic, day: day}
	s.rebuild()
	return s
}

// rebuild regenerates the checklist from the collection. Called after
// every toggle so the rendered state tracks the model.
func (s *DayScreen) rebuild() {
	cursor := s.list.Cursor

	d := s.dayData()
	if d == nil {
		s.list = components.NewChecklist(nil, nil)
		s.refs = nil
		return
	}

	var items []components.ChecklistItem
	var refs []itemRef

	items = append(items, components.ChecklistItem{Text: "TASKS", Heading: true})
	refs = append(refs, itemRef{})
	for i, t := range d.Tasks {
		items = append(items, components.ChecklistItem{Text: t.Text, Done: t.Completed})
		refs = append(refs, itemRef{index: i})
	}

	if len(d.PracticeQuestions) > 0 {
		items = append(items, components.ChecklistItem{Text: "", Heading: true})
		refs = append(refs, itemRef{})
		items = append(items, components.ChecklistItem{Text: "PRACTICE", Heading: true})
		refs = append(refs, itemRef{})
		for i, q := range d.PracticeQuestions {
			items = append(items, components.ChecklistItem{Text: q.Text, Done: q.Completed})
			refs = append(refs, itemRef{practice: true, index: i})
		}
	}

	s.list = components.NewChecklist(items, s.toggle)
	s.refs = refs
	if cursor > 0 && cursor < len(items) && !items[cursor].Heading {
		s.list.Cursor = cursor
	}
}

func (s *DayScreen) dayData() *roadmap.Day {
	rm := s.st.Collection.Get(s.topic)
	if rm == nil {
		return nil
	}
	return rm.DayByNumber(s.day)
}

func (s *DayScreen) Init() tea.Cmd {
	return nil
}

func (s *DayScreen) Title() string {
	return fmt.Sprintf("Day %d", s.day)
}

func (s *DayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "D", Description: "Toggle day"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "d" {
		s.toggleWholeDay()
		return s, nil
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// toggle flips the task or practice question at checklist index i.
func (s *DayScreen) toggle(i int) tea.Cmd {
	if i >= len(s.refs) {
		return nil
	}
	ref := s.refs[i]

	var err error
	if ref.practice {
		err = s.st.Collection.TogglePractice(s.topic, s.day, ref.index)
	} else {
		err = s.st.Collection.ToggleTask(s.topic, s.day, ref.index)
	}
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.rebuild()
	s.persist()
	return nil
}

func (s *DayScreen) toggleWholeDay() {
	if err := s.st.Collection.ToggleDay(s.topic, s.day); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.rebuild()
	s.persist()
}

// persist saves the collection before control returns to the event
// loop, so a toggle is durable the moment the keypress is handled.
func (s *DayScreen) persist() {
	if err := s.st.SaveRoadmaps(context.Background()); err != nil {
		s.errMsg = "Could not save: " + err.Error()
	}
}

func (s *DayScreen) View(width, height int) string {
	d := s.dayData()
	if d == nil {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("This day no longer exists."))
	}

	var lines []string

	status := ""
	if d.IsCompleted {
		status = theme.Correct.Render("  ✓ done")
	}
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s — Day %d", s.topic, d.Day))+status)
	lines = append(lines, theme.Hint.Render(d.Summary))
	lines = append(lines, "")
	lines = append(lines, s.list.View())

	if s.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
