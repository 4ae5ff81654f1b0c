// Package roadmaps implements the roadmap list screen: browse tracked
// topics, create new roadmaps, and drill into a day's checklist.
package roadmaps

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/router"
	"github.com/arhaan/disha/internal/screen"
	"github.com/arhaan/disha/internal/screens/dayview"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/ui/layout"
)

type mode int

const (
	modeList mode = iota
	modeCreate
	modeGenerating
	modeConfirmDelete
)

type focus int

const (
	focusTopics focus = iota
	focusDays
)

// RoadmapsScreen lists roadmaps and their day grids.
type RoadmapsScreen struct {
	st *state.State

	mode      mode
	focus     focus
	cursor    int // index into Topics() in list mode
	dayCursor int // index into the selected roadmap's days

	form   createForm
	errMsg string
}

var _ screen.Screen = (*RoadmapsScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapsScreen)(nil)

// New creates a new RoadmapsScreen with the cursor on the active topic.
func New(st *state.State) *RoadmapsScreen {
	s := &RoadmapsScreen{st: st, form: newCreateForm()}
	for i, topic := range st.Collection.Topics() {
		if topic == st.Collection.Active() {
			s.cursor = i
			break
		}
	}
	if st.Collection.Len() == 0 {
		s.mode = modeCreate
	}
	return s
}

func (s *RoadmapsScreen) Init() tea.Cmd {
	if s.mode == modeCreate {
		return s.form.Init()
	}
	return nil
}

func (s *RoadmapsScreen) Title() string {
	return "Roadmaps"
}

func (s *RoadmapsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeCreate:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case modeGenerating:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Tab", Description: "Switch pane"},
		}
		if s.focus == focusDays {
			hints = append(hints,
				layout.KeyHint{Key: "Enter", Description: "Open day"},
				layout.KeyHint{Key: "C", Description: "Toggle done"},
			)
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "N", Description: "New"},
				layout.KeyHint{Key: "X", Description: "Delete"},
			)
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
		return hints
	}
}

func (s *RoadmapsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapReadyMsg:
		return s.handleRoadmapReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeCreate {
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RoadmapsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeCreate:
		return s.handleCreateKey(msg)
	case modeGenerating:
		return s, nil
	case modeConfirmDelete:
		return s.handleConfirmKey(msg)
	}
	return s.handleListKey(msg)
}

func (s *RoadmapsScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	topics := s.st.Collection.Topics()

	switch msg.String() {
	case "tab":
		if len(topics) > 0 {
			if s.focus == focusTopics {
				s.focus = focusDays
			} else {
				s.focus = focusTopics
			}
		}
	case "up", "k":
		if s.focus == focusTopics {
			if s.cursor > 0 {
				s.cursor--
				s.selectCursorTopic()
			}
		} else if s.dayCursor > 0 {
			s.dayCursor--
		}
	case "down", "j":
		if s.focus == focusTopics {
			if s.cursor < len(topics)-1 {
				s.cursor++
				s.selectCursorTopic()
			}
		} else if rm := s.selected(); rm != nil && s.dayCursor < len(rm.Days)-1 {
			s.dayCursor++
		}
	case "n":
		if s.focus == focusTopics {
			s.mode = modeCreate
			s.errMsg = ""
			s.form = newCreateForm()
			return s, s.form.Init()
		}
	case "x", "delete":
		if s.focus == focusTopics && len(topics) > 0 {
			s.mode = modeConfirmDelete
		}
	case "c":
		if s.focus == focusDays {
			s.toggleDay()
		}
	case "enter":
		if s.focus == focusDays {
			if rm := s.selected(); rm != nil && s.dayCursor < len(rm.Days) {
				day := rm.Days[s.dayCursor].Day
				topic := rm.Topic
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: dayview.New(s.st, topic, day)}
				}
			}
		} else if len(topics) > 0 {
			s.focus = focusDays
		}
	}
	return s, nil
}

func (s *RoadmapsScreen) handleCreateKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if s.st.Collection.Len() > 0 {
			s.mode = modeList
			s.errMsg = ""
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "shift+tab":
		s.form.nextField()
		return s, nil
	case "enter":
		topic, days, err := s.form.values()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.mode = modeGenerating
		return s, s.generate(topic, days)
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *RoadmapsScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.mode = modeList
		s.deleteSelected()
	case "n", "N", "esc":
		s.mode = modeList
	}
	return s, nil
}

func (s *RoadmapsScreen) handleRoadmapReady(msg roadmapReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.mode = modeCreate
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.st.Collection.Add(msg.Roadmap)
	s.mode = modeList
	s.focus = focusTopics
	s.dayCursor = 0
	topics := s.st.Collection.Topics()
	for i, topic := range topics {
		if topic == msg.Roadmap.Topic {
			s.cursor = i
			break
		}
	}
	s.persist()
	return s, nil
}

// generate runs roadmap generation off the Update loop.
func (s *RoadmapsScreen) generate(topic string, days int) tea.Cmd {
	return func() tea.Msg {
		rm, err := s.st.Service.GenerateRoadmap(context.Background(), topic, days)
		return roadmapReadyMsg{Roadmap: rm, Err: err}
	}
}

// persist saves the collection before control returns to the event
// loop, so a mutation can never be lost to a command that has not run
// yet and the marshaled snapshot never races with later edits.
func (s *RoadmapsScreen) persist() {
	if err := s.st.SaveRoadmaps(context.Background()); err != nil {
		s.errMsg = "Could not save: " + err.Error()
	}
}

// selectCursorTopic makes the topic under the cursor active and
// persists the selection.
func (s *RoadmapsScreen) selectCursorTopic() {
	topics := s.st.Collection.Topics()
	if s.cursor >= len(topics) {
		return
	}
	if err := s.st.Collection.Select(topics[s.cursor]); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.dayCursor = 0
	s.persist()
}

func (s *RoadmapsScreen) toggleDay() {
	rm := s.selected()
	if rm == nil || s.dayCursor >= len(rm.Days) {
		return
	}
	if err := s.st.Collection.ToggleDay(rm.Topic, rm.Days[s.dayCursor].Day); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.persist()
}

func (s *RoadmapsScreen) deleteSelected() {
	topics := s.st.Collection.Topics()
	if s.cursor >= len(topics) {
		return
	}
	if _, err := s.st.Collection.Delete(topics[s.cursor]); err != nil {
		s.errMsg = err.Error()
		return
	}
	if s.cursor >= s.st.Collection.Len() {
		s.cursor = s.st.Collection.Len() - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.dayCursor = 0
	s.focus = focusTopics
	s.persist()
}

// selected returns the roadmap under the topic cursor.
func (s *RoadmapsScreen) selected() *roadmap.Roadmap {
	topics := s.st.Collection.Topics()
	if s.cursor >= len(topics) {
		return nil
	}
	return s.st.Collection.Get(topics[s.cursor])
}
