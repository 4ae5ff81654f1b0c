// Package quizzes implements the quiz screen: generate quizzes for a
// topic, answer them one question at a time, and review the results.
package quizzes

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/arhaan/disha/internal/generate"
	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/router"
	"github.com/arhaan/disha/internal/screen"
	"github.com/arhaan/disha/internal/state"
	"github.com/arhaan/disha/internal/ui/components"
	"github.com/arhaan/disha/internal/ui/layout"
)

type mode int

const (
	modeList mode = iota
	modeCreate
	modeGenerating
	modeTaking
	modeResults
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

type formField int

const (
	fieldTopic formField = iota
	fieldCount
)

// QuizzesScreen lists generated quizzes and runs attempts.
type QuizzesScreen struct {
	st *state.State

	mode   mode
	cursor int // quiz list cursor

	// create form
	topicInput components.TextInput
	countInput components.TextInput
	field      formField

	// taking
	qIndex int
	choice components.MultiChoice

	// results
	scroll int

	errMsg string
}

var _ screen.Screen = (*QuizzesScreen)(nil)
var _ screen.KeyHintProvider = (*QuizzesScreen)(nil)

// New creates a new QuizzesScreen.
func New(st *state.State) *QuizzesScreen {
	s := &QuizzesScreen{st: st}
	s.resetForm()
	if len(st.Quizzes.Quizzes()) == 0 {
		s.mode = modeCreate
	}
	return s
}

func (s *QuizzesScreen) resetForm() {
	s.topicInput = components.NewTextInput("Quiz topic", false, 60)
	s.countInput = components.NewTextInput("Questions (1-20)", true, 2)
	s.countInput.Model.Blur()
	s.field = fieldTopic
}

func (s *QuizzesScreen) Init() tea.Cmd {
	if s.mode == modeCreate {
		return s.topicInput.Init()
	}
	return nil
}

func (s *QuizzesScreen) Title() string {
	return "Quizzes"
}

func (s *QuizzesScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeCreate:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case modeGenerating:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case modeTaking:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "C", Description: "Change"},
			{Key: "S", Description: "Finish"},
			{Key: "Esc", Description: "Back"},
		}
	case modeResults:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Take"},
			{Key: "N", Description: "New"},
			{Key: "X", Description: "Delete"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizzesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeCreate {
		return s, s.updateForm(msg)
	}
	return s, nil
}

func (s *QuizzesScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.mode = modeCreate
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.st.Quizzes.Add(msg.Quiz)
	s.startAttempt()
	return s, nil
}

func (s *QuizzesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeCreate:
		return s.handleCreateKey(msg)
	case modeGenerating:
		return s, nil
	case modeTaking:
		return s.handleTakingKey(msg)
	case modeResults:
		return s.handleResultsKey(msg)
	}
	return s.handleListKey(msg)
}

func (s *QuizzesScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	list := s.st.Quizzes.Quizzes()

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(list)-1 {
			s.cursor++
		}
	case "n":
		s.mode = modeCreate
		s.errMsg = ""
		s.resetForm()
		return s, s.topicInput.Init()
	case "x", "delete":
		if s.cursor < len(list) {
			if err := s.st.Quizzes.Delete(list[s.cursor].ID); err != nil {
				s.errMsg = err.Error()
			}
			if s.cursor >= len(s.st.Quizzes.Quizzes()) && s.cursor > 0 {
				s.cursor--
			}
		}
	case "enter":
		if s.cursor < len(list) {
			if err := s.st.Quizzes.Select(list[s.cursor].ID); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.startAttempt()
		}
	}
	return s, nil
}

func (s *QuizzesScreen) handleCreateKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if len(s.st.Quizzes.Quizzes()) > 0 {
			s.mode = modeList
			s.errMsg = ""
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "shift+tab":
		if s.field == fieldTopic {
			s.field = fieldCount
			s.topicInput.Model.Blur()
			s.countInput.Model.Focus()
		} else {
			s.field = fieldTopic
			s.countInput.Model.Blur()
			s.topicInput.Model.Focus()
		}
		return s, nil
	case "enter":
		topic, count, err := s.formValues()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.mode = modeGenerating
		return s, func() tea.Msg {
			q, err := s.st.Service.GenerateQuiz(context.Background(), topic, count)
			return quizReadyMsg{Quiz: q, Err: err}
		}
	}
	return s, s.updateForm(msg)
}

func (s *QuizzesScreen) updateForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.field == fieldTopic {
		s.topicInput, cmd = s.topicInput.Update(msg)
	} else {
		s.countInput, cmd = s.countInput.Update(msg)
	}
	return cmd
}

func (s *QuizzesScreen) formValues() (string, int, error) {
	topic := s.topicInput.Value()
	if topic == "" {
		return "", 0, errors.New("enter a topic first")
	}
	count, err := s.countInput.NumericValue()
	if err != nil {
		return "", 0, errors.New("enter the number of questions")
	}
	if count < generate.MinQuestions || count > generate.MaxQuestions {
		return "", 0, fmt.Errorf("question count must be between %d and %d",
			generate.MinQuestions, generate.MaxQuestions)
	}
	return topic, count, nil
}

// startAttempt begins taking the currently selected quiz.
func (s *QuizzesScreen) startAttempt() {
	s.mode = modeTaking
	s.qIndex = 0
	s.errMsg = ""
	s.loadQuestion()
}

// loadQuestion rebuilds the multi-choice component for the current
// question, restoring a previously recorded answer.
func (s *QuizzesScreen) loadQuestion() {
	q := s.st.Quizzes.Selected()
	if q == nil || s.qIndex >= len(q.Questions) {
		return
	}
	question := q.Questions[s.qIndex]

	s.choice = components.NewMultiChoice(question.Question, question.Options, correctIndex(question))
	s.choice.Reveal = false

	if answer, ok := s.st.Quizzes.Attempt().Answers[s.qIndex]; ok {
		for i, opt := range question.Options {
			if opt == answer {
				s.choice.Submitted = true
				s.choice.ChosenIndex = i
				s.choice.Selected = i
				break
			}
		}
	}
}

func correctIndex(q quiz.Question) int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

func (s *QuizzesScreen) handleTakingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.st.Quizzes.Selected()
	if q == nil {
		s.mode = modeList
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.qIndex > 0 {
			s.qIndex--
			s.loadQuestion()
		}
		return s, nil
	case "right", "l":
		if s.qIndex < len(q.Questions)-1 {
			s.qIndex++
			s.loadQuestion()
		}
		return s, nil
	case "c":
		// Change a recorded answer: rebuild without the submitted state.
		if s.choice.Submitted {
			selected := s.choice.ChosenIndex
			s.loadQuestion()
			s.choice.Submitted = false
			s.choice.ChosenIndex = -1
			if selected >= 0 {
				s.choice.Selected = selected
			}
		}
		return s, nil
	case "s":
		if _, err := s.st.Quizzes.Submit(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.mode = modeResults
		s.scroll = 0
		return s, nil
	}

	wasAnswered := s.choice.Submitted
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Submitted && !wasAnswered {
		option := q.Questions[s.qIndex].Options[s.choice.ChosenIndex]
		if err := s.st.Quizzes.Answer(s.qIndex, option); err != nil {
			s.errMsg = err.Error()
			return s, cmd
		}
		// Auto-advance so answering flows through the quiz.
		if s.qIndex < len(q.Questions)-1 {
			s.qIndex++
			s.loadQuestion()
		}
	}
	return s, cmd
}

func (s *QuizzesScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "enter":
		s.mode = modeList
	}
	return s, nil
}
