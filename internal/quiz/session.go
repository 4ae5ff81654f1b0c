package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrQuizNotFound is returned when an id is not in the session.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrAlreadySubmitted is returned for answer changes after submission.
	ErrAlreadySubmitted = errors.New("quiz already submitted")

	// ErrNoSelection is returned for attempt operations with no open quiz.
	ErrNoSelection = errors.New("no quiz selected")
)

// Attempt is the ephemeral answer state for the open quiz.
type Attempt struct {
	Answers   map[int]string
	Submitted bool
	Score     int
}

// Session is the ordered list of quizzes generated this run, the current
// selection, and its attempt. Switching quizzes discards the attempt.
type Session struct {
	quizzes  []*Quiz
	selected string
	attempt  Attempt
}

// NewSession creates an empty quiz session.
func NewSession() *Session {
	return &Session{attempt: freshAttempt()}
}

func freshAttempt() Attempt {
	return Attempt{Answers: make(map[int]string)}
}

// Quizzes returns the quizzes in generation order.
func (s *Session) Quizzes() []*Quiz {
	return s.quizzes
}

// Selected returns the open quiz, or nil when none is selected.
func (s *Session) Selected() *Quiz {
	if s.selected == "" {
		return nil
	}
	for _, q := range s.quizzes {
		if q.ID == s.selected {
			return q
		}
	}
	return nil
}

// Attempt returns the current attempt state.
func (s *Session) Attempt() Attempt {
	return s.attempt
}

// Add appends a quiz, opens it, and resets the attempt.
func (s *Session) Add(q *Quiz) {
	s.quizzes = append(s.quizzes, q)
	s.selected = q.ID
	s.attempt = freshAttempt()
}

// Select opens the quiz with the given id and resets the attempt, even
// when re-selecting the already open quiz.
func (s *Session) Select(id string) error {
	for _, q := range s.quizzes {
		if q.ID == id {
			s.selected = id
			s.attempt = freshAttempt()
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", id, ErrQuizNotFound)
}

// Delete removes the quiz with the given id. Deleting the open quiz
// clears the selection; deleting any other quiz leaves it untouched.
func (s *Session) Delete(id string) error {
	for i, q := range s.quizzes {
		if q.ID == id {
			s.quizzes = append(s.quizzes[:i], s.quizzes[i+1:]...)
			if s.selected == id {
				s.selected = ""
				s.attempt = freshAttempt()
			}
			return nil
		}
	}
	return fmt.Errorf("delete %q: %w", id, ErrQuizNotFound)
}

// Answer records (or overwrites) the chosen option for a question index.
// Answers are frozen once the quiz is submitted.
func (s *Session) Answer(questionIndex int, option string) error {
	if s.Selected() == nil {
		return ErrNoSelection
	}
	if s.attempt.Submitted {
		return ErrAlreadySubmitted
	}
	s.attempt.Answers[questionIndex] = option
	return nil
}

// Submit scores the open quiz and finalizes the attempt. Unanswered
// questions count as incorrect. Scoring is final; there is no unsubmit.
func (s *Session) Submit() (int, error) {
	q := s.Selected()
	if q == nil {
		return 0, ErrNoSelection
	}
	if s.attempt.Submitted {
		return s.attempt.Score, ErrAlreadySubmitted
	}

	score := 0
	for i, question := range q.Questions {
		if s.attempt.Answers[i] == question.CorrectAnswer {
			score++
		}
	}
	s.attempt.Score = score
	s.attempt.Submitted = true
	return score, nil
}
