package quiz

import (
	"errors"
	"testing"
)

func threeQuestionQuiz(topic string) *Quiz {
	return New(topic, []Question{
		{Question: "q1", Options: []string{"A", "X", "Y"}, CorrectAnswer: "A", Explanation: "because A"},
		{Question: "q2", Options: []string{"X", "B", "Y"}, CorrectAnswer: "B", Explanation: "because B"},
		{Question: "q3", Options: []string{"X", "Y", "C"}, CorrectAnswer: "C", Explanation: "because C"},
	})
}

func TestNew_AssignsUniqueIDs(t *testing.T) {
	a := threeQuestionQuiz("React")
	b := threeQuestionQuiz("React")

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty quiz ids")
	}
	if a.ID == b.ID {
		t.Error("two quizzes share an id")
	}
}

func TestSession_AddSelectsAndResets(t *testing.T) {
	s := NewSession()
	first := threeQuestionQuiz("React")
	s.Add(first)

	if err := s.Answer(0, "A"); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	second := threeQuestionQuiz("Java")
	s.Add(second)

	if s.Selected() != second {
		t.Error("newly added quiz is not selected")
	}
	if len(s.Attempt().Answers) != 0 {
		t.Error("attempt not reset when a quiz was added")
	}
}

func TestSession_SelectResetsAttempt(t *testing.T) {
	s := NewSession()
	a := threeQuestionQuiz("React")
	b := threeQuestionQuiz("Java")
	s.Add(a)
	s.Add(b)

	if err := s.Answer(0, "A"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := s.Select(a.ID); err != nil {
		t.Fatalf("Select: %v", err)
	}

	att := s.Attempt()
	if len(att.Answers) != 0 || att.Submitted || att.Score != 0 {
		t.Errorf("attempt not reset on select: %+v", att)
	}
}

func TestSession_SelectUnknown(t *testing.T) {
	s := NewSession()
	if err := s.Select("missing"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestSession_SubmitScoresMissingAsIncorrect(t *testing.T) {
	s := NewSession()
	s.Add(threeQuestionQuiz("React"))

	// Correct, wrong, unanswered.
	if err := s.Answer(0, "A"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := s.Answer(1, "X"); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	score, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if !s.Attempt().Submitted {
		t.Error("attempt not marked submitted")
	}
}

func TestSession_AnswerAfterSubmitRejected(t *testing.T) {
	s := NewSession()
	s.Add(threeQuestionQuiz("React"))

	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := s.Answer(0, "A"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("err = %v, want ErrAlreadySubmitted", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("second submit err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestSession_AnswerOverwrite(t *testing.T) {
	s := NewSession()
	s.Add(threeQuestionQuiz("React"))

	if err := s.Answer(0, "X"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := s.Answer(0, "A"); err != nil {
		t.Fatalf("Answer overwrite: %v", err)
	}

	score, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if score != 1 {
		t.Errorf("score = %d, want 1 after overwrite", score)
	}
}

func TestSession_DeleteSelectedClearsSelection(t *testing.T) {
	s := NewSession()
	a := threeQuestionQuiz("React")
	b := threeQuestionQuiz("Java")
	s.Add(a)
	s.Add(b)

	if err := s.Delete(b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Selected() != nil {
		t.Error("selection not cleared after deleting open quiz")
	}
	if len(s.Quizzes()) != 1 {
		t.Errorf("quiz count = %d, want 1", len(s.Quizzes()))
	}
}

func TestSession_DeleteOtherKeepsSelection(t *testing.T) {
	s := NewSession()
	a := threeQuestionQuiz("React")
	b := threeQuestionQuiz("Java")
	s.Add(a)
	s.Add(b)

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Selected() != b {
		t.Error("selection changed when a different quiz was deleted")
	}
}

func TestSession_DeleteUnknown(t *testing.T) {
	s := NewSession()
	if err := s.Delete("missing"); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestSession_AnswerWithoutSelection(t *testing.T) {
	s := NewSession()
	if err := s.Answer(0, "A"); !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
	if _, err := s.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("submit err = %v, want ErrNoSelection", err)
	}
}
