package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientGenerateRoadmap(t *testing.T) {
	var gotPath string
	var gotBody roadmapRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"topic": "Go",
			"roadmap": [
				{"day": 1, "tasks": [{"text": "Install the toolchain", "completed": false}], "practiceQuestions": [{"text": "Write hello world"}]},
				{"day": 2, "tasks": [{"text": "Learn slices"}]}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rm, err := c.GenerateRoadmap(context.Background(), "Go", 2)
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}

	if gotPath != roadmapPath {
		t.Errorf("path = %q, want %q", gotPath, roadmapPath)
	}
	if gotBody.Topic != "Go" || gotBody.Days != 2 {
		t.Errorf("request body = %+v", gotBody)
	}
	if rm.Topic != "Go" {
		t.Errorf("topic = %q", rm.Topic)
	}
	if len(rm.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(rm.Days))
	}
	if rm.Days[0].Summary != "Install the toolchain" {
		t.Errorf("summary = %q", rm.Days[0].Summary)
	}
	if rm.Days[0].Tasks[0].Completed {
		t.Error("fresh roadmap should have no completed tasks")
	}
}

func TestClientGenerateRoadmapValidation(t *testing.T) {
	c := NewClient("http://unused.invalid")

	if _, err := c.GenerateRoadmap(context.Background(), "  ", 5); err != ErrEmptyTopic {
		t.Errorf("blank topic: err = %v, want ErrEmptyTopic", err)
	}
	if _, err := c.GenerateRoadmap(context.Background(), "Go", 0); err == nil {
		t.Error("days=0 should be rejected")
	}
	if _, err := c.GenerateRoadmap(context.Background(), "Go", 91); err == nil {
		t.Error("days=91 should be rejected")
	}
}

func TestClientServerErrorSurfaced(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error": "topic too broad"}`, "topic too broad"},
		{"message field", `{"message": "rate limited"}`, "rate limited"},
		{"error wins over message", `{"error": "a", "message": "b"}`, "a"},
		{"unparsable body", `<html>oops</html>`, "failed to generate roadmap"},
		{"empty object", `{}`, "failed to generate roadmap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).GenerateRoadmap(context.Background(), "Go", 3)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("err = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestClientGenerateQuiz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != quizPath {
			t.Errorf("path = %q, want %q", r.URL.Path, quizPath)
		}
		w.Write([]byte(`{
			"topic": "Go",
			"questions": [{
				"question": "What does make([]int, 3) return?",
				"options": ["nil", "a slice of length 3", "an array", "a map"],
				"correctAnswer": "a slice of length 3",
				"explanation": "make allocates and initializes a slice."
			}]
		}`))
	}))
	defer srv.Close()

	q, err := NewClient(srv.URL).GenerateQuiz(context.Background(), "Go", 1)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if q.ID == "" {
		t.Error("quiz should get an ID")
	}
	if len(q.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(q.Questions))
	}
	if q.Questions[0].CorrectAnswer != "a slice of length 3" {
		t.Errorf("correctAnswer = %q", q.Questions[0].CorrectAnswer)
	}
}

func TestClientGenerateQuizBadCorrectAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"questions": [{
				"question": "Q",
				"options": ["a", "b"],
				"correctAnswer": "c",
				"explanation": "x"
			}]
		}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GenerateQuiz(context.Background(), "Go", 1)
	if err == nil || !strings.Contains(err.Error(), "not among the options") {
		t.Errorf("err = %v, want correct-answer mismatch", err)
	}
}

func TestClientAsk(t *testing.T) {
	var gotBody assistRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != assistPath {
			t.Errorf("path = %q, want %q", r.URL.Path, assistPath)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"answer": "Use defer to close files."}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Ask(context.Background(), "How do I close files?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "Use defer to close files." {
		t.Errorf("answer = %q", got)
	}
	if gotBody.Answer != "How do I close files?" {
		t.Errorf("question sent in answer field = %q", gotBody.Answer)
	}
}

func TestClientAskEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Ask(context.Background(), "anything?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != FallbackAnswer {
		t.Errorf("answer = %q, want %q", got, FallbackAnswer)
	}
}
