package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arhaan/disha/internal/llm"
	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/roadmap"
)

// Config holds tuning for LLM-backed generation.
type Config struct {
	RoadmapMaxTokens int
	QuizMaxTokens    int
	AssistMaxTokens  int
	Temperature      float64
}

// DefaultConfig returns the default generation tuning.
func DefaultConfig() Config {
	return Config{
		RoadmapMaxTokens: 8192,
		QuizMaxTokens:    4096,
		AssistMaxTokens:  1024,
		Temperature:      0.7,
	}
}

// Local is a Service that generates content through an LLM provider
// instead of a remote backend.
type Local struct {
	provider llm.Provider
	cfg      Config
}

// NewLocal creates an LLM-backed generation service.
func NewLocal(provider llm.Provider, cfg Config) *Local {
	return &Local{provider: provider, cfg: cfg}
}

var _ Service = (*Local)(nil)

type roadmapOutput struct {
	Roadmap []dayOutput `json:"roadmap"`
}

type dayOutput struct {
	Day               int      `json:"day"`
	Tasks             []string `json:"tasks"`
	PracticeQuestions []string `json:"practiceQuestions"`
}

// GenerateRoadmap produces a roadmap for topic spanning days.
func (l *Local) GenerateRoadmap(ctx context.Context, topic string, days int) (*roadmap.Roadmap, error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	if err := validateDays(days); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeRoadmap)

	req := llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapUserMessage(topic, days)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   l.cfg.RoadmapMaxTokens,
		Temperature: l.cfg.Temperature,
	}

	resp, err := l.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	var out roadmapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse roadmap response: %w", err)
	}
	if len(out.Roadmap) == 0 {
		return nil, fmt.Errorf("roadmap generation: empty response")
	}

	dayList := make([]roadmap.Day, 0, len(out.Roadmap))
	for _, d := range out.Roadmap {
		dayList = append(dayList, roadmap.Day{
			Day:               d.Day,
			Tasks:             toTasks(d.Tasks),
			PracticeQuestions: toTasks(d.PracticeQuestions),
		})
	}
	return roadmap.New(topic, dayList)
}

type quizOutput struct {
	Questions []quiz.Question `json:"questions"`
}

// GenerateQuiz produces a quiz with count questions for topic.
func (l *Local) GenerateQuiz(ctx context.Context, topic string, count int) (*quiz.Quiz, error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(topic, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   l.cfg.QuizMaxTokens,
		Temperature: l.cfg.Temperature,
	}

	resp, err := l.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("quiz generation: empty response")
	}
	if err := checkQuestions(out.Questions); err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	return quiz.New(topic, out.Questions), nil
}

// Ask answers a free-form question as plain text.
func (l *Local) Ask(ctx context.Context, question string) (string, error) {
	if err := validateQuestion(question); err != nil {
		return "", err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAssist)

	req := llm.Request{
		System: assistSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   l.cfg.AssistMaxTokens,
		Temperature: l.cfg.Temperature,
	}

	resp, err := l.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("assistant: %w", err)
	}

	answer := strings.TrimSpace(string(resp.Content))
	if answer == "" {
		return FallbackAnswer, nil
	}
	return answer, nil
}

func toTasks(texts []string) []roadmap.Task {
	tasks := make([]roadmap.Task, 0, len(texts))
	for _, t := range texts {
		tasks = append(tasks, roadmap.Task{Text: t})
	}
	return tasks
}
