package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arhaan/disha/internal/quiz"
	"github.com/arhaan/disha/internal/roadmap"
)

// Backend endpoints. The paths are fixed by the service contract.
const (
	roadmapPath = "/api/generate-roadmap"
	quizPath    = "/quiz/generateQuiz"
	assistPath  = "/api/assist"
)

// maxErrorBody caps how much of an error response is read when
// extracting a server-provided message.
const maxErrorBody = 64 << 10

// Client is a Service backed by a remote roadmap backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Service = (*Client)(nil)

type roadmapRequest struct {
	Topic string `json:"topic"`
	Days  int    `json:"days"`
}

type quizRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// assistRequest carries the user's question. The backend names the
// field "answer"; the wire name is part of the contract.
type assistRequest struct {
	Answer string `json:"answer"`
}

type assistResponse struct {
	Answer string `json:"answer"`
}

// GenerateRoadmap requests a roadmap for topic spanning days.
func (c *Client) GenerateRoadmap(ctx context.Context, topic string, days int) (*roadmap.Roadmap, error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	if err := validateDays(days); err != nil {
		return nil, err
	}

	var res struct {
		Topic   string        `json:"topic"`
		Roadmap []roadmap.Day `json:"roadmap"`
	}
	if err := c.post(ctx, roadmapPath, roadmapRequest{Topic: topic, Days: days}, &res, "failed to generate roadmap"); err != nil {
		return nil, err
	}
	if len(res.Roadmap) == 0 {
		return nil, errors.New("failed to generate roadmap: empty response")
	}
	// The roadmap is stored under the requested topic, so that name is
	// canonical regardless of what the response echoes back.
	return roadmap.New(topic, res.Roadmap)
}

// GenerateQuiz requests a quiz with count questions for topic.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, count int) (*quiz.Quiz, error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	var res struct {
		Topic     string          `json:"topic"`
		Questions []quiz.Question `json:"questions"`
	}
	if err := c.post(ctx, quizPath, quizRequest{Topic: topic, Count: count}, &res, "failed to generate quiz"); err != nil {
		return nil, err
	}
	if len(res.Questions) == 0 {
		return nil, errors.New("failed to generate quiz: empty response")
	}
	if err := checkQuestions(res.Questions); err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}
	name := res.Topic
	if name == "" {
		name = topic
	}
	return quiz.New(name, res.Questions), nil
}

// Ask sends a free-form question to the assistant endpoint.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	if err := validateQuestion(question); err != nil {
		return "", err
	}

	var res assistResponse
	if err := c.post(ctx, assistPath, assistRequest{Answer: question}, &res, "request failed"); err != nil {
		return "", err
	}
	if res.Answer == "" {
		return FallbackAnswer, nil
	}
	return res.Answer, nil
}

// post sends a JSON body to path and decodes the response into out.
// Non-2xx responses surface the server's error or message field when
// one is present, otherwise fallback.
func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(serverError(resp.Body, fallback))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", fallback, err)
	}
	return nil
}

// serverError extracts a human-readable message from an error response
// body, preferring the error field, then message, then fallback.
func serverError(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return fallback
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}
