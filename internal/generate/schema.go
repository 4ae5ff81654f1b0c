package generate

import "github.com/arhaan/disha/internal/llm"

// RoadmapSchema defines the JSON schema for roadmap generation.
var RoadmapSchema = &llm.Schema{
	Name:        "study-roadmap",
	Description: "A day-by-day study roadmap for learning a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roadmap": map[string]any{
				"type":        "array",
				"description": "One entry per study day, in order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day": map[string]any{
							"type":        "integer",
							"description": "Day number, starting at 1",
						},
						"tasks": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-4 concrete study tasks for the day (5-15 words each)",
						},
						"practiceQuestions": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "1-3 practice exercises reinforcing the day's tasks",
						},
					},
					"required":             []any{"day", "tasks", "practiceQuestions"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"roadmap"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "topic-quiz",
	Description: "A multiple-choice quiz on a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "1-2 sentence explanation of the correct answer",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
