package generate

import (
	"fmt"
	"strings"
)

const roadmapSystemPrompt = `You are a study planner. You create practical, day-by-day learning roadmaps that take a motivated self-learner from the basics of a topic to working competence.`

func buildRoadmapUserMessage(topic string, days int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Duration: %d days\n", days))

	b.WriteString(`
Instructions:
Create a study roadmap with exactly one entry per day:
1. Number days consecutively starting at 1, with no gaps or duplicates.
2. Give each day 2-4 concrete tasks. Each task is a single actionable step (read, build, practice), 5-15 words.
3. Order the days so earlier days cover prerequisites for later ones.
4. Add 1-3 practice exercises per day that apply that day's tasks.
5. Keep the scope realistic for 1-2 hours of study per day.`)

	return b.String()
}

const quizSystemPrompt = `You are a quiz writer. You write fair multiple-choice questions that test understanding of a topic, not trivia or memorized phrasing.`

func buildQuizUserMessage(topic string, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Number of questions: %d\n", count))

	b.WriteString(`
Instructions:
Write the quiz:
1. Each question has exactly 4 options and exactly one correct answer.
2. The correctAnswer field must match one option verbatim, character for character.
3. Make distractors plausible — common misconceptions, not obvious filler.
4. Vary difficulty from basic recall to applied understanding.
5. Give a 1-2 sentence explanation of why the correct answer is right.`)

	return b.String()
}

const assistSystemPrompt = `You are a concise study assistant. Answer the learner's question directly and accurately. Prefer short, well-structured answers with a brief example when one helps. Plain text only, no markdown.`
