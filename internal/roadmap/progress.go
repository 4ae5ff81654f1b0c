package roadmap

import "math"

// Progress returns the percentage of completed days in [0, 100].
// A nil roadmap or one with no days reports 0.
func Progress(r *Roadmap) float64 {
	if r == nil || len(r.Days) == 0 {
		return 0
	}
	completed := 0
	for i := range r.Days {
		if r.Days[i].IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(r.Days)) * 100
}

// ProgressRounded returns Progress rounded to the nearest whole percent.
func ProgressRounded(r *Roadmap) int {
	return int(math.Round(Progress(r)))
}

// CompletedDays counts days marked complete.
func CompletedDays(r *Roadmap) int {
	if r == nil {
		return 0
	}
	n := 0
	for i := range r.Days {
		if r.Days[i].IsCompleted {
			n++
		}
	}
	return n
}

// MotivationalMessage maps a progress percentage to an encouragement line.
// 100 is its own tier; the other tiers are exclusive on their lower bound.
func MotivationalMessage(pct float64) string {
	switch {
	case pct == 100:
		return "Congratulations! You've completed the roadmap!"
	case pct > 75:
		return "Almost there! Keep up the incredible momentum!"
	case pct > 25:
		return "Great progress! Consistency is paying off."
	default:
		return "Every step forward is a victory. Let's get started!"
	}
}
