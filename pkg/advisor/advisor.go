// Package advisor turns free-form model output into structured career
// guidance. Every operation makes at most one upstream call, never retries,
// and never returns an error: any upstream or parsing failure degrades to
// deterministic fallback data. Availability beats correctness here.
package advisor

import (
	"context"
	"strings"

	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/pkg/llm"
)

const apologyReply = "I apologize, but I'm having trouble connecting right now. Please try again in a moment."

// Profile is the slice of user state the advisor injects into prompts.
type Profile struct {
	Name          string
	Subjects      []string
	Interests     string
	Skills        string
	Goal          string
	ThinkingStyle string
}

type Course struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Url         string `json:"url"`
}

type Advisor struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func New(provider llm.LLMProvider, log logger.ILogger) *Advisor {
	return &Advisor{
		provider: provider,
		logger:   log,
	}
}

// SuggestGoals asks the model for count short, actionable goal strings.
// Extraction strategies are tried in order; the subject-keyed fallback table
// is the last resort.
func (a *Advisor) SuggestGoals(ctx context.Context, subjects []string, skills, interests string, count int) []string {
	if count < 1 {
		count = 1
	}

	text, err := a.provider.Generate(ctx, buildGoalPrompt(subjects, skills, interests, count))
	if err != nil {
		a.logger.Warn("advisor", "goal generation failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackGoals(subjects, count)
	}

	if goals, ok := extractStringArray(text); ok {
		return truncate(goals, count)
	}
	if goals, ok := extractLines(text); ok {
		return truncate(goals, count)
	}

	a.logger.Warn("advisor", "could not extract goals from model output, using fallback", nil)
	return FallbackGoals(subjects, count)
}

// CourseRecommendation asks the model for one free online course. Brace
// matching pulls the first JSON object out of the reply; a static
// subject-keyed course stands in on any failure.
func (a *Advisor) CourseRecommendation(ctx context.Context, subjects []string) Course {
	subject := primarySubject(subjects)

	text, err := a.provider.Generate(ctx, buildCoursePrompt(subjects))
	if err != nil {
		a.logger.Warn("advisor", "course generation failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackCourse(subject)
	}

	course, ok := extractCourse(text)
	if !ok {
		a.logger.Warn("advisor", "could not extract course from model output, using fallback", nil)
		return FallbackCourse(subject)
	}
	return course
}

// ChatReply answers a coaching question with the user's profile injected
// into the prompt. Returns a fixed apology string on failure.
func (a *Advisor) ChatReply(ctx context.Context, message string, profile Profile) string {
	text, err := a.provider.Generate(ctx, buildCoachPrompt(message, profile))
	if err != nil {
		a.logger.Warn("advisor", "chat reply failed", map[string]interface{}{
			"error": err.Error(),
		})
		return apologyReply
	}
	if strings.TrimSpace(text) == "" {
		return "I'm having trouble understanding. Can you rephrase your question?"
	}
	return text
}

func truncate(items []string, count int) []string {
	if len(items) > count {
		return items[:count]
	}
	return items
}

func primarySubject(subjects []string) string {
	if len(subjects) > 0 {
		return subjects[0]
	}
	return "Career Development"
}
