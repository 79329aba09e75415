package advisor

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"emerge-career-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
}

func (p *stubProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return p.response, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.response, p.err
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestAdvisor(response string, err error) *Advisor {
	return New(&stubProvider{response: response, err: err}, noopLogger{})
}

func TestSuggestGoalsParsesJSONArray(t *testing.T) {
	a := newTestAdvisor(`["Goal one", "Goal two", "Goal three", "Goal four"]`, nil)

	got := a.SuggestGoals(context.Background(), []string{"Biology"}, "", "", 3)
	want := []string{"Goal one", "Goal two", "Goal three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestGoals = %v, want %v", got, want)
	}
}

func TestSuggestGoalsParsesNumberedLines(t *testing.T) {
	a := newTestAdvisor("1. Read a paper\n2. Join a forum", nil)

	got := a.SuggestGoals(context.Background(), []string{"Biology"}, "", "", 5)
	want := []string{"Read a paper", "Join a forum"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestGoals = %v, want %v", got, want)
	}
}

func TestSuggestGoalsUpstreamErrorUsesFallback(t *testing.T) {
	a := newTestAdvisor("", errors.New("network error"))

	got := a.SuggestGoals(context.Background(), []string{"Biology"}, "", "", 5)
	want := FallbackGoals([]string{"Biology"}, 5)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestGoals = %v, want fallback %v", got, want)
	}
}

func TestSuggestGoalsGarbageOutputUsesFallback(t *testing.T) {
	a := newTestAdvisor("   \n   ", nil)

	got := a.SuggestGoals(context.Background(), []string{"Quantum Farming"}, "", "", 2)
	want := FallbackGoals([]string{"Quantum Farming"}, 2)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestGoals = %v, want fallback %v", got, want)
	}
	if len(got) != 2 {
		t.Errorf("fallback not truncated to count: %v", got)
	}
}

func TestSuggestGoalsRefusalProseUsesFallback(t *testing.T) {
	a := newTestAdvisor("I cannot help with that request.", nil)

	got := a.SuggestGoals(context.Background(), []string{"Biology"}, "", "", 3)
	want := FallbackGoals([]string{"Biology"}, 3)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestGoals = %v, want fallback %v", got, want)
	}
}

func TestSuggestGoalsNeverExceedsCount(t *testing.T) {
	texts := []string{
		`["a", "b", "c", "d", "e"]`,
		"1. a\n2. b\n3. c\n4. d",
		"not parseable at all",
	}
	for _, text := range texts {
		a := newTestAdvisor(text, nil)
		if got := a.SuggestGoals(context.Background(), []string{"Art"}, "", "", 3); len(got) > 3 {
			t.Errorf("SuggestGoals(%q) returned %d items, want <= 3", text, len(got))
		}
	}
}

func TestCourseRecommendationUpstreamErrorUsesFallback(t *testing.T) {
	a := newTestAdvisor("", errors.New("timeout"))

	got := a.CourseRecommendation(context.Background(), []string{"Biology"})
	if got != FallbackCourse("Biology") {
		t.Errorf("CourseRecommendation = %+v, want Biology fallback", got)
	}
}

func TestCourseRecommendationParsesObject(t *testing.T) {
	a := newTestAdvisor(`{"title": "CS50", "description": "Intro CS", "duration": "11 weeks", "level": "Beginner", "url": "https://cs50.example"}`, nil)

	got := a.CourseRecommendation(context.Background(), []string{"Computer Science"})
	if got.Title != "CS50" || got.Url != "https://cs50.example" {
		t.Errorf("unexpected course: %+v", got)
	}
}

func TestCourseRecommendationFillsMissingFields(t *testing.T) {
	a := newTestAdvisor(`{"title": "T", "description": "D"}`, nil)

	got := a.CourseRecommendation(context.Background(), []string{"Biology"})
	if got.Url != "https://www.coursera.org/" {
		t.Errorf("Url = %q, want coursera default", got.Url)
	}
	if got.Duration != "4 weeks" || got.Level != "Beginner" {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestChatReplyReturnsModelText(t *testing.T) {
	a := newTestAdvisor("Focus on internships this semester.", nil)

	got := a.ChatReply(context.Background(), "What should I do next?", Profile{Name: "Sam"})
	if got != "Focus on internships this semester." {
		t.Errorf("ChatReply = %q", got)
	}
}

func TestChatReplyUpstreamErrorApologizes(t *testing.T) {
	a := newTestAdvisor("", errors.New("connection refused"))

	got := a.ChatReply(context.Background(), "hello", Profile{})
	if !strings.Contains(got, "trouble connecting") {
		t.Errorf("ChatReply = %q, want apology", got)
	}
}

func TestFallbackGoalsUnknownSubjectIsTemplated(t *testing.T) {
	got := FallbackGoals([]string{"Underwater Basket Weaving"}, 5)
	if len(got) != 5 {
		t.Fatalf("want 5 goals, got %d", len(got))
	}
	for _, g := range got {
		if !strings.Contains(g, "Underwater Basket Weaving") {
			t.Errorf("goal %q does not reference the subject", g)
		}
	}
}

func TestFallbackGoalsNoSubjects(t *testing.T) {
	got := FallbackGoals(nil, 2)
	if len(got) != 2 {
		t.Fatalf("want 2 goals, got %d", len(got))
	}
}
