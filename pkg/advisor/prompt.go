package advisor

import (
	"fmt"
	"strings"
)

func buildGoalPrompt(subjects []string, skills, interests string, count int) string {
	subjectsString := strings.Join(subjects, ", ")
	return fmt.Sprintf(`Suggest %d specific and actionable career development goals focused on the subjects: %s
Consider these aspects - Current Skills: %s, Interests: %s

Suggest varied career development activities like:
- Industry research and analysis
- Skill-building exercises
- Portfolio development
- Professional networking
- Personal branding
- Technical learning
- Career exploration

Requirements for goals:
- Must be achievable in 1-2 hours
- Should be specific and actionable
- Vary between different types of activities
- Focus on career exploration and professional development in the subject field
- Be specific and measurable

Format as JSON array of strings. Example:
["Complete 3 linear algebra practice problems", "Write a 1-page summary of photosynthesis process"]

Response must be only the JSON array, no other text.`, count, subjectsString, skills, interests)
}

func buildCoursePrompt(subjects []string) string {
	return fmt.Sprintf(`Recommend one free online course for someone studying %s who wants to develop their career in that field.

Respond with a single JSON object with exactly these fields:
{"title": "...", "description": "...", "duration": "...", "level": "...", "url": "..."}

The url must point to a real course platform (Coursera, edX, Class Central, Khan Academy).
Response must be only the JSON object, no other text.`, primarySubject(subjects))
}

func buildCoachPrompt(message string, profile Profile) string {
	name := profile.Name
	if name == "" {
		name = "the user"
	}
	return fmt.Sprintf(`You are "Emerge", a supportive and knowledgeable career coach for %s.

User Profile:
- Focus Areas: %s
- Skills: %s
- Interests: %s
- Primary Goal: %s
- Thinking Style: %s

Your Instructions:
1. Be concise and conversational (keep responses under 150 words generally).
2. Use clear formatting (bullet points) for lists.
3. Provide specific, actionable advice based on their profile.
4. If they ask a general question, relate it back to their specific interests/goals.
5. Tone: Encouraging, professional, and forward-looking.

User Message: %s`,
		name,
		orDefault(strings.Join(profile.Subjects, ", "), "Not specified"),
		orDefault(profile.Skills, "Not specified"),
		orDefault(profile.Interests, "Not specified"),
		orDefault(profile.Goal, "Not specified"),
		orDefault(profile.ThinkingStyle, "Plan"),
		message)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
