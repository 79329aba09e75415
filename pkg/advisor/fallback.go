package advisor

import (
	"fmt"
	"net/url"
)

// Canned goals for the subjects the survey offers. Anything else gets the
// generic templated list.
var fallbackGoalTable = map[string][]string{
	"Biology": {
		"Research top 3 companies hiring for Biology roles",
		"Update LinkedIn profile with Biology skills",
		"Watch a 20-minute tutorial on a key Biology concept",
		"Read one industry news article about Biology",
		"Network with one professional in Biology",
	},
	"Computer Science": {
		"Research top 3 companies hiring for Computer Science roles",
		"Update LinkedIn profile with Computer Science skills",
		"Watch a 20-minute tutorial on a key Computer Science concept",
		"Read one industry news article about Computer Science",
		"Network with one professional in Computer Science",
	},
	"Mathematics": {
		"Research top 3 companies hiring for Mathematics roles",
		"Update LinkedIn profile with Mathematics skills",
		"Watch a 20-minute tutorial on a key Mathematics concept",
		"Read one industry news article about Mathematics",
		"Network with one professional in Mathematics",
	},
	"Business": {
		"Research top 3 companies hiring for Business roles",
		"Update LinkedIn profile with Business skills",
		"Watch a 20-minute tutorial on a key Business concept",
		"Read one industry news article about Business",
		"Network with one professional in Business",
	},
	"Art": {
		"Research top 3 companies hiring for Art roles",
		"Update LinkedIn profile with Art skills",
		"Watch a 20-minute tutorial on a key Art concept",
		"Read one industry news article about Art",
		"Network with one professional in Art",
	},
}

// FallbackGoals returns the canned goal list for the first subject,
// truncated to count.
func FallbackGoals(subjects []string, count int) []string {
	if count < 1 {
		count = 1
	}

	subject := primarySubject(subjects)
	goals, ok := fallbackGoalTable[subject]
	if !ok {
		goals = []string{
			fmt.Sprintf("Research top 3 companies hiring for %s roles", subject),
			fmt.Sprintf("Update LinkedIn profile with %s skills", subject),
			fmt.Sprintf("Watch a 20-minute tutorial on %s", subject),
			fmt.Sprintf("Read one industry news article about %s", subject),
			fmt.Sprintf("Network with one professional in %s", subject),
		}
	}
	if len(goals) > count {
		goals = goals[:count]
	}
	return goals
}

var fallbackCourseTable = map[string]Course{
	"Biology": {
		Title:       "Introduction to Biology: The Secret of Life",
		Description: "Explore the fundamentals of modern biology, from genetics to biochemistry.",
		Duration:    "12 weeks",
		Level:       "Beginner",
		Url:         "https://www.edx.org/learn/biology",
	},
	"Computer Science": {
		Title:       "CS50's Introduction to Computer Science",
		Description: "An entry-level course covering algorithms, data structures, and web development.",
		Duration:    "11 weeks",
		Level:       "Beginner",
		Url:         "https://www.edx.org/learn/computer-science",
	},
	"Mathematics": {
		Title:       "Introduction to Mathematical Thinking",
		Description: "Learn how professional mathematicians approach problems.",
		Duration:    "10 weeks",
		Level:       "Beginner",
		Url:         "https://www.coursera.org/learn/mathematical-thinking",
	},
	"Business": {
		Title:       "Business Foundations",
		Description: "Core concepts in marketing, finance, accounting, and operations.",
		Duration:    "8 weeks",
		Level:       "Beginner",
		Url:         "https://www.coursera.org/specializations/wharton-business-foundations",
	},
	"Art": {
		Title:       "Modern Art & Ideas",
		Description: "Explore modern and contemporary art through themes and artist practices.",
		Duration:    "5 weeks",
		Level:       "Beginner",
		Url:         "https://www.coursera.org/learn/modern-art-ideas",
	},
}

// FallbackCourse returns a canned course for the subject, or a generic
// career development course when the subject is unknown.
func FallbackCourse(subject string) Course {
	if course, ok := fallbackCourseTable[subject]; ok {
		return course
	}
	return Course{
		Title:       fmt.Sprintf("Career Essentials in %s", subject),
		Description: fmt.Sprintf("A free introductory course covering the core skills needed to start a career in %s.", subject),
		Duration:    "Self-paced",
		Level:       "Beginner",
		Url:         "https://www.classcentral.com/search?q=" + url.QueryEscape(subject),
	}
}
