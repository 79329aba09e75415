package advisor

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceRegex     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	arrayRegex     = regexp.MustCompile(`(?s)\[.*\]`)
	numberingRegex = regexp.MustCompile(`^\d+[.)]\s*`)
)

// stripFences unwraps a markdown code fence when the reply is wrapped in one.
func stripFences(text string) string {
	if m := fenceRegex.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// extractStringArray tries the two structured strategies: parse the whole
// (unfenced) reply as a JSON array, then the greedy bracketed slice of it.
func extractStringArray(text string) ([]string, bool) {
	cleaned := stripFences(text)

	if items, ok := parseStringArray(cleaned); ok {
		return items, true
	}
	if m := arrayRegex.FindString(cleaned); m != "" {
		if items, ok := parseStringArray(m); ok {
			return items, true
		}
	}
	return nil, false
}

func parseStringArray(text string) ([]string, bool) {
	var raw []interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}
	items := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

// extractLines is the loose text strategy: one goal per line. Only lines
// that look like list items count (numbered, bulleted, or quoted); free
// prose such as a refusal message must not turn into goals.
func extractLines(text string) ([]string, bool) {
	var items []string
	for _, line := range strings.Split(stripFences(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "[" || line == "]" {
			continue
		}
		item, ok := stripListMarker(line)
		if !ok || item == "" {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

// stripListMarker removes list decoration from a line and reports whether
// the line carried any.
func stripListMarker(line string) (string, bool) {
	marked := false
	if numberingRegex.MatchString(line) {
		line = numberingRegex.ReplaceAllString(line, "")
		marked = true
	}
	if strings.HasPrefix(line, "- ") {
		line = strings.TrimPrefix(line, "- ")
		marked = true
	}
	// Quoted array leftovers: `"item",` with an optional trailing comma.
	trimmed := strings.TrimSuffix(line, ",")
	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if first == last && (first == '"' || first == '\'') {
			line = trimmed[1 : len(trimmed)-1]
			marked = true
		}
	}
	return strings.TrimSpace(line), marked
}

// extractCourse pulls the first balanced JSON object out of the reply.
func extractCourse(text string) (Course, bool) {
	cleaned := stripFences(text)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return Course{}, false
	}

	var course Course
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &course); err != nil {
		return Course{}, false
	}
	if course.Title == "" || course.Description == "" {
		return Course{}, false
	}
	if course.Duration == "" {
		course.Duration = "4 weeks"
	}
	if course.Level == "" {
		course.Level = "Beginner"
	}
	if course.Url == "" {
		course.Url = "https://www.coursera.org/"
	}
	return course, true
}
