package ai

import (
	"encoding/json"
	"log"
	"strings"
)

// ParseTopicList parses the completion output of a topic-generation request.
// The model is asked for a JSON array of strings, but smaller models sometimes
// wrap it in markdown fences or fall back to a bullet list. Parse failures are
// recovered line by line and never surfaced to the caller.
func ParseTopicList(content string) []string {
	cleaned := extractJSONFromMarkdown(content)

	var topics []string
	if err := json.Unmarshal([]byte(cleaned), &topics); err == nil {
		out := make([]string, 0, len(topics))
		for _, t := range topics {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	log.Printf("[AI] Topic list is not a JSON array, falling back to line parse (length: %d)", len(content))
	return parseTopicLines(content)
}

// parseTopicLines extracts topics from free-form model output: one topic per
// non-empty line, with bullets, numbering, and quotes stripped.
func parseTopicLines(content string) []string {
	var topics []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		// Strip leading "1." / "2)" style numbering.
		if i := strings.IndexAny(line, ".)"); i > 0 && i <= 2 && isDigits(line[:i]) {
			line = strings.TrimSpace(line[i+1:])
		}
		line = strings.TrimSuffix(line, ",")
		line = strings.Trim(line, `"`)
		if line == "" || line == "[" || line == "]" {
			continue
		}
		topics = append(topics, line)
	}
	return topics
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// extractJSONFromMarkdown extracts JSON from markdown code blocks
func extractJSONFromMarkdown(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
