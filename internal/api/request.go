package api

import "strings"

// ChatMessage is one prior exchange in the live debate conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TopicsRequest asks for debate motions at a difficulty.
type TopicsRequest struct {
	Difficulty string `json:"difficulty"`
}

// PrepRequest asks for prep-mode coaching on a draft argument.
type PrepRequest struct {
	Topic    string `json:"topic"`
	Stance   string `json:"stance"`
	UserText string `json:"userText"`
}

// AskRequest asks for a live rebuttal from the simulated opponent.
type AskRequest struct {
	Topic      string        `json:"topic"`
	Stance     string        `json:"stance"`
	Difficulty string        `json:"difficulty"`
	Messages   []ChatMessage `json:"messages"`
}

// FeedbackRequest asks for post-session feedback over recorded turns. Turns
// are decoded loosely; malformed entries are dropped downstream rather than
// failing the bind.
type FeedbackRequest struct {
	Turns []any  `json:"turns"`
	Mode  string `json:"mode"`
}

// normalizeStance coerces stance to PRO or CON, case-insensitive, defaulting
// to PRO.
func normalizeStance(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "CON") {
		return "CON"
	}
	return "PRO"
}

// normalizeDifficulty coerces difficulty to Easy, Medium, or Hard,
// case-insensitive, defaulting to Medium.
func normalizeDifficulty(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return "Easy"
	case "hard":
		return "Hard"
	default:
		return "Medium"
	}
}

// normalizeMode coerces feedback mode to short or detailed, defaulting to
// short.
func normalizeMode(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "detailed") {
		return "detailed"
	}
	return "short"
}
