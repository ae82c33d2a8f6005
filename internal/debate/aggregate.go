package debate

import (
	"fmt"
	"math"
	"strings"
)

// maxSummaryChars bounds the assembled session text before it is used as a
// prompt body.
const maxSummaryChars = 24000

// Metrics are the session-level numbers included in the feedback response
// envelope.
type Metrics struct {
	TotalWords int `json:"totalWords"`
	TotalMs    int `json:"totalMs"`
	TotalWpm   int `json:"totalWpm"`
	TurnCount  int `json:"turnCount"`
}

// SpeakingRate computes words per minute, rounded to the nearest integer.
// The rate is undefined when no time elapsed, reported as ok=false.
func SpeakingRate(wordCount, durationMs int) (wpm int, ok bool) {
	if durationMs <= 0 {
		return 0, false
	}
	return int(math.Round(float64(wordCount) / (float64(durationMs) / 60000.0))), true
}

// WordCount counts whitespace-delimited tokens; an empty or whitespace-only
// transcript counts zero words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Aggregate renders a validated, non-empty turn list (at most MaxTurns
// entries, the boundary rejects anything else) into a single text block for
// the feedback prompt, plus the session metrics. It is pure: no external
// calls, no error paths.
func Aggregate(turns []Turn) (string, Metrics) {
	var transcripts []string
	totalMs := 0
	blocks := make([]string, 0, len(turns))

	for i, t := range turns {
		transcripts = append(transcripts, t.StudentTranscript)
		totalMs += t.RecordingMs

		blocks = append(blocks, renderTurn(i+1, t))
	}

	totalWords := WordCount(strings.Join(transcripts, " "))
	metrics := Metrics{
		TotalWords: totalWords,
		TotalMs:    totalMs,
		TurnCount:  len(turns),
	}

	overall := "unknown"
	if wpm, ok := SpeakingRate(totalWords, totalMs); ok {
		metrics.TotalWpm = wpm
		overall = fmt.Sprintf("%d wpm", wpm)
	}

	text := fmt.Sprintf("Overall speaking rate: %s\n\n%s", overall, strings.Join(blocks, "\n\n"))
	return truncateRuneSafe(text, maxSummaryChars), metrics
}

func renderTurn(index int, t Turn) string {
	rate := "unknown"
	if wpm, ok := SpeakingRate(WordCount(t.StudentTranscript), t.RecordingMs); ok {
		rate = fmt.Sprintf("%d wpm", wpm)
	}

	return fmt.Sprintf(`Turn %d:
Transcript: %s
Edited: %s
Duration: %d ms
Rate: %s
Opponent: %s`,
		index,
		orPlaceholder(t.StudentTranscript),
		orPlaceholder(t.StudentText),
		t.RecordingMs,
		rate,
		orPlaceholder(t.AIReply))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(empty)"
	}
	return s
}
