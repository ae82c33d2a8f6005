package debate

import (
	"math"
	"unicode/utf8"
)

// MaxTurns is the hard cap on turns considered per session; anything past it
// is ignored.
const MaxTurns = 12

// maxFieldChars bounds each text field of a turn.
const maxFieldChars = 6000

// Turn is one exchange in a practice session: the student's recorded
// utterance plus the opponent's prior reply.
type Turn struct {
	StudentTranscript string
	StudentText       string
	RecordingMs       int
	AIReply           string
}

// ParseTurns builds a validated turn list from a decoded JSON array. The raw
// list is truncated to the first MaxTurns entries; within those, malformed
// entries (non-object, wrong field types, negative duration) are dropped
// rather than failing the request. Missing fields are fine and take zero
// values.
func ParseTurns(raw []any) []Turn {
	if len(raw) > MaxTurns {
		raw = raw[:MaxTurns]
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		transcript, ok := stringField(obj, "studentTranscript")
		if !ok {
			continue
		}
		text, ok := stringField(obj, "studentText")
		if !ok {
			continue
		}
		reply, ok := stringField(obj, "aiReply")
		if !ok {
			continue
		}
		ms, ok := msField(obj, "recordingMs")
		if !ok {
			continue
		}

		turns = append(turns, Turn{
			StudentTranscript: clamp(transcript),
			StudentText:       clamp(text),
			RecordingMs:       ms,
			AIReply:           clamp(reply),
		})
	}
	return turns
}

// stringField reads a string field. Missing is fine (empty string); a present
// non-string value marks the entry malformed.
func stringField(obj map[string]any, key string) (string, bool) {
	v, present := obj[key]
	if !present || v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

// msField reads a non-negative integer duration. JSON numbers decode as
// float64; values that do not fit an int32 (or NaN) would overflow the
// conversion, so they count as wrong-typed and mark the entry malformed.
func msField(obj map[string]any, key string) (int, bool) {
	v, present := obj[key]
	if !present || v == nil {
		return 0, true
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func clamp(s string) string {
	return truncateRuneSafe(s, maxFieldChars)
}

// truncateRuneSafe cuts s to at most max bytes, backing up so a multi-byte
// UTF-8 sequence is never split at the boundary.
func truncateRuneSafe(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
