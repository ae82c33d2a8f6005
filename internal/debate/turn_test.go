package debate

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTurn(transcript string, ms float64) map[string]any {
	return map[string]any{
		"studentTranscript": transcript,
		"studentText":       transcript,
		"recordingMs":       ms,
		"aiReply":           "reply",
	}
}

func TestParseTurnsValid(t *testing.T) {
	turns := ParseTurns([]any{rawTurn("hello world", 1500)})

	require.Len(t, turns, 1)
	assert.Equal(t, "hello world", turns[0].StudentTranscript)
	assert.Equal(t, 1500, turns[0].RecordingMs)
	assert.Equal(t, "reply", turns[0].AIReply)
}

func TestParseTurnsTruncatesToFirstTwelve(t *testing.T) {
	raw := make([]any, 0, 20)
	for i := 0; i < 20; i++ {
		raw = append(raw, rawTurn("turn", float64(i)))
	}

	turns := ParseTurns(raw)

	require.Len(t, turns, MaxTurns)
	// Exactly the first 12 entries survive; turn 13+ never shows up.
	assert.Equal(t, 11, turns[MaxTurns-1].RecordingMs)
}

func TestParseTurnsDropsMalformedEntries(t *testing.T) {
	turns := ParseTurns([]any{
		"not an object",
		42.0,
		nil,
		map[string]any{"studentTranscript": 7.0},   // wrong field type
		map[string]any{"recordingMs": "fast"},      // wrong field type
		map[string]any{"recordingMs": -100.0},      // negative duration
		rawTurn("kept", 1000),
	})

	require.Len(t, turns, 1)
	assert.Equal(t, "kept", turns[0].StudentTranscript)
}

func TestParseTurnsDropsUnrepresentableDurations(t *testing.T) {
	turns := ParseTurns([]any{
		map[string]any{"recordingMs": 1e300},
		map[string]any{"recordingMs": math.Inf(1)},
		map[string]any{"recordingMs": math.NaN()},
		rawTurn("kept", 1000),
	})

	require.Len(t, turns, 1)
	assert.Equal(t, "kept", turns[0].StudentTranscript)
	// No drop path may ever admit a negative duration.
	assert.GreaterOrEqual(t, turns[0].RecordingMs, 0)
}

func TestParseTurnsMissingFieldsAreZeroValues(t *testing.T) {
	turns := ParseTurns([]any{map[string]any{}})

	require.Len(t, turns, 1)
	assert.Equal(t, "", turns[0].StudentTranscript)
	assert.Equal(t, 0, turns[0].RecordingMs)
}

func TestParseTurnsClampsLongFields(t *testing.T) {
	long := strings.Repeat("x", maxFieldChars+500)
	turns := ParseTurns([]any{rawTurn(long, 1000)})

	require.Len(t, turns, 1)
	assert.Len(t, turns[0].StudentTranscript, maxFieldChars)
	assert.Len(t, turns[0].StudentText, maxFieldChars)
}

func TestParseTurnsClampNeverSplitsRunes(t *testing.T) {
	// The one-byte prefix puts the byte limit mid-rune in the repeated
	// three-byte character.
	long := "x" + strings.Repeat("語", maxFieldChars/3+10)
	turns := ParseTurns([]any{rawTurn(long, 1000)})

	require.Len(t, turns, 1)
	got := turns[0].StudentTranscript
	assert.LessOrEqual(t, len(got), maxFieldChars)
	assert.True(t, utf8.ValidString(got))
}
