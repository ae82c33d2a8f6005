package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopicListJSONArray(t *testing.T) {
	topics := ParseTopicList(`["Schools should ban phones", "Voting age should be 16"]`)

	require.Len(t, topics, 2)
	assert.Equal(t, "Schools should ban phones", topics[0])
}

func TestParseTopicListMarkdownFencedJSON(t *testing.T) {
	topics := ParseTopicList("```json\n[\"Motion one\", \"Motion two\"]\n```")

	require.Len(t, topics, 2)
	assert.Equal(t, "Motion two", topics[1])
}

func TestParseTopicListFallsBackToLines(t *testing.T) {
	content := `Here are some motions:
1. Schools should ban phones
2) Voting age should be 16
- Homework should be abolished
* Zoos should be closed`

	topics := ParseTopicList(content)

	require.Len(t, topics, 5)
	assert.Equal(t, "Here are some motions:", topics[0])
	assert.Equal(t, "Schools should ban phones", topics[1])
	assert.Equal(t, "Voting age should be 16", topics[2])
	assert.Equal(t, "Homework should be abolished", topics[3])
	assert.Equal(t, "Zoos should be closed", topics[4])
}

func TestParseTopicListSkipsEmptyAndBracketLines(t *testing.T) {
	content := "[\n\"Motion one\",\n\n\"Motion two\"\n]"

	// Not valid JSON for []string? It is valid JSON, so the direct parse wins.
	topics := ParseTopicList(content)
	require.Len(t, topics, 2)

	// Broken JSON falls back to lines, with brackets and blanks skipped.
	broken := "[\nMotion one,\n\nMotion two\n]"
	topics = ParseTopicList(broken)
	require.Len(t, topics, 2)
	assert.Equal(t, "Motion one", topics[0])
	assert.Equal(t, "Motion two", topics[1])
}

func TestBuildDebateSystemPromptOpposesStudent(t *testing.T) {
	p := BuildDebateSystemPrompt("Zoos should be closed", "PRO", "Hard")
	assert.Contains(t, p, "The student argues PRO. You argue CON.")
	assert.Contains(t, p, "Rebut aggressively")

	p = BuildDebateSystemPrompt("Zoos should be closed", "CON", "Easy")
	assert.Contains(t, p, "The student argues CON. You argue PRO.")
	assert.Contains(t, p, "Be encouraging")
}

func TestBuildFeedbackPromptModes(t *testing.T) {
	_, short := BuildFeedbackPrompt("short", "session")
	assert.Contains(t, short, "Write short feedback")

	_, detailed := BuildFeedbackPrompt("detailed", "session")
	assert.Contains(t, detailed, "Turn-by-turn notes")
}
