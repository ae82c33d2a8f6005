package ai

import (
	"fmt"
	"strings"
)

// BuildTopicsPrompt builds the prompt pair for debate topic generation at the
// given difficulty (Easy, Medium, Hard).
func BuildTopicsPrompt(difficulty string) (string, string) {
	systemPrompt := `You are a debate coach for a practice app. You generate motions for student debates.

PRINCIPLES:
- Motions must be debatable: a reasonable person could argue either side
- Motions must be self-contained, one sentence, no preamble
- Avoid topics requiring specialist knowledge to even understand
- Return ONLY a JSON array of strings, no extra text`

	guidance := map[string]string{
		"Easy":   "everyday topics students have direct experience with (school rules, social media, sports)",
		"Medium": "current-affairs topics requiring some general knowledge (policy, technology, environment)",
		"Hard":   "abstract or philosophical topics requiring structured reasoning (ethics, governance, rights)",
	}[difficulty]

	userPrompt := fmt.Sprintf(`Generate 5 debate motions at %s difficulty: %s.

Return ONLY valid JSON, exactly this shape:

["motion 1", "motion 2", "motion 3", "motion 4", "motion 5"]`, difficulty, guidance)

	return systemPrompt, userPrompt
}

// BuildPrepPrompt builds the prompt pair for prep-mode coaching: the student
// is preparing arguments before the debate starts.
func BuildPrepPrompt(topic, stance, userText string) (string, string) {
	systemPrompt := `You are a debate preparation coach. The student is drafting arguments before a practice debate.

PRINCIPLES:
- Help the student strengthen THEIR side, do not argue against them
- Point out missing evidence, weak links, and likely counterarguments they should pre-empt
- Be concrete and brief: numbered suggestions, no lecture
- Never write the whole speech for them`

	userPrompt := fmt.Sprintf(`Motion: %s
Student's side: %s

Student's draft argument:
"""
%s
"""

Give focused prep feedback: what works, what is weak, and which counterarguments to prepare for.`, topic, stance, userText)

	return systemPrompt, userPrompt
}

// BuildDebateSystemPrompt builds the system prompt for Ask mode: the model
// plays the opposing side live. The conversation history is passed separately
// as chat messages.
func BuildDebateSystemPrompt(topic, stance, difficulty string) string {
	opponent := "CON"
	if strings.EqualFold(stance, "CON") {
		opponent = "PRO"
	}

	pressure := map[string]string{
		"Easy":   "Be encouraging. Use simple rebuttals and concede minor points so the student builds confidence.",
		"Medium": "Push back on every major claim with one clear counterargument, but stay civil and accessible.",
		"Hard":   "Rebut aggressively. Attack the weakest link in each argument, demand evidence, and never concede.",
	}[difficulty]

	return fmt.Sprintf(`You are the student's debate opponent in a live practice round.

Motion: %s
The student argues %s. You argue %s.

RULES:
- Respond only with your rebuttal to the student's last statement, in 2-4 sentences
- Stay strictly on the motion, never break character or mention being an AI
- %s`, topic, stance, opponent, pressure)
}

// BuildFeedbackPrompt builds the prompt pair for post-session feedback over
// the aggregated session text. mode is "short" or "detailed".
func BuildFeedbackPrompt(mode, sessionText string) (string, string) {
	systemPrompt := `You are a debate coach reviewing a finished practice session. You are given every turn the student spoke (raw transcript plus their edited version), the opponent's replies, and speaking-rate metrics.

PRINCIPLES:
- Judge argument quality, structure, and responsiveness to the opponent
- Use the speaking-rate numbers: below 110 wpm is too slow, above 170 wpm is too fast
- Quote the student's own words when pointing out a problem
- Be honest but constructive`

	var task string
	if mode == "detailed" {
		task = `Write detailed feedback:
1. Overall assessment (2-3 sentences)
2. Turn-by-turn notes: the strongest and weakest moment of each turn
3. Delivery: pace and clarity based on the metrics
4. Three specific things to practice next session`
	} else {
		task = `Write short feedback: one paragraph of overall assessment, then the single most important thing to improve.`
	}

	userPrompt := fmt.Sprintf(`Session record:

%s

%s`, sessionText, task)

	return systemPrompt, userPrompt
}
