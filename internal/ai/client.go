package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Message is one conversation turn forwarded to the completion API.
// Role is "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Client wraps the OpenAI API for chat completions and audio transcription.
// It is constructed once in main and injected into the handlers so tests can
// substitute a stub.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a new OpenAI-backed client using the given API key and
// chat model (e.g. "gpt-4o-mini").
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// Complete sends a system prompt plus an ordered conversation to the chat
// completions API and returns the assistant reply text.
func (c *Client) Complete(ctx context.Context, systemPrompt string, turns []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, t := range turns {
		role := openai.ChatMessageRoleUser
		if t.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: t.Content,
		})
	}

	log.Printf("[AI] Calling chat completion: model=%s, turns=%d, system length=%d",
		c.model, len(turns), len(systemPrompt))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[AI] OpenAI API error: %v", err)
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Printf("[AI] Completion received (length: %d), usage: prompt=%d completion=%d total=%d",
		len(reply), resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	return reply, nil
}

// Transcribe sends an audio file to the Whisper transcription API and returns
// the transcript text. language is an ISO-639-1 hint such as "en".
func (c *Client) Transcribe(ctx context.Context, audioPath string, language string) (string, error) {
	log.Printf("[AI] Transcribing audio file: %s (language: %s)", audioPath, language)

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Language: language,
	})
	if err != nil {
		log.Printf("[AI] Transcription error: %v", err)
		return "", fmt.Errorf("transcription API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	log.Printf("[AI] Transcription successful (length: %d)", len(text))
	return text, nil
}
