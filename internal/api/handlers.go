package api

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"debatecoach/internal/ai"
	"debatecoach/internal/debate"
	"debatecoach/internal/upload"
	"debatecoach/internal/utils"
)

// Completer is the external prompt-completion capability.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, turns []ai.Message) (string, error)
}

// Uploader runs the transient audio upload lifecycle.
type Uploader interface {
	ReceiveAndTranscribe(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// Handler holds the injected external capabilities. No state is shared
// between requests.
type Handler struct {
	llm     Completer
	uploads Uploader
}

func NewHandler(llm Completer, uploads Uploader) *Handler {
	return &Handler{llm: llm, uploads: uploads}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	// Health check
	r.GET("/health", healthCheck)

	api := r.Group("/api")
	{
		api.POST("/topics", h.generateTopics)
		api.POST("/prep", h.prep)
		api.POST("/ask", h.ask)
		api.POST("/feedback", h.feedback)
		api.POST("/transcribe", h.transcribe)
	}
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "debatecoach-backend",
	})
}

// generateTopics handles POST /api/topics
func (h *Handler) generateTopics(c *gin.Context) {
	var req TopicsRequest
	// Body is optional; an empty body means default difficulty.
	_ = c.ShouldBindJSON(&req)

	difficulty := normalizeDifficulty(req.Difficulty)
	log.Printf("[Topics] Generating topics: difficulty=%s", difficulty)

	system, user := ai.BuildTopicsPrompt(difficulty)
	reply, err := h.llm.Complete(c.Request.Context(), system, []ai.Message{{Role: "user", Content: user}})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "topic generation failed", err.Error())
		return
	}

	topics := ai.ParseTopicList(reply)
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// prep handles POST /api/prep
func (h *Handler) prep(c *gin.Context) {
	var req PrepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.UserText == "" {
		utils.Error(c, http.StatusBadRequest, "userText is required", "")
		return
	}
	if req.Topic == "" {
		utils.Error(c, http.StatusBadRequest, "topic is required", "")
		return
	}

	stance := normalizeStance(req.Stance)
	log.Printf("[Prep] Coaching request: topic=%q, stance=%s, text length=%d",
		req.Topic, stance, len(req.UserText))

	system, user := ai.BuildPrepPrompt(req.Topic, stance, req.UserText)
	reply, err := h.llm.Complete(c.Request.Context(), system, []ai.Message{{Role: "user", Content: user}})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "prep assistance failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ask handles POST /api/ask (live debate rebuttal)
func (h *Handler) ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Topic == "" {
		utils.Error(c, http.StatusBadRequest, "topic is required", "")
		return
	}
	if len(req.Messages) == 0 {
		utils.Error(c, http.StatusBadRequest, "messages are required", "")
		return
	}

	stance := normalizeStance(req.Stance)
	difficulty := normalizeDifficulty(req.Difficulty)
	log.Printf("[Ask] Rebuttal request: topic=%q, stance=%s, difficulty=%s, messages=%d",
		req.Topic, stance, difficulty, len(req.Messages))

	system := ai.BuildDebateSystemPrompt(req.Topic, stance, difficulty)
	turns := make([]ai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == "assistant" {
			role = "assistant"
		}
		turns = append(turns, ai.Message{Role: role, Content: m.Content})
	}

	reply, err := h.llm.Complete(c.Request.Context(), system, turns)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "debate reply failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// feedback handles POST /api/feedback
func (h *Handler) feedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if len(req.Turns) == 0 {
		utils.Error(c, http.StatusBadRequest, "turns are required", "")
		return
	}

	turns := debate.ParseTurns(req.Turns)
	if len(turns) == 0 {
		utils.Error(c, http.StatusBadRequest, "no valid turns in request", "")
		return
	}

	mode := normalizeMode(req.Mode)
	sessionText, metrics := debate.Aggregate(turns)
	log.Printf("[Feedback] Session aggregated: turns=%d, words=%d, wpm=%d, mode=%s",
		metrics.TurnCount, metrics.TotalWords, metrics.TotalWpm, mode)

	system, user := ai.BuildFeedbackPrompt(mode, sessionText)
	reply, err := h.llm.Complete(c.Request.Context(), system, []ai.Message{{Role: "user", Content: user}})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "feedback generation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": reply,
		"meta":  metrics,
	})
}

// transcribe handles POST /api/transcribe (multipart audio upload)
func (h *Handler) transcribe(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		// Try alternative field names
		if file, err = c.FormFile("audio_file"); err != nil {
			if file, err = c.FormFile("file"); err != nil {
				file = nil
			}
		}
	}

	text, err := h.uploads.ReceiveAndTranscribe(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrMissingFile):
			utils.Error(c, http.StatusBadRequest, "audio file is required", "")
		case errors.Is(err, upload.ErrTooSmall):
			utils.Error(c, http.StatusBadRequest, "audio file too small", "recording appears to be empty or near-silent")
		default:
			var tErr *upload.TranscriptionError
			if errors.As(err, &tErr) {
				status := http.StatusInternalServerError
				if s, ok := upstreamStatus(tErr); ok {
					status = s
				}
				utils.Error(c, status, "transcription failed", tErr.Err.Error())
				return
			}
			log.Printf("[Transcribe] Upload lifecycle error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "failed to process audio file", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// upstreamStatus extracts the HTTP status reported by the OpenAI API, if the
// error carries one.
func upstreamStatus(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}
