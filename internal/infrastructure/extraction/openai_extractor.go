package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	importapp "github.com/agency/backend/internal/application/import"
	"github.com/agency/backend/internal/infrastructure/config"
	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt instructs the model to emit draft rows as strict JSON. The
// planning texts come in Spanish, so the field hints do too.
const systemPrompt = `Sos un asistente que extrae publicaciones planificadas de un texto libre.
Respondé únicamente con un objeto JSON con la forma:
{"publications": [{"client_name": "...", "name": "...", "type": "reel|carousel|image", "date": "2026-09-03T15:00:00Z", "description": "...", "copywriting": "..."}]}
Usá fechas RFC 3339. Si un campo no aparece en el texto dejalo vacío.`

// OpenAIExtractor turns free-form planning text into draft publication rows
// using a chat completion. It implements importapp.Extractor.
type OpenAIExtractor struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIExtractor creates an extractor from configuration. Returns nil
// when no API key is configured; the import service treats a nil extractor
// as an unavailable feature rather than an error.
func NewOpenAIExtractor(cfg *config.OpenAIConfig) *OpenAIExtractor {
	if cfg.APIKey == "" {
		return nil
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &OpenAIExtractor{
		api:     openai.NewClient(cfg.APIKey),
		model:   model,
		timeout: timeout,
	}
}

// extractionResult is the JSON envelope the model is asked to produce
type extractionResult struct {
	Publications []importapp.DraftRow `json:"publications"`
}

// ExtractPublications sends the text to the model and decodes the rows
func (e *OpenAIExtractor) ExtractPublications(ctx context.Context, text string) ([]importapp.DraftRow, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("extraction: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("extraction: model returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	var result extractionResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("extraction: decoding model output: %w", err)
	}
	return result.Publications, nil
}
