// File: services/chat/geminiClient.go
package chat

import (
	"context"
	"fmt"
	"strings"

	"astrodesk/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient is the alternative completer backed by Google's Gemini models.
type GeminiClient struct {
	apiKey string
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini completer. With an empty key the client is
// still constructed and every call reports ErrNoAPIKey, matching the fallback
// contract.
func NewGeminiClient(apiKey string) *GeminiClient {
	if apiKey == "" {
		return &GeminiClient{}
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{apiKey: apiKey, model: model}
}

// Complete flattens the persona instruction and history into a single prompt
// and returns the generated reply.
func (g *GeminiClient) Complete(ctx context.Context, system string, history []models.ChatTurn) (string, error) {
	if g.apiKey == "" || g.model == nil {
		return "", ErrNoAPIKey
	}

	var prompt strings.Builder
	prompt.WriteString(system)
	prompt.WriteString("\n\nConversation so far:\n")
	for _, turn := range history {
		prompt.WriteString(turn.Role)
		prompt.WriteString(": ")
		prompt.WriteString(turn.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("assistant:")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
