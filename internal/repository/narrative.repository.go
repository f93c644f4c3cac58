package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

// NarrativeRepository generates free text for the life simulation. the
// output is untrusted and must be parsed and validated by the caller
type NarrativeRepository interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type narrativeRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     chatgpt.ChatGPTModel
}

func NewNarrativeRepository(apiKey string) (NarrativeRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return narrativeRepositoryHandler{
		GptClient: client,
		Model:     chatgpt.GPT35Turbo,
	}, nil
}

const fateEnginePrompt = `
You are an AI "Fate" engine for a financial life simulation.
Nudge Strategy: Use "Framing" and "Loss Aversion".
Hooked Strategy: Create a "Trigger" for a decision.

Every answer is a single JSON object and nothing else.
`

func (h narrativeRepositoryHandler) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: h.Model,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: fateEnginePrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("failed to generate narrative: no choices returned")
	}

	return res.Choices[0].Message.Content, nil
}
