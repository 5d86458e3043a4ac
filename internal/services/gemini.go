package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client    *genai.Client
	modelName string
}

// NewGeminiProvider uses the public Gemini API unless baseURL overrides it.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL, model string) (ChatProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiProvider{
		client:    client,
		modelName: model,
	}, nil
}

func (g *geminiProvider) Name() string {
	return "gemini"
}

// Complete implements ChatProvider.
func (g *geminiProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   4096,
		// System instructions carry no conversational role.
		SystemInstruction: genai.NewContentFromText(systemPrompt, ""),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	if resp == nil {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
