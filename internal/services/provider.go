package services

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrProviderFailure = errors.New("chat provider request failed")
	ErrEmptyCompletion = errors.New("chat provider returned no content")
)

// ChatProvider sends one system+user exchange to a hosted chat model.
type ChatProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
	Name() string
}

type ProviderSettings struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
}

// NewChatProvider builds the provider named in settings; "groq" is the default.
func NewChatProvider(ctx context.Context, settings ProviderSettings) (ChatProvider, error) {
	switch settings.Name {
	case "gemini":
		return NewGeminiProvider(ctx, settings.APIKey, settings.BaseURL, settings.Model)
	case "groq", "":
		return NewGroqProvider(settings.APIKey, settings.BaseURL, settings.Model), nil
	default:
		return nil, fmt.Errorf("unknown chat provider %q", settings.Name)
	}
}
