package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	feedbackTemperature float32 = 0.7

	// FeedbackFailureMessage is what clients receive when the provider call fails.
	FeedbackFailureMessage = "❌ An error occurred while generating feedback. Please try again."
	// NoContentMarker in a completion means the model produced nothing usable.
	NoContentMarker = "No valid content"
)

type FeedbackService interface {
	GenerateFeedback(ctx context.Context, resumeText, role string) (string, error)
}

type feedbackService struct {
	provider      ChatProvider
	promptBuilder *PromptBuilder
	timeout       time.Duration
	log           *zap.Logger
}

func NewFeedbackService(provider ChatProvider, timeout time.Duration, log *zap.Logger) FeedbackService {
	return &feedbackService{
		provider:      provider,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		log:           log,
	}
}

// GenerateFeedback makes a single provider round trip. Errors wrap
// ErrProviderFailure or ErrEmptyCompletion.
func (f *feedbackService) GenerateFeedback(ctx context.Context, resumeText, role string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	f.log.Info("📤 Sending resume for feedback",
		zap.String("provider", f.provider.Name()),
		zap.String("role", role),
		zap.Int("resume_chars", utf8.RuneCountInString(resumeText)),
	)

	prompt := f.promptBuilder.BuildFeedbackPrompt(resumeText, role)
	text, err := f.provider.Complete(ctx, f.promptBuilder.SystemPrompt(), prompt, feedbackTemperature)
	if err != nil {
		f.log.Error("❌ Feedback generation failed",
			zap.String("provider", f.provider.Name()),
			zap.Error(err),
		)
		return "", fmt.Errorf("generate feedback: %w", err)
	}

	return text, nil
}

// FeedbackOrSentinel collapses a feedback outcome to the legacy string form.
func FeedbackOrSentinel(text string, err error) string {
	if err != nil {
		return FeedbackFailureMessage
	}
	return text
}
