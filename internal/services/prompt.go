package services

import (
	"fmt"
	"strings"
)

const feedbackSystemPrompt = "You are a helpful and expert resume reviewer."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFeedbackPrompt embeds the role and resume text verbatim.
func (pb *PromptBuilder) BuildFeedbackPrompt(resumeText, role string) string {
	return fmt.Sprintf(`You are an expert career advisor. Analyze the following resume for a candidate applying as a %s.

Provide:
1. Three specific suggestions to improve the resume.
2. Skills/tools that are missing for a %s.
3. Formatting or tone improvements.

Resume:
%s
`, role, role, resumeText)
}

func (pb *PromptBuilder) SystemPrompt() string {
	return feedbackSystemPrompt
}

// FormatMatches renders ranked matches for terminal output.
func FormatMatches(titles []string) string {
	if len(titles) == 0 {
		return "No matching jobs found."
	}

	parts := make([]string, 0, len(titles))
	for i, title := range titles {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, title))
	}
	return strings.Join(parts, "\n")
}
