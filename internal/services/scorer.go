package services

import (
	"strings"
	"unicode/utf8"
)

const (
	baseResumeScore   = 50
	maxResumeScore    = 100
	scoreBonus        = 10
	longResumeRunes   = 1500
	achievementMarker = "%+-$"
)

var skillKeywords = []string{"python", "java", "react", "sql"}

type ResumeScorer interface {
	Score(resumeText string) int
}

type resumeScorer struct{}

func NewResumeScorer() ResumeScorer {
	return &resumeScorer{}
}

// Score is a point heuristic in [50, 100].
func (s *resumeScorer) Score(resumeText string) int {
	lower := strings.ToLower(resumeText)
	score := baseResumeScore

	if strings.Contains(lower, "project") {
		score += scoreBonus
	}

	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			score += scoreBonus
			break
		}
	}

	// Quantified achievements are checked on the raw text.
	if strings.ContainsAny(resumeText, achievementMarker) {
		score += scoreBonus
	}

	if utf8.RuneCountInString(resumeText) > longResumeRunes {
		score += scoreBonus
	}

	return min(score, maxResumeScore)
}
