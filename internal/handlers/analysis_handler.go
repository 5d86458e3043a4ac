package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalysisHandler struct {
	scorer  services.ResumeScorer
	matcher services.JobMatcher
	topK    int
}

func NewAnalysisHandler(scorer services.ResumeScorer, matcher services.JobMatcher, topK int) *AnalysisHandler {
	return &AnalysisHandler{
		scorer:  scorer,
		matcher: matcher,
		topK:    topK,
	}
}

// HandleScore handles POST /score-resume/
func (h *AnalysisHandler) HandleScore(c *fiber.Ctx) error {
	text, err := resumeText(c)
	if err != nil {
		return err
	}

	return c.JSON(models.ScoreResponse{Score: h.scorer.Score(text)})
}

// HandleMatch handles POST /match-jobs/
func (h *AnalysisHandler) HandleMatch(c *fiber.Ctx) error {
	text, err := resumeText(c)
	if err != nil {
		return err
	}

	return c.JSON(models.MatchResponse{Matches: h.matcher.Match(text, h.topK)})
}

func resumeText(c *fiber.Ctx) (string, error) {
	var req models.ResumeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid request payload.")
	}

	if req.ResumeText == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Missing resume text.")
	}

	return req.ResumeText, nil
}
