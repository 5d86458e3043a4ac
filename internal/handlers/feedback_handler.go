package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type FeedbackHandler struct {
	pool services.FeedbackPool
	log  *zap.Logger
}

func NewFeedbackHandler(pool services.FeedbackPool, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		pool: pool,
		log:  log,
	}
}

// HandleSuggest handles POST /suggest-improvements/
func (h *FeedbackHandler) HandleSuggest(c *fiber.Ctx) error {
	var req models.ResumeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload.")
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.ResumeText)) < MinResumeLength {
		return fiber.NewError(fiber.StatusBadRequest, "Resume is too short for feedback.")
	}
	if utf8.RuneCountInString(req.ResumeText) > MaxFeedbackLength {
		return fiber.NewError(fiber.StatusBadRequest, "Resume is too long for feedback.")
	}

	text, err := h.pool.Submit(c.UserContext(), req.ResumeText, req.RoleOrDefault())
	switch {
	case err == nil, errors.Is(err, services.ErrProviderFailure):
	case errors.Is(err, services.ErrEmptyCompletion):
		text, err = "", nil
	default:
		h.log.Error("❌ Feedback worker error", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Internal error while generating feedback.")
	}

	feedback := services.FeedbackOrSentinel(text, err)
	if feedback == "" || strings.Contains(feedback, services.NoContentMarker) {
		return fiber.NewError(fiber.StatusInternalServerError, "AI feedback model returned no suggestions.")
	}

	return c.JSON(feedback)
}
