package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/services"
)

type HealthHandler struct {
	probe services.ProviderProbe
	log   *zap.Logger
}

func NewHealthHandler(probe services.ProviderProbe, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		probe: probe,
		log:   log,
	}
}

// HandleHealth handles GET /health without touching the provider.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// HandleProviderProbe handles GET /test-groq/. Probe failures are reported
// in a 200 body.
func (h *HealthHandler) HandleProviderProbe(c *fiber.Ctx) error {
	result, err := h.probe.Probe()
	if err != nil {
		h.log.Warn("⚠️  Provider probe failed", zap.Error(err))
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status": result.Status,
		"text":   result.Body,
	})
}
