package handlers

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Upload   *UploadHandler
	Feedback *FeedbackHandler
	Analysis *AnalysisHandler
	Health   *HealthHandler
}

var Endpoints = []string{
	"POST /upload-resume/",
	"POST /suggest-improvements/",
	"POST /score-resume/",
	"POST /match-jobs/",
	"GET /test-groq/",
	"GET /health",
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Post("/upload-resume/", h.Upload.HandleUpload)
	app.Post("/suggest-improvements/", h.Feedback.HandleSuggest)
	app.Post("/score-resume/", h.Analysis.HandleScore)
	app.Post("/match-jobs/", h.Analysis.HandleMatch)
	app.Get("/test-groq/", h.Health.HandleProviderProbe)
	app.Get("/health", h.Health.HandleHealth)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Resume Analyzer API",
			"version":   "1.0.0",
			"endpoints": Endpoints,
		})
	})
}
