package handlers

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type UploadHandler struct {
	storageService services.StorageService
	extractor      services.TextExtractor
	maxFileSize    int64
	log            *zap.Logger
}

func NewUploadHandler(
	storageService services.StorageService,
	extractor services.TextExtractor,
	maxFileSize int64,
	log *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
		log:            log,
	}
}

// HandleUpload handles POST /upload-resume/
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing resume file.")
	}
	role := c.FormValue("role", models.DefaultRole)

	if file.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	storedName, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Unsupported file type. Upload a PDF, DOCX or TXT resume.")
		}
		h.log.Error("❌ Resume upload error", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Internal error during resume processing.")
	}

	h.log.Info("📥 Resume stored",
		zap.String("original_name", file.Filename),
		zap.String("stored_name", storedName),
		zap.String("role", role),
	)

	text, err := h.extractor.ExtractText(filePath)
	if err != nil {
		h.log.Warn("⚠️  Resume extraction failed", zap.String("stored_name", storedName), zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "Resume is unreadable.")
	}

	if utf8.RuneCountInString(text) < MinResumeLength {
		return fiber.NewError(fiber.StatusBadRequest, "Resume is too short or unreadable.")
	}

	return c.JSON(models.UploadResponse{
		Filename: services.DisplayName(file.Filename),
		Text:     text,
	})
}
