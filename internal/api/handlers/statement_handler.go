package handlers

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cardsight/internal/dto"
	"cardsight/internal/service"
)

type StatementHandler struct {
	statementService *service.StatementService
	tmpDir           string
	logger           *zap.Logger
}

func NewStatementHandler(statementService *service.StatementService, tmpDir string, logger *zap.Logger) *StatementHandler {
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		logger.Warn("Failed to create temp directory", zap.Error(err))
	}

	return &StatementHandler{
		statementService: statementService,
		tmpDir:           tmpDir,
		logger:           logger,
	}
}

// ParseStatement accepts a statement PDF upload, stores it to an isolated
// per-request temporary file, runs the parsing pipeline and returns the
// statement record. The temporary file is removed on every exit path.
func (h *StatementHandler) ParseStatement(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF statements are supported",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	tmpPath := filepath.Join(h.tmpDir, "statement-"+uuid.New().String()+".pdf")
	dst, err := os.Create(tmpPath)
	if err != nil {
		h.logger.Error("Failed to create temp file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store uploaded file",
		})
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		h.logger.Error("Failed to save uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store uploaded file",
		})
	}
	dst.Close()

	statement, err := h.statementService.ParseFile(c.Context(), tmpPath)
	if err != nil {
		h.logger.Error("Failed to parse statement",
			zap.String("file", fileHeader.Filename),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.NewStatementResponse(statement))
}
