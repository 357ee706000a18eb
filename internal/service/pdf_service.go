package service

import (
	"bytes"
	"fmt"
	"image/png"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"cardsight/internal/models"
	"cardsight/pkg/config"
)

// cellSplit separates table cells: a tab or a run of two or more spaces.
var cellSplit = regexp.MustCompile(`\t|\s{2,}`)

// PDFService recovers text and table rows from statement documents using
// go-fitz for the native text layer and rasterization, and Tesseract for
// scanned pages.
type PDFService struct {
	cfg    *config.ParserConfig
	logger *zap.Logger
}

func NewPDFService(cfg *config.ParserConfig, logger *zap.Logger) *PDFService {
	return &PDFService{
		cfg:    cfg,
		logger: logger,
	}
}

// RecoverText extracts the native text layer page by page, pages joined by a
// line break. When the stripped result is shorter than MinTextLength the
// document is likely scanned: every page is rasterized and run through OCR,
// and the recognized text is appended to whatever native text was found.
// Page-level failures degrade to empty; only failing to open the document or
// an unavailable OCR engine is fatal.
func (s *PDFService) RecoverText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("failed to extract page text",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	text := b.String()
	if len(strings.TrimSpace(text)) >= s.cfg.MinTextLength {
		s.logger.Debug("native text layer recovered",
			zap.Int("pages", doc.NumPage()),
			zap.Int("text_length", len(text)),
		)
		return text, nil
	}

	ocrText, err := s.ocrPages(doc)
	if err != nil {
		return "", err
	}
	return text + ocrText, nil
}

// ocrPages rasterizes every page and runs it through Tesseract. Empty OCR
// output is not an error.
func (s *PDFService) ocrPages(doc *fitz.Document) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(s.cfg.OCRLanguage); err != nil {
		return "", fmt.Errorf("failed to configure OCR language: %w", err)
	}

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(s.cfg.OCRDPI))
		if err != nil {
			s.logger.Warn("failed to rasterize page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			s.logger.Warn("failed to encode page image",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}

		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			return "", fmt.Errorf("failed to load page image into OCR engine: %w", err)
		}
		pageText, err := client.Text()
		if err != nil {
			return "", fmt.Errorf("OCR failed on page %d: %w", i+1, err)
		}

		b.WriteString(sanitizeUTF8(pageText))
		b.WriteString("\n")
	}

	s.logger.Info("OCR fallback completed",
		zap.Int("pages", doc.NumPage()),
		zap.Int("dpi", s.cfg.OCRDPI),
		zap.String("lang", s.cfg.OCRLanguage),
		zap.Int("text_length", b.Len()),
	)
	return b.String(), nil
}

// RecoverTables scans every page for grid-like lines and returns the rows
// that carry a date-shaped token, in page then line order. The text layer
// has no table model, so columns are recovered from tab stops and runs of
// spaces.
func (s *PDFService) RecoverTables(path string) ([]models.TableRow, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	var rows []models.TableRow
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("failed to extract page text",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		for _, line := range strings.Split(pageText, "\n") {
			if row := splitRowCells(line); row != nil {
				rows = append(rows, row)
			}
		}
	}

	s.logger.Debug("table rows recovered", zap.Int("rows", len(rows)))
	return rows, nil
}

// splitRowCells interprets a line as a table row when it separates into at
// least two cells and one of them carries a date-shaped token. Cells are
// trimmed; an empty cell stays an empty string.
func splitRowCells(line string) models.TableRow {
	cells := cellSplit.Split(strings.TrimSpace(line), -1)
	if len(cells) < 2 {
		return nil
	}
	row := make(models.TableRow, len(cells))
	hasDate := false
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		row[i] = cell
		if dateShape.MatchString(cell) {
			hasDate = true
		}
	}
	if !hasDate {
		return nil
	}
	return row
}
