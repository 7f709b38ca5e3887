package agents

import (
	"context"
	"fmt"
	"unicode/utf8"

	apperrors "github.com/example/carecompanion/internal/errors"
	"github.com/example/carecompanion/internal/imaging"
	"github.com/example/carecompanion/internal/medtext"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/observability"
	"github.com/example/carecompanion/internal/providers/ocr"
)

// ExtractionStage turns the uploaded image into normalized text and a
// document type.
type ExtractionStage struct {
	Engine    ExtractionProvider
	Languages []string
	// Strict makes an undecodable image fail the stage instead of logging.
	Strict bool
}

func NewExtractionStage(engine ExtractionProvider, strict bool, languages []string) *ExtractionStage {
	return &ExtractionStage{Engine: engine, Strict: strict, Languages: languages}
}

func (s *ExtractionStage) Name() string { return NameExtraction }

func (s *ExtractionStage) Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error) {
	if len(pc.Content) == 0 {
		return nil, apperrors.NewValidationError("no image content provided")
	}
	logger := observability.LoggerFromContext(ctx)

	info, err := imaging.Verify(pc.Content)
	if err != nil {
		if s.Strict {
			return nil, fmt.Errorf("image verification failed: %w", err)
		}
		logger.Warn().Err(err).Str("filename", pc.Filename).Msg("image verification failed, continuing")
	}

	res, err := s.Engine.Recognize(ctx, ocr.Input{
		Filename:  pc.Filename,
		Image:     pc.Content,
		Languages: s.Languages,
	})
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	text := medtext.Normalize(res.Text)
	docType := medtext.ClassifyDocument(text)
	logger.Debug().
		Str("document_type", string(docType)).
		Int("text_length", utf8.RuneCountInString(text)).
		Msg("text extracted")

	return &models.Extraction{
		RawText:         text,
		DocumentType:    docType,
		ConfidenceScore: res.Confidence,
		Metadata: models.ExtractionMetadata{
			Filename:         pc.Filename,
			FileSize:         len(pc.Content),
			TextLength:       utf8.RuneCountInString(text),
			ProcessingMethod: res.Method,
			ImageFormat:      info.Format,
		},
	}, nil
}
