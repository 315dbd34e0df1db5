package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/resume-insight/internal/ai"
	"github.com/spigell/resume-insight/internal/docintel"
	"github.com/spigell/resume-insight/internal/document"
	"github.com/spigell/resume-insight/internal/logger"
	"github.com/spigell/resume-insight/internal/sections"
	"go.uber.org/zap"
)

// Extractor obtains plain text from an uploaded document.
type Extractor interface {
	Extract(ctx context.Context, doc *document.Raw) (*docintel.ExtractionResult, error)
}

// Pipeline runs one resume through extraction, segmentation, inference and
// decoding. It holds no per-call state: the same Pipeline may serve
// concurrent analyses.
type Pipeline struct {
	extractor Extractor
	analyzer  ai.Analyzer
	logger    *zap.Logger
}

// New wires the pipeline stages together.
func New(extractor Extractor, analyzer ai.Analyzer, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{
		extractor: extractor,
		analyzer:  analyzer,
		logger:    log,
	}
}

// Analyze produces a structured evaluation of the document for the target
// role. Extraction failures abort the call; a malformed model reply does
// not, since the decoder always yields a usable record.
func (p *Pipeline) Analyze(ctx context.Context, doc *document.Raw, targetRole string) (*ai.AnalysisRecord, error) {
	extraction, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	p.logger.Info("document text extracted", append(
		logger.StringFields(
			logger.StringField{Key: logger.FieldMethod, Value: string(extraction.Method)},
			logger.StringField{Key: logger.FieldAPIVersion, Value: extraction.APIVersion},
		),
		zap.Int("text_length", len(extraction.Text)),
		zap.Int("pages", len(extraction.Pages)),
	)...)

	resumeText := p.segment(extraction.Text)

	reply, err := p.analyzer.Infer(ctx, resumeText, targetRole)
	if err != nil {
		return nil, fmt.Errorf("analyze resume text: %w", err)
	}

	record := ai.Decode(reply)
	record.ExtractedText = extraction.Text

	p.logger.Info("analysis decoded", append(
		logger.StringFields(
			logger.StringField{Key: logger.FieldStrategy, Value: record.Strategy},
			logger.StringField{Key: logger.FieldModel, Value: p.analyzer.Model()},
		),
		zap.Float64("role_match_score", record.RoleMatchScore),
		zap.Int("skills", len(record.Skills)),
	)...)

	return record, nil
}

// segment reorganizes extracted lines into labeled sections. When no header
// is detected the original text is used as-is.
func (p *Pipeline) segment(text string) string {
	segmented := sections.Segment(strings.Split(text, "\n"))

	if !sections.HasExplicit(segmented) {
		p.logger.Debug("no sections detected, using original content")
		return text
	}

	p.logger.Debug("sections identified", zap.Int("count", len(segmented)))
	return sections.Render(segmented)
}
