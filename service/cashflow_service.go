package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/metrics"
	"github.com/Aashish23092/cashflow-analyzer/utils"
	"github.com/Aashish23092/cashflow-analyzer/utils/cashflow"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const previewLength = 500

type CashFlowService struct {
	pdfProcessor   PDFProcessor
	extractor      *cashflow.Extractor
	maxConcurrency int
}

// NewCashFlowService wires the batch pipeline. maxConcurrency below 1 processes
// documents one at a time.
func NewCashFlowService(pdfProcessor PDFProcessor, extractor *cashflow.Extractor, maxConcurrency int) *CashFlowService {
	if extractor == nil {
		extractor = cashflow.NewExtractor(nil, cashflow.DefaultOptions())
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &CashFlowService{
		pdfProcessor:   pdfProcessor,
		extractor:      extractor,
		maxConcurrency: maxConcurrency,
	}
}

// Rules returns the rule table the service extracts with.
func (s *CashFlowService) Rules() *cashflow.RuleSet {
	return s.extractor.Rules()
}

// Analyze extracts every document and builds the pivot and comparison tables over the
// selected sections. A failing document is reported in its DocumentResult and never
// stops the others; only context cancellation aborts the batch.
func (s *CashFlowService) Analyze(ctx context.Context, docs []dto.DocumentInput, sections []dto.SectionKey) (*dto.AnalysisResponse, error) {
	if len(docs) == 0 {
		return nil, dto.ErrNoFiles
	}
	if len(sections) == 0 {
		sections = dto.AllSections()
	}

	batchID := uuid.NewString()
	logger := log.With().Str("batch_id", batchID).Logger()
	logger.Info().Int("documents", len(docs)).Int("concurrency", s.maxConcurrency).Msg("starting cash-flow analysis")

	results := make([]dto.DocumentResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.ProcessDocument(logger.WithContext(gctx), doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	periods := Aggregate(results)
	SortPeriods(periods)

	response := &dto.AnalysisResponse{
		BatchID:     batchID,
		Documents:   results,
		Periods:     periods,
		Pivot:       BuildPivot(periods, sections),
		Comparison:  Compare(periods, sections),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}

	logger.Info().
		Int("periods", len(periods)).
		Int("failed", len(results)-len(periods)).
		Msg("cash-flow analysis completed")
	return response, nil
}

// ProcessDocument runs a single document through text extraction and section matching.
func (s *CashFlowService) ProcessDocument(ctx context.Context, doc dto.DocumentInput) dto.DocumentResult {
	start := time.Now()
	defer func() { metrics.ExtractionDuration.Observe(time.Since(start).Seconds()) }()

	logger := zerolog.Ctx(ctx).With().Str("file", doc.Name).Logger()
	result := dto.DocumentResult{Source: doc.Name, Label: periodLabel(doc)}

	if err := doc.Validate(); err != nil {
		return fail(&logger, result, metrics.OutcomeFailed, err)
	}

	text := doc.Text
	if !doc.IsText() {
		extracted, err := s.pdfProcessor.ExtractText(doc.Data, doc.Password)
		if err != nil {
			return fail(&logger, result, metrics.OutcomeFailed, fmt.Errorf("failed to extract text from %s: %w", doc.Name, err))
		}
		text = extracted
	}
	result.TextPreview = utils.Preview(text, previewLength)

	record, err := s.extractor.Extract(text)
	if err != nil {
		outcome := metrics.OutcomeFailed
		if errors.Is(err, cashflow.ErrNoSectionsFound) {
			outcome = metrics.OutcomeNoSections
		}
		return fail(&logger, result, outcome, err)
	}
	result.Record = &record

	metrics.DocumentsProcessed.WithLabelValues(metrics.OutcomeSuccess).Inc()
	for key := range record.Sections {
		metrics.SectionsExtracted.WithLabelValues(string(key)).Inc()
	}

	logger.Debug().
		Str("label", result.Label).
		Int("sections", len(record.Sections)).
		Str("unit", record.Signals.Unit).
		Msg("document extracted")
	return result
}

func periodLabel(doc dto.DocumentInput) string {
	if label := strings.TrimSpace(doc.Label); label != "" {
		return label
	}
	return utils.PeriodLabel(doc.Name)
}

func fail(logger *zerolog.Logger, result dto.DocumentResult, outcome string, err error) dto.DocumentResult {
	metrics.DocumentsProcessed.WithLabelValues(outcome).Inc()
	logger.Warn().Err(err).Msg("document skipped")
	result.Err = err
	result.Error = err.Error()
	return result
}
