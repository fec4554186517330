package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summary/internal/domain/entities"
	"github.com/johnquangdev/meeting-summary/internal/infrastructure/metrics"
	uerrors "github.com/johnquangdev/meeting-summary/internal/usecase/errors"
)

// Generator produces raw model output for a prompt. *pkgai.GeminiClient
// satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service defines transcript analysis
type Service interface {
	Analyze(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error)
}

type aiService struct {
	generator Generator
	logger    *zap.Logger
}

// NewAIService constructs a new AI service
func NewAIService(generator Generator, logger *zap.Logger) (Service, error) {
	if generator == nil {
		return nil, errors.New("ai: generator must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &aiService{generator: generator, logger: logger}, nil
}

// Analyze asks the model for a structured analysis of the transcript. Every
// failure, provider or parse, is returned as ErrAnalysisFailed wrapping the
// cause; the cause is logged here.
func (s *aiService) Analyze(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	start := time.Now()

	s.logger.Info("🤖 Generating meeting analysis",
		zap.Int("transcript_bytes", len(transcript)),
	)

	raw, err := s.generator.GenerateContent(ctx, BuildPrompt(transcript))
	if err != nil {
		return nil, s.fail(start, "model call failed", err)
	}

	result, err := ParseAnalysis(raw)
	if err != nil {
		return nil, s.fail(start, "failed to parse model response", err,
			zap.Int("response_bytes", len(raw)),
		)
	}

	elapsed := time.Since(start)
	metrics.RecordAnalysis(true, elapsed.Seconds())
	s.logger.Info("✅ Meeting analysis generated",
		zap.Int("objections", len(result.Objections)),
		zap.Int("action_items", len(result.ActionItems)),
		zap.Duration("duration", elapsed),
	)
	return result, nil
}

func (s *aiService) fail(start time.Time, msg string, err error, fields ...zap.Field) error {
	metrics.RecordAnalysis(false, time.Since(start).Seconds())
	s.logger.Error("❌ "+msg, append(fields, zap.Error(err))...)
	return fmt.Errorf("%w: %w", uerrors.ErrAnalysisFailed, err)
}
