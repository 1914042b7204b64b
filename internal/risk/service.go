package risk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hazardwatch/internal/observability"
	"hazardwatch/internal/providers/genai"
	"hazardwatch/internal/types"
)

const assessmentPromptTemplate = `You are an AI Disaster Risk Analyst. Analyze the following environmental conditions and return a JSON object EXACTLY like:
{"risk_level":"Low|Medium|High", "risk_score": <0-100 integer>, "recommendation":"one-line advice"}

Data:
Temperature: %.1f °C
Humidity: %.1f %%
Rainfall: %.1f mm
Wind Speed: %.1f m/s
`

// CompletionProvider defines the interface for generative text endpoints
type CompletionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service turns a weather record into a risk verdict
type Service interface {
	// Assess scores the record via the AI endpoint, falling back to the
	// deterministic heuristic when the call fails or its output is unusable.
	// It never fails the caller.
	Assess(ctx context.Context, record types.WeatherRecord) types.RiskReport
}

type riskService struct {
	provider CompletionProvider
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewRiskService(provider CompletionProvider, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &riskService{
		provider: provider,
		metrics:  metrics,
		logger:   logger.With("component", "risk-service"),
	}
}

func (s *riskService) Assess(ctx context.Context, record types.WeatherRecord) types.RiskReport {
	prompt := buildPrompt(record)

	text, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		// A successful call with zero candidates is reported as Unknown;
		// everything else resolves to the deterministic heuristic.
		if errors.Is(err, genai.ErrNoCandidates) {
			s.metrics.RiskOutcomes.WithLabelValues("no_candidates").Inc()
			return types.RiskReport{
				Level:          types.RiskLevelUnknown,
				Score:          0,
				Recommendation: "No response from AI",
			}
		}

		s.logger.Warn("AI assessment failed, using heuristic", "error", err)
		s.metrics.RiskOutcomes.WithLabelValues("heuristic").Inc()
		return heuristicReport(record)
	}

	report, outcome := parseReportText(text)
	switch outcome {
	case OutcomeParsed:
		s.metrics.RiskOutcomes.WithLabelValues("parsed").Inc()
	case OutcomeExtracted:
		s.logger.Debug("AI reply was not strict JSON, extracted heuristically")
		s.metrics.RiskOutcomes.WithLabelValues("extracted").Inc()
	case OutcomeFailed:
		s.logger.Warn("AI reply carried no usable text, using heuristic")
		s.metrics.RiskOutcomes.WithLabelValues("heuristic").Inc()
		return heuristicReport(record)
	}

	return report
}

func buildPrompt(record types.WeatherRecord) string {
	return fmt.Sprintf(assessmentPromptTemplate,
		record.Temperature,
		record.Humidity,
		record.Rainfall,
		record.WindSpeed,
	)
}
