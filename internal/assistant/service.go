package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"hazardwatch/internal/risk"
	"hazardwatch/internal/types"
)

const (
	chatPromptTemplate = "You are an expert disaster-response assistant. Answer briefly: %s"

	explainPromptTemplate = `You are an interpreter. Given this data: %s
And the AI risk report: %s
Explain in 2-3 sentences WHY that risk level was assigned and give 2 practical actions for the local community.`
)

// Service proxies free-form questions and point explanations to the AI
// endpoint. Errors pass through untouched so handlers can distinguish a
// failed call from a successful call with no candidates.
type Service interface {
	Chat(ctx context.Context, message string) (string, error)
	Explain(ctx context.Context, point types.Point) (string, error)
}

type assistantService struct {
	provider risk.CompletionProvider
	logger   *slog.Logger
}

func NewAssistantService(provider risk.CompletionProvider, logger *slog.Logger) Service {
	return &assistantService{
		provider: provider,
		logger:   logger.With("component", "assistant-service"),
	}
}

func (s *assistantService) Chat(ctx context.Context, message string) (string, error) {
	return s.provider.Generate(ctx, fmt.Sprintf(chatPromptTemplate, message))
}

func (s *assistantService) Explain(ctx context.Context, point types.Point) (string, error) {
	data, err := json.Marshal(point.Data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal weather record: %w", err)
	}
	report, err := json.Marshal(point.RiskReport)
	if err != nil {
		return "", fmt.Errorf("failed to marshal risk report: %w", err)
	}

	return s.provider.Generate(ctx, fmt.Sprintf(explainPromptTemplate, data, report))
}
