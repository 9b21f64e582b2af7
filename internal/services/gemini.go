package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GenerationError is returned for every gateway failure: transport errors,
// cancelled contexts, and responses carrying no text.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

var errEmptyResponse = errors.New("no text content in response")

// GeminiService sends fully rendered prompts to the hosted model and returns
// raw text. Decoding is pinned to temperature 0 / top_p 1 so prompt design,
// not sampling, governs the output.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, maxRetries int) (string, error)
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
	logger          *zap.Logger
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, maxOutputTokens int, logger *zap.Logger) (GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName = strings.TrimSpace(modelName); modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	return &geminiService{
		client:          client,
		modelName:       modelName,
		maxOutputTokens: int32(maxOutputTokens),
		logger:          logger.Named("gemini"),
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", &GenerationError{Op: "generate", Err: errors.New("prompt must not be empty")}
	}

	temperature := float32(0)
	topP := float32(1)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		g.logger.Error("gemini api error", zap.Error(err))
		return "", &GenerationError{Op: "generate", Err: err}
	}

	if resp == nil {
		return "", &GenerationError{Op: "generate", Err: errEmptyResponse}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		// Fall back to whatever text parts the candidates carry before
		// declaring the response empty.
		var parts []string
		for _, candidate := range resp.Candidates {
			if candidate == nil || candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part == nil {
					continue
				}
				if t := strings.TrimSpace(part.Text); t != "" {
					parts = append(parts, t)
				}
			}
		}
		if len(parts) == 0 {
			g.logger.Warn("gemini returned empty response", zap.String("model", g.modelName))
			return "", &GenerationError{Op: "generate", Err: errEmptyResponse}
		}
		text = strings.Join(parts, "\n")
	}

	g.logger.Debug("gemini response received",
		zap.String("model", g.modelName),
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("response_chars", len(text)),
	)

	return text, nil
}

// retryGateway routes every plain generate call through the retrying
// variant with a fixed attempt budget. It wraps the real gateway at the
// composition root so the pipelines stay retry-agnostic.
type retryGateway struct {
	GeminiService
	attempts int
}

// WithRetries decorates a gateway so GenerateText retries up to attempts
// times. An attempt budget below 2 returns the gateway unchanged.
func WithRetries(gemini GeminiService, attempts int) GeminiService {
	if attempts < 2 {
		return gemini
	}
	return &retryGateway{GeminiService: gemini, attempts: attempts}
}

func (r *retryGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	return r.GeminiService.GenerateTextWithRetry(ctx, prompt, r.attempts)
}

// GenerateTextWithRetry implements GeminiService.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := g.GenerateText(ctx, prompt)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", &GenerationError{Op: "retry", Err: ctx.Err()}
		default:
		}

		if attempt < maxRetries {
			g.logger.Warn("generation attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}
