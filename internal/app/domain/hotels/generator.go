// Package hotels produces AI-assisted hotel suggestions for a place,
// with a static fallback when the upstream model is unavailable.
package hotels

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"bharatexplore/internal/pkg/config"
)

var _ Generator = (*GeminiGenerator)(nil)

// Generator abstracts the generative model so the service can be tested
// without network access.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiGenerator")
	defer span.End()

	if cfg.APIKey == "" {
		err := fmt.Errorf("GEMINI_API_KEY is not set")
		span.RecordError(err)
		span.SetStatus(codes.Error, "API key not set")
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, err
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &GeminiGenerator{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (g *GeminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent")
	defer span.End()
	span.SetAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", g.model),
	)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return responseText, nil
}
