package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bharatexplore/internal/app/models"
	"bharatexplore/internal/observability/metrics"
)

// upstreamTimeout bounds a single generation call so a slow model never
// holds the request open indefinitely.
const upstreamTimeout = 20 * time.Second

// fallbackHotels is served whenever the model is unavailable or returns
// something unusable.
var fallbackHotels = []models.Hotel{
	{Name: "Luxury Heritage Hotel", Description: "A beautiful heritage property with modern amenities.", PriceRange: "₹8,000 - ₹15,000"},
	{Name: "The Grand Residency", Description: "Centrally located with stunning city views.", PriceRange: "₹5,000 - ₹9,000"},
	{Name: "Comfort Inn", Description: "Affordable and clean rooms for budget travelers.", PriceRange: "₹2,500 - ₹4,000"},
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// SuggestHotels returns hotel suggestions for the named place. It
	// never fails: model errors degrade to the static fallback list.
	SuggestHotels(ctx context.Context, place, lat, lng string) []models.Hotel
}

type ServiceImpl struct {
	logger     *zap.Logger
	generator  Generator
	titleCaser cases.Caser
}

// NewService wires the hotel suggestion service. A nil generator makes
// every request serve the fallback list.
func NewService(generator Generator, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		generator:  generator,
		titleCaser: cases.Title(language.English),
	}
}

func (s *ServiceImpl) SuggestHotels(ctx context.Context, place, lat, lng string) []models.Hotel {
	ctx, span := otel.Tracer("HotelsService").Start(ctx, "SuggestHotels")
	defer span.End()
	span.SetAttributes(attribute.String("place", place))

	l := s.logger.With(zap.String("method", "SuggestHotels"), zap.String("place", place))
	metrics.HotelRequest(ctx)

	if s.generator == nil {
		l.Warn("AI client unavailable, serving fallback hotels")
		return s.fallback(ctx, span)
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	prompt := buildHotelsPrompt(s.titleCaser.String(place), lat, lng)
	responseText, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		l.Warn("Hotel generation failed, serving fallback hotels", zap.Error(err))
		span.RecordError(err)
		return s.fallback(ctx, span)
	}

	if strings.TrimSpace(responseText) == "" {
		span.SetStatus(codes.Ok, "Empty model response")
		return []models.Hotel{}
	}

	var hotels []models.Hotel
	if err := json.Unmarshal([]byte(cleanJSONResponse(responseText)), &hotels); err != nil {
		l.Warn("Hotel response was not valid JSON, serving fallback hotels", zap.Error(err))
		span.RecordError(err)
		return s.fallback(ctx, span)
	}

	span.SetAttributes(attribute.Int("hotels.count", len(hotels)))
	span.SetStatus(codes.Ok, "Hotels generated successfully")
	return hotels
}

func (s *ServiceImpl) fallback(ctx context.Context, span trace.Span) []models.Hotel {
	metrics.HotelFallback(ctx)
	span.SetStatus(codes.Ok, "Served fallback hotels")
	out := make([]models.Hotel, len(fallbackHotels))
	copy(out, fallbackHotels)
	return out
}

func buildHotelsPrompt(place, lat, lng string) string {
	return fmt.Sprintf("List 5 highly-rated hotels near %s (Latitude: %s, Longitude: %s) in India. "+
		"For each hotel, provide the name, a brief 1-sentence description, and an approximate price range in INR. "+
		"Return the data as a JSON array of objects with keys: name, description, priceRange.",
		place, lat, lng)
}

// cleanJSONResponse strips markdown code fences the model sometimes
// wraps around its JSON payload.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
