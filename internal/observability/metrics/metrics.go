package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal    metric.Int64Counter
	HTTPRequestDuration  metric.Float64Histogram
	AuthRequestsTotal    metric.Int64Counter
	SearchRequestsTotal  metric.Int64Counter
	HotelRequestsTotal   metric.Int64Counter
	HotelFallbacksTotal  metric.Int64Counter
	DBQueryErrorsTotal   metric.Int64Counter
	FavoriteActionsTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, using
// the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("bharat-explore")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.AuthRequestsTotal, err = meter.Int64Counter(
			"auth_requests_total",
			metric.WithDescription("Total number of authentication requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_requests_total: %v", err)
		}

		m.SearchRequestsTotal, err = meter.Int64Counter(
			"search_requests_total",
			metric.WithDescription("Total number of catalog search requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create search_requests_total: %v", err)
		}

		m.HotelRequestsTotal, err = meter.Int64Counter(
			"hotel_requests_total",
			metric.WithDescription("Total number of hotel suggestion requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create hotel_requests_total: %v", err)
		}

		m.HotelFallbacksTotal, err = meter.Int64Counter(
			"hotel_fallbacks_total",
			metric.WithDescription("Hotel suggestion requests served from the static fallback list"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create hotel_fallbacks_total: %v", err)
		}

		m.DBQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		m.FavoriteActionsTotal, err = meter.Int64Counter(
			"favorite_actions_total",
			metric.WithDescription("Total number of favorite add/remove actions"),
			metric.WithUnit("{action}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create favorite_actions_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// The recording helpers below no-op before InitAppMetrics runs, so unit
// tests can exercise handlers and repositories without a meter provider.

// HTTPRequest records one completed HTTP request.
func HTTPRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if appMetrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	appMetrics.HTTPRequestsTotal.Add(ctx, 1, attrs)
	appMetrics.HTTPRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// AuthRequest records one register or login attempt and its outcome.
func AuthRequest(ctx context.Context, operation string, status int) {
	if appMetrics == nil {
		return
	}
	appMetrics.AuthRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Int("http.status_code", status),
	))
}

// SearchRequest records one catalog search request.
func SearchRequest(ctx context.Context) {
	if appMetrics == nil {
		return
	}
	appMetrics.SearchRequestsTotal.Add(ctx, 1)
}

// HotelRequest records one hotel suggestion request.
func HotelRequest(ctx context.Context) {
	if appMetrics == nil {
		return
	}
	appMetrics.HotelRequestsTotal.Add(ctx, 1)
}

// HotelFallback records a hotel suggestion served from the static list.
func HotelFallback(ctx context.Context) {
	if appMetrics == nil {
		return
	}
	appMetrics.HotelFallbacksTotal.Add(ctx, 1)
}

// FavoriteAction records one favorite add or remove.
func FavoriteAction(ctx context.Context, action string) {
	if appMetrics == nil {
		return
	}
	appMetrics.FavoriteActionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
	))
}

// DBError records a failed database operation.
func DBError(ctx context.Context, operation string) {
	if appMetrics == nil {
		return
	}
	appMetrics.DBQueryErrorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
