package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersNoOpBeforeInit(t *testing.T) {
	// Runs before any InitAppMetrics call in this package. Handlers and
	// repositories record through these helpers, so they must be safe to
	// call from tests that never set up a meter provider.
	assert.NotPanics(t, func() {
		ctx := context.Background()
		HTTPRequest(ctx, "GET", "/api/regions", 200, time.Millisecond)
		AuthRequest(ctx, "login", 200)
		SearchRequest(ctx)
		HotelRequest(ctx)
		HotelFallback(ctx)
		FavoriteAction(ctx, "add")
		DBError(ctx, "ListRegions")
	})
}

func TestInitAppMetricsCreatesAllInstruments(t *testing.T) {
	InitAppMetrics()

	m := Get()
	require.NotNil(t, m)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.AuthRequestsTotal)
	assert.NotNil(t, m.SearchRequestsTotal)
	assert.NotNil(t, m.HotelRequestsTotal)
	assert.NotNil(t, m.HotelFallbacksTotal)
	assert.NotNil(t, m.DBQueryErrorsTotal)
	assert.NotNil(t, m.FavoriteActionsTotal)
}

func TestHelpersRecordAfterInit(t *testing.T) {
	InitAppMetrics()

	assert.NotPanics(t, func() {
		ctx := context.Background()
		HTTPRequest(ctx, "POST", "/api/favorites", 201, 5*time.Millisecond)
		AuthRequest(ctx, "register", 201)
		SearchRequest(ctx)
		HotelRequest(ctx)
		HotelFallback(ctx)
		FavoriteAction(ctx, "remove")
		DBError(ctx, "CreateUser")
	})
}
