package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/todoist"
)

func TestServerContext(t *testing.T) {
	api, err := todoist.New(todoist.Options{Token: "token"})
	require.NoError(t, err)

	sc := NewServerContext(context.Background(), api, nil)
	assert.Same(t, api, sc.Todoist())
	assert.NotNil(t, sc.Logger())
	assert.Nil(t, sc.Metrics())
	assert.Nil(t, sc.AuditLogger())

	metrics := &instrumentation.Metrics{}
	audit := instrumentation.NewAuditLogger(nil)
	sc.SetMetrics(metrics)
	sc.SetAuditLogger(audit)
	assert.Same(t, metrics, sc.Metrics())
	assert.Same(t, audit, sc.AuditLogger())
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := NewServerContext(context.Background(), nil, nil)
	assert.False(t, sc.IsShutdown())

	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())
	assert.Error(t, sc.Context().Err(), "context is cancelled on shutdown")

	// Idempotent
	require.NoError(t, sc.Shutdown())
}
