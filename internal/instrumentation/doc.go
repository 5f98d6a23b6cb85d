// Package instrumentation provides OpenTelemetry instrumentation for the
// todoist-mcp server.
//
// # Metrics
//
// Server/HTTP Metrics (streamable-http transport):
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Todoist API Metrics:
//   - todoist_api_operations_total: Counter of API operations by entity, operation, status
//   - todoist_api_operation_duration_seconds: Histogram of API operation durations
//   - todoist_api_errors_total: Counter of failed API calls by entity and HTTP status
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//   - mcp_tool_validation_errors_total: Counter of calls rejected by input validation
//
// # Tracing
//
// Every tool call gets a tool.<name> span tagged with the entity, the
// operation and, when the call targets one object, todoist.resource_id
// (see ResourceID). The audit record carries the same id. Outgoing Todoist requests are
// traced by the otelhttp transport of the API client and become children
// of the tool span.
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: prometheus, otlp or stdout (default: prometheus)
//   - TRACING_EXPORTER: otlp, stdout or none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: todoist-mcp)
//   - AUDIT_LOGGING_ENABLED: Emit tool_executed/tool_failed records (default: true)
//
// # Example Usage
//
//	cfg, err := instrumentation.ConfigFromEnv()
//	if err != nil {
//		return err
//	}
//	provider, err := instrumentation.NewProvider(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	provider.Metrics().RecordToolInvocation(ctx, "createTask", "success", time.Since(start))
package instrumentation
