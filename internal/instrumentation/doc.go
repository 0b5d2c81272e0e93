// Package instrumentation provides OpenTelemetry instrumentation for the
// calendar service.
//
// It covers metrics, distributed tracing, Prometheus export on a dedicated
// port, and OTLP export for modern observability platforms.
//
// # Metrics
//
// Server/HTTP:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//   - active_sessions: Gauge of active client sessions
//
// Upstream API:
//   - google_api_operations_total: Counter of Google Calendar API operations
//   - google_api_operation_duration_seconds: Histogram of operation durations
//
// Wire methods:
//   - calendar_method_calls_total: Counter of method dispatches by method and status
//   - calendar_method_duration_seconds: Histogram of method durations
//   - calendar_free_slots_returned: Histogram of slot counts per slot search
//
// MCP tools:
//   - mcp_tool_invocations_total: Counter of tool invocations by tool and status
//   - mcp_tool_duration_seconds: Histogram of tool execution durations
//
// # Tracing
//
// Spans are created for wire method dispatches (calendar.<method>), MCP tool
// invocations (tool.<name>), and upstream API calls
// (google.calendar.<operation>).
//
// # Configuration
//
// Environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: prometheus, otlp, stdout (default: prometheus)
//   - TRACING_EXPORTER: otlp, stdout, none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: fgp-calendar)
package instrumentation
